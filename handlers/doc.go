// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers and the core domain logic
of the daily briefing service.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: Admin and participant login
  - InstructionHandler: Today's instruction, detail access, completion,
    own progress
  - AdminHandler: Roster management, per-participant progress, dashboard,
    catalog maintenance

Handlers are created via constructor functions that accept *sql.DB and Config:

	adminHandler := handlers.NewAdminHandler(db, cfg)

InstructionHandler and AdminHandler carry a now func() time.Time clock
(defaulting to time.Now) so day-rollover behavior is testable.

# Daily Rotation

rotation.go holds the pure selection algorithm:

	idx := handlers.SelectIndex(now, n)  // (days since epoch) mod n + 1
	day := handlers.DateKey(now)         // "2006-01-02", UTC

Both use UTC day boundaries, so the index and the day key always agree on
what "today" is. The modulus is the live catalog count - there is no timer
or scheduled job; rollover happens because the next request computes a new
index.

# Completion Ledger

ledger.go holds the event store operations:

	ev, err := handlers.RecordCompletion(db, participantID, instructionID, day, now)

RecordCompletion is one atomic INSERT ... ON CONFLICT DO UPDATE against
the (participant, instruction, day) uniqueness constraint: idempotent,
monotonic (flags only ever become true), and safe under concurrent
submission without application-level locking.

# Dashboard

dashboard.go computes the administrator snapshot fresh per request:

	resp, err := handlers.ComputeDashboard(db, now)

Active participants only, newest enrollment first, each marked completed
for today iff an event with both flags set exists for today's instruction
on today's date.

# Routes

Participant operations (require participant token):

	GET  /api/instructions/today         → Today
	GET  /api/instructions/{id}          → Detail (access window policy)
	POST /api/instructions/{id}/complete → Complete
	GET  /api/me/progress                → MyProgress

Admin operations (require admin token):

	GET    /api/admin/participants               → ListParticipants
	POST   /api/admin/participants               → CreateParticipant
	DELETE /api/admin/participants/{id}          → DeleteParticipant
	GET    /api/admin/participants/{id}/progress → GetProgress
	GET    /api/admin/dashboard                  → Dashboard
	GET    /api/admin/instructions               → ListInstructions
	PUT    /api/admin/instructions/{id}          → UpdateInstruction
*/
package handlers
