// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/daily-briefing/models"
)

// RecordCompletion stores the completion of an instruction by a participant
// on the given day. The write is a single atomic upsert against the
// (participant_id, instruction_id, day) uniqueness constraint: the first
// call creates the event, every later call for the same triple overwrites
// the flags to true and refreshes the timestamp. Completion is therefore
// idempotent and monotonic, and concurrent calls converge on one row
// without ever surfacing a duplicate-key error.
func RecordCompletion(db *sql.DB, participantID, instructionID, day string, now time.Time) (models.WatchEvent, error) {
	var ev models.WatchEvent
	err := db.QueryRow(`
		INSERT INTO watch_event (id, participant_id, instruction_id, watched_fully, accepted, day, watched_at)
		VALUES ($1, $2, $3, TRUE, TRUE, $4, $5)
		ON CONFLICT (participant_id, instruction_id, day) DO UPDATE
		SET watched_fully = TRUE, accepted = TRUE, watched_at = EXCLUDED.watched_at
		RETURNING id, participant_id, instruction_id, watched_fully, accepted, day, watched_at
	`, uuid.NewString(), participantID, instructionID, day, now).Scan(
		&ev.ID, &ev.ParticipantID, &ev.InstructionID,
		&ev.WatchedFully, &ev.Accepted, &ev.Day, &ev.WatchedAt,
	)
	return ev, err
}

// GetEvent fetches the event for one (participant, instruction, day) triple.
// Returns sql.ErrNoRows when no event exists; callers treat that as
// "not completed" rather than an error.
func GetEvent(db *sql.DB, participantID, instructionID, day string) (models.WatchEvent, error) {
	var ev models.WatchEvent
	err := db.QueryRow(`
		SELECT id, participant_id, instruction_id, watched_fully, accepted, day, watched_at
		FROM watch_event
		WHERE participant_id = $1 AND instruction_id = $2 AND day = $3
	`, participantID, instructionID, day).Scan(
		&ev.ID, &ev.ParticipantID, &ev.InstructionID,
		&ev.WatchedFully, &ev.Accepted, &ev.Day, &ev.WatchedAt,
	)
	return ev, err
}

// ListEventsForParticipant returns the participant's full watch history
// joined with instruction metadata, most recent first. History is
// event-driven: instructions the participant never completed simply do
// not appear.
func ListEventsForParticipant(db *sql.DB, participantID string) ([]models.ProgressEntry, error) {
	rows, err := db.Query(`
		SELECT e.id, e.instruction_id, i.title, i.order_index,
		       e.watched_fully, e.accepted, e.day, e.watched_at
		FROM watch_event e
		INNER JOIN instruction i ON e.instruction_id = i.id
		WHERE e.participant_id = $1
		ORDER BY e.watched_at DESC
	`, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.ProgressEntry{}
	for rows.Next() {
		var entry models.ProgressEntry
		if err := rows.Scan(
			&entry.ID, &entry.InstructionID, &entry.InstructionTitle, &entry.OrderIndex,
			&entry.WatchedFully, &entry.Accepted, &entry.Day, &entry.WatchedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ListEventsForItemOnDay returns all events recorded against one
// instruction on one day. Used by the dashboard join.
func ListEventsForItemOnDay(db *sql.DB, instructionID, day string) ([]models.WatchEvent, error) {
	rows, err := db.Query(`
		SELECT id, participant_id, instruction_id, watched_fully, accepted, day, watched_at
		FROM watch_event
		WHERE instruction_id = $1 AND day = $2
	`, instructionID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.WatchEvent{}
	for rows.Next() {
		var ev models.WatchEvent
		if err := rows.Scan(
			&ev.ID, &ev.ParticipantID, &ev.InstructionID,
			&ev.WatchedFully, &ev.Accepted, &ev.Day, &ev.WatchedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
