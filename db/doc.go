// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - admin_account: Administrator credentials
  - participant: Enrolled people with unique entry codes and soft deletion
  - instruction: The fixed daily-rotation catalog
  - watch_event: One completion record per (participant, instruction, day)

# Relationships

	participant 1──* watch_event
	instruction 1──* watch_event

Both foreign keys use ON DELETE CASCADE: removing a participant or an
instruction removes its events. Soft deletion (deleted_at) removes nothing.

# Constraints

Three uniqueness guarantees the application relies on:

  - participant.entry_code: codes are never reused while any row holds them
  - instruction.order_index: the rotation key, 1..N
  - watch_event (participant_id, instruction_id, day): at most one event
    per triple, enforced by the database so concurrent completions cannot
    create duplicates

# Seeding

Seed creates the configured admin account if absent and upserts the
12-entry safety instruction catalog on order_index. Existing entries get
refreshed titles, descriptions, and video URLs; order_index is never
changed.
*/
package db
