// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Administrators
CREATE TABLE IF NOT EXISTS admin_account (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Participants. Soft-deleted rows keep their entry_code reserved, so
-- codes are never reused while any row holding them exists.
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    entry_code TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    deleted_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_participant_entry_code ON participant(entry_code);
CREATE INDEX IF NOT EXISTS idx_participant_created_at ON participant(created_at);

-- Instruction catalog. order_index is the rotation key: 1..N, contiguous,
-- never changed for an existing row.
CREATE TABLE IF NOT EXISTS instruction (
    id TEXT PRIMARY KEY,
    order_index INTEGER NOT NULL UNIQUE,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    video_url TEXT NOT NULL
);

-- Watch events: one row per (participant, instruction, day).
-- day is a YYYY-MM-DD string computed on UTC boundaries.
CREATE TABLE IF NOT EXISTS watch_event (
    id TEXT PRIMARY KEY,
    participant_id TEXT NOT NULL REFERENCES participant(id) ON DELETE CASCADE,
    instruction_id TEXT NOT NULL REFERENCES instruction(id) ON DELETE CASCADE,
    watched_fully BOOLEAN NOT NULL DEFAULT FALSE,
    accepted BOOLEAN NOT NULL DEFAULT FALSE,
    day TEXT NOT NULL,
    watched_at TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (participant_id, instruction_id, day)
);

CREATE INDEX IF NOT EXISTS idx_watch_event_participant ON watch_event(participant_id);
CREATE INDEX IF NOT EXISTS idx_watch_event_instruction_day ON watch_event(instruction_id, day);
`
