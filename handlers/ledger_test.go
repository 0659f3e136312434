// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/danielhkuo/daily-briefing/testutil"
)

func TestRecordCompletion_CreatesEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	participantID, _ := testutil.CreateTestParticipant(t, db, "Alice")
	ids := testutil.SeedTestCatalog(t, db, 12)

	now := time.Now()
	day := DateKey(now)

	ev, err := RecordCompletion(db, participantID, ids[0], day, now)
	if err != nil {
		t.Fatalf("RecordCompletion() error = %v", err)
	}

	if !ev.WatchedFully || !ev.Accepted {
		t.Errorf("Expected both flags true, got watched_fully=%v accepted=%v", ev.WatchedFully, ev.Accepted)
	}
	if ev.Day != day {
		t.Errorf("Day = %q, want %q", ev.Day, day)
	}
	if ev.ParticipantID != participantID || ev.InstructionID != ids[0] {
		t.Error("Event references wrong participant or instruction")
	}
}

func TestRecordCompletion_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	participantID, _ := testutil.CreateTestParticipant(t, db, "Bob")
	ids := testutil.SeedTestCatalog(t, db, 12)

	now := time.Now()
	day := DateKey(now)

	first, err := RecordCompletion(db, participantID, ids[2], day, now)
	if err != nil {
		t.Fatalf("First RecordCompletion() error = %v", err)
	}

	second, err := RecordCompletion(db, participantID, ids[2], day, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Second RecordCompletion() error = %v", err)
	}

	// Same row, refreshed timestamp, flags still true
	if first.ID != second.ID {
		t.Errorf("Resubmission created a new row: %s != %s", first.ID, second.ID)
	}
	if !second.WatchedFully || !second.Accepted {
		t.Error("Resubmission un-marked completion")
	}
	if !second.WatchedAt.After(first.WatchedAt) {
		t.Errorf("Expected refreshed timestamp, got %v then %v", first.WatchedAt, second.WatchedAt)
	}

	var count int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM watch_event
		WHERE participant_id = $1 AND instruction_id = $2 AND day = $3
	`, participantID, ids[2], day).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count events: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 event row, got %d", count)
	}
}

func TestRecordCompletion_SeparateDaysSeparateRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	participantID, _ := testutil.CreateTestParticipant(t, db, "Carol")
	ids := testutil.SeedTestCatalog(t, db, 12)

	now := time.Now()
	if _, err := RecordCompletion(db, participantID, ids[0], DateKey(now), now); err != nil {
		t.Fatalf("RecordCompletion() error = %v", err)
	}
	tomorrow := now.AddDate(0, 0, 1)
	if _, err := RecordCompletion(db, participantID, ids[0], DateKey(tomorrow), tomorrow); err != nil {
		t.Fatalf("RecordCompletion() error = %v", err)
	}

	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM watch_event WHERE participant_id = $1 AND instruction_id = $2
	`, participantID, ids[0]).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count events: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 rows (one per day), got %d", count)
	}
}

func TestGetEvent_Absent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	participantID, _ := testutil.CreateTestParticipant(t, db, "Dave")
	ids := testutil.SeedTestCatalog(t, db, 12)

	_, err := GetEvent(db, participantID, ids[0], DateKey(time.Now()))
	if err != sql.ErrNoRows {
		t.Errorf("Expected sql.ErrNoRows for absent event, got %v", err)
	}
}

func TestListEventsForParticipant_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	participantID, _ := testutil.CreateTestParticipant(t, db, "Eve")
	ids := testutil.SeedTestCatalog(t, db, 12)

	// Three completions across three days, recorded oldest first
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		at := base.AddDate(0, 0, i)
		if _, err := RecordCompletion(db, participantID, ids[i], DateKey(at), at); err != nil {
			t.Fatalf("RecordCompletion() error = %v", err)
		}
	}

	entries, err := ListEventsForParticipant(db, participantID)
	if err != nil {
		t.Fatalf("ListEventsForParticipant() error = %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	// Newest first
	for i := 1; i < len(entries); i++ {
		if entries[i].WatchedAt.After(entries[i-1].WatchedAt) {
			t.Error("History is not ordered newest first")
		}
	}

	// Join carries instruction metadata
	if entries[0].InstructionTitle == "" || entries[0].OrderIndex == 0 {
		t.Error("History entry missing joined instruction title or order index")
	}
	if entries[0].InstructionID != ids[2] {
		t.Errorf("Newest entry should be instruction %s, got %s", ids[2], entries[0].InstructionID)
	}
}

func TestListEventsForParticipant_EmptyHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	participantID, _ := testutil.CreateTestParticipant(t, db, "Frank")
	testutil.SeedTestCatalog(t, db, 12)

	entries, err := ListEventsForParticipant(db, participantID)
	if err != nil {
		t.Fatalf("ListEventsForParticipant() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(entries))
	}
}

func TestListEventsForItemOnDay(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	p1, _ := testutil.CreateTestParticipant(t, db, "Grace")
	p2, _ := testutil.CreateTestParticipant(t, db, "Heidi")
	p3, _ := testutil.CreateTestParticipant(t, db, "Ivan")
	ids := testutil.SeedTestCatalog(t, db, 12)

	now := time.Now()
	day := DateKey(now)
	yesterday := DateKey(now.AddDate(0, 0, -1))

	// Two completions today on the target item, one yesterday, one on
	// another item - only the first two should be returned.
	if _, err := RecordCompletion(db, p1, ids[0], day, now); err != nil {
		t.Fatal(err)
	}
	if _, err := RecordCompletion(db, p2, ids[0], day, now); err != nil {
		t.Fatal(err)
	}
	if _, err := RecordCompletion(db, p3, ids[0], yesterday, now.AddDate(0, 0, -1)); err != nil {
		t.Fatal(err)
	}
	if _, err := RecordCompletion(db, p3, ids[1], day, now); err != nil {
		t.Fatal(err)
	}

	events, err := ListEventsForItemOnDay(db, ids[0], day)
	if err != nil {
		t.Fatalf("ListEventsForItemOnDay() error = %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.InstructionID != ids[0] || ev.Day != day {
			t.Errorf("Unexpected event in result: instruction=%s day=%s", ev.InstructionID, ev.Day)
		}
	}
}

func TestCascadeDelete_RemovesEvents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	participantID, _ := testutil.CreateTestParticipant(t, db, "Judy")
	ids := testutil.SeedTestCatalog(t, db, 12)

	now := time.Now()
	if _, err := RecordCompletion(db, participantID, ids[0], DateKey(now), now); err != nil {
		t.Fatalf("RecordCompletion() error = %v", err)
	}

	// Hard delete cascades to events; soft delete does not
	if _, err := db.Exec(`DELETE FROM participant WHERE id = $1`, participantID); err != nil {
		t.Fatalf("Failed to delete participant: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM watch_event WHERE participant_id = $1`, participantID).Scan(&count); err != nil {
		t.Fatalf("Failed to count events: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected cascade to remove events, %d remain", count)
	}
}
