// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"time"

	"github.com/danielhkuo/daily-briefing/models"
)

// ComputeDashboard builds the population snapshot for the current day: the
// active roster (newest enrollment first) joined against the events recorded
// for today's instruction on today's date. It is computed fresh on every
// call - a read-side join, never a cached counter - so it is always
// consistent with the latest recorded completions.
func ComputeDashboard(db *sql.DB, now time.Time) (models.DashboardResponse, error) {
	var resp models.DashboardResponse

	todayIndex, err := TodayIndex(db, now)
	if err != nil && !errors.Is(err, ErrEmptyCatalog) {
		return resp, err
	}
	resp.TodayIndex = todayIndex

	if todayIndex > 0 {
		var ins models.Instruction
		err := db.QueryRow(`
			SELECT id, order_index, title, description, video_url
			FROM instruction
			WHERE order_index = $1
		`, todayIndex).Scan(&ins.ID, &ins.OrderIndex, &ins.Title, &ins.Description, &ins.VideoURL)
		if err != nil && err != sql.ErrNoRows {
			return resp, err
		}
		if err == nil {
			resp.TodayInstruction = &ins
		}
	}

	rows, err := db.Query(`
		SELECT id, name, entry_code
		FROM participant
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`)
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	resp.Participants = []models.DashboardEntry{}
	for rows.Next() {
		var entry models.DashboardEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.EntryCode); err != nil {
			return resp, err
		}
		resp.Participants = append(resp.Participants, entry)
	}
	if err := rows.Err(); err != nil {
		return resp, err
	}

	if resp.TodayInstruction == nil {
		return resp, nil
	}

	events, err := ListEventsForItemOnDay(db, resp.TodayInstruction.ID, DateKey(now))
	if err != nil {
		return resp, err
	}

	// A participant counts as completed only when both flags are set.
	completed := make(map[string]bool, len(events))
	for _, ev := range events {
		if ev.WatchedFully && ev.Accepted {
			completed[ev.ParticipantID] = true
		}
	}

	for i := range resp.Participants {
		resp.Participants[i].CompletedToday = completed[resp.Participants[i].ID]
	}

	return resp, nil
}
