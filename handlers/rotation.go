// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"time"
)

// ErrEmptyCatalog is returned when rotation is requested with no
// instructions seeded.
var ErrEmptyCatalog = errors.New("instruction catalog is empty")

const secondsPerDay = 24 * 60 * 60

// SelectIndex maps an instant to the catalog position active on that UTC
// calendar day: (whole days since the Unix epoch) mod n, plus one. Every
// instant within the same UTC day yields the same index; at UTC midnight
// the index advances by one, wrapping from n back to 1.
func SelectIndex(now time.Time, n int) int {
	d := now.UTC().Unix() / secondsPerDay
	return int(d%int64(n)) + 1
}

// DateKey returns the calendar day key for an instant, YYYY-MM-DD in UTC.
// This is the day component of the watch_event uniqueness constraint and
// shares its day boundary with SelectIndex.
func DateKey(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

// CatalogSize returns the live instruction count. The rotation modulus
// follows the catalog: resizing the catalog reshuffles which entry maps to
// which calendar day, past days included. Events are unaffected since they
// reference instruction IDs, not positions.
func CatalogSize(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM instruction`).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// TodayIndex computes the active catalog position for the given instant
// against the live catalog. Returns ErrEmptyCatalog when nothing is seeded.
func TodayIndex(db *sql.DB, now time.Time) (int, error) {
	n, err := CatalogSize(db)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrEmptyCatalog
	}
	return SelectIndex(now, n), nil
}
