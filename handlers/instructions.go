// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/daily-briefing/cliparse"
	"github.com/danielhkuo/daily-briefing/middleware"
	"github.com/danielhkuo/daily-briefing/models"
)

type InstructionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewInstructionHandler(db *sql.DB, cfg cliparse.Config) *InstructionHandler {
	return &InstructionHandler{db: db, cfg: cfg, now: time.Now}
}

// Today handles GET /api/instructions/today
// Returns today's instruction with the caller's own completion flags.
// Flags default to false when no event exists for (caller, item, today).
func (h *InstructionHandler) Today(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No identity")
		return
	}

	now := h.now()
	todayIndex, err := TodayIndex(h.db, now)
	if err != nil {
		if errors.Is(err, ErrEmptyCatalog) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Today's instruction not found")
			return
		}
		slog.Error("failed to compute rotation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var ins models.Instruction
	err = h.db.QueryRow(`
		SELECT id, order_index, title, description, video_url
		FROM instruction
		WHERE order_index = $1
	`, todayIndex).Scan(&ins.ID, &ins.OrderIndex, &ins.Title, &ins.Description, &ins.VideoURL)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Today's instruction not found")
		return
	}
	if err != nil {
		slog.Error("failed to query instruction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	watchedFully, accepted := false, false
	ev, err := GetEvent(h.db, identity.SubjectID, ins.ID, DateKey(now))
	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to query watch event", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if err == nil {
		watchedFully, accepted = ev.WatchedFully, ev.Accepted
	}

	middleware.JSONResponse(w, http.StatusOK, models.TodayInstructionResponse{
		TodayIndex: todayIndex,
		Instruction: models.InstructionToday{
			ID:           ins.ID,
			Title:        ins.Title,
			Description:  ins.Description,
			OrderIndex:   ins.OrderIndex,
			WatchedFully: watchedFully,
			Accepted:     accepted,
		},
	})
}

// Detail handles GET /api/instructions/{id}
// When the access window policy is enabled, the instruction is only
// reachable inside the configured UTC hour window and only if it is
// today's instruction.
func (h *InstructionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	instructionID := r.PathValue("id")
	if instructionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "instruction id is required")
		return
	}

	var ins models.Instruction
	err := h.db.QueryRow(`
		SELECT id, order_index, title, description, video_url
		FROM instruction
		WHERE id = $1
	`, instructionID).Scan(&ins.ID, &ins.OrderIndex, &ins.Title, &ins.Description, &ins.VideoURL)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Instruction not found")
		return
	}
	if err != nil {
		slog.Error("failed to query instruction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if h.cfg.AccessWindowEnabled {
		now := h.now()
		hour := now.UTC().Hour()
		if hour < h.cfg.WindowStartHour || hour >= h.cfg.WindowEndHour {
			middleware.ErrorResponse(w, http.StatusForbidden, "Instructions are only accessible during the daily window")
			return
		}
		todayIndex, err := TodayIndex(h.db, now)
		if err != nil {
			slog.Error("failed to compute rotation", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if ins.OrderIndex != todayIndex {
			middleware.ErrorResponse(w, http.StatusForbidden, "This is not today's instruction")
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, ins)
}

// Complete handles POST /api/instructions/{id}/complete
// Records that the caller watched the instruction fully and acknowledged
// it for the current UTC day. Resubmitting is harmless: the stored event
// is overwritten in place, never duplicated, and never un-marked.
func (h *InstructionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No identity")
		return
	}

	instructionID := r.PathValue("id")
	if instructionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "instruction id is required")
		return
	}

	var ins models.Instruction
	err := h.db.QueryRow(`
		SELECT id, order_index FROM instruction WHERE id = $1
	`, instructionID).Scan(&ins.ID, &ins.OrderIndex)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Instruction not found")
		return
	}
	if err != nil {
		slog.Error("failed to query instruction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := h.now()

	if h.cfg.AccessWindowEnabled {
		todayIndex, err := TodayIndex(h.db, now)
		if err != nil {
			slog.Error("failed to compute rotation", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if ins.OrderIndex != todayIndex {
			middleware.ErrorResponse(w, http.StatusForbidden, "This is not today's instruction")
			return
		}
	}

	ev, err := RecordCompletion(h.db, identity.SubjectID, ins.ID, DateKey(now), now)
	if err != nil {
		slog.Error("failed to record completion", "error", err,
			"participant_id", identity.SubjectID, "instruction_id", ins.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record completion")
		return
	}

	slog.Info("completion recorded",
		"participant_id", identity.SubjectID,
		"instruction_id", ins.ID,
		"day", ev.Day,
	)

	middleware.JSONResponse(w, http.StatusOK, ev)
}

// MyProgress handles GET /api/me/progress
// Returns the caller's identity and full watch history, newest first.
func (h *InstructionHandler) MyProgress(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No identity")
		return
	}

	var name string
	err := h.db.QueryRow(`
		SELECT name FROM participant WHERE id = $1 AND deleted_at IS NULL
	`, identity.SubjectID).Scan(&name)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Participant not found")
		return
	}
	if err != nil {
		slog.Error("failed to query participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	logs, err := ListEventsForParticipant(h.db, identity.SubjectID)
	if err != nil {
		slog.Error("failed to query watch history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProgressResponse{
		ID:   identity.SubjectID,
		Name: name,
		Logs: logs,
	})
}
