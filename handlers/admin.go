// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/danielhkuo/daily-briefing/auth"
	"github.com/danielhkuo/daily-briefing/cliparse"
	"github.com/danielhkuo/daily-briefing/middleware"
	"github.com/danielhkuo/daily-briefing/models"
)

// maxEntryCodeAttempts bounds the generate-insert-retry loop for entry
// codes. With 16.7M possible codes the bound is effectively unreachable
// until the roster is enormous, at which point the caller gets a 409.
const maxEntryCodeAttempts = 5

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg, now: time.Now}
}

// ListParticipants handles GET /api/admin/participants
// Active participants only, most recently enrolled first.
func (h *AdminHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, entry_code, created_at
		FROM participant
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.EntryCode, &p.CreatedAt); err != nil {
			slog.Error("failed to scan participant", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		participants = append(participants, p)
	}

	middleware.JSONResponse(w, http.StatusOK, participants)
}

// CreateParticipant handles POST /api/admin/participants
// Generates an entry code and inserts; on an entry_code uniqueness
// violation a fresh code is generated and the insert retried, up to
// maxEntryCodeAttempts, after which the request fails with 409. The
// database constraint is the arbiter, so two admins enrolling at once
// can never mint the same code.
func (h *AdminHandler) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req models.CreateParticipantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	id := uuid.NewString()
	createdAt := h.now()

	var p models.Participant
	for attempt := 0; attempt < maxEntryCodeAttempts; attempt++ {
		code, err := auth.GenerateEntryCode()
		if err != nil {
			slog.Error("failed to generate entry code", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create participant")
			return
		}

		err = h.db.QueryRow(`
			INSERT INTO participant (id, name, entry_code, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, name, entry_code, created_at
		`, id, req.Name, code, createdAt).Scan(&p.ID, &p.Name, &p.EntryCode, &p.CreatedAt)

		if err == nil {
			slog.Info("participant created", "participant_id", p.ID, "attempts", attempt+1)
			middleware.JSONResponse(w, http.StatusCreated, p)
			return
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			continue // entry code collision, try another
		}

		slog.Error("failed to insert participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create participant")
		return
	}

	slog.Warn("entry code generation exhausted", "attempts", maxEntryCodeAttempts)
	middleware.ErrorResponse(w, http.StatusConflict, "Could not allocate a unique entry code")
}

// DeleteParticipant handles DELETE /api/admin/participants/{id}
// Soft deletion: the row is marked, never removed, so the entry code stays
// reserved and historical events survive. Deleting an already-deleted or
// unknown participant succeeds without effect.
func (h *AdminHandler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("id")
	if participantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant id is required")
		return
	}

	_, err := h.db.Exec(`
		UPDATE participant
		SET deleted_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`, h.now(), participantID)

	if err != nil {
		slog.Error("failed to delete participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete participant")
		return
	}

	slog.Info("participant soft-deleted", "participant_id", participantID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteParticipantResponse{Success: true})
}

// GetProgress handles GET /api/admin/participants/{id}/progress
// Works for soft-deleted participants too: deletion hides a participant
// from the roster and dashboard, but their history stays reachable by id.
func (h *AdminHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("id")
	if participantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant id is required")
		return
	}

	var name string
	err := h.db.QueryRow(`
		SELECT name FROM participant WHERE id = $1
	`, participantID).Scan(&name)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Participant not found")
		return
	}
	if err != nil {
		slog.Error("failed to query participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	logs, err := ListEventsForParticipant(h.db, participantID)
	if err != nil {
		slog.Error("failed to query watch history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProgressResponse{
		ID:   participantID,
		Name: name,
		Logs: logs,
	})
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := ComputeDashboard(h.db, h.now())
	if err != nil {
		slog.Error("failed to compute dashboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ListInstructions handles GET /api/admin/instructions
func (h *AdminHandler) ListInstructions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, order_index, title, description, video_url
		FROM instruction
		ORDER BY order_index ASC
	`)
	if err != nil {
		slog.Error("failed to query instructions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	instructions := []models.Instruction{}
	for rows.Next() {
		var ins models.Instruction
		if err := rows.Scan(&ins.ID, &ins.OrderIndex, &ins.Title, &ins.Description, &ins.VideoURL); err != nil {
			slog.Error("failed to scan instruction", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		instructions = append(instructions, ins)
	}

	middleware.JSONResponse(w, http.StatusOK, instructions)
}

// UpdateInstruction handles PUT /api/admin/instructions/{id}
// Title, description, and video URL may change in place. order_index is
// the rotation key of an existing entry and is immutable; a request that
// tries to change it is rejected.
func (h *AdminHandler) UpdateInstruction(w http.ResponseWriter, r *http.Request) {
	instructionID := r.PathValue("id")
	if instructionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "instruction id is required")
		return
	}

	var req models.UpdateInstructionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" || req.Description == "" || req.VideoURL == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title, description, and video_url are required")
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

	if req.OrderIndex != nil && *req.OrderIndex != ins.OrderIndex {
		middleware.ErrorResponse(w, http.StatusBadRequest, "order_index cannot be changed")
		return
	}

	err = h.db.QueryRow(`
		UPDATE instruction
		SET title = $1, description = $2, video_url = $3
		WHERE id = $4
		RETURNING id, order_index, title, description, video_url
	`, req.Title, req.Description, req.VideoURL, instructionID).Scan(
		&ins.ID, &ins.OrderIndex, &ins.Title, &ins.Description, &ins.VideoURL,
	)

	if err != nil {
		slog.Error("failed to update instruction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update instruction")
		return
	}

	slog.Info("instruction updated", "instruction_id", ins.ID, "order_index", ins.OrderIndex)

	middleware.JSONResponse(w, http.StatusOK, ins)
}
