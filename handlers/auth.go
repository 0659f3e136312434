// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/daily-briefing/auth"
	"github.com/danielhkuo/daily-briefing/cliparse"
	"github.com/danielhkuo/daily-briefing/middleware"
	"github.com/danielhkuo/daily-briefing/models"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// AdminLogin handles POST /api/admin/login
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid email is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	var id, passwordHash string
	err := h.db.QueryRow(`
		SELECT id, password_hash FROM admin_account WHERE email = $1
	`, req.Email).Scan(&id, &passwordHash)

	// Unknown email and wrong password produce the same response.
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to query admin account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(passwordHash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.SignToken(id, models.RoleAdmin, h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("admin logged in", "admin_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.AdminLoginResponse{
		Token: token,
		Admin: models.AdminProfile{ID: id, Email: req.Email},
	})
}

// ParticipantLogin handles POST /api/auth/login
// Exchanges a 6-character entry code for a participant token. Soft-deleted
// participants cannot log in.
func (h *AuthHandler) ParticipantLogin(w http.ResponseWriter, r *http.Request) {
	var req models.ParticipantLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Code) != auth.EntryCodeLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid code format")
		return
	}

	var id, name string
	err := h.db.QueryRow(`
		SELECT id, name FROM participant
		WHERE entry_code = $1 AND deleted_at IS NULL
	`, strings.ToUpper(req.Code)).Scan(&id, &name)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid entry code")
		return
	}
	if err != nil {
		slog.Error("failed to query participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := auth.SignToken(id, models.RoleParticipant, h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("participant logged in", "participant_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.ParticipantLoginResponse{
		Token:       token,
		Participant: models.ParticipantProfile{ID: id, Name: name},
	})
}
