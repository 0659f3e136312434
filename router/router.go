// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/daily-briefing/cliparse"
	"github.com/danielhkuo/daily-briefing/handlers"
	"github.com/danielhkuo/daily-briefing/middleware"
	"github.com/danielhkuo/daily-briefing/models"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	instructionHandler := handlers.NewInstructionHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	secret := cfg.JWTSecret
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireRole(models.RoleAdmin, secret, h))
	}
	participant := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireRole(models.RoleParticipant, secret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Logins (public)
	mux.HandleFunc("POST /api/admin/login", middleware.WithLogging(authHandler.AdminLogin))
	mux.HandleFunc("POST /api/auth/login", middleware.WithLogging(authHandler.ParticipantLogin))

	// Roster and oversight (admin only)
	mux.HandleFunc("GET /api/admin/participants", admin(adminHandler.ListParticipants))
	mux.HandleFunc("POST /api/admin/participants", admin(adminHandler.CreateParticipant))
	mux.HandleFunc("DELETE /api/admin/participants/{id}", admin(adminHandler.DeleteParticipant))
	mux.HandleFunc("GET /api/admin/participants/{id}/progress", admin(adminHandler.GetProgress))
	mux.HandleFunc("GET /api/admin/dashboard", admin(adminHandler.Dashboard))
	mux.HandleFunc("GET /api/admin/instructions", admin(adminHandler.ListInstructions))
	mux.HandleFunc("PUT /api/admin/instructions/{id}", admin(adminHandler.UpdateInstruction))

	// Daily viewing (participant only)
	mux.HandleFunc("GET /api/instructions/today", participant(instructionHandler.Today))
	mux.HandleFunc("GET /api/instructions/{id}", participant(instructionHandler.Detail))
	mux.HandleFunc("POST /api/instructions/{id}/complete", participant(instructionHandler.Complete))
	mux.HandleFunc("GET /api/me/progress", participant(instructionHandler.MyProgress))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("daily-briefing API v1"))
	})

	return mux
}
