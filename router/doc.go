// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the daily briefing API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Logins (public):

	POST /api/admin/login - Email + password, returns admin token
	POST /api/auth/login  - Entry code, returns participant token

Admin (requires admin Bearer token):

	GET    /api/admin/participants               - Active roster
	POST   /api/admin/participants               - Enroll participant
	DELETE /api/admin/participants/{id}          - Soft delete
	GET    /api/admin/participants/{id}/progress - Watch history
	GET    /api/admin/dashboard                  - Today's completion snapshot
	GET    /api/admin/instructions               - Catalog
	PUT    /api/admin/instructions/{id}          - Edit catalog entry

Participant (requires participant Bearer token):

	GET  /api/instructions/today         - Today's instruction + own flags
	GET  /api/instructions/{id}          - Instruction detail
	POST /api/instructions/{id}/complete - Record completion
	GET  /api/me/progress                - Own watch history

# Authorization

Every protected route is wrapped in middleware.RequireRole before its
handler, so the role check always runs first: no token is 401, the wrong
role is 403, and handler code only ever sees requests carrying a valid
Identity of the right role.

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(db, cfg)
	instructionHandler := handlers.NewInstructionHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
