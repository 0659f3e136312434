// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Identity and Role Gating

RequireRole authenticates the Bearer token and enforces the caller's role
before the handler runs:

	mux.HandleFunc("GET /api/admin/dashboard",
		middleware.WithLogging(middleware.RequireRole(models.RoleAdmin, secret, h.Dashboard)))

Missing or invalid tokens get 401; a valid token with the wrong role gets
403. Handlers read the caller via:

	identity, ok := middleware.IdentityFromContext(r.Context())

Identity carries the subject ID and role and is immutable for the life of
the request.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreateParticipantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
