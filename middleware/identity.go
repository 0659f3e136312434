// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielhkuo/daily-briefing/auth"
)

type identityCtxKey int

const identityKey identityCtxKey = 0

// Identity is the authenticated caller attached to a request context.
// Role is fixed at token issuance; SubjectID is the admin or participant ID.
type Identity struct {
	SubjectID string
	Role      string
}

// RequireRole parses the Bearer token, checks the role, and attaches the
// resulting Identity to the request context. Requests without a valid token
// get 401; requests whose token carries a different role get 403. The
// wrapped handler never runs for either, so authorization always precedes
// data access.
func RequireRole(role, secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ErrorResponse(w, http.StatusUnauthorized, "No token provided")
			return
		}

		tok := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := auth.ParseToken(tok, secret)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		if claims.Role != role {
			ErrorResponse(w, http.StatusForbidden, role+" access required")
			return
		}

		identity := Identity{SubjectID: claims.Subject, Role: claims.Role}
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next(w, r.WithContext(ctx))
	}
}

// IdentityFromContext returns the caller attached by RequireRole.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
