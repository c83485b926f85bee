// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package auth

import (
	"context"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/gymtrack/gymtrack/internal/logging"
	"github.com/gymtrack/gymtrack/internal/models"
)

type contextKey string

// userIDContextKey carries the verified user ID through the request context.
const userIDContextKey contextKey = "user-id"

// devUserID is the identity assigned to every request when auth is disabled.
const devUserID = "dev-user"

// Middleware enforces bearer-token authentication on API routes.
type Middleware struct {
	verifier Verifier
	authMode string
}

// NewMiddleware creates the authentication middleware. verifier may be nil
// only when authMode is "none".
func NewMiddleware(verifier Verifier, authMode string) *Middleware {
	return &Middleware{
		verifier: verifier,
		authMode: authMode,
	}
}

// Authenticate rejects requests without a valid bearer token and stores the
// verified user ID in the request context. In "none" mode every request is
// attributed to a fixed development identity.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == "none" {
			ctx := ContextWithUserID(r.Context(), devUserID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			m.unauthorized(w, r, "missing bearer token")
			return
		}

		userID, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			m.unauthorized(w, r, "token verification failed")
			return
		}

		ctx := ContextWithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// unauthorized sends the standard 401 body. The reason is logged, never
// returned, so clients learn nothing about why a token was rejected.
func (m *Middleware) unauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	logging.Ctx(r.Context()).Debug().
		Str("path", r.URL.Path).
		Str("reason", reason).
		Msg("Rejected unauthenticated request")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   "unauthorized",
		Message: "A valid bearer token is required",
	})
}

// bearerToken extracts the token from an Authorization header. The scheme
// comparison is case-insensitive per RFC 9110.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

// ContextWithUserID returns a context carrying the verified user ID.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext returns the verified user ID, or false when the request
// never passed through Authenticate.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok && userID != ""
}
