// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package api

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/gymtrack/gymtrack/internal/logging"
	"github.com/gymtrack/gymtrack/internal/models"
)

// respondJSON writes a JSON response with the given status code. Encoding
// failures are logged; headers are already flushed at that point so the
// client sees a truncated body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("Failed to encode response")
	}
}

// respondError writes the standard error body. The message is safe for
// clients; internal detail belongs in the log, not the response.
func respondError(w http.ResponseWriter, r *http.Request, status int, errCode, message string) {
	respondJSON(w, r, status, models.ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
