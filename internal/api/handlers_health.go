// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gymtrack/gymtrack/internal/logging"
	"github.com/gymtrack/gymtrack/internal/models"
)

// healthCheckTimeout bounds the database ping so a wedged connection cannot
// stall the health endpoint.
const healthCheckTimeout = 2 * time.Second

// Health handles GET /health. It reports 200 while the database responds
// and 503 otherwise. The endpoint requires no authentication.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	dbConnected := true
	status := "healthy"
	code := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check database ping failed")
		dbConnected = false
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, r, code, models.HealthStatus{
		Status:            status,
		Timestamp:         time.Now().UTC(),
		DatabaseConnected: dbConnected,
		Uptime:            time.Since(h.startTime).Seconds(),
	})
}
