// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package models

import "time"

// ErrorResponse is the body of every non-2xx API response: a short error
// string plus an optional human-readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse confirms a mutation that has no entity to return, such
// as a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthStatus is the /health response body.
type HealthStatus struct {
	Status            string    `json:"status"`
	Timestamp         time.Time `json:"timestamp"`
	DatabaseConnected bool      `json:"database_connected"`
	Uptime            float64   `json:"uptime_seconds"`
}
