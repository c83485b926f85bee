// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package database

import (
	"database/sql"
	"errors"

	"github.com/gymtrack/gymtrack/internal/logging"
)

var (
	// ErrNotFound is returned when a lookup matches no row. Callers must
	// not learn whether the row is absent or owned by another user.
	ErrNotFound = errors.New("record not found")

	// ErrNotInitialized is returned when a method is called on a nil or
	// closed DB.
	ErrNotInitialized = errors.New("database not initialized")
)

// closeQuietly closes the connection during error paths where the original
// error is the one worth returning.
func closeQuietly(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close database connection")
	}
}
