// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

// Package api implements the HTTP surface: request decoding, handler logic,
// and the chi route table.
package api

import (
	"time"

	"github.com/gymtrack/gymtrack/internal/config"
	"github.com/gymtrack/gymtrack/internal/database"
)

// Handler holds the dependencies shared by all HTTP handlers. It is fully
// constructed before the router starts serving; nothing is mutated after.
type Handler struct {
	db        *database.DB
	cfg       *config.Config
	startTime time.Time
}

// NewHandler creates the API handler.
func NewHandler(db *database.DB, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		cfg:       cfg,
		startTime: time.Now(),
	}
}
