// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

// Package models defines the data structures shared between the database
// and API layers.
package models

import "time"

// Log is one user's recorded metrics for a single calendar date. At most
// one Log exists per (user_id, date) pair; re-submitting the same date
// overwrites the previous values.
//
// Weight, Calories, and Protein are pointers so that an explicit zero
// survives the round trip: absent fields are stored as NULL, a submitted 0
// is stored as 0.
type Log struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Weight    *float64  `json:"weight"`
	Calories  *int64    `json:"calories"`
	Protein   *int64    `json:"protein"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
