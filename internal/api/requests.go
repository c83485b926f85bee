// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

// maxBodyBytes caps request bodies well above any legitimate log payload.
const maxBodyBytes = 1 << 16

var validate = validator.New(validator.WithRequiredStructEnabled())

// UpsertLogRequest is the POST /api/logs body. Omitted metrics stay nil and
// are stored as NULL; an explicit 0 is kept as 0.
type UpsertLogRequest struct {
	Date     string   `json:"date" validate:"required,datetime=2006-01-02"`
	Weight   *float64 `json:"weight" validate:"omitempty,gte=0"`
	Calories *int64   `json:"calories" validate:"omitempty,gte=0"`
	Protein  *int64   `json:"protein" validate:"omitempty,gte=0"`
}

// decodeAndValidate parses a JSON request body into dst and runs struct
// validation. Unknown fields are rejected to surface client typos early.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer func() { _, _ = io.Copy(io.Discard, body) }()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}
