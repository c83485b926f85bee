// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

// Package auth verifies bearer tokens issued by the external identity
// provider and attaches the resulting user ID to request contexts. The
// backend never stores credentials or user records itself.
package auth

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned for any token that fails verification,
// regardless of the underlying cause.
var ErrInvalidToken = errors.New("invalid token")

// Verifier checks a bearer token and returns the stable user ID it carries.
// Implementations must treat every failure as ErrInvalidToken so callers
// cannot distinguish expired, malformed, and forged tokens.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}
