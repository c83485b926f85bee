// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gymtrack/gymtrack/internal/config"
)

const testSecret = "test-secret-0123456789-0123456789-ab"

func newTestVerifier(t *testing.T) *JWTVerifier {
	t.Helper()

	v, err := NewJWTVerifier(&config.SecurityConfig{JWTSecret: testSecret})
	if err != nil {
		t.Fatalf("NewJWTVerifier() error = %v", err)
	}
	return v
}

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return token
}

func TestNewJWTVerifier_SecretLength(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTVerifier(&config.SecurityConfig{JWTSecret: "too-short"}); err == nil {
		t.Error("NewJWTVerifier(short secret) error = nil, want error")
	}
	if _, err := NewJWTVerifier(&config.SecurityConfig{JWTSecret: testSecret}); err != nil {
		t.Errorf("NewJWTVerifier(valid secret) error = %v, want nil", err)
	}
}

func TestJWTVerifier_Verify(t *testing.T) {
	t.Parallel()

	v := newTestVerifier(t)
	now := time.Now()

	validClaims := jwt.RegisteredClaims{
		Subject:   "user-42",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	tests := []struct {
		name    string
		token   string
		wantID  string
		wantErr bool
	}{
		{
			name:   "valid token",
			token:  signToken(t, testSecret, validClaims),
			wantID: "user-42",
		},
		{
			name: "wrong secret",
			token: signToken(t, "another-secret-0123456789-0123456789", jwt.RegisteredClaims{
				Subject:   "user-42",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
			wantErr: true,
		},
		{
			name: "expired token",
			token: signToken(t, testSecret, jwt.RegisteredClaims{
				Subject:   "user-42",
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			}),
			wantErr: true,
		},
		{
			name: "missing subject",
			token: signToken(t, testSecret, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
			wantErr: true,
		},
		{
			name:    "garbage token",
			token:   "not.a.jwt",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userID, err := v.Verify(context.Background(), tt.token)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidToken) {
					t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if userID != tt.wantID {
				t.Errorf("Verify() userID = %q, want %q", userID, tt.wantID)
			}
		})
	}
}

func TestJWTVerifier_RejectsNonHMACAlgorithm(t *testing.T) {
	t.Parallel()

	v := newTestVerifier(t)

	// A token claiming alg=none must never validate, even with a correct
	// payload shape.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := v.Verify(context.Background(), signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(alg=none) error = %v, want ErrInvalidToken", err)
	}
}
