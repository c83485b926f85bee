// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gymtrack/gymtrack/internal/config"
)

// JWTVerifier validates HS256 tokens signed with the secret shared with the
// identity provider. The token's subject claim is the user ID.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier from the security configuration.
// The secret must be at least 32 characters.
func NewJWTVerifier(cfg *config.SecurityConfig) (*JWTVerifier, error) {
	secret := strings.TrimSpace(cfg.JWTSecret)
	if len(secret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}

	return &JWTVerifier{secret: []byte(secret)}, nil
}

// Verify parses and validates the token and returns its subject claim.
func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// Restricting the method family prevents alg-substitution attacks
		// such as a token signed with "none" or an RSA public key.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}

	return subject, nil
}
