// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

// Package config loads and validates application configuration.
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, an optional YAML config file,
// and built-in defaults.
package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	// Path is the SQLite database file location. The parent directory is
	// created on startup if it does not exist.
	Path string `koanf:"path"`

	// BusyTimeout bounds how long a query waits on a locked database
	// before failing, via PRAGMA busy_timeout.
	BusyTimeout time.Duration `koanf:"busy_timeout"`
}

// SecurityConfig holds authentication and request-limiting settings.
type SecurityConfig struct {
	// AuthMode selects the authentication strategy: "jwt" (default) or
	// "none" (development only, every request is rejected as anonymous
	// unless explicitly allowed).
	AuthMode string `koanf:"auth_mode"`

	// JWTSecret is the HMAC secret used to verify bearer tokens issued by
	// the identity provider. Required in jwt mode, minimum 32 characters.
	JWTSecret string `koanf:"jwt_secret"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks the configuration for values that would prevent the
// service from operating correctly. It is called by Load; direct callers
// only need it when constructing a Config by hand (tests).
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}

	switch c.Security.AuthMode {
	case "jwt":
		if len(c.Security.JWTSecret) < 32 {
			return fmt.Errorf("JWT_SECRET must be at least 32 characters in jwt mode")
		}
	case "none":
		// Permitted for development; main() logs a prominent warning.
	default:
		return fmt.Errorf("unknown auth mode %q (expected jwt or none)", c.Security.AuthMode)
	}

	if !c.Security.RateLimitDisabled && c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("rate limit requests must be positive, got %d", c.Security.RateLimitReqs)
	}
	return nil
}
