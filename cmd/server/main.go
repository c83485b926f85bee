// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

// Command server runs the GymTrack HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gymtrack/gymtrack/internal/api"
	"github.com/gymtrack/gymtrack/internal/auth"
	"github.com/gymtrack/gymtrack/internal/config"
	"github.com/gymtrack/gymtrack/internal/database"
	"github.com/gymtrack/gymtrack/internal/logging"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	var verifier auth.Verifier
	if cfg.Security.AuthMode == "jwt" {
		verifier, err = auth.NewJWTVerifier(&cfg.Security)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize token verifier")
		}
	} else {
		logging.Warn().Msg("Authentication disabled, all requests attributed to the development user")
	}

	handler := api.NewHandler(db, cfg)
	router := api.NewRouter(handler, auth.NewMiddleware(verifier, cfg.Security.AuthMode))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", server.Addr).
			Str("auth_mode", cfg.Security.AuthMode).
			Msg("Server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Server failed")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
		return
	}

	logging.Info().Msg("Server stopped")
}
