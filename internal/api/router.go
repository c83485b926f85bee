// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gymtrack/gymtrack/internal/auth"
	"github.com/gymtrack/gymtrack/internal/middleware"
)

// NewRouter builds the route table. /health and /metrics are open; every
// /api route requires a verified bearer token.
func NewRouter(handler *Handler, authMW *auth.Middleware) http.Handler {
	cfg := handler.cfg

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	// CORS is global so OPTIONS preflight works on every route.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		if !cfg.Security.RateLimitDisabled {
			window := cfg.Security.RateLimitWindow
			if window <= 0 {
				window = time.Minute
			}
			r.Use(httprate.LimitByIP(cfg.Security.RateLimitReqs, window))
		}
		r.Use(middleware.PrometheusMetrics)
		r.Use(authMW.Authenticate)

		r.Get("/logs", handler.ListLogs)
		r.Post("/logs", handler.UpsertLog)
		r.Delete("/logs/{id}", handler.DeleteLog)
	})

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
