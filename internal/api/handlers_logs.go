// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gymtrack/gymtrack/internal/auth"
	"github.com/gymtrack/gymtrack/internal/logging"
	"github.com/gymtrack/gymtrack/internal/models"
)

// ListLogs handles GET /api/logs. It returns every log owned by the
// authenticated user, newest date first. A user with no logs gets an empty
// array, not null.
func (h *Handler) ListLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "unauthorized", "A valid bearer token is required")
		return
	}

	logs, err := h.db.ListLogsByUser(r.Context(), userID)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to list logs")
		respondError(w, r, http.StatusInternalServerError, "internal_error", "Failed to list logs")
		return
	}

	respondJSON(w, r, http.StatusOK, logs)
}

// UpsertLog handles POST /api/logs. Submitting a date the user has already
// logged overwrites that day's metrics and returns 200; a new date returns
// 201. Both respond with the stored row.
func (h *Handler) UpsertLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "unauthorized", "A valid bearer token is required")
		return
	}

	var req UpsertLogRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	log := &models.Log{
		UserID:   userID,
		Date:     req.Date,
		Weight:   req.Weight,
		Calories: req.Calories,
		Protein:  req.Protein,
	}

	stored, created, err := h.db.UpsertLogByDate(r.Context(), log)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("date", req.Date).Msg("Failed to upsert log")
		respondError(w, r, http.StatusInternalServerError, "internal_error", "Failed to save log")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	logging.Ctx(r.Context()).Debug().
		Int64("log_id", stored.ID).
		Str("date", stored.Date).
		Bool("created", created).
		Msg("Log saved")

	respondJSON(w, r, status, stored)
}

// DeleteLog handles DELETE /api/logs/{id}. The lookup is scoped to the
// authenticated user, so a log owned by someone else yields the same 404 as
// one that never existed.
func (h *Handler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "unauthorized", "A valid bearer token is required")
		return
	}

	// 400 is reserved for unparseable ids; a parseable id that matches no
	// row, including 0 or a negative, takes the 404 path below.
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "validation_error", "Log ID must be an integer")
		return
	}

	deleted, err := h.db.DeleteLog(r.Context(), userID, id)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Int64("log_id", id).Msg("Failed to delete log")
		respondError(w, r, http.StatusInternalServerError, "internal_error", "Failed to delete log")
		return
	}

	if !deleted {
		respondError(w, r, http.StatusNotFound, "not_found", "Log not found")
		return
	}

	respondJSON(w, r, http.StatusOK, models.MessageResponse{Message: "Log deleted"})
}
