// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gymtrack/gymtrack/internal/metrics"
	"github.com/gymtrack/gymtrack/internal/models"
)

const logColumns = `id, user_id, date, weight, calories, protein, created_at, updated_at`

// scanLog scans one logs row. NULL numeric columns become nil pointers so a
// stored zero and an absent value stay distinguishable.
func scanLog(rows *sql.Rows) (models.Log, error) {
	var (
		log       models.Log
		weight    sql.NullFloat64
		calories  sql.NullInt64
		protein   sql.NullInt64
		createdAt int64
		updatedAt int64
	)

	err := rows.Scan(&log.ID, &log.UserID, &log.Date, &weight, &calories, &protein, &createdAt, &updatedAt)
	if err != nil {
		return models.Log{}, err
	}

	if weight.Valid {
		log.Weight = &weight.Float64
	}
	if calories.Valid {
		log.Calories = &calories.Int64
	}
	if protein.Valid {
		log.Protein = &protein.Int64
	}
	log.CreatedAt = fromNanos(createdAt)
	log.UpdatedAt = fromNanos(updatedAt)

	return log, nil
}

// nullFloat converts an optional float for binding.
func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// nullInt converts an optional integer for binding.
func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// ListLogsByUser returns all logs for one user, newest date first. Ties on
// date cannot occur thanks to the unique constraint, but id breaks them
// deterministically anyway.
func (db *DB) ListLogsByUser(ctx context.Context, userID string) ([]models.Log, error) {
	if db == nil || db.conn == nil {
		return nil, ErrNotInitialized
	}

	start := time.Now()
	query := fmt.Sprintf(`SELECT %s FROM logs WHERE user_id = ? ORDER BY date DESC, id DESC`, logColumns)
	logs, err := queryAndScan(ctx, db.conn, query, []interface{}{userID}, scanLog)
	metrics.RecordDBQuery("list_logs", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}

// GetLogByID returns one log scoped to its owner. A log that exists but
// belongs to another user is reported as ErrNotFound.
func (db *DB) GetLogByID(ctx context.Context, userID string, id int64) (*models.Log, error) {
	if db == nil || db.conn == nil {
		return nil, ErrNotInitialized
	}

	start := time.Now()
	query := fmt.Sprintf(`SELECT %s FROM logs WHERE id = ? AND user_id = ?`, logColumns)
	log, err := queryOne(ctx, db.conn, query, []interface{}{id, userID}, scanLog)
	metrics.RecordDBQuery("get_log", time.Since(start), ignoreNotFound(err))
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetLogByDate returns the user's log for one calendar date, if any.
func (db *DB) GetLogByDate(ctx context.Context, userID, date string) (*models.Log, error) {
	if db == nil || db.conn == nil {
		return nil, ErrNotInitialized
	}

	start := time.Now()
	query := fmt.Sprintf(`SELECT %s FROM logs WHERE user_id = ? AND date = ?`, logColumns)
	log, err := queryOne(ctx, db.conn, query, []interface{}{userID, date}, scanLog)
	metrics.RecordDBQuery("get_log_by_date", time.Since(start), ignoreNotFound(err))
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// UpsertLogByDate inserts the log, or overwrites the metric columns of the
// existing row for the same (user_id, date). The statement is a single
// atomic INSERT ... ON CONFLICT so concurrent submissions for the same date
// cannot race a read against a write.
//
// The returned bool is true when a new row was created. Detection compares
// the row's created_at against the timestamp bound into this call: an
// inserted row carries it, an updated row keeps its older one.
func (db *DB) UpsertLogByDate(ctx context.Context, log *models.Log) (*models.Log, bool, error) {
	if db == nil || db.conn == nil {
		return nil, false, ErrNotInitialized
	}

	now := toNanos(time.Now())

	start := time.Now()
	query := fmt.Sprintf(`
INSERT INTO logs (user_id, date, weight, calories, protein, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, date) DO UPDATE SET
	weight = excluded.weight,
	calories = excluded.calories,
	protein = excluded.protein,
	updated_at = excluded.updated_at
RETURNING %s`, logColumns)

	args := []interface{}{
		log.UserID,
		log.Date,
		nullFloat(log.Weight),
		nullInt(log.Calories),
		nullInt(log.Protein),
		now,
		now,
	}

	stored, err := queryOne(ctx, db.conn, query, args, scanLog)
	metrics.RecordDBQuery("upsert_log", time.Since(start), err)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert log: %w", err)
	}

	created := toNanos(stored.CreatedAt) == now
	return &stored, created, nil
}

// DeleteLog removes one log scoped to its owner. It returns false when no
// row matched, whether the log never existed or belongs to someone else.
func (db *DB) DeleteLog(ctx context.Context, userID string, id int64) (bool, error) {
	if db == nil || db.conn == nil {
		return false, ErrNotInitialized
	}

	start := time.Now()
	result, err := db.conn.ExecContext(ctx, `DELETE FROM logs WHERE id = ? AND user_id = ?`, id, userID)
	metrics.RecordDBQuery("delete_log", time.Since(start), err)
	if err != nil {
		return false, fmt.Errorf("failed to delete log: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

// CountLogsByUser reports how many dates the user has logged.
func (db *DB) CountLogsByUser(ctx context.Context, userID string) (int64, error) {
	if db == nil || db.conn == nil {
		return 0, ErrNotInitialized
	}

	start := time.Now()
	var count int64
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM logs WHERE user_id = ?`, userID).Scan(&count)
	metrics.RecordDBQuery("count_logs", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count logs: %w", err)
	}
	return count, nil
}

// ignoreNotFound keeps expected miss lookups out of the error metrics.
func ignoreNotFound(err error) error {
	if err == ErrNotFound {
		return nil
	}
	return err
}
