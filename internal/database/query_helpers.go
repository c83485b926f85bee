// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package database

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// scanFunc scans a single row into a result type.
type scanFunc[T any] func(*sql.Rows) (T, error)

// queryAndScan executes a query and scans all rows using the provided scan
// function.
func queryAndScan[T any](ctx context.Context, db *sql.DB, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	return results, rows.Err()
}

// queryOne executes a query expected to match at most one row. It maps
// sql.ErrNoRows to ErrNotFound.
func queryOne[T any](ctx context.Context, db *sql.DB, query string, args []interface{}, scan scanFunc[T]) (T, error) {
	var zero T

	results, err := queryAndScan(ctx, db, query, args, scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	if len(results) == 0 {
		return zero, ErrNotFound
	}
	return results[0], nil
}

// toNanos normalizes timestamps into nanosecond precision for storage.
// Nanosecond resolution makes the value bound into an upsert effectively
// unique per call, which create detection relies on.
func toNanos(value time.Time) int64 {
	return value.UTC().UnixNano()
}

// fromNanos restores the stored timestamp with UTC normalization.
func fromNanos(value int64) time.Time {
	return time.Unix(0, value).UTC()
}
