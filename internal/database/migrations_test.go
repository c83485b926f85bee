// GymTrack - Personal Fitness Tracking Backend
// Copyright 2026 GymTrack contributors
// SPDX-License-Identifier: MIT
// https://github.com/gymtrack/gymtrack

package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gymtrack/gymtrack/internal/config"
	"github.com/gymtrack/gymtrack/internal/models"
)

func TestMigrations_AppliedOnce(t *testing.T) {
	t.Parallel()

	cfg := &config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "migrate.db"),
		BusyTimeout: time.Second,
	}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	version, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() error = %v", err)
	}
	want := db.getMigrations()[len(db.getMigrations())-1].Version
	if version != want {
		t.Errorf("SchemaVersion() = %d, want %d", version, want)
	}

	stored, _, err := db.UpsertLogByDate(context.Background(), &models.Log{UserID: "user-1", Date: "2026-08-07"})
	if err != nil {
		t.Fatalf("UpsertLogByDate() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopening the same file must not reapply migrations or lose data.
	reopened, err := New(cfg)
	if err != nil {
		t.Fatalf("New() on existing file error = %v", err)
	}
	defer reopened.Close()

	version, err = reopened.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() after reopen error = %v", err)
	}
	if version != want {
		t.Errorf("SchemaVersion() after reopen = %d, want %d", version, want)
	}

	got, err := reopened.GetLogByID(context.Background(), "user-1", stored.ID)
	if err != nil {
		t.Fatalf("GetLogByID() after reopen error = %v", err)
	}
	if got.Date != "2026-08-07" {
		t.Errorf("GetLogByID() Date = %s, want 2026-08-07", got.Date)
	}
}

func TestNew_AppliesPragmas(t *testing.T) {
	t.Parallel()

	cfg := &config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "pragma.db"),
		BusyTimeout: 3 * time.Second,
	}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	var journalMode string
	if err := db.Conn().QueryRowContext(ctx, `PRAGMA journal_mode`).Scan(&journalMode); err != nil {
		t.Fatalf("PRAGMA journal_mode error = %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("journal_mode = %q, want wal", journalMode)
	}

	var busyTimeout int64
	if err := db.Conn().QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&busyTimeout); err != nil {
		t.Fatalf("PRAGMA busy_timeout error = %v", err)
	}
	if busyTimeout != 3000 {
		t.Errorf("busy_timeout = %d, want 3000", busyTimeout)
	}

	var foreignKeys int64
	if err := db.Conn().QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&foreignKeys); err != nil {
		t.Fatalf("PRAGMA foreign_keys error = %v", err)
	}
	if foreignKeys != 1 {
		t.Errorf("foreign_keys = %d, want 1", foreignKeys)
	}
}

func TestNew_RejectsEmptyPath(t *testing.T) {
	t.Parallel()

	if _, err := New(&config.DatabaseConfig{Path: "  "}); err == nil {
		t.Error("New() with blank path: error = nil, want error")
	}
	if _, err := New(nil); err == nil {
		t.Error("New(nil) error = nil, want error")
	}
}
