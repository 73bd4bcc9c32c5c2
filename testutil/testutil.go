// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lowstock/lowstock/models"
	"github.com/lowstock/lowstock/storage"
)

// TempFileStore opens a JSON file store under a per-test temp directory.
func TempFileStore(t *testing.T) *storage.FileStore {
	t.Helper()
	return storage.OpenFile(filepath.Join(t.TempDir(), "lowstock.json"))
}

// TempSQLiteStore opens a SQLite store under a per-test temp directory and
// closes it when the test ends.
func TempSQLiteStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()

	s, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "lowstock.db"))
	if err != nil {
		t.Fatalf("Failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// StoredRequest builds a request in persisted shape: fresh ID, given
// creation time. Use for seeding a store directly.
func StoredRequest(title, requester string, room models.Room, category models.Category, priority int, createdAt time.Time) models.ShortageRequest {
	return models.ShortageRequest{
		ID:        uuid.NewString(),
		Title:     title,
		Requester: requester,
		Room:      room,
		Category:  category,
		Priority:  priority,
		CreatedAt: createdAt,
	}
}

// Submission builds a request the way the boundary hands one to the
// service: no ID, no creation time.
func Submission(title, requester string, room models.Room, category models.Category, priority int) models.ShortageRequest {
	return models.ShortageRequest{
		Title:     title,
		Requester: requester,
		Room:      room,
		Category:  category,
		Priority:  priority,
	}
}
