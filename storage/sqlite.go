// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lowstock/lowstock/models"
)

// SQLiteStore is the alternate durable medium: a local, in-process SQLite
// database. Every operation writes through immediately, so the usual flush
// step has nothing left to do.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures
// the schema exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) GetAll() []models.ShortageRequest {
	rows, err := s.db.Query(`
		SELECT id, title, name, room, category, priority, created_on
		FROM shortage_request
		ORDER BY rowid
	`)
	if err != nil {
		slog.Error("failed to query requests", "error", err)
		return nil
	}
	defer rows.Close()

	var requests []models.ShortageRequest
	for rows.Next() {
		var r models.ShortageRequest
		var createdOn string
		if err := rows.Scan(&r.ID, &r.Title, &r.Requester, &r.Room, &r.Category, &r.Priority, &createdOn); err != nil {
			slog.Error("failed to scan request", "error", err)
			return requests
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdOn)
		if err != nil {
			slog.Error("failed to parse stored timestamp", "id", r.ID, "error", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read requests", "error", err)
	}
	return requests
}

func (s *SQLiteStore) Save(r models.ShortageRequest) {
	_, err := s.db.Exec(`
		INSERT INTO shortage_request (id, title, name, room, category, priority, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.ID, r.Title, r.Requester, string(r.Room), string(r.Category), r.Priority, r.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		slog.Error("failed to insert request", "id", r.ID, "error", err)
	}
}

func (s *SQLiteStore) Update(r models.ShortageRequest) {
	_, err := s.db.Exec(`
		UPDATE shortage_request
		SET title = $1, name = $2, room = $3, category = $4, priority = $5, created_on = $6
		WHERE id = $7
	`, r.Title, r.Requester, string(r.Room), string(r.Category), r.Priority, r.CreatedAt.Format(time.RFC3339Nano), r.ID)
	if err != nil {
		slog.Error("failed to update request", "id", r.ID, "error", err)
	}
}

func (s *SQLiteStore) Delete(id string) {
	_, err := s.db.Exec(`DELETE FROM shortage_request WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete request", "id", id, "error", err)
	}
}

// Flush is a no-op: inserts, updates and deletes are durable as they happen.
func (s *SQLiteStore) Flush() {}

// createSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func createSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Shortage requests; room and category hold enum member names, never
-- ordinals, so rows stay readable across enum reorderings.
CREATE TABLE IF NOT EXISTS shortage_request (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    name TEXT NOT NULL,
    room TEXT NOT NULL,
    category TEXT NOT NULL,
    priority INTEGER NOT NULL,
    created_on TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_shortage_request_room ON shortage_request(room);
`
