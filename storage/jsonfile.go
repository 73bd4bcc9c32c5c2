// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/lowstock/lowstock/models"
)

// FileStore keeps the whole collection in memory and mirrors it to a single
// JSON document on every write. The document is one array of records with
// enum members spelled by name, so it stays hand-readable and survives enum
// reordering.
type FileStore struct {
	path     string
	requests []models.ShortageRequest
}

// OpenFile loads the collection at path. A missing file means a fresh,
// empty store; an unreadable or malformed file is logged and likewise
// yields an empty store.
func OpenFile(path string) *FileStore {
	s := &FileStore{path: path}
	s.load()
	return s
}

func (s *FileStore) load() {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		slog.Error("failed to read data file", "path", s.path, "error", err)
		return
	}

	var requests []models.ShortageRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		slog.Error("failed to decode data file", "path", s.path, "error", err)
		return
	}
	s.requests = requests
}

func (s *FileStore) GetAll() []models.ShortageRequest {
	out := make([]models.ShortageRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *FileStore) Save(r models.ShortageRequest) {
	s.requests = append(s.requests, r)
	s.Flush()
}

func (s *FileStore) Update(r models.ShortageRequest) {
	for i := range s.requests {
		if s.requests[i].ID == r.ID {
			s.requests[i] = r
			s.Flush()
			return
		}
	}
}

func (s *FileStore) Delete(id string) {
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			s.Flush()
			return
		}
	}
}

// Flush overwrites the document with the current collection.
func (s *FileStore) Flush() {
	data, err := json.MarshalIndent(s.requests, "", "  ")
	if err != nil {
		slog.Error("failed to encode data file", "path", s.path, "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		slog.Error("failed to write data file", "path", s.path, "error", err)
	}
}
