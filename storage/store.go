// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import "github.com/lowstock/lowstock/models"

// Store is the durable collection of shortage requests, keyed by id.
//
// Operations never return errors: persistence trouble is logged and the
// store degrades to best-effort in-memory state. A failed load yields an
// empty collection; a failed write leaves memory correct and the durable
// medium stale. Appropriate for a single-user desk tool, not a transactional
// guarantee.
type Store interface {
	// GetAll returns an independent copy of every request. Mutating the
	// result never touches persisted state.
	GetAll() []models.ShortageRequest

	// Save appends a new request and writes it through.
	Save(r models.ShortageRequest)

	// Update replaces the stored request with the same ID. No-op when the
	// ID is unknown.
	Update(r models.ShortageRequest)

	// Delete removes the request with that ID. No-op when absent.
	Delete(id string)

	// Flush rewrites the full collection to the durable medium.
	Flush()
}
