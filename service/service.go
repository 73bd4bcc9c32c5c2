// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lowstock/lowstock/models"
	"github.com/lowstock/lowstock/storage"
)

// Business-rule rejections. Expected outcomes, never fatal; check with
// errors.Is.
var (
	ErrDuplicate = errors.New("a request for this resource already exists with equal or higher priority")
	ErrNotFound  = errors.New("request not found")
	ErrForbidden = errors.New("not allowed to delete this request")
)

// Outcome reports how Create resolved a submission.
type Outcome string

const (
	OutcomeCreated  Outcome = "created"
	OutcomeUpgraded Outcome = "upgraded"
)

// Service enforces the business rules on top of a Store. It holds no state
// of its own: every call re-reads the store, which stays the single source
// of truth.
type Service struct {
	store storage.Store
}

func New(store storage.Store) *Service {
	return &Service{store: store}
}

// Create registers a shortage, deduplicating on the (title, room) pair.
// Title comparison is case-insensitive, room is exact. A submission that
// matches an existing request wins only with strictly higher priority: the
// existing record keeps its ID but takes the new priority, requester,
// category and a fresh creation time. Equal or lower priority is rejected
// with ErrDuplicate and changes nothing.
func (s *Service) Create(req models.ShortageRequest, user models.User) (models.ShortageRequest, Outcome, error) {
	for _, existing := range s.store.GetAll() {
		if !strings.EqualFold(existing.Title, req.Title) || existing.Room != req.Room {
			continue
		}

		if req.Priority <= existing.Priority {
			return models.ShortageRequest{}, "", ErrDuplicate
		}

		existing.Priority = req.Priority
		existing.Requester = req.Requester
		existing.Category = req.Category
		existing.CreatedAt = time.Now()
		s.store.Update(existing)

		slog.Info("shortage upgraded",
			"id", existing.ID,
			"title", existing.Title,
			"room", existing.Room,
			"priority", existing.Priority,
			"reported_by", user.Name,
		)
		return existing, OutcomeUpgraded, nil
	}

	req.ID = uuid.NewString()
	req.CreatedAt = time.Now()
	s.store.Save(req)

	slog.Info("shortage created",
		"id", req.ID,
		"title", req.Title,
		"room", req.Room,
		"priority", req.Priority,
		"reported_by", user.Name,
	)
	return req, OutcomeCreated, nil
}

// Delete removes the request with the given id. Administrators may delete
// anything; everyone else only requests whose requester name matches their
// own, case-insensitively.
func (s *Service) Delete(id string, user models.User) error {
	for _, r := range s.store.GetAll() {
		if r.ID != id {
			continue
		}
		if !user.Admin && !strings.EqualFold(r.Requester, user.Name) {
			return ErrForbidden
		}
		s.store.Delete(id)
		slog.Info("shortage deleted", "id", id, "deleted_by", user.Name, "admin", user.Admin)
		return nil
	}
	return ErrNotFound
}

// Filtered returns the requests visible to user, narrowed by filter and
// sorted by descending priority, then most recent first. Non-admins only
// see their own requests. A nil filter means no narrowing.
func (s *Service) Filtered(user models.User, filter *models.Filter) []models.ShortageRequest {
	all := s.store.GetAll()

	visible := make([]models.ShortageRequest, 0, len(all))
	for _, r := range all {
		if !user.Admin && !strings.EqualFold(r.Requester, user.Name) {
			continue
		}
		if filter != nil && !matches(*filter, r) {
			continue
		}
		visible = append(visible, r)
	}

	// Stable, so equal keys keep store order.
	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].Priority != visible[j].Priority {
			return visible[i].Priority > visible[j].Priority
		}
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible
}

func matches(f models.Filter, r models.ShortageRequest) bool {
	if f.TitleContains != "" &&
		!strings.Contains(strings.ToLower(r.Title), strings.ToLower(f.TitleContains)) {
		return false
	}
	if f.From != nil && dateOf(r.CreatedAt).Before(dateOf(*f.From)) {
		return false
	}
	if f.To != nil && dateOf(r.CreatedAt).After(dateOf(*f.To)) {
		return false
	}
	if f.Room != "" && r.Room != f.Room {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	return true
}

// dateOf drops the time of day; range bounds are inclusive calendar dates.
// Normalized to UTC so a bound and a record carrying different zones still
// compare by calendar components alone.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
