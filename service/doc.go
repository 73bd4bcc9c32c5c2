// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service holds the business rules for shortage requests.

The Service is stateless: it re-reads the store on every call and writes
back through it, so the store remains the single source of truth.

# Create or Upgrade

One live request exists per resource slot, the (title, room) pair, with a
case-insensitive title. A second submission for the same slot only succeeds
when it carries strictly higher priority; it then takes over the existing
record (priority, requester, category, fresh creation time) instead of
adding a duplicate. Raising priority is the only way to renew interest, so
duplicates never pile up:

	req, outcome, err := svc.Create(submission, user)
	switch {
	case errors.Is(err, service.ErrDuplicate):
		// equal or lower priority, nothing changed
	case outcome == service.OutcomeUpgraded:
		// existing record took the new values
	case outcome == service.OutcomeCreated:
		// brand new record, ID and CreatedAt assigned
	}

# Deletion

Administrators delete anything. Everyone else deletes only requests whose
requester name equals their own, case-insensitively. Identity is
self-declared; two callers claiming the same display name can delete each
other's requests. That weakness is inherited deliberately; a stable user id
would change observable behavior.

# Retrieval

Filtered applies the caller's visibility (non-admins see only their own
requests), then each present filter field as an AND-combined predicate, and
sorts descending by priority with descending creation time as tie-break.
The sort is stable, so remaining ties keep store order and output is
deterministic.
*/
package service
