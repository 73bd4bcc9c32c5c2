// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared by every other package.

# Shortage Requests

ShortageRequest is the central record: who reported a missing resource,
where, how urgent, and when. IDs are assigned by the service at creation and
never change. The (title, room) pair is the dedup key: case-insensitive on
title, exact on room.

# Enums

Room and Category are typed strings with a closed member set:

	room, err := models.ParseRoom("kitchen")     // RoomKitchen
	cat, err := models.ParseCategory("food")     // CategoryFood

Members serialize by name (they are their names), so persisted data stays
readable if the member list is ever reordered.

# Users and Filters

User is a transient, self-declared identity: a display name plus an
administrator flag. It is passed into every service call and never stored.

Filter collects optional list criteria. Leave a field at its zero value to
skip that dimension. Date bounds are inclusive and compared by calendar date.
*/
package models
