// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"strings"
	"time"
)

// Priority bounds for a shortage request. The boundary validates the range;
// the service stores whatever it is handed.
const (
	MinPriority = 1
	MaxPriority = 10
)

// Room identifies where a shortage was noticed. Rooms serialize by name so
// stored data survives reordering of the member list.
type Room string

const (
	RoomMeetingRoom Room = "MeetingRoom"
	RoomKitchen     Room = "Kitchen"
	RoomBathroom    Room = "Bathroom"
)

// Category classifies the missing resource.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFood        Category = "Food"
	CategoryOther       Category = "Other"
)

// ParseRoom matches a room name case-insensitively.
func ParseRoom(s string) (Room, error) {
	for _, r := range []Room{RoomMeetingRoom, RoomKitchen, RoomBathroom} {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown room %q (want MeetingRoom, Kitchen or Bathroom)", s)
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range []Category{CategoryElectronics, CategoryFood, CategoryOther} {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (want Electronics, Food or Other)", s)
}

// Domain types

// ShortageRequest is a reported lack of a resource in a room. At most one
// request exists per (title, room) pair, compared case-insensitively; the
// service enforces this through its create-or-upgrade rule.
type ShortageRequest struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Requester string    `json:"name"`
	Room      Room      `json:"room"`
	Category  Category  `json:"category"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"createdOn"`
}

// User is the caller's self-declared identity. Never persisted; supplied
// fresh on every service call.
type User struct {
	Name  string
	Admin bool
}

// Filter carries optional list criteria. A zero field means no constraint on
// that dimension. From and To bound the creation date inclusively and are
// compared by calendar date, not time of day.
type Filter struct {
	TitleContains string
	From          *time.Time
	To            *time.Time
	Room          Room
	Category      Category
}
