// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/lowstock/lowstock/models"
	"github.com/lowstock/lowstock/service"
	"github.com/lowstock/lowstock/testutil"
)

var (
	dana  = models.User{Name: "Dana"}
	lee   = models.User{Name: "Lee"}
	admin = models.User{Name: "Root", Admin: true}
)

func TestCreate_NewRequest(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)

	before := time.Now()
	req, outcome, err := svc.Create(testutil.Submission("Coffee", "Dana", models.RoomKitchen, models.CategoryFood, 3), dana)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if outcome != service.OutcomeCreated {
		t.Errorf("outcome = %q, want %q", outcome, service.OutcomeCreated)
	}
	if req.ID == "" {
		t.Error("expected an assigned ID")
	}
	if req.CreatedAt.Before(before) {
		t.Errorf("CreatedAt %v predates the call", req.CreatedAt)
	}
	if got := store.GetAll(); len(got) != 1 {
		t.Errorf("expected 1 stored request, got %d", len(got))
	}
}

func TestCreate_UpgradesDuplicateWithHigherPriority(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)

	first, _, err := svc.Create(testutil.Submission("Coffee", "Dana", models.RoomKitchen, models.CategoryFood, 3), dana)
	if err != nil {
		t.Fatal(err)
	}

	// Same slot, case-insensitive title, higher priority, different reporter.
	upgraded, outcome, err := svc.Create(testutil.Submission("coffee", "Lee", models.RoomKitchen, models.CategoryOther, 5), lee)
	if err != nil {
		t.Fatalf("upgrade rejected: %v", err)
	}
	if outcome != service.OutcomeUpgraded {
		t.Errorf("outcome = %q, want %q", outcome, service.OutcomeUpgraded)
	}
	if upgraded.ID != first.ID {
		t.Errorf("upgrade must keep the record ID: got %q, want %q", upgraded.ID, first.ID)
	}
	if upgraded.Priority != 5 || upgraded.Requester != "Lee" || upgraded.Category != models.CategoryOther {
		t.Errorf("mutable fields not taken over: %+v", upgraded)
	}
	if upgraded.CreatedAt.Before(first.CreatedAt) {
		t.Error("upgrade must bump CreatedAt")
	}
	if got := store.GetAll(); len(got) != 1 {
		t.Errorf("upgrade must not add a record: got %d", len(got))
	}
}

func TestCreate_RejectsEqualOrLowerPriority(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)

	if _, _, err := svc.Create(testutil.Submission("Coffee", "Dana", models.RoomKitchen, models.CategoryFood, 5), dana); err != nil {
		t.Fatal(err)
	}
	snapshot := store.GetAll()

	for _, priority := range []int{5, 4, 1} {
		_, _, err := svc.Create(testutil.Submission("Coffee", "Lee", models.RoomKitchen, models.CategoryFood, priority), lee)
		if !errors.Is(err, service.ErrDuplicate) {
			t.Errorf("priority %d: expected ErrDuplicate, got %v", priority, err)
		}
	}

	after := store.GetAll()
	if len(after) != len(snapshot) {
		t.Fatalf("rejected create changed the record count: %d != %d", len(after), len(snapshot))
	}
	if after[0] != snapshot[0] {
		t.Errorf("rejected create changed the record: %+v != %+v", after[0], snapshot[0])
	}
}

func TestCreate_SameTitleDifferentRoomIsNotADuplicate(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)

	if _, _, err := svc.Create(testutil.Submission("Paper towels", "Dana", models.RoomKitchen, models.CategoryOther, 5), dana); err != nil {
		t.Fatal(err)
	}
	_, outcome, err := svc.Create(testutil.Submission("Paper towels", "Dana", models.RoomBathroom, models.CategoryOther, 2), dana)
	if err != nil {
		t.Fatalf("different room must not collide: %v", err)
	}
	if outcome != service.OutcomeCreated {
		t.Errorf("outcome = %q, want %q", outcome, service.OutcomeCreated)
	}
	if got := store.GetAll(); len(got) != 2 {
		t.Errorf("expected 2 records, got %d", len(got))
	}
}

// Full slot lifecycle: created at 3, upgraded to 5, then a rejected 2.
func TestCreate_CoffeeScenario(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)

	if _, outcome, err := svc.Create(testutil.Submission("Coffee", "Dana", models.RoomKitchen, models.CategoryFood, 3), dana); err != nil || outcome != service.OutcomeCreated {
		t.Fatalf("step 1: outcome %q err %v", outcome, err)
	}
	if _, outcome, err := svc.Create(testutil.Submission("coffee", "Dana", models.RoomKitchen, models.CategoryFood, 5), dana); err != nil || outcome != service.OutcomeUpgraded {
		t.Fatalf("step 2: outcome %q err %v", outcome, err)
	}
	if _, _, err := svc.Create(testutil.Submission("Coffee", "Dana", models.RoomKitchen, models.CategoryFood, 2), dana); !errors.Is(err, service.ErrDuplicate) {
		t.Fatalf("step 3: expected ErrDuplicate, got %v", err)
	}

	got := store.GetAll()
	if len(got) != 1 || got[0].Priority != 5 {
		t.Errorf("expected a single record at priority 5, got %+v", got)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := service.New(testutil.TempFileStore(t))
	if err := svc.Delete("no-such-id", admin); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_ForbiddenForOtherUsers(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)

	req, _, err := svc.Create(testutil.Submission("Coffee", "Dana", models.RoomKitchen, models.CategoryFood, 3), dana)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(req.ID, lee); !errors.Is(err, service.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if got := store.GetAll(); len(got) != 1 {
		t.Errorf("forbidden delete removed the record")
	}
}

func TestDelete_OwnerMatchIsCaseInsensitive(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)

	req, _, err := svc.Create(testutil.Submission("Coffee", "Dana", models.RoomKitchen, models.CategoryFood, 3), dana)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(req.ID, models.User{Name: "dana"}); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if got := store.GetAll(); len(got) != 0 {
		t.Errorf("expected empty store, got %+v", got)
	}
}

func TestDelete_AdminOverride(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)

	req, _, err := svc.Create(testutil.Submission("Coffee", "Dana", models.RoomKitchen, models.CategoryFood, 3), dana)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(req.ID, admin); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if got := store.GetAll(); len(got) != 0 {
		t.Errorf("expected empty store, got %+v", got)
	}
}

func seedVisibility(t *testing.T, svc *service.Service) {
	t.Helper()
	for _, s := range []struct {
		title     string
		requester string
		user      models.User
	}{
		{"Coffee", "Dana", dana},
		{"Tea", "Lee", lee},
		{"Milk", "dana", models.User{Name: "dana"}},
	} {
		if _, _, err := svc.Create(testutil.Submission(s.title, s.requester, models.RoomKitchen, models.CategoryFood, 3), s.user); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFiltered_NonAdminSeesOnlyOwnRequests(t *testing.T) {
	svc := service.New(testutil.TempFileStore(t))
	seedVisibility(t, svc)

	got := svc.Filtered(dana, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 visible requests, got %d", len(got))
	}
	for _, r := range got {
		if r.Title == "Tea" {
			t.Errorf("Dana must not see Lee's request")
		}
	}
}

func TestFiltered_AdminSeesEverything(t *testing.T) {
	svc := service.New(testutil.TempFileStore(t))
	seedVisibility(t, svc)

	if got := svc.Filtered(admin, nil); len(got) != 3 {
		t.Errorf("expected 3 visible requests, got %d", len(got))
	}
}

func TestFiltered_Predicates(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)

	jan := time.Date(2026, 1, 10, 23, 50, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 20, 0, 5, 0, 0, time.UTC)
	store.Save(testutil.StoredRequest("Coffee beans", "Dana", models.RoomKitchen, models.CategoryFood, 5, jan))
	store.Save(testutil.StoredRequest("HDMI cable", "Dana", models.RoomMeetingRoom, models.CategoryElectronics, 4, feb))
	store.Save(testutil.StoredRequest("Soap", "Dana", models.RoomBathroom, models.CategoryOther, 3, feb))

	cases := []struct {
		name   string
		filter models.Filter
		want   []string
	}{
		{"title substring, case-insensitive", models.Filter{TitleContains: "coffee"}, []string{"Coffee beans"}},
		{"room", models.Filter{Room: models.RoomBathroom}, []string{"Soap"}},
		{"category", models.Filter{Category: models.CategoryElectronics}, []string{"HDMI cable"}},
		{"from bound is an inclusive calendar date", models.Filter{From: datePtr(2026, 1, 10)}, []string{"Coffee beans", "HDMI cable", "Soap"}},
		{"to bound is an inclusive calendar date", models.Filter{To: datePtr(2026, 1, 10)}, []string{"Coffee beans"}},
		{"combined", models.Filter{From: datePtr(2026, 2, 1), Room: models.RoomMeetingRoom}, []string{"HDMI cable"}},
		{"no match", models.Filter{TitleContains: "printer"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.Filtered(admin, &tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d results, want %d: %+v", len(got), len(tc.want), got)
			}
			for i, title := range tc.want {
				if got[i].Title != title {
					t.Errorf("result %d = %q, want %q", i, got[i].Title, title)
				}
			}
		})
	}
}

// Date bounds go by the calendar date a record was created on, even when
// the record's zone and the bound's zone disagree about the instant.
func TestFiltered_DateBoundsIgnoreZoneOffsets(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)

	// 2026-03-01 01:00 at +13:00 is still 2026-02-28 in UTC.
	early := time.Date(2026, 3, 1, 1, 0, 0, 0, time.FixedZone("NZDT", 13*60*60))
	store.Save(testutil.StoredRequest("Coffee", "Dana", models.RoomKitchen, models.CategoryFood, 5, early))

	if got := svc.Filtered(admin, &models.Filter{From: datePtr(2026, 3, 1)}); len(got) != 1 {
		t.Errorf("From on the record's own calendar date must include it, got %d results", len(got))
	}
	if got := svc.Filtered(admin, &models.Filter{To: datePtr(2026, 3, 1)}); len(got) != 1 {
		t.Errorf("To on the record's own calendar date must include it, got %d results", len(got))
	}
	if got := svc.Filtered(admin, &models.Filter{To: datePtr(2026, 2, 28)}); len(got) != 0 {
		t.Errorf("To before the record's calendar date must exclude it, got %d results", len(got))
	}
}

func TestFiltered_Ordering(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)

	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(2 * time.Hour)
	store.Save(testutil.StoredRequest("P3", "Dana", models.RoomKitchen, models.CategoryFood, 3, t1))
	store.Save(testutil.StoredRequest("P7 older", "Dana", models.RoomKitchen, models.CategoryFood, 7, t1))
	store.Save(testutil.StoredRequest("P7 newer", "Dana", models.RoomBathroom, models.CategoryOther, 7, t2))
	store.Save(testutil.StoredRequest("P1", "Dana", models.RoomKitchen, models.CategoryFood, 1, t2))

	got := svc.Filtered(admin, nil)
	want := []string{"P7 newer", "P7 older", "P3", "P1"}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestFiltered_DoesNotMutateStore(t *testing.T) {
	store := testutil.TempFileStore(t)
	svc := service.New(store)
	store.Save(testutil.StoredRequest("Coffee", "Dana", models.RoomKitchen, models.CategoryFood, 5, time.Now()))

	got := svc.Filtered(admin, nil)
	got[0].Title = "mutated"

	if store.GetAll()[0].Title != "Coffee" {
		t.Error("mutating a Filtered result leaked into the store")
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
