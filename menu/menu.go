// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lowstock/lowstock/models"
	"github.com/lowstock/lowstock/service"
)

// Menu drives an interactive session against the service. Input and output
// are plain io interfaces so a session can be scripted in tests.
type Menu struct {
	svc  *service.Service
	in   *bufio.Scanner
	out  io.Writer
	user models.User
	eof  bool
}

// New builds a menu. A user with a non-empty name skips the login prompt.
func New(svc *service.Service, user models.User, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc:  svc,
		in:   bufio.NewScanner(in),
		out:  out,
		user: user,
	}
}

// Run loops until the user quits or input ends.
func (m *Menu) Run() {
	if m.user.Name == "" {
		m.login()
	}

	for !m.eof {
		role := ""
		if m.user.Admin {
			role = " (admin)"
		}
		fmt.Fprintf(m.out, "\n-- %s%s --\n", m.user.Name, role)
		fmt.Fprintln(m.out, "1) Report a shortage")
		fmt.Fprintln(m.out, "2) List shortages")
		fmt.Fprintln(m.out, "3) Delete a shortage")
		fmt.Fprintln(m.out, "4) Switch user")
		fmt.Fprintln(m.out, "5) Quit")

		switch m.prompt("> ") {
		case "1":
			m.report()
		case "2":
			m.list()
		case "3":
			m.remove()
		case "4":
			m.login()
		case "5", "q", "quit":
			fmt.Fprintln(m.out, "Bye.")
			return
		case "":
			// fall through to the eof check
		default:
			fmt.Fprintln(m.out, "Unknown choice.")
		}
	}
}

// prompt prints a label and reads one trimmed line. Returns "" once input
// is exhausted.
func (m *Menu) prompt(label string) string {
	if m.eof {
		return ""
	}
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		m.eof = true
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *Menu) login() {
	for !m.eof {
		name := m.prompt("Your name: ")
		if name != "" {
			m.user.Name = name
			break
		}
		fmt.Fprintln(m.out, "A name is required.")
	}
	m.user.Admin = strings.EqualFold(m.prompt("Administrator? (y/N): "), "y")
}

func (m *Menu) report() {
	title := m.prompt("Title: ")
	if title == "" {
		fmt.Fprintln(m.out, "A title is required.")
		return
	}

	room, err := models.ParseRoom(m.prompt("Room (MeetingRoom/Kitchen/Bathroom): "))
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	category, err := models.ParseCategory(m.prompt("Category (Electronics/Food/Other): "))
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}

	priority, err := strconv.Atoi(m.prompt(fmt.Sprintf("Priority (%d-%d): ", models.MinPriority, models.MaxPriority)))
	if err != nil || priority < models.MinPriority || priority > models.MaxPriority {
		fmt.Fprintf(m.out, "Priority must be a number between %d and %d.\n", models.MinPriority, models.MaxPriority)
		return
	}

	req := models.ShortageRequest{
		Title:     title,
		Requester: m.user.Name,
		Room:      room,
		Category:  category,
		Priority:  priority,
	}
	stored, outcome, err := m.svc.Create(req, m.user)
	switch {
	case errors.Is(err, service.ErrDuplicate):
		fmt.Fprintf(m.out, "Not recorded: %v.\n", err)
	case outcome == service.OutcomeUpgraded:
		fmt.Fprintf(m.out, "Upgraded existing request %s to priority %d.\n", stored.ID, stored.Priority)
	default:
		fmt.Fprintf(m.out, "Created request %s.\n", stored.ID)
	}
}

func (m *Menu) list() {
	var filter *models.Filter
	if strings.EqualFold(m.prompt("Filter results? (y/N): "), "y") {
		filter = m.promptFilter()
	}

	rows := m.svc.Filtered(m.user, filter)
	if len(rows) == 0 {
		fmt.Fprintln(m.out, "No requests found.")
		return
	}

	fmt.Fprintf(m.out, "%-36s  %-24s  %-12s  %-12s  %-12s  %8s  %s\n",
		"ID", "TITLE", "ROOM", "CATEGORY", "REQUESTER", "PRIORITY", "CREATED")
	for _, r := range rows {
		fmt.Fprintf(m.out, "%-36s  %-24s  %-12s  %-12s  %-12s  %8d  %s\n",
			r.ID, r.Title, r.Room, r.Category, r.Requester, r.Priority, humanize.Time(r.CreatedAt))
	}
}

// promptFilter reads the optional criteria; a blank answer skips that
// dimension. Bad dates and enum names are reported and skipped rather than
// aborting the listing.
func (m *Menu) promptFilter() *models.Filter {
	var f models.Filter

	f.TitleContains = m.prompt("Title contains (blank to skip): ")

	if s := m.prompt("Created from, YYYY-MM-DD (blank to skip): "); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			f.From = &t
		} else {
			fmt.Fprintf(m.out, "Ignoring invalid date %q.\n", s)
		}
	}
	if s := m.prompt("Created to, YYYY-MM-DD (blank to skip): "); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			f.To = &t
		} else {
			fmt.Fprintf(m.out, "Ignoring invalid date %q.\n", s)
		}
	}

	if s := m.prompt("Room (blank to skip): "); s != "" {
		if room, err := models.ParseRoom(s); err == nil {
			f.Room = room
		} else {
			fmt.Fprintf(m.out, "Ignoring: %v.\n", err)
		}
	}
	if s := m.prompt("Category (blank to skip): "); s != "" {
		if category, err := models.ParseCategory(s); err == nil {
			f.Category = category
		} else {
			fmt.Fprintf(m.out, "Ignoring: %v.\n", err)
		}
	}

	return &f
}

func (m *Menu) remove() {
	id := m.prompt("Request id: ")
	if id == "" {
		fmt.Fprintln(m.out, "An id is required.")
		return
	}

	err := m.svc.Delete(id, m.user)
	switch {
	case errors.Is(err, service.ErrNotFound):
		fmt.Fprintln(m.out, "No request with that id.")
	case errors.Is(err, service.ErrForbidden):
		fmt.Fprintln(m.out, "You may only delete your own requests.")
	case err == nil:
		fmt.Fprintln(m.out, "Deleted.")
	default:
		fmt.Fprintf(m.out, "Delete failed: %v.\n", err)
	}
}
