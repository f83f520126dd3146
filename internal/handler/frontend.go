// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers for the public site.
package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/fcbrooklyn/fcsite/internal/content"
	"github.com/fcbrooklyn/fcsite/internal/render"
)

// homeEventPreviewCount caps the upcoming-events feed on the home page.
const homeEventPreviewCount = 3

// Frontend serves the public pages. Each page composes the content kinds
// it needs with concurrent gateway reads; the gateway contract guarantees
// every read succeeds, so composition never errors.
type Frontend struct {
	content  content.Provider
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewFrontend creates the frontend handler.
func NewFrontend(provider content.Provider, renderer *render.Renderer, logger *slog.Logger) *Frontend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Frontend{content: provider, renderer: renderer, logger: logger}
}

// basePage carries the fields every template needs.
type basePage struct {
	Title    string
	Path     string
	Settings content.SiteSettings
}

type homePage struct {
	basePage
	Events       []content.Event
	Programs     []content.Program
	Testimonials []content.Testimonial
	Stats        []content.Stat
	Gallery      []content.GalleryItem
}

type eventsPage struct {
	basePage
	Events []content.Event
}

type donatePage struct {
	basePage
	Impacts []content.DonateImpact
}

type contactPage struct {
	basePage
	Contacts []content.ContactPerson
}

type involvedPage struct {
	basePage
	Roles []content.InvolvementRole
}

// fetch runs each collector concurrently and waits for all of them.
// Content reads are independent; one kind falling back to defaults does
// not affect the others.
func fetch(collectors ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(collectors))
	for _, collect := range collectors {
		go func() {
			defer wg.Done()
			collect()
		}()
	}
	wg.Wait()
}

// Home renders the landing page.
func (h *Frontend) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := homePage{}

	fetch(
		func() { page.Settings = h.content.SiteSettings(ctx) },
		func() { page.Events = h.content.UpcomingEvents(ctx) },
		func() { page.Programs = h.content.Programs(ctx) },
		func() { page.Testimonials = h.content.Testimonials(ctx) },
		func() { page.Stats = h.content.Stats(ctx) },
		func() { page.Gallery = h.content.Gallery(ctx) },
	)

	if len(page.Events) > homeEventPreviewCount {
		page.Events = page.Events[:homeEventPreviewCount]
	}
	page.basePage = basePage{
		Title:    page.Settings.OrgName,
		Path:     r.URL.Path,
		Settings: page.Settings,
	}

	h.render(w, "home", page)
}

// Events renders the full upcoming-events listing.
func (h *Frontend) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := eventsPage{}

	fetch(
		func() { page.Settings = h.content.SiteSettings(ctx) },
		func() { page.Events = h.content.UpcomingEvents(ctx) },
	)
	page.Title = "Events | " + page.Settings.OrgName
	page.Path = r.URL.Path

	h.render(w, "events", page)
}

// Donate renders the donation page. The actual donation flow is an
// external form; this page only presents amounts and impact lines.
func (h *Frontend) Donate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := donatePage{}

	fetch(
		func() { page.Settings = h.content.SiteSettings(ctx) },
		func() { page.Impacts = h.content.DonateImpacts(ctx) },
	)
	page.Title = "Donate | " + page.Settings.OrgName
	page.Path = r.URL.Path

	h.render(w, "donate", page)
}

// Contact renders the contact directory.
func (h *Frontend) Contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := contactPage{}

	fetch(
		func() { page.Settings = h.content.SiteSettings(ctx) },
		func() { page.Contacts = h.content.Contacts(ctx) },
	)
	page.Title = "Contact | " + page.Settings.OrgName
	page.Path = r.URL.Path

	h.render(w, "contact", page)
}

// GetInvolved renders the volunteer/enroll/sponsor roles.
func (h *Frontend) GetInvolved(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := involvedPage{}

	fetch(
		func() { page.Settings = h.content.SiteSettings(ctx) },
		func() { page.Roles = h.content.InvolvementRoles(ctx) },
	)
	page.Title = "Get Involved | " + page.Settings.OrgName
	page.Path = r.URL.Path

	h.render(w, "get_involved", page)
}

func (h *Frontend) render(w http.ResponseWriter, name string, data any) {
	if err := h.renderer.Render(w, name, data); err != nil {
		h.logger.Error("rendering page failed", "page", name, "error", err)
	}
}
