// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcbrooklyn/fcsite/internal/content"
	"github.com/fcbrooklyn/fcsite/internal/render"
	"github.com/fcbrooklyn/fcsite/web"
)

// stubProvider serves fixed content so the tests exercise the handlers
// and the real embedded templates, not the gateway.
type stubProvider struct {
	defaults content.Defaults
	events   []content.Event
}

func (s *stubProvider) SiteSettings(_ context.Context) content.SiteSettings {
	return s.defaults.Settings
}
func (s *stubProvider) UpcomingEvents(_ context.Context) []content.Event { return s.events }
func (s *stubProvider) Programs(_ context.Context) []content.Program    { return s.defaults.Programs }
func (s *stubProvider) Contacts(_ context.Context) []content.ContactPerson {
	return s.defaults.Contacts
}
func (s *stubProvider) Gallery(_ context.Context) []content.GalleryItem { return nil }
func (s *stubProvider) Testimonials(_ context.Context) []content.Testimonial {
	return s.defaults.Testimonials
}
func (s *stubProvider) Stats(_ context.Context) []content.Stat { return s.defaults.Stats }
func (s *stubProvider) InvolvementRoles(_ context.Context) []content.InvolvementRole {
	return s.defaults.Roles
}
func (s *stubProvider) DonateImpacts(_ context.Context) []content.DonateImpact {
	return s.defaults.Impacts
}

func newTestFrontend(t *testing.T, provider content.Provider) *Frontend {
	t.Helper()
	renderer, err := render.New(render.Config{TemplatesFS: web.Templates()})
	require.NoError(t, err)
	return NewFrontend(provider, renderer, nil)
}

func defaultsProvider() *stubProvider {
	defaults := content.Builtin()
	return &stubProvider{
		defaults: defaults,
		events:   defaults.Events(time.Now()),
	}
}

func get(t *testing.T, h http.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHome(t *testing.T) {
	provider := defaultsProvider()
	frontend := newTestFrontend(t, provider)

	rec := get(t, frontend.Home, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, provider.defaults.Settings.OrgName)
	assert.Contains(t, body, provider.defaults.Settings.Tagline)
	assert.Contains(t, body, provider.defaults.Programs[0].Title)
	assert.Contains(t, body, provider.defaults.Stats[0].Label)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestHome_EventPreviewIsCapped(t *testing.T) {
	provider := defaultsProvider()
	now := time.Now()
	for i := range 5 {
		provider.events = append(provider.events, content.Event{
			ID:    "extra",
			Title: "Overflow Event",
			Date:  now.AddDate(0, 0, 20+i).Format(time.RFC3339),
			Color: "#E8634A",
		})
	}
	frontend := newTestFrontend(t, provider)

	rec := get(t, frontend.Home, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	got := strings.Count(rec.Body.String(), `class="event-card"`)
	assert.Equal(t, homeEventPreviewCount, got)
}

func TestHome_HidesSectionsPerSettings(t *testing.T) {
	provider := defaultsProvider()
	provider.defaults.Settings.ShowStats = false
	provider.defaults.Settings.ShowTestimonials = false
	frontend := newTestFrontend(t, provider)

	rec := get(t, frontend.Home, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, `class="stats"`)
	assert.NotContains(t, body, `class="testimonial"`)
}

func TestEvents(t *testing.T) {
	provider := defaultsProvider()
	frontend := newTestFrontend(t, provider)

	rec := get(t, frontend.Events, "/events")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, ev := range provider.events {
		assert.Contains(t, body, ev.Title)
	}
}

func TestEvents_EmptyState(t *testing.T) {
	provider := defaultsProvider()
	provider.events = nil
	frontend := newTestFrontend(t, provider)

	rec := get(t, frontend.Events, "/events")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No upcoming events")
}

func TestDonate(t *testing.T) {
	provider := defaultsProvider()
	frontend := newTestFrontend(t, provider)

	rec := get(t, frontend.Donate, "/donate")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, provider.defaults.Settings.DonateHeadline)
	assert.Contains(t, body, "$18")
	assert.Contains(t, body, provider.defaults.Impacts[0].Description)
}

func TestContact_SuppressesAbsentChannels(t *testing.T) {
	provider := defaultsProvider()
	provider.defaults.Contacts = []content.ContactPerson{{
		ID:     "rec1",
		Name:   "Rivka",
		Role:   "Program Director",
		Phone:  "+1 (718) 555-0100",
		Avatar: "👤",
	}}
	frontend := newTestFrontend(t, provider)

	rec := get(t, frontend.Contact, "/contact")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Rivka")
	assert.Contains(t, body, "tel:")
	assert.NotContains(t, body, "wa.me")
	assert.NotContains(t, body, "mailto:Rivka")
}

func TestGetInvolved(t *testing.T) {
	provider := defaultsProvider()
	frontend := newTestFrontend(t, provider)

	rec := get(t, frontend.GetInvolved, "/get-involved")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, role := range provider.defaults.Roles {
		assert.Contains(t, body, role.Title)
		assert.Contains(t, body, role.CTALabel)
	}
}
