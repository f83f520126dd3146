// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcbrooklyn/fcsite/internal/airtable"
)

// fixedNow pins the gateway clock so upcoming-events cutoffs and fallback
// event dates are deterministic.
var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type rec = map[string]any

// newStoreGateway builds a gateway backed by a fake Airtable server that
// serves the given records per table. Tables not in the map return an
// empty record list.
func newStoreGateway(t *testing.T, tables map[string][]rec) (*Gateway, *requestLog) {
	t.Helper()

	log := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		table := r.URL.Path[len("/appTEST/"):]
		records, ok := tables[table]
		if !ok {
			records = []rec{}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"records": records})
	}))
	t.Cleanup(srv.Close)

	client := airtable.New("key", "appTEST", airtable.WithBaseURL(srv.URL), airtable.WithHTTPClient(srv.Client()))
	gw := New(client, DefaultTables(), Builtin(), slog.New(slog.DiscardHandler)).
		WithClock(func() time.Time { return fixedNow })
	return gw, log
}

type requestLog struct {
	requests []*http.Request
}

func (l *requestLog) add(r *http.Request) {
	clone := r.Clone(r.Context())
	l.requests = append(l.requests, clone)
}

func newOfflineGateway() *Gateway {
	return New(nil, DefaultTables(), Builtin(), slog.New(slog.DiscardHandler)).
		WithClock(func() time.Time { return fixedNow })
}

func newFailingGateway(t *testing.T) *Gateway {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"INTERNAL"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	client := airtable.New("key", "appTEST", airtable.WithBaseURL(srv.URL), airtable.WithHTTPClient(srv.Client()))
	return New(client, DefaultTables(), Builtin(), slog.New(slog.DiscardHandler)).
		WithClock(func() time.Time { return fixedNow })
}

func TestUnconfiguredStoreServesDefaults(t *testing.T) {
	gw := newOfflineGateway()
	ctx := context.Background()
	def := Builtin()

	assert.Equal(t, def.Settings, gw.SiteSettings(ctx))
	assert.Equal(t, def.Programs, gw.Programs(ctx))
	assert.Equal(t, def.Contacts, gw.Contacts(ctx))
	assert.Equal(t, def.Testimonials, gw.Testimonials(ctx))
	assert.Equal(t, def.Stats, gw.Stats(ctx))
	assert.Equal(t, def.Roles, gw.InvolvementRoles(ctx))
	assert.Equal(t, def.Impacts, gw.DonateImpacts(ctx))
	assert.Equal(t, def.Events(fixedNow), gw.UpcomingEvents(ctx))
	assert.Empty(t, gw.Gallery(ctx))
}

func TestStoreFailureServesDefaults(t *testing.T) {
	gw := newFailingGateway(t)
	ctx := context.Background()
	def := Builtin()

	assert.Equal(t, def.Settings, gw.SiteSettings(ctx))
	assert.Equal(t, def.Stats, gw.Stats(ctx))
	assert.Equal(t, def.Events(fixedNow), gw.UpcomingEvents(ctx))
	assert.Empty(t, gw.Gallery(ctx))
}

func TestEmptyStoreAsymmetry(t *testing.T) {
	// Store reachable but all tables empty: Events and Gallery stay
	// empty, every other collection substitutes the full default set.
	gw, _ := newStoreGateway(t, map[string][]rec{})
	ctx := context.Background()
	def := Builtin()

	assert.Empty(t, gw.UpcomingEvents(ctx))
	assert.Empty(t, gw.Gallery(ctx))
	assert.Equal(t, def.Programs, gw.Programs(ctx))
	assert.Equal(t, def.Testimonials, gw.Testimonials(ctx))
	assert.Equal(t, def.Stats, gw.Stats(ctx))
	assert.Equal(t, def.Roles, gw.InvolvementRoles(ctx))
	assert.Equal(t, def.Impacts, gw.DonateImpacts(ctx))
}

func TestUpcomingEventsQueryContract(t *testing.T) {
	// The published+future predicate and the start-time sort are pushed
	// into the store's query facility.
	gw, log := newStoreGateway(t, map[string][]rec{
		"Events": {
			{"id": "rec3", "fields": rec{"Name": "Soonest", "Date": fixedNow.Add(3 * 24 * time.Hour).Format(time.RFC3339)}},
			{"id": "rec20", "fields": rec{"Name": "Later", "Date": fixedNow.Add(20 * 24 * time.Hour).Format(time.RFC3339)}},
		},
	})

	events := gw.UpcomingEvents(context.Background())

	require.Len(t, events, 2)
	assert.Equal(t, "Soonest", events[0].Title)
	assert.Equal(t, "Later", events[1].Title)

	require.Len(t, log.requests, 1)
	q := log.requests[0].URL.Query()
	wantFormula := fmt.Sprintf(`AND({Status} = "Published", IS_AFTER({Date}, "%s"))`,
		fixedNow.UTC().Format(time.RFC3339))
	assert.Equal(t, wantFormula, q.Get("filterByFormula"))
	assert.Equal(t, "Date", q.Get("sort[0][field]"))
	assert.Equal(t, "asc", q.Get("sort[0][direction]"))
}

func TestEventFieldNormalization(t *testing.T) {
	gw, _ := newStoreGateway(t, map[string][]rec{
		"Events": {
			{"id": "rec1", "fields": rec{
				"Name":      "Purim Carnival",
				"Date":      "2026-03-03T18:00:00Z",
				"Image URL": "https://www.dropbox.com/s/abc/x.jpg?dl=0",
				"Tags":      []any{"Holiday", "Carnival"},
			}},
			{"id": "rec2", "fields": rec{"Name": "Bare Event", "Date": "2026-03-05T18:00:00Z"}},
		},
	})

	events := gw.UpcomingEvents(context.Background())
	require.Len(t, events, 2)

	full := events[0]
	assert.Equal(t, "https://www.dropbox.com/s/abc/x.jpg?raw=1", full.ImageURL)
	assert.Equal(t, []string{"Holiday", "Carnival"}, full.Tags)
	assert.Equal(t, "Published", full.Status)

	// Every field populated even when the source row is nearly empty.
	bare := events[1]
	assert.Equal(t, "#E8634A", bare.Color)
	assert.NotNil(t, bare.Tags)
	assert.Empty(t, bare.Tags)
	assert.Equal(t, "", bare.Description)
	assert.Equal(t, "", bare.ImageURL)
}

func TestProgramsMappingAndOrder(t *testing.T) {
	gw, log := newStoreGateway(t, map[string][]rec{
		"Programs": {
			{"id": "recA", "fields": rec{"Name": "Summer Camp", "Order": 1, "Color": "#F39C12"}},
			{"id": "recB", "fields": rec{"Name": "Family Support", "Order": 2}},
		},
	})

	programs := gw.Programs(context.Background())
	require.Len(t, programs, 2)
	assert.Equal(t, "Summer Camp", programs[0].Title)
	assert.Equal(t, 1, programs[0].Order)
	assert.Equal(t, "🤝", programs[1].Icon)
	assert.Equal(t, "#E8634A", programs[1].Color)

	q := log.requests[0].URL.Query()
	assert.Equal(t, "Order", q.Get("sort[0][field]"))
	assert.Equal(t, "asc", q.Get("sort[0][direction]"))
}

func TestContactsAbsentChannelsStayEmpty(t *testing.T) {
	gw, _ := newStoreGateway(t, map[string][]rec{
		"Contacts": {
			{"id": "rec1", "fields": rec{"Name": "Sarah Goldman", "Role": "Program Director", "Email": "sarah@fcbrooklyn.org"}},
		},
	})

	contacts := gw.Contacts(context.Background())
	require.Len(t, contacts, 1)
	c := contacts[0]
	assert.Equal(t, "", c.Phone)
	assert.Equal(t, "", c.WhatsApp)
	assert.Equal(t, "sarah@fcbrooklyn.org", c.Email)
	assert.Equal(t, "👤", c.Avatar)
}

func TestSiteSettingsMerge(t *testing.T) {
	gw, log := newStoreGateway(t, map[string][]rec{
		"Site Settings": {
			{"id": "rec1", "fields": rec{
				"Org Name":       "FC Brooklyn",
				"Events Layout":  "Grid",
				"Show Stats":     false, // explicitly unchecked: must stay false
				"Donate Amounts": "18, 36,,abc,180",
			}},
		},
	})

	s := gw.SiteSettings(context.Background())
	def := Builtin().Settings

	assert.Equal(t, "FC Brooklyn", s.OrgName)
	assert.Equal(t, def.Tagline, s.Tagline, "absent field falls back")
	assert.Equal(t, LayoutGrid, s.EventsLayout, "layout value lowercased")
	assert.Equal(t, def.ProgramsLayout, s.ProgramsLayout)

	assert.False(t, s.ShowStats, "present-but-false must not fall back")
	assert.True(t, s.ShowGallery, "absent flag takes default")
	assert.True(t, s.ShowTestimonials)

	assert.Equal(t, []int{18, 36, 180}, s.DonateAmounts)
	assert.Equal(t, "", s.DonateURL, "builtin donate URL default is empty")

	q := log.requests[0].URL.Query()
	assert.Equal(t, "1", q.Get("maxRecords"), "settings is a singleton read")
}

func TestSiteSettingsEmptyTableServesDefaults(t *testing.T) {
	gw, _ := newStoreGateway(t, map[string][]rec{"Site Settings": {}})
	assert.Equal(t, Builtin().Settings, gw.SiteSettings(context.Background()))
}

func TestParseDonateAmounts(t *testing.T) {
	fallback := []int{18, 36, 72}

	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"mixed valid and invalid", "18, 36,,abc,180", []int{18, 36, 180}},
		{"no valid tokens", "abc,def", fallback},
		{"empty input", "", fallback},
		{"all valid", "5,10", []int{5, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDonateAmounts(tt.in, fallback))
		})
	}
}

func TestParseLayout(t *testing.T) {
	assert.Equal(t, LayoutGrid, ParseLayout("grid", LayoutFeed))
	assert.Equal(t, LayoutGrid, ParseLayout("  GRID ", LayoutFeed))
	assert.Equal(t, LayoutFeed, ParseLayout("", LayoutFeed))
	assert.Equal(t, LayoutGrid, ParseLayout("carousel", LayoutGrid))
}

func TestRetrievalIsIdempotent(t *testing.T) {
	gw, _ := newStoreGateway(t, map[string][]rec{
		"Stats": {
			{"id": "rec1", "fields": rec{"Number": "350+", "Label": "Children Served", "Order": 1}},
		},
	})
	ctx := context.Background()

	first := gw.Stats(ctx)
	second := gw.Stats(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("consecutive reads differ: %+v vs %+v", first, second)
	}
}

func TestAlternateDefaultsAreHonored(t *testing.T) {
	custom := Builtin()
	custom.Stats = []Stat{{ID: "x", Number: "1", Label: "Test", Order: 1}}

	gw := New(nil, DefaultTables(), custom, slog.New(slog.DiscardHandler))
	assert.Equal(t, custom.Stats, gw.Stats(context.Background()))
}
