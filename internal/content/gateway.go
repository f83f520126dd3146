// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/fcbrooklyn/fcsite/internal/airtable"
	"github.com/fcbrooklyn/fcsite/internal/util"
)

// Per-field defaults applied during normalization.
const (
	defaultAccentColor = "#E8634A"
	defaultIcon        = "🤝"
	defaultAvatar      = "👤"
	defaultCTALabel    = "Learn More"
)

// Tables maps each content kind to its Airtable table name.
type Tables struct {
	Settings     string
	Events       string
	Programs     string
	Contacts     string
	Gallery      string
	Testimonials string
	Stats        string
	Involved     string
	Donate       string
}

// DefaultTables returns the stock table names.
func DefaultTables() Tables {
	return Tables{
		Settings:     "Site Settings",
		Events:       "Events",
		Programs:     "Programs",
		Contacts:     "Contacts",
		Gallery:      "Gallery",
		Testimonials: "Testimonials",
		Stats:        "Stats",
		Involved:     "Get Involved",
		Donate:       "Donate Impact",
	}
}

// Provider is the retrieval contract consumed by the rendering layer.
// Every operation is total: it always returns a fully-populated result,
// substituting defaults on any failure, and never returns an error.
type Provider interface {
	SiteSettings(ctx context.Context) SiteSettings
	UpcomingEvents(ctx context.Context) []Event
	Programs(ctx context.Context) []Program
	Contacts(ctx context.Context) []ContactPerson
	Gallery(ctx context.Context) []GalleryItem
	Testimonials(ctx context.Context) []Testimonial
	Stats(ctx context.Context) []Stat
	InvolvementRoles(ctx context.Context) []InvolvementRole
	DonateImpacts(ctx context.Context) []DonateImpact
}

// Gateway reads content from Airtable and normalizes it. A nil client
// means the store is unconfigured; every read then short-circuits to the
// injected defaults without touching the network.
type Gateway struct {
	client   *airtable.Client
	tables   Tables
	defaults Defaults
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a Gateway. client may be nil (offline/demo mode).
func New(client *airtable.Client, tables Tables, defaults Defaults, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		client:   client,
		tables:   tables,
		defaults: defaults,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the gateway's clock. Used in tests to pin the
// upcoming-events cutoff and fallback event dates.
func (g *Gateway) WithClock(now func() time.Time) *Gateway {
	g.now = now
	return g
}

var sortByOrder = []airtable.Sort{{Field: "Order", Direction: "asc"}}

// fetchList is the shared read path for collection kinds: configured
// check, query, per-record mapping, fallback on error. emptyOK preserves
// the per-kind asymmetry: a reachable store with zero events or gallery
// photos is a valid answer, while zero programs, testimonials, stats,
// roles or impact lines almost certainly means a missing table, so those
// kinds substitute the full default set.
func fetchList[T any](ctx context.Context, g *Gateway, table string, opts airtable.SelectOptions,
	mapRecord func(airtable.Record) T, fallback []T, emptyOK bool) []T {

	if g.client == nil {
		g.logger.Warn("airtable not configured, serving fallback content", "table", table)
		return fallback
	}

	records, err := g.client.ListRecords(ctx, table, opts)
	if err != nil {
		g.logger.Error("airtable read failed", "table", table, "error", err)
		return fallback
	}

	if len(records) == 0 && !emptyOK {
		return fallback
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		out = append(out, mapRecord(r))
	}
	return out
}

// SiteSettings returns the singleton settings record, fully merged with
// defaults. Only the first row of the settings table is considered.
func (g *Gateway) SiteSettings(ctx context.Context) SiteSettings {
	def := g.defaults.Settings

	if g.client == nil {
		g.logger.Warn("airtable not configured, serving fallback content", "table", g.tables.Settings)
		return def
	}

	records, err := g.client.ListRecords(ctx, g.tables.Settings, airtable.SelectOptions{MaxRecords: 1})
	if err != nil {
		g.logger.Error("airtable read failed", "table", g.tables.Settings, "error", err)
		return def
	}
	if len(records) == 0 {
		return def
	}
	r := records[0]

	s := SiteSettings{
		OrgName:   orDefault(r.Str("Org Name"), def.OrgName),
		Tagline:   orDefault(r.Str("Tagline"), def.Tagline),
		Mission:   orDefault(r.Str("Mission"), def.Mission),
		HeroBadge: orDefault(r.Str("Hero Badge"), def.HeroBadge),

		Phone:     orDefault(r.Str("Phone"), def.Phone),
		WhatsApp:  orDefault(r.Str("WhatsApp"), def.WhatsApp),
		Email:     orDefault(r.Str("Email"), def.Email),
		Address:   orDefault(r.Str("Address"), def.Address),
		Instagram: orDefault(r.Str("Instagram"), def.Instagram),
		Facebook:  orDefault(r.Str("Facebook"), def.Facebook),

		DonateURL:      orDefault(r.Str("Donate URL"), def.DonateURL),
		DonateHeadline: orDefault(r.Str("Donate Headline"), def.DonateHeadline),
		DonateSubtitle: orDefault(r.Str("Donate Subtitle"), def.DonateSubtitle),

		EventsLayout:   ParseLayout(r.Str("Events Layout"), def.EventsLayout),
		ProgramsLayout: ParseLayout(r.Str("Programs Layout"), def.ProgramsLayout),
		GalleryLayout:  ParseLayout(r.Str("Gallery Layout"), def.GalleryLayout),

		ShowGallery:      boolOrDefault(r, "Show Gallery", def.ShowGallery),
		ShowStats:        boolOrDefault(r, "Show Stats", def.ShowStats),
		ShowTestimonials: boolOrDefault(r, "Show Testimonials", def.ShowTestimonials),
		ShowPrograms:     boolOrDefault(r, "Show Programs", def.ShowPrograms),

		ColorPrimary:      orDefault(r.Str("Color Primary"), def.ColorPrimary),
		ColorPrimaryLight: orDefault(r.Str("Color Primary Light"), def.ColorPrimaryLight),
		ColorSecondary:    orDefault(r.Str("Color Secondary"), def.ColorSecondary),
		ColorAccent:       orDefault(r.Str("Color Accent"), def.ColorAccent),

		DonateAmounts: parseDonateAmounts(r.Str("Donate Amounts"), def.DonateAmounts),
	}
	return s
}

// UpcomingEvents returns published events with a start time strictly
// after now, in ascending start order. The filter runs in the store's
// query formula; a reachable store with no upcoming events legitimately
// yields an empty list.
func (g *Gateway) UpcomingEvents(ctx context.Context) []Event {
	now := g.now()
	opts := airtable.SelectOptions{
		FilterByFormula: fmt.Sprintf(`AND({Status} = "Published", IS_AFTER({Date}, "%s"))`,
			now.UTC().Format(time.RFC3339)),
		Sort: []airtable.Sort{{Field: "Date", Direction: "asc"}},
	}
	return fetchList(ctx, g, g.tables.Events, opts, func(r airtable.Record) Event {
		tags := r.StrList("Tags")
		if tags == nil {
			tags = []string{}
		}
		return Event{
			ID:              r.ID,
			Title:           r.Str("Name"),
			Date:            r.Str("Date"),
			EndDate:         r.Str("End Date"),
			Description:     r.Str("Description"),
			Location:        r.Str("Location"),
			ImageURL:        util.DirectImageURL(r.Str("Image URL")),
			Tags:            tags,
			RegistrationURL: r.Str("Registration URL"),
			Color:           orDefault(r.Str("Color"), defaultAccentColor),
			Status:          "Published",
		}
	}, g.defaults.Events(now), true)
}

// Programs returns all programs in display order.
func (g *Gateway) Programs(ctx context.Context) []Program {
	return fetchList(ctx, g, g.tables.Programs, airtable.SelectOptions{Sort: sortByOrder},
		func(r airtable.Record) Program {
			return Program{
				ID:          r.ID,
				Title:       r.Str("Name"),
				Description: r.Str("Description"),
				Icon:        orDefault(r.Str("Icon"), defaultIcon),
				Color:       orDefault(r.Str("Color"), defaultAccentColor),
				ImageURL:    util.DirectImageURL(r.Str("Image URL")),
				Order:       int(r.Num("Order")),
			}
		}, g.defaults.Programs, false)
}

// Contacts returns the contact people in display order.
func (g *Gateway) Contacts(ctx context.Context) []ContactPerson {
	return fetchList(ctx, g, g.tables.Contacts, airtable.SelectOptions{Sort: sortByOrder},
		func(r airtable.Record) ContactPerson {
			return ContactPerson{
				ID:       r.ID,
				Name:     r.Str("Name"),
				Role:     r.Str("Role"),
				Phone:    r.Str("Phone"),
				WhatsApp: r.Str("WhatsApp"),
				Email:    r.Str("Email"),
				Avatar:   orDefault(r.Str("Avatar"), defaultAvatar),
				Order:    int(r.Num("Order")),
			}
		}, g.defaults.Contacts, false)
}

// Gallery returns gallery items in display order. Like events, a
// reachable store with an empty gallery stays empty.
func (g *Gateway) Gallery(ctx context.Context) []GalleryItem {
	return fetchList(ctx, g, g.tables.Gallery, airtable.SelectOptions{Sort: sortByOrder},
		func(r airtable.Record) GalleryItem {
			return GalleryItem{
				ID:       r.ID,
				ImageURL: util.DirectImageURL(r.Str("Image URL")),
				Caption:  r.Str("Caption"),
				Album:    r.Str("Album"),
				Date:     r.Str("Date"),
				Order:    int(r.Num("Order")),
			}
		}, []GalleryItem{}, true)
}

// Testimonials returns testimonials in display order.
func (g *Gateway) Testimonials(ctx context.Context) []Testimonial {
	return fetchList(ctx, g, g.tables.Testimonials, airtable.SelectOptions{Sort: sortByOrder},
		func(r airtable.Record) Testimonial {
			return Testimonial{
				ID:     r.ID,
				Quote:  r.Str("Quote"),
				Author: r.Str("Author"),
				Role:   r.Str("Role"),
				Order:  int(r.Num("Order")),
			}
		}, g.defaults.Testimonials, false)
}

// Stats returns display stats in display order.
func (g *Gateway) Stats(ctx context.Context) []Stat {
	return fetchList(ctx, g, g.tables.Stats, airtable.SelectOptions{Sort: sortByOrder},
		func(r airtable.Record) Stat {
			return Stat{
				ID:     r.ID,
				Number: r.Str("Number"),
				Label:  r.Str("Label"),
				Order:  int(r.Num("Order")),
			}
		}, g.defaults.Stats, false)
}

// InvolvementRoles returns the get-involved roles in display order.
func (g *Gateway) InvolvementRoles(ctx context.Context) []InvolvementRole {
	return fetchList(ctx, g, g.tables.Involved, airtable.SelectOptions{Sort: sortByOrder},
		func(r airtable.Record) InvolvementRole {
			return InvolvementRole{
				ID:          r.ID,
				Title:       r.Str("Title"),
				Description: r.Str("Description"),
				Icon:        orDefault(r.Str("Icon"), defaultIcon),
				Color:       orDefault(r.Str("Color"), defaultAccentColor),
				CTALabel:    orDefault(r.Str("CTA Label"), defaultCTALabel),
				CTAURL:      orDefault(r.Str("CTA URL"), "#"),
				Order:       int(r.Num("Order")),
			}
		}, g.defaults.Roles, false)
}

// DonateImpacts returns donate impact lines in display order.
func (g *Gateway) DonateImpacts(ctx context.Context) []DonateImpact {
	return fetchList(ctx, g, g.tables.Donate, airtable.SelectOptions{Sort: sortByOrder},
		func(r airtable.Record) DonateImpact {
			return DonateImpact{
				ID:          r.ID,
				Amount:      r.Str("Amount"),
				Description: r.Str("Description"),
				Order:       int(r.Num("Order")),
			}
		}, g.defaults.Impacts, false)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// boolOrDefault keeps present-but-false distinct from absent: an
// explicitly unchecked box stays false, only a missing field falls back.
func boolOrDefault(r airtable.Record, field string, fallback bool) bool {
	if v, present := r.Bool(field); present {
		return v
	}
	return fallback
}

// parseDonateAmounts parses a comma-separated amount list. Tokens that
// fail to parse are dropped silently; if nothing parses, the full
// fallback list is substituted, never a partial one.
func parseDonateAmounts(raw string, fallback []int) []int {
	var amounts []int
	for _, token := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		amounts = append(amounts, n)
	}
	if len(amounts) == 0 {
		return fallback
	}
	return amounts
}

var _ Provider = (*Gateway)(nil)
