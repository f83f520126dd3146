// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content is the gateway between the Airtable content store and
// the rendering layer. It fetches raw records, normalizes every field into
// fully-populated typed entities, and substitutes built-in defaults when
// the store is unconfigured, unreachable or empty. Handlers never see raw
// store shapes and never observe a fetch failure.
package content

import "strings"

// Layout selects how a section is rendered.
type Layout string

const (
	LayoutFeed Layout = "feed"
	LayoutGrid Layout = "grid"
)

// ParseLayout normalizes a raw layout value, falling back when the input
// is empty or unrecognized.
func ParseLayout(raw string, fallback Layout) Layout {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(LayoutFeed):
		return LayoutFeed
	case string(LayoutGrid):
		return LayoutGrid
	default:
		return fallback
	}
}

// SiteSettings is the single-row settings record controlling identity,
// contact channels, theme colors, section layout and visibility.
type SiteSettings struct {
	OrgName   string `json:"org_name"`
	Tagline   string `json:"tagline"`
	Mission   string `json:"mission"`
	HeroBadge string `json:"hero_badge"`

	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`

	DonateURL      string `json:"donate_url"`
	DonateHeadline string `json:"donate_headline"`
	DonateSubtitle string `json:"donate_subtitle"`

	EventsLayout   Layout `json:"events_layout"`
	ProgramsLayout Layout `json:"programs_layout"`
	GalleryLayout  Layout `json:"gallery_layout"`

	ShowGallery      bool `json:"show_gallery"`
	ShowStats        bool `json:"show_stats"`
	ShowTestimonials bool `json:"show_testimonials"`
	ShowPrograms     bool `json:"show_programs"`

	ColorPrimary      string `json:"color_primary"`
	ColorPrimaryLight string `json:"color_primary_light"`
	ColorSecondary    string `json:"color_secondary"`
	ColorAccent       string `json:"color_accent"`

	DonateAmounts []int `json:"donate_amounts"`
}

// Event is a published upcoming event.
type Event struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	EndDate         string   `json:"end_date"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	ImageURL        string   `json:"image_url"`
	Tags            []string `json:"tags"`
	RegistrationURL string   `json:"registration_url"`
	Color           string   `json:"color"`
	Status          string   `json:"status"`
}

// Program is a recurring program offering.
type Program struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	ImageURL    string `json:"image_url"`
	Order       int    `json:"order"`
}

// ContactPerson is a staff contact. Absent channels stay empty and the
// templates suppress the matching action button.
type ContactPerson struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Order    int    `json:"order"`
}

// GalleryItem is one photo in the gallery.
type GalleryItem struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
	Album    string `json:"album"`
	Date     string `json:"date"`
	Order    int    `json:"order"`
}

// Testimonial is a quote from a parent or volunteer.
type Testimonial struct {
	ID     string `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
	Order  int    `json:"order"`
}

// Stat is a display figure like "350+" children served. The number is
// free text, not parsed.
type Stat struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Label  string `json:"label"`
	Order  int    `json:"order"`
}

// InvolvementRole is one way to get involved, with an external call to
// action.
type InvolvementRole struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	CTALabel    string `json:"cta_label"`
	CTAURL      string `json:"cta_url"`
	Order       int    `json:"order"`
}

// DonateImpact is one "what your money does" line on the donate page.
// Amount is free text (e.g. "$18").
type DonateImpact struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}
