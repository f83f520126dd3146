// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/fcbrooklyn/fcsite/internal/cache"
)

// Cache keys, one per content kind.
const (
	keySettings     = "content:settings"
	keyEvents       = "content:events"
	keyPrograms     = "content:programs"
	keyContacts     = "content:contacts"
	keyGallery      = "content:gallery"
	keyTestimonials = "content:testimonials"
	keyStats        = "content:stats"
	keyRoles        = "content:roles"
	keyImpacts      = "content:impacts"
)

// Cached wraps a Provider with a TTL cache so steady-state page renders
// never wait on Airtable. The TTL is the revalidation interval: content
// is at most that many seconds stale. Like the inner provider, every
// operation is total.
type Cached struct {
	inner  Provider
	logger *slog.Logger

	settings     *cache.Typed[SiteSettings]
	events       *cache.Typed[[]Event]
	programs     *cache.Typed[[]Program]
	contacts     *cache.Typed[[]ContactPerson]
	gallery      *cache.Typed[[]GalleryItem]
	testimonials *cache.Typed[[]Testimonial]
	stats        *cache.Typed[[]Stat]
	roles        *cache.Typed[[]InvolvementRole]
	impacts      *cache.Typed[[]DonateImpact]
}

// NewCached wraps inner with the given cache backend and TTL.
func NewCached(inner Provider, backend cache.Cacher, ttl time.Duration, logger *slog.Logger) *Cached {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cached{
		inner:  inner,
		logger: logger,

		settings:     cache.NewTyped[SiteSettings](backend, ttl),
		events:       cache.NewTyped[[]Event](backend, ttl),
		programs:     cache.NewTyped[[]Program](backend, ttl),
		contacts:     cache.NewTyped[[]ContactPerson](backend, ttl),
		gallery:      cache.NewTyped[[]GalleryItem](backend, ttl),
		testimonials: cache.NewTyped[[]Testimonial](backend, ttl),
		stats:        cache.NewTyped[[]Stat](backend, ttl),
		roles:        cache.NewTyped[[]InvolvementRole](backend, ttl),
		impacts:      cache.NewTyped[[]DonateImpact](backend, ttl),
	}
}

// cachedGet is the shared read path: cache hit, else fetch and store.
// fetch is total so the error branch of GetOrSet is unreachable.
func cachedGet[T any](ctx context.Context, tc *cache.Typed[T], key string, fetch func(context.Context) T) T {
	value, _ := tc.GetOrSet(ctx, key, func() (*T, error) {
		v := fetch(ctx)
		return &v, nil
	})
	return *value
}

func (c *Cached) SiteSettings(ctx context.Context) SiteSettings {
	return cachedGet(ctx, c.settings, keySettings, c.inner.SiteSettings)
}

func (c *Cached) UpcomingEvents(ctx context.Context) []Event {
	return cachedGet(ctx, c.events, keyEvents, c.inner.UpcomingEvents)
}

func (c *Cached) Programs(ctx context.Context) []Program {
	return cachedGet(ctx, c.programs, keyPrograms, c.inner.Programs)
}

func (c *Cached) Contacts(ctx context.Context) []ContactPerson {
	return cachedGet(ctx, c.contacts, keyContacts, c.inner.Contacts)
}

func (c *Cached) Gallery(ctx context.Context) []GalleryItem {
	return cachedGet(ctx, c.gallery, keyGallery, c.inner.Gallery)
}

func (c *Cached) Testimonials(ctx context.Context) []Testimonial {
	return cachedGet(ctx, c.testimonials, keyTestimonials, c.inner.Testimonials)
}

func (c *Cached) Stats(ctx context.Context) []Stat {
	return cachedGet(ctx, c.stats, keyStats, c.inner.Stats)
}

func (c *Cached) InvolvementRoles(ctx context.Context) []InvolvementRole {
	return cachedGet(ctx, c.roles, keyRoles, c.inner.InvolvementRoles)
}

func (c *Cached) DonateImpacts(ctx context.Context) []DonateImpact {
	return cachedGet(ctx, c.impacts, keyImpacts, c.inner.DonateImpacts)
}

// Refresh re-reads every content kind from the inner provider and
// replaces the cached copies. Called by the revalidation scheduler so
// pages keep serving warm content.
func (c *Cached) Refresh(ctx context.Context) {
	start := time.Now()

	refreshOne(ctx, c.settings, keySettings, c.inner.SiteSettings)
	refreshOne(ctx, c.events, keyEvents, c.inner.UpcomingEvents)
	refreshOne(ctx, c.programs, keyPrograms, c.inner.Programs)
	refreshOne(ctx, c.contacts, keyContacts, c.inner.Contacts)
	refreshOne(ctx, c.gallery, keyGallery, c.inner.Gallery)
	refreshOne(ctx, c.testimonials, keyTestimonials, c.inner.Testimonials)
	refreshOne(ctx, c.stats, keyStats, c.inner.Stats)
	refreshOne(ctx, c.roles, keyRoles, c.inner.InvolvementRoles)
	refreshOne(ctx, c.impacts, keyImpacts, c.inner.DonateImpacts)

	c.logger.Info("content cache refreshed", "duration", time.Since(start))
}

func refreshOne[T any](ctx context.Context, tc *cache.Typed[T], key string, fetch func(context.Context) T) {
	v := fetch(ctx)
	_ = tc.Set(ctx, key, &v)
}

var _ Provider = (*Cached)(nil)
