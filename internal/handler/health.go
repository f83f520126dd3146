// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fcbrooklyn/fcsite/internal/cache"
	"github.com/fcbrooklyn/fcsite/internal/logging"
	"github.com/fcbrooklyn/fcsite/internal/version"
)

// Health reports process status. Because content failures never surface
// to visitors, the diagnostics list here is the operator's window into
// how often the site is falling back to default content.
type Health struct {
	cache     cache.Cacher
	recent    *logging.RecentHandler
	info      version.Info
	startTime time.Time
}

// NewHealth creates the health handler.
func NewHealth(c cache.Cacher, recent *logging.RecentHandler, info version.Info) *Health {
	return &Health{
		cache:     c,
		recent:    recent,
		info:      info,
		startTime: time.Now(),
	}
}

// healthStatus is the health check response body.
type healthStatus struct {
	Status      string          `json:"status"`
	Timestamp   time.Time       `json:"timestamp"`
	Uptime      string          `json:"uptime"`
	Version     string          `json:"version"`
	Cache       *cache.Stats    `json:"cache,omitempty"`
	Diagnostics []logging.Entry `json:"diagnostics,omitempty"`
}

// ServeHTTP answers the health check.
func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.info.Version,
	}

	if sp, ok := h.cache.(cache.StatsProvider); ok {
		stats := sp.Stats()
		status.Cache = &stats
	}
	if h.recent != nil {
		status.Diagnostics = h.recent.Recent()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
	}
}
