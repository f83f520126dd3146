// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the content caching layer: a byte-oriented
// Cacher interface with in-memory and Redis backends, and a generic
// JSON-typed wrapper used by the content gateway.
package cache

import (
	"context"
	"time"
)

// Cacher defines the interface for cache implementations.
// All implementations must be thread-safe. Values are []byte so the same
// interface can front both the in-memory and Redis backends.
type Cacher interface {
	// Get retrieves a value. Returns ErrCacheMiss if absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A zero TTL uses the default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases any resources held by the cache.
	Close() error
}

// StatsProvider is an optional interface for caches that report statistics.
type StatsProvider interface {
	Stats() Stats
}

// Stats holds cache hit/miss counters for the health endpoint.
type Stats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Sets    int64   `json:"sets"`
	Items   int     `json:"items"`
	HitRate float64 `json:"hit_rate"`
}

// Error is the error type for cache operations.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrCacheMiss indicates the key was not found or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)
