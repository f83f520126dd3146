// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import "time"

// Config holds configuration for cache creation.
type Config struct {
	// RedisURL selects the Redis backend when non-empty.
	RedisURL string

	// Prefix is the key prefix for the Redis backend.
	Prefix string

	// DefaultTTL is the default TTL for cache entries.
	DefaultTTL time.Duration

	// MaxItems caps the in-memory backend (0 = unlimited).
	MaxItems int

	// CleanupInterval is the expired-entry sweep interval for the
	// in-memory backend.
	CleanupInterval time.Duration
}

// New creates a cache from the configuration: Redis when a URL is set,
// in-memory otherwise.
func New(cfg Config) (Cacher, error) {
	if cfg.RedisURL != "" {
		return NewRedis(RedisOptions{
			URL:        cfg.RedisURL,
			Prefix:     cfg.Prefix,
			DefaultTTL: cfg.DefaultTTL,
		})
	}

	cleanup := cfg.CleanupInterval
	if cleanup == 0 {
		cleanup = time.Minute
	}
	return NewMemory(MemoryOptions{
		DefaultTTL:      cfg.DefaultTTL,
		MaxItems:        cfg.MaxItems,
		CleanupInterval: cleanup,
	}), nil
}
