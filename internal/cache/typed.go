// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Typed provides type-safe caching on top of a Cacher, handling JSON
// serialization both ways.
type Typed[T any] struct {
	cache      Cacher
	defaultTTL time.Duration
}

// NewTyped creates a Typed cache wrapping the given Cacher.
func NewTyped[T any](cache Cacher, defaultTTL time.Duration) *Typed[T] {
	return &Typed[T]{cache: cache, defaultTTL: defaultTTL}
}

// Get retrieves a value. Returns the value and true if found and decodable.
func (c *Typed[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, false
	}
	return &value, true
}

// Set stores a value with the default TTL.
func (c *Typed[T]) Set(ctx context.Context, key string, value *T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, key, data, c.defaultTTL)
}

// Delete removes a key.
func (c *Typed[T]) Delete(ctx context.Context, key string) error {
	return c.cache.Delete(ctx, key)
}

// GetOrSet returns the cached value for key, or computes, stores and
// returns it via fn on a miss. A failed store does not fail the call;
// the computed value is still valid.
func (c *Typed[T]) GetOrSet(ctx context.Context, key string, fn func() (*T, error)) (*T, error) {
	if value, ok := c.Get(ctx, key); ok {
		return value, nil
	}

	value, err := fn()
	if err != nil {
		return nil, err
	}

	_ = c.Set(ctx, key, value)
	return value, nil
}
