// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Memory is a thread-safe in-memory Cacher.
type Memory struct {
	data       sync.Map
	defaultTTL time.Duration
	maxItems   int // 0 = unlimited
	stopCh     chan struct{}
	closed     atomic.Bool

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryOptions configures the in-memory cache.
type MemoryOptions struct {
	DefaultTTL      time.Duration
	MaxItems        int           // Maximum number of entries (0 = unlimited)
	CleanupInterval time.Duration // Expired-entry sweep interval (0 = no sweep)
}

// NewMemory creates an in-memory cache.
func NewMemory(opts MemoryOptions) *Memory {
	c := &Memory{
		defaultTTL: opts.DefaultTTL,
		maxItems:   opts.MaxItems,
		stopCh:     make(chan struct{}),
	}
	if opts.CleanupInterval > 0 {
		go c.sweepLoop(opts.CleanupInterval)
	}
	return c
}

// Get retrieves a value from the cache.
func (c *Memory) Get(_ context.Context, key string) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrCacheClosed
	}

	val, ok := c.data.Load(key)
	if !ok {
		c.misses.Add(1)
		return nil, ErrCacheMiss
	}

	entry := val.(*memoryEntry)
	if time.Now().After(entry.expiresAt) {
		c.data.Delete(key)
		c.misses.Add(1)
		return nil, ErrCacheMiss
	}

	c.hits.Add(1)
	// Copy so callers cannot mutate the cached bytes.
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

// Set stores a value in the cache with the specified TTL.
func (c *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if c.maxItems > 0 && c.count() >= c.maxItems {
		c.removeExpired()
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	c.data.Store(key, &memoryEntry{
		value:     valueCopy,
		expiresAt: time.Now().Add(ttl),
	})
	c.sets.Add(1)
	return nil
}

// Delete removes a key from the cache.
func (c *Memory) Delete(_ context.Context, key string) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	c.data.Delete(key)
	return nil
}

// Clear removes all entries from the cache.
func (c *Memory) Clear(_ context.Context) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	c.data.Range(func(key, _ any) bool {
		c.data.Delete(key)
		return true
	})
	return nil
}

// DeleteByPrefix removes all keys starting with the given prefix.
func (c *Memory) DeleteByPrefix(_ context.Context, prefix string) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	c.data.Range(func(key, _ any) bool {
		if strings.HasPrefix(key.(string), prefix) {
			c.data.Delete(key)
		}
		return true
	})
	return nil
}

// Close stops the sweep goroutine and marks the cache closed.
func (c *Memory) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		close(c.stopCh)
	}
	return nil
}

// Stats returns current cache statistics.
func (c *Memory) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	return Stats{
		Hits:    hits,
		Misses:  misses,
		Sets:    c.sets.Load(),
		Items:   c.count(),
		HitRate: hitRate,
	}
}

func (c *Memory) count() int {
	n := 0
	c.data.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (c *Memory) removeExpired() {
	now := time.Now()
	c.data.Range(func(key, value any) bool {
		if now.After(value.(*memoryEntry).expiresAt) {
			c.data.Delete(key)
		}
		return true
	})
}

func (c *Memory) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

var (
	_ Cacher        = (*Memory)(nil)
	_ StatsProvider = (*Memory)(nil)
)
