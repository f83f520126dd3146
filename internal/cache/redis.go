// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Redis-backed Cacher for multi-instance deployments.
type Redis struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
	closed     atomic.Bool

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

// RedisOptions configures the Redis cache.
type RedisOptions struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0).
	URL string

	// Prefix is prepended to all keys (e.g., "fcsite:").
	Prefix string

	// DefaultTTL is the default expiration time for cache entries.
	DefaultTTL time.Duration
}

// NewRedis creates a Redis cache and verifies connectivity.
func NewRedis(opts RedisOptions) (*Redis, error) {
	if opts.URL == "" {
		return nil, errors.New("redis URL is required")
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Redis{
		client:     client,
		prefix:     opts.Prefix,
		defaultTTL: opts.DefaultTTL,
	}, nil
}

func (c *Redis) key(k string) string { return c.prefix + k }

// Get retrieves a value from Redis.
func (c *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrCacheClosed
	}

	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.misses.Add(1)
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	c.hits.Add(1)
	return val, nil
}

// Set stores a value in Redis with the specified TTL.
func (c *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return err
	}
	c.sets.Add(1)
	return nil
}

// Delete removes a key from Redis.
func (c *Redis) Delete(ctx context.Context, key string) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	return c.client.Del(ctx, c.key(key)).Err()
}

// Clear removes all entries under the configured prefix. SCAN is used
// instead of KEYS to avoid blocking the Redis server.
func (c *Redis) Clear(ctx context.Context) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}

	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close closes the Redis connection.
func (c *Redis) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		return c.client.Close()
	}
	return nil
}

// Stats returns current cache statistics. Item count is not tracked for
// Redis; counting keys server-side is not worth a SCAN per health check.
func (c *Redis) Stats() Stats {
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
		HitRate: hitRate,
	}
}

var (
	_ Cacher        = (*Redis)(nil)
	_ StatsProvider = (*Redis)(nil)
)
