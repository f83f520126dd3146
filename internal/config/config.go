// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"FCSITE_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"FCSITE_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"FCSITE_ENV" envDefault:"development"`
	LogLevel   string `env:"FCSITE_LOG_LEVEL" envDefault:"info"`

	// Airtable connection. When either value is empty the site runs in
	// offline mode and serves built-in fallback content.
	AirtableAPIKey string `env:"AIRTABLE_API_KEY"`
	AirtableBaseID string `env:"AIRTABLE_BASE_ID"`

	// Per-kind table name overrides.
	SettingsTable     string `env:"AIRTABLE_SETTINGS_TABLE" envDefault:"Site Settings"`
	EventsTable       string `env:"AIRTABLE_EVENTS_TABLE" envDefault:"Events"`
	ProgramsTable     string `env:"AIRTABLE_PROGRAMS_TABLE" envDefault:"Programs"`
	ContactsTable     string `env:"AIRTABLE_CONTACTS_TABLE" envDefault:"Contacts"`
	GalleryTable      string `env:"AIRTABLE_GALLERY_TABLE" envDefault:"Gallery"`
	TestimonialsTable string `env:"AIRTABLE_TESTIMONIALS_TABLE" envDefault:"Testimonials"`
	StatsTable        string `env:"AIRTABLE_STATS_TABLE" envDefault:"Stats"`
	InvolvedTable     string `env:"AIRTABLE_INVOLVED_TABLE" envDefault:"Get Involved"`
	DonateTable       string `env:"AIRTABLE_DONATE_TABLE" envDefault:"Donate Impact"`

	// RevalidateInterval controls how long rendered content may be served
	// from cache before the gateway re-reads Airtable, in seconds.
	RevalidateInterval int `env:"FCSITE_REVALIDATE_INTERVAL" envDefault:"900"`

	// Cache configuration
	RedisURL     string `env:"FCSITE_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"FCSITE_CACHE_PREFIX" envDefault:"fcsite:"` // Redis key prefix
	CacheMaxSize int    `env:"FCSITE_CACHE_MAX_SIZE" envDefault:"1000"`  // Max memory cache entries

	// Rate limiting for inbound requests
	RateLimitRPS   float64 `env:"FCSITE_RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"FCSITE_RATE_LIMIT_BURST" envDefault:"40"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// AirtableConfigured returns true if Airtable connection parameters are set.
func (c Config) AirtableConfigured() bool {
	return c.AirtableAPIKey != "" && c.AirtableBaseID != ""
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// RevalidateTTL returns the content revalidation interval as a duration.
func (c Config) RevalidateTTL() time.Duration {
	return time.Duration(c.RevalidateInterval) * time.Second
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.RevalidateInterval < 1 {
		return nil, fmt.Errorf("FCSITE_REVALIDATE_INTERVAL must be positive, got %d", cfg.RevalidateInterval)
	}
	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("FCSITE_SERVER_PORT out of range: %d", cfg.ServerPort)
	}

	return cfg, nil
}
