// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for the public site:
// security headers, access logging, rate limiting and gzip compression.
package middleware

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// SecurityHeadersConfig holds configuration for security headers.
type SecurityHeadersConfig struct {
	// IsDevelopment disables HSTS and loosens CSP for local work.
	IsDevelopment bool

	// ContentSecurityPolicy overrides the default CSP when non-empty.
	ContentSecurityPolicy string

	// HSTSMaxAge is the Strict-Transport-Security max-age in seconds.
	// Zero disables HSTS.
	HSTSMaxAge int

	// FrameOptions controls X-Frame-Options ("DENY", "SAMEORIGIN",
	// or empty to disable).
	FrameOptions string

	// ReferrerPolicy controls the Referrer-Policy header.
	ReferrerPolicy string
}

// DefaultSecurityHeadersConfig returns sensible defaults for the site.
// img-src must allow remote https hosts: content images are served from
// Dropbox and whatever other hosts staff paste into Airtable.
func DefaultSecurityHeadersConfig(isDev bool) SecurityHeadersConfig {
	cfg := SecurityHeadersConfig{
		IsDevelopment:  isDev,
		HSTSMaxAge:     31536000, // 1 year
		FrameOptions:   "DENY",
		ReferrerPolicy: "strict-origin-when-cross-origin",
	}

	cfg.ContentSecurityPolicy = buildCSP(map[string]string{
		"default-src": "'self'",
		"script-src":  "'self'",
		"style-src":   "'self' 'unsafe-inline'", // theme colors are injected inline
		"img-src":     "'self' data: https:",
		"font-src":    "'self' data:",
		"object-src":  "'none'",
		"base-uri":    "'self'",
	})
	return cfg
}

// buildCSP assembles a CSP header value from directive -> sources.
func buildCSP(directives map[string]string) string {
	names := make([]string, 0, len(directives))
	for name := range directives {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+directives[name])
	}
	return strings.Join(parts, "; ")
}

// SecurityHeaders sets the standard security headers on every response.
func SecurityHeaders(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()

			if cfg.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			if cfg.FrameOptions != "" {
				h.Set("X-Frame-Options", cfg.FrameOptions)
			}
			if cfg.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", cfg.ReferrerPolicy)
			}
			h.Set("X-Content-Type-Options", "nosniff")

			if !cfg.IsDevelopment && cfg.HSTSMaxAge > 0 {
				h.Set("Strict-Transport-Security", "max-age="+strconv.Itoa(cfg.HSTSMaxAge))
			}

			next.ServeHTTP(w, r)
		})
	}
}
