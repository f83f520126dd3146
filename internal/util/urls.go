// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides the small pure transforms shared by the content
// gateway and the templates: link sanitization, image link rewriting,
// date labels and slug generation.
package util

import (
	"net/url"
	"strings"
)

// allowedSchemes are the only link prefixes accepted by SanitizeURL.
// Everything else (javascript:, data:, protocol-relative, ...) is
// replaced with a neutral placeholder.
var allowedSchemes = []string{"https://", "http://", "tel:", "mailto:"}

// SanitizeURL returns the trimmed input if it carries an allow-listed
// scheme, or "#" otherwise. Operator-entered links always pass through
// here before being rendered as an href.
func SanitizeURL(raw string) string {
	if raw == "" {
		return "#"
	}
	trimmed := strings.TrimSpace(raw)
	for _, scheme := range allowedSchemes {
		if strings.HasPrefix(trimmed, scheme) {
			return trimmed
		}
	}
	return "#"
}

// WhatsAppURL builds a wa.me chat link from a phone number, keeping
// digits only (wa.me rejects "+", spaces and punctuation).
func WhatsAppURL(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String()
}

// MapsURL builds a Google Maps search link for a street address.
func MapsURL(address string) string {
	return "https://maps.google.com/?q=" + url.QueryEscape(address)
}
