// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"regexp"
	"strings"
)

// dlParam matches the Dropbox download-mode query parameter, with its
// leading separator, so it can be stripped before forcing raw mode.
var dlParam = regexp.MustCompile(`[?&]dl=\d`)

// DirectImageURL rewrites a Dropbox share link into a URL the browser can
// render inline. Staff paste the normal share link into Airtable:
//
//	https://www.dropbox.com/s/abc123/photo.jpg?dl=0
//
// and this produces
//
//	https://www.dropbox.com/s/abc123/photo.jpg?raw=1
//
// Links already on dl.dropboxusercontent.com, and links on any other
// host, are returned unchanged. Empty input yields an empty string.
func DirectImageURL(raw string) string {
	if raw == "" {
		return ""
	}

	trimmed := strings.TrimSpace(raw)

	// Already a direct Dropbox content URL.
	if strings.Contains(trimmed, "dl.dropboxusercontent.com") {
		return trimmed
	}

	// Share link: drop dl=N, force raw=1.
	if strings.Contains(trimmed, "dropbox.com") {
		direct := dlParam.ReplaceAllString(trimmed, "")
		sep := "?"
		if strings.Contains(direct, "?") {
			sep = "&"
		}
		return direct + sep + "raw=1"
	}

	// Any other image host is assumed directly usable.
	return trimmed
}

// PlaceholderGradient returns an on-brand CSS gradient used in place of a
// missing image, tinted with the item's accent color.
func PlaceholderGradient(color string) string {
	return "linear-gradient(135deg, " + color + "22 0%, " + color + "44 100%)"
}
