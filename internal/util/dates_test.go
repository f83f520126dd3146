// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	got := FormatDate("2026-03-01T18:30:00Z")
	if got != "Sun, Mar 1" {
		t.Errorf("FormatDate() = %q, want %q", got, "Sun, Mar 1")
	}

	if got := FormatDate("not-a-date"); got != "" {
		t.Errorf("FormatDate(malformed) = %q, want empty", got)
	}
}

func TestFormatTime(t *testing.T) {
	got := FormatTime("2026-03-01T18:30:00Z")
	if got != "6:30 PM" {
		t.Errorf("FormatTime() = %q, want %q", got, "6:30 PM")
	}

	if got := FormatTime("2026-03-01T09:05:00Z"); got != "9:05 AM" {
		t.Errorf("FormatTime() = %q, want %q", got, "9:05 AM")
	}

	if got := FormatTime("garbage"); got != "" {
		t.Errorf("FormatTime(malformed) = %q, want empty", got)
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"exactly now", now, "Today!"},
		{"in the past", now.Add(-48 * time.Hour), "Today!"},
		{"20 hours out ceils to tomorrow", now.Add(20 * time.Hour), "Tomorrow"},
		{"exactly 24 hours", now.Add(24 * time.Hour), "Tomorrow"},
		{"50 hours out ceils to 3 days", now.Add(50 * time.Hour), "In 3 days"},
		{"ten days out", now.Add(10 * 24 * time.Hour), "In 10 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := daysUntilAt(tt.ts.Format(time.RFC3339), now)
			if got != tt.want {
				t.Errorf("daysUntilAt(%v) = %q, want %q", tt.ts, got, tt.want)
			}
		})
	}

	if got := daysUntilAt("garbage", now); got != "Today!" {
		t.Errorf("daysUntilAt(malformed) = %q, want %q", got, "Today!")
	}
}
