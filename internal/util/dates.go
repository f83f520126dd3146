// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"fmt"
	"time"
)

// parseTimestamp accepts the timestamp shapes Airtable emits: full RFC 3339
// with or without sub-second precision, and bare dates.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO-8601 timestamp as a short US English date
// label, e.g. "Sun, Mar 2". Unparseable input yields an empty label.
func FormatDate(iso string) string {
	t, ok := parseTimestamp(iso)
	if !ok {
		return ""
	}
	return t.Format("Mon, Jan 2")
}

// FormatTime renders an ISO-8601 timestamp as a short US English time
// label, e.g. "6:30 PM". Unparseable input yields an empty label.
func FormatTime(iso string) string {
	t, ok := parseTimestamp(iso)
	if !ok {
		return ""
	}
	return t.Format("3:04 PM")
}

// DaysUntil labels how far away a timestamp is, counting whole days with
// fractional days rounded up: "Today!" for now or the past, "Tomorrow"
// for exactly one day out, otherwise "In {n} days".
func DaysUntil(iso string) string {
	return daysUntilAt(iso, time.Now())
}

func daysUntilAt(iso string, now time.Time) string {
	t, ok := parseTimestamp(iso)
	if !ok {
		return "Today!"
	}

	diff := t.Sub(now)
	days := int64(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++ // ceiling
	}

	switch {
	case days <= 0:
		return "Today!"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("In %d days", days)
	}
}
