// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging wires slog for the application and keeps a bounded
// in-memory record of recent WARN+ diagnostics for the health endpoint.
// The site deliberately swallows content-store failures, so this buffer
// is the only place those failures stay visible to an operator.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one retained diagnostic record.
type Entry struct {
	ID      string    `json:"id"`
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
	Attrs   string    `json:"attrs,omitempty"`
}

// RecentHandler is a slog.Handler that forwards every record to an inner
// handler and additionally retains the last capacity records at or above
// the threshold level.
type RecentHandler struct {
	inner    slog.Handler
	level    slog.Level
	capacity int

	mu      sync.Mutex
	entries []Entry
}

// NewRecentHandler wraps inner, retaining up to capacity WARN+ records.
func NewRecentHandler(inner slog.Handler, capacity int) *RecentHandler {
	if capacity <= 0 {
		capacity = 50
	}
	return &RecentHandler{
		inner:    inner,
		level:    slog.LevelWarn,
		capacity: capacity,
	}
}

// Enabled implements slog.Handler. Retention is independent of the inner
// handler's level: a WARN must reach the diagnostics buffer even when the
// inner handler filters it out.
func (h *RecentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level || h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *RecentHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	if h.inner.Enabled(ctx, r.Level) {
		err = h.inner.Handle(ctx, r)
	}
	if r.Level >= h.level {
		h.retain(r)
	}
	return err
}

// WithAttrs implements slog.Handler. The retained buffer is shared so
// derived loggers feed the same history.
func (h *RecentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sharedHandler{parent: h, inner: h.inner.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (h *RecentHandler) WithGroup(name string) slog.Handler {
	return &sharedHandler{parent: h, inner: h.inner.WithGroup(name)}
}

// Recent returns the retained entries, newest first.
func (h *RecentHandler) Recent() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		out[len(h.entries)-1-i] = e
	}
	return out
}

func (h *RecentHandler) retain(r slog.Record) {
	var attrs []string
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a.String())
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, Entry{
		ID:      uuid.NewString(),
		Time:    r.Time,
		Level:   r.Level.String(),
		Message: r.Message,
		Attrs:   strings.Join(attrs, " "),
	})
	if len(h.entries) > h.capacity {
		h.entries = h.entries[len(h.entries)-h.capacity:]
	}
}

// sharedHandler is a derived handler that feeds its parent's buffer.
type sharedHandler struct {
	parent *RecentHandler
	inner  slog.Handler
}

func (h *sharedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.parent.level || h.inner.Enabled(ctx, level)
}

func (h *sharedHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	if h.inner.Enabled(ctx, r.Level) {
		err = h.inner.Handle(ctx, r)
	}
	if r.Level >= h.parent.level {
		h.parent.retain(r)
	}
	return err
}

func (h *sharedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sharedHandler{parent: h.parent, inner: h.inner.WithAttrs(attrs)}
}

func (h *sharedHandler) WithGroup(name string) slog.Handler {
	return &sharedHandler{parent: h.parent, inner: h.inner.WithGroup(name)}
}

// ParseLevel maps a config string to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup builds the application logger: human-readable text output in
// development, JSON in production, both wrapped with a RecentHandler.
// It installs the logger as the slog default and returns it together
// with the diagnostics buffer.
func Setup(level slog.Level, isDev bool) (*slog.Logger, *RecentHandler) {
	opts := &slog.HandlerOptions{Level: level}

	var inner slog.Handler
	if isDev {
		inner = slog.NewTextHandler(os.Stdout, opts)
	} else {
		inner = slog.NewJSONHandler(os.Stdout, opts)
	}

	recent := NewRecentHandler(inner, 100)
	logger := slog.New(recent)
	slog.SetDefault(logger)
	return logger, recent
}
