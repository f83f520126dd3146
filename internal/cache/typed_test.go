// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestTyped_SetGet(t *testing.T) {
	mem := NewMemory(MemoryOptions{DefaultTTL: time.Hour})
	defer func() { _ = mem.Close() }()
	tc := NewTyped[sample](mem, time.Hour)
	ctx := context.Background()

	in := &sample{Name: "events", Count: 3}
	if err := tc.Set(ctx, "k", in); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	out, ok := tc.Get(ctx, "k")
	if !ok {
		t.Fatal("Get returned not found")
	}
	if out.Name != "events" || out.Count != 3 {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestTyped_GetMiss(t *testing.T) {
	mem := NewMemory(MemoryOptions{DefaultTTL: time.Hour})
	defer func() { _ = mem.Close() }()
	tc := NewTyped[sample](mem, time.Hour)

	if _, ok := tc.Get(context.Background(), "absent"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestTyped_GetOrSet(t *testing.T) {
	mem := NewMemory(MemoryOptions{DefaultTTL: time.Hour})
	defer func() { _ = mem.Close() }()
	tc := NewTyped[sample](mem, time.Hour)
	ctx := context.Background()

	calls := 0
	fetch := func() (*sample, error) {
		calls++
		return &sample{Name: "fresh", Count: calls}, nil
	}

	v1, err := tc.GetOrSet(ctx, "k", fetch)
	if err != nil {
		t.Fatalf("GetOrSet failed: %v", err)
	}
	v2, err := tc.GetOrSet(ctx, "k", fetch)
	if err != nil {
		t.Fatalf("GetOrSet failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
	if v1.Count != v2.Count {
		t.Errorf("second call returned different value: %+v vs %+v", v1, v2)
	}
}

func TestTyped_GetOrSetError(t *testing.T) {
	mem := NewMemory(MemoryOptions{DefaultTTL: time.Hour})
	defer func() { _ = mem.Close() }()
	tc := NewTyped[sample](mem, time.Hour)

	wantErr := errors.New("boom")
	_, err := tc.GetOrSet(context.Background(), "k", func() (*sample, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected fetch error to propagate, got %v", err)
	}
}
