// Copyright (c) 2026 Friendship Circle Brooklyn
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler periodically re-warms the content cache so visitors
// always hit warm entries and a store outage is absorbed between runs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher re-fetches every content kind. Implemented by content.Cached.
type Refresher interface {
	Refresh(ctx context.Context)
}

// Scheduler drives the periodic content refresh.
type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// New creates a scheduler that refreshes content every interval.
func New(refresher Refresher, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		cron:      cron.New(),
		logger:    logger,
	}
}

// Start registers the refresh job and begins the cron loop.
func (s *Scheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	_, err := s.cron.AddFunc(spec, s.refresh)
	if err != nil {
		return fmt.Errorf("adding refresh job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "interval", s.interval.String())
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()
	s.refresher.Refresh(ctx)
}
