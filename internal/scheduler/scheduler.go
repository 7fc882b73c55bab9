// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the periodic maintenance jobs: closing expired
// polls and pruning old event log entries.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nouvelayiti/nouvel-go/internal/store"
)

// Scheduler handles periodic maintenance tasks.
type Scheduler struct {
	store          store.Store
	cron           *cron.Cron
	logger         *slog.Logger
	eventRetention time.Duration
}

// New creates a scheduler. eventRetentionDays bounds how long event log
// entries are kept.
func New(s store.Store, logger *slog.Logger, eventRetentionDays int) *Scheduler {
	return &Scheduler{
		store:          s,
		cron:           cron.New(),
		logger:         logger,
		eventRetention: time.Duration(eventRetentionDays) * 24 * time.Hour,
	}
}

// Start begins the scheduler with a maintenance job every minute.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("* * * * *", s.runMaintenance)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runMaintenance() {
	now := time.Now()
	if err := s.CloseExpiredPolls(now); err != nil {
		s.logger.Error("failed to close expired polls", "error", err)
	}
	if err := s.PruneEvents(now); err != nil {
		s.logger.Error("failed to prune events", "error", err)
	}
}

// CloseExpiredPolls deactivates every poll whose expiry has passed.
func (s *Scheduler) CloseExpiredPolls(now time.Time) error {
	closed, err := s.store.DeactivateExpiredPolls(context.Background(), now)
	if err != nil {
		return err
	}
	if closed > 0 {
		s.logger.Info("closed expired polls", "count", closed)
	}
	return nil
}

// PruneEvents removes event log entries older than the retention window.
func (s *Scheduler) PruneEvents(now time.Time) error {
	if s.eventRetention <= 0 {
		return nil
	}
	pruned, err := s.store.PruneEventsBefore(context.Background(), now.Add(-s.eventRetention))
	if err != nil {
		return err
	}
	if pruned > 0 {
		s.logger.Info("pruned old events", "count", pruned)
	}
	return nil
}
