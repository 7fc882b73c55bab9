// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"sort"
	"time"

	"github.com/nouvelayiti/nouvel-go/internal/model"
)

// CreateEventParams holds a new audit log entry.
type CreateEventParams struct {
	Level    string
	Category string
	Message  string
	UserID   *int64
	Metadata string
}

// CreateEvent appends an entry to the audit log.
func (s *MemoryStore) CreateEvent(_ context.Context, arg CreateEventParams) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &model.Event{
		ID:        s.nextID(seqEvent),
		Level:     arg.Level,
		Category:  arg.Category,
		Message:   arg.Message,
		UserID:    arg.UserID,
		Metadata:  arg.Metadata,
		CreatedAt: s.now(),
	}
	s.events[e.ID] = e
	return *e, nil
}

// ListEvents returns audit log entries, newest first.
func (s *MemoryStore) ListEvents(_ context.Context, limit, offset int) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return paginate(out, limit, offset), nil
}

// PruneEventsBefore removes audit log entries older than the cutoff and
// returns the number removed. Used by the scheduler.
func (s *MemoryStore) PruneEventsBefore(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, e := range s.events {
		if e.CreatedAt.Before(cutoff) {
			delete(s.events, id)
			pruned++
		}
	}
	return pruned, nil
}

// DashboardCounts aggregates entity totals for the admin dashboard.
func (s *MemoryStore) DashboardCounts(_ context.Context) (Counts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := Counts{
		Articles:    int64(len(s.articles)),
		Categories:  int64(len(s.categories)),
		Media:       int64(len(s.media)),
		Polls:       int64(len(s.polls)),
		Subscribers: int64(len(s.subscribers)),
		Messages:    int64(len(s.messages)),
	}
	for _, m := range s.messages {
		if !m.Read {
			counts.UnreadMessages++
		}
	}
	return counts, nil
}
