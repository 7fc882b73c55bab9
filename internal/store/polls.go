// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"sort"
	"time"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/model"
)

// CreatePollParams holds the validated input for a new poll. Options are
// created together with the poll as separate PollOption records.
type CreatePollParams struct {
	Question  i18n.Text
	Options   []i18n.Text
	Active    bool
	ExpiresAt *time.Time
}

// UpdatePollParams holds a partial poll update.
type UpdatePollParams struct {
	Question  *i18n.Text
	Active    *bool
	ExpiresAt **time.Time
}

// CreatePollResponseParams records a single cast vote.
type CreatePollResponseParams struct {
	PollID    int64
	OptionID  int64
	IPAddress string
}

// CreatePoll stores a poll and its options.
func (s *MemoryStore) CreatePoll(_ context.Context, arg CreatePollParams) (model.Poll, []model.PollOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &model.Poll{
		ID:        s.nextID(seqPoll),
		Question:  arg.Question,
		Active:    arg.Active,
		CreatedAt: s.now(),
		ExpiresAt: arg.ExpiresAt,
	}
	s.polls[p.ID] = p

	options := make([]model.PollOption, 0, len(arg.Options))
	for i, label := range arg.Options {
		o := &model.PollOption{
			ID:       s.nextID(seqPollOption),
			PollID:   p.ID,
			Label:    label,
			Position: i,
		}
		s.pollOptions[o.ID] = o
		options = append(options, *o)
	}
	return *p, options, nil
}

// ListActivePolls returns polls that currently accept votes,
// most-recently-created first.
func (s *MemoryStore) ListActivePolls(_ context.Context, limit int) ([]model.Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	out := make([]model.Poll, 0, len(s.polls))
	for _, p := range s.polls {
		if p.AcceptsVotesAt(now) {
			out = append(out, *p)
		}
	}
	sortPollsNewest(out)
	return paginate(out, limit, 0), nil
}

// ListPolls returns every poll, most-recently-created first.
func (s *MemoryStore) ListPolls(_ context.Context, limit, offset int) ([]model.Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Poll, 0, len(s.polls))
	for _, p := range s.polls {
		out = append(out, *p)
	}
	sortPollsNewest(out)
	return paginate(out, limit, offset), nil
}

// GetPollByID returns a poll or ErrNotFound.
func (s *MemoryStore) GetPollByID(_ context.Context, id int64) (model.Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.polls[id]
	if !ok {
		return model.Poll{}, ErrNotFound
	}
	return *p, nil
}

// GetPollOptions returns the options of a poll in display order.
// Returns ErrNotFound when the poll does not exist.
func (s *MemoryStore) GetPollOptions(_ context.Context, pollID int64) ([]model.PollOption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.polls[pollID]; !ok {
		return nil, ErrNotFound
	}
	out := make([]model.PollOption, 0, 4)
	for _, o := range s.pollOptions {
		if o.PollID == pollID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// UpdatePoll merges the provided fields onto an existing poll.
func (s *MemoryStore) UpdatePoll(_ context.Context, id int64, arg UpdatePollParams) (model.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.polls[id]
	if !ok {
		return model.Poll{}, ErrNotFound
	}
	if arg.Question != nil {
		p.Question = *arg.Question
	}
	if arg.Active != nil {
		p.Active = *arg.Active
	}
	if arg.ExpiresAt != nil {
		p.ExpiresAt = *arg.ExpiresAt
	}
	return *p, nil
}

// DeletePoll removes a poll together with its options and responses.
func (s *MemoryStore) DeletePoll(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.polls, id)
	for oid, o := range s.pollOptions {
		if o.PollID == id {
			delete(s.pollOptions, oid)
		}
	}
	for rid, r := range s.pollResponses {
		if r.PollID == id {
			delete(s.pollResponses, rid)
		}
	}
	return nil
}

// CreatePollResponse records a vote. The caller is responsible for
// checking that the poll still accepts votes; the store only verifies
// that the poll and option exist and belong together.
func (s *MemoryStore) CreatePollResponse(_ context.Context, arg CreatePollResponseParams) (model.PollResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.polls[arg.PollID]; !ok {
		return model.PollResponse{}, ErrNotFound
	}
	o, ok := s.pollOptions[arg.OptionID]
	if !ok || o.PollID != arg.PollID {
		return model.PollResponse{}, ErrNotFound
	}

	r := &model.PollResponse{
		ID:        s.nextID(seqPollResponse),
		PollID:    arg.PollID,
		OptionID:  arg.OptionID,
		IPAddress: arg.IPAddress,
		CreatedAt: s.now(),
	}
	s.pollResponses[r.ID] = r
	return *r, nil
}

// PollResults tallies recorded votes by option id. Options with zero
// votes are absent from the map; callers default missing keys to 0.
// Returns ErrNotFound when the poll does not exist.
func (s *MemoryStore) PollResults(_ context.Context, pollID int64) (map[int64]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.polls[pollID]; !ok {
		return nil, ErrNotFound
	}
	tally := make(map[int64]int64)
	for _, r := range s.pollResponses {
		if r.PollID == pollID {
			tally[r.OptionID]++
		}
	}
	return tally, nil
}

// DeactivateExpiredPolls flips active to false on every poll whose expiry
// has passed, returning the number of polls closed. Used by the scheduler.
func (s *MemoryStore) DeactivateExpiredPolls(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	closed := 0
	for _, p := range s.polls {
		if p.Active && p.ExpiresAt != nil && !p.ExpiresAt.After(now) {
			p.Active = false
			closed++
		}
	}
	return closed, nil
}

func sortPollsNewest(polls []model.Poll) {
	sort.Slice(polls, func(i, j int) bool {
		if !polls[i].CreatedAt.Equal(polls[j].CreatedAt) {
			return polls[i].CreatedAt.After(polls[j].CreatedAt)
		}
		return polls[i].ID > polls[j].ID
	})
}
