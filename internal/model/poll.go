// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
)

// Poll represents a reader poll. Options live in separate PollOption
// records referencing the poll by ID.
type Poll struct {
	ID        int64      `json:"id"`
	Question  i18n.Text  `json:"question"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// AcceptsVotesAt returns true if the poll accepts votes at the given time:
// it must be active and either have no expiry or expire in the future.
func (p *Poll) AcceptsVotesAt(t time.Time) bool {
	if !p.Active {
		return false
	}
	if p.ExpiresAt != nil && !p.ExpiresAt.After(t) {
		return false
	}
	return true
}

// PollOption is one answer choice of a poll.
type PollOption struct {
	ID       int64     `json:"id"`
	PollID   int64     `json:"poll_id"`
	Label    i18n.Text `json:"label"`
	Position int       `json:"position"`
}

// PollResponse records a single cast vote. The client IP is kept for
// anti-abuse bookkeeping; uniqueness per voter is not enforced.
type PollResponse struct {
	ID        int64     `json:"id"`
	PollID    int64     `json:"poll_id"`
	OptionID  int64     `json:"option_id"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}
