// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/nouvelayiti/nouvel-go/internal/model"
)

// CreateSubscriberParams holds the validated input of a newsletter signup.
type CreateSubscriberParams struct {
	Name              string
	Email             string
	PreferredLanguage string
}

// CreateContactMessageParams holds the validated input of a contact form
// submission.
type CreateContactMessageParams struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// CreateSubscriber stores a newsletter signup. When a subscription with
// the same email already exists (case-insensitive) the existing record is
// returned unchanged instead of creating a duplicate or failing.
func (s *MemoryStore) CreateSubscriber(_ context.Context, arg CreateSubscriberParams) (model.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.subscribers {
		if strings.EqualFold(existing.Email, arg.Email) {
			return *existing, nil
		}
	}

	sub := &model.Subscriber{
		ID:                s.nextID(seqSubscriber),
		Name:              arg.Name,
		Email:             arg.Email,
		PreferredLanguage: arg.PreferredLanguage,
		UnsubscribeToken:  uuid.New().String(),
		CreatedAt:         s.now(),
	}
	s.subscribers[sub.ID] = sub
	return *sub, nil
}

// ListSubscribers returns subscribers, newest first.
func (s *MemoryStore) ListSubscribers(_ context.Context, limit, offset int) ([]model.Subscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Subscriber, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		out = append(out, *sub)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return paginate(out, limit, offset), nil
}

// CreateContactMessage stores a contact form submission, unread.
func (s *MemoryStore) CreateContactMessage(_ context.Context, arg CreateContactMessageParams) (model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &model.ContactMessage{
		ID:        s.nextID(seqMessage),
		Name:      arg.Name,
		Email:     arg.Email,
		Subject:   arg.Subject,
		Message:   arg.Message,
		CreatedAt: s.now(),
	}
	s.messages[m.ID] = m
	return *m, nil
}

// ListContactMessages returns contact messages, newest first.
func (s *MemoryStore) ListContactMessages(_ context.Context, limit, offset int) ([]model.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ContactMessage, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return paginate(out, limit, offset), nil
}

// MarkContactMessageRead flags a message as read.
func (s *MemoryStore) MarkContactMessageRead(_ context.Context, id int64) (model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return model.ContactMessage{}, ErrNotFound
	}
	m.Read = true
	return *m, nil
}
