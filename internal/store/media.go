// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"sort"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/model"
)

// CreateMediaParams holds the validated input for a new media item.
type CreateMediaParams struct {
	Title        i18n.Text
	Description  i18n.Text
	Type         string
	URL          string
	ThumbnailURL string
}

// UpdateMediaParams holds a partial media update.
type UpdateMediaParams struct {
	Title        *i18n.Text
	Description  *i18n.Text
	Type         *string
	URL          *string
	ThumbnailURL *string
}

// CreateMedia stores a new media item and stamps its publication time.
func (s *MemoryStore) CreateMedia(_ context.Context, arg CreateMediaParams) (model.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &model.Media{
		ID:           s.nextID(seqMedia),
		Title:        arg.Title,
		Description:  arg.Description,
		Type:         arg.Type,
		URL:          arg.URL,
		ThumbnailURL: arg.ThumbnailURL,
		PublishedAt:  s.now(),
	}
	s.media[m.ID] = m
	return *m, nil
}

// ListMedia returns media sorted by descending publish time, optionally
// filtered by type. An empty mediaType matches everything.
func (s *MemoryStore) ListMedia(_ context.Context, mediaType string, limit, offset int) ([]model.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Media, 0, len(s.media))
	for _, m := range s.media {
		if mediaType != "" && m.Type != mediaType {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		return out[i].ID > out[j].ID
	})
	return paginate(out, limit, offset), nil
}

// GetMediaByID returns a media item or ErrNotFound.
func (s *MemoryStore) GetMediaByID(_ context.Context, id int64) (model.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.media[id]
	if !ok {
		return model.Media{}, ErrNotFound
	}
	return *m, nil
}

// UpdateMedia merges the provided fields onto an existing media item.
func (s *MemoryStore) UpdateMedia(_ context.Context, id int64, arg UpdateMediaParams) (model.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.media[id]
	if !ok {
		return model.Media{}, ErrNotFound
	}
	if arg.Title != nil {
		m.Title = *arg.Title
	}
	if arg.Description != nil {
		m.Description = *arg.Description
	}
	if arg.Type != nil {
		m.Type = *arg.Type
	}
	if arg.URL != nil {
		m.URL = *arg.URL
	}
	if arg.ThumbnailURL != nil {
		m.ThumbnailURL = *arg.ThumbnailURL
	}
	return *m, nil
}

// DeleteMedia removes a media item. Deleting an absent item is a no-op.
func (s *MemoryStore) DeleteMedia(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.media, id)
	return nil
}
