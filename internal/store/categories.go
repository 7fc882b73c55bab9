// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"sort"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/model"
)

// CreateCategoryParams holds the validated input for a new category.
type CreateCategoryParams struct {
	Name  i18n.Text
	Slug  string
	Icon  string
	Color string
}

// UpdateCategoryParams holds a partial category update. The slug is
// immutable after creation, so it is not part of the update surface.
type UpdateCategoryParams struct {
	Name  *i18n.Text
	Icon  *string
	Color *string
}

// CreateCategory stores a new category and assigns its identifier.
func (s *MemoryStore) CreateCategory(_ context.Context, arg CreateCategoryParams) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &model.Category{
		ID:        s.nextID(seqCategory),
		Name:      arg.Name,
		Slug:      arg.Slug,
		Icon:      arg.Icon,
		Color:     arg.Color,
		CreatedAt: s.now(),
	}
	s.categories[c.ID] = c
	return *c, nil
}

// ListCategories returns all categories ordered by ascending identifier.
func (s *MemoryStore) ListCategories(_ context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetCategoryByID returns a category or ErrNotFound.
func (s *MemoryStore) GetCategoryByID(_ context.Context, id int64) (model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return model.Category{}, ErrNotFound
	}
	return *c, nil
}

// GetCategoryBySlug returns the category with the given slug or ErrNotFound.
func (s *MemoryStore) GetCategoryBySlug(_ context.Context, slug string) (model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return *c, nil
		}
	}
	return model.Category{}, ErrNotFound
}

// UpdateCategory merges the provided fields onto an existing category.
func (s *MemoryStore) UpdateCategory(_ context.Context, id int64, arg UpdateCategoryParams) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return model.Category{}, ErrNotFound
	}
	if arg.Name != nil {
		c.Name = *arg.Name
	}
	if arg.Icon != nil {
		c.Icon = *arg.Icon
	}
	if arg.Color != nil {
		c.Color = *arg.Color
	}
	return *c, nil
}

// DeleteCategory removes a category. Deleting an absent category is a no-op.
func (s *MemoryStore) DeleteCategory(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.categories, id)
	return nil
}

// CategorySlugExists reports whether a slug is already taken.
func (s *MemoryStore) CategorySlugExists(_ context.Context, slug string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
