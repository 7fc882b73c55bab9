// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/model"
)

// CreateArticleParams holds the validated input for a new article.
type CreateArticleParams struct {
	Title      i18n.Text
	Content    i18n.Text
	Excerpt    i18n.Text
	Slug       string
	ImageURL   string
	CategoryID int64
	AuthorID   int64
	Featured   bool
	Tags       []string
	ReadTime   int
}

// UpdateArticleParams holds a partial article update. PublishedAt is
// stamped at creation and never mutated by updates.
type UpdateArticleParams struct {
	Title      *i18n.Text
	Content    *i18n.Text
	Excerpt    *i18n.Text
	ImageURL   *string
	CategoryID *int64
	Featured   *bool
	Tags       *[]string
	ReadTime   *int
}

// CreateArticle stores a new article, assigns its identifier and stamps
// the publication time.
func (s *MemoryStore) CreateArticle(_ context.Context, arg CreateArticleParams) (model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	a := &model.Article{
		ID:          s.nextID(seqArticle),
		Title:       arg.Title,
		Content:     arg.Content,
		Excerpt:     arg.Excerpt,
		Slug:        arg.Slug,
		ImageURL:    arg.ImageURL,
		CategoryID:  arg.CategoryID,
		AuthorID:    arg.AuthorID,
		Featured:    arg.Featured,
		Tags:        append([]string(nil), arg.Tags...),
		ReadTime:    arg.ReadTime,
		PublishedAt: now,
		UpdatedAt:   now,
	}
	s.articles[a.ID] = a
	return cloneArticle(a), nil
}

// ListArticles returns articles sorted by descending publish time,
// sliced by [offset, offset+limit).
func (s *MemoryStore) ListArticles(_ context.Context, limit, offset int) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.sortedArticles(nil)
	return paginate(all, limit, offset), nil
}

// ListFeaturedArticles returns the newest articles flagged as featured.
func (s *MemoryStore) ListFeaturedArticles(_ context.Context, limit int) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := s.sortedArticles(func(a *model.Article) bool { return a.Featured })
	return paginate(featured, limit, 0), nil
}

// ListPopularArticles returns the "popular" subset. Without real
// analytics this is defined as the most-recent ordering.
func (s *MemoryStore) ListPopularArticles(_ context.Context, limit int) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.sortedArticles(nil)
	return paginate(all, limit, 0), nil
}

// ListArticlesByCategory returns articles in a category, newest first.
func (s *MemoryStore) ListArticlesByCategory(_ context.Context, categoryID int64, limit, offset int) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matching := s.sortedArticles(func(a *model.Article) bool { return a.CategoryID == categoryID })
	return paginate(matching, limit, offset), nil
}

// ListRelatedArticles returns other articles in the same category as the
// given article, in randomized order. The order is not stable across
// calls. Returns ErrNotFound when the source article does not exist.
func (s *MemoryStore) ListRelatedArticles(_ context.Context, articleID int64, limit int) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src, ok := s.articles[articleID]
	if !ok {
		return nil, ErrNotFound
	}

	related := s.sortedArticles(func(a *model.Article) bool {
		return a.CategoryID == src.CategoryID && a.ID != src.ID
	})
	rand.Shuffle(len(related), func(i, j int) {
		related[i], related[j] = related[j], related[i]
	})
	return paginate(related, limit, 0), nil
}

// SearchArticles performs a case-insensitive substring search against
// every localized title and content field, newest first.
func (s *MemoryStore) SearchArticles(_ context.Context, query string, limit, offset int) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Article{}, nil
	}
	hits := s.sortedArticles(func(a *model.Article) bool { return a.Matches(query) })
	return paginate(hits, limit, offset), nil
}

// GetArticleByID returns an article or ErrNotFound.
func (s *MemoryStore) GetArticleByID(_ context.Context, id int64) (model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return model.Article{}, ErrNotFound
	}
	return cloneArticle(a), nil
}

// GetArticleBySlug returns the article with the given slug or ErrNotFound.
func (s *MemoryStore) GetArticleBySlug(_ context.Context, slug string) (model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Slug == slug {
			return cloneArticle(a), nil
		}
	}
	return model.Article{}, ErrNotFound
}

// UpdateArticle merges the provided fields onto an existing article.
// Absent fields are preserved; PublishedAt is never touched.
func (s *MemoryStore) UpdateArticle(_ context.Context, id int64, arg UpdateArticleParams) (model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return model.Article{}, ErrNotFound
	}
	if arg.Title != nil {
		a.Title = *arg.Title
	}
	if arg.Content != nil {
		a.Content = *arg.Content
	}
	if arg.Excerpt != nil {
		a.Excerpt = *arg.Excerpt
	}
	if arg.ImageURL != nil {
		a.ImageURL = *arg.ImageURL
	}
	if arg.CategoryID != nil {
		a.CategoryID = *arg.CategoryID
	}
	if arg.Featured != nil {
		a.Featured = *arg.Featured
	}
	if arg.Tags != nil {
		a.Tags = append([]string(nil), (*arg.Tags)...)
	}
	if arg.ReadTime != nil {
		a.ReadTime = *arg.ReadTime
	}
	a.UpdatedAt = s.now()
	return cloneArticle(a), nil
}

// DeleteArticle removes an article. Deleting an absent article is a no-op.
func (s *MemoryStore) DeleteArticle(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.articles, id)
	return nil
}

// ArticleSlugExists reports whether a slug is already taken.
func (s *MemoryStore) ArticleSlugExists(_ context.Context, slug string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Slug == slug {
			return true
		}
	}
	return false
}

// sortedArticles returns copies of articles matching the filter, sorted
// by descending publish time with identifier as a tiebreaker so that
// pagination slices stay contiguous. Callers must hold at least the
// read lock.
func (s *MemoryStore) sortedArticles(filter func(*model.Article) bool) []model.Article {
	out := make([]model.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if filter == nil || filter(a) {
			out = append(out, cloneArticle(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// cloneArticle copies an article, detaching the tags slice so callers
// cannot mutate stored state.
func cloneArticle(a *model.Article) model.Article {
	out := *a
	out.Tags = append([]string(nil), a.Tags...)
	return out
}
