// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store implements the content repository. The site runs entirely
// from process memory: every entity lives in a map guarded by a single
// RWMutex, identifiers are monotonic per entity type and never reused,
// and all data is lost on restart. Handlers receive the Store interface
// so the backend stays swappable.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nouvelayiti/nouvel-go/internal/model"
)

// ErrNotFound signals absence on read paths. The route layer translates
// it into a 404; the store never treats a miss as an internal failure.
var ErrNotFound = errors.New("store: not found")

// DefaultListLimit is applied when a caller passes a non-positive limit.
const DefaultListLimit = 10

// Store is the repository contract used by the route layer.
type Store interface {
	// Categories
	CreateCategory(ctx context.Context, arg CreateCategoryParams) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (model.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (model.Category, error)
	UpdateCategory(ctx context.Context, id int64, arg UpdateCategoryParams) (model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	CategorySlugExists(ctx context.Context, slug string) bool

	// Articles
	CreateArticle(ctx context.Context, arg CreateArticleParams) (model.Article, error)
	ListArticles(ctx context.Context, limit, offset int) ([]model.Article, error)
	ListFeaturedArticles(ctx context.Context, limit int) ([]model.Article, error)
	ListPopularArticles(ctx context.Context, limit int) ([]model.Article, error)
	ListArticlesByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]model.Article, error)
	ListRelatedArticles(ctx context.Context, articleID int64, limit int) ([]model.Article, error)
	SearchArticles(ctx context.Context, query string, limit, offset int) ([]model.Article, error)
	GetArticleByID(ctx context.Context, id int64) (model.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (model.Article, error)
	UpdateArticle(ctx context.Context, id int64, arg UpdateArticleParams) (model.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
	ArticleSlugExists(ctx context.Context, slug string) bool

	// Media
	CreateMedia(ctx context.Context, arg CreateMediaParams) (model.Media, error)
	ListMedia(ctx context.Context, mediaType string, limit, offset int) ([]model.Media, error)
	GetMediaByID(ctx context.Context, id int64) (model.Media, error)
	UpdateMedia(ctx context.Context, id int64, arg UpdateMediaParams) (model.Media, error)
	DeleteMedia(ctx context.Context, id int64) error

	// Polls
	CreatePoll(ctx context.Context, arg CreatePollParams) (model.Poll, []model.PollOption, error)
	ListActivePolls(ctx context.Context, limit int) ([]model.Poll, error)
	ListPolls(ctx context.Context, limit, offset int) ([]model.Poll, error)
	GetPollByID(ctx context.Context, id int64) (model.Poll, error)
	GetPollOptions(ctx context.Context, pollID int64) ([]model.PollOption, error)
	UpdatePoll(ctx context.Context, id int64, arg UpdatePollParams) (model.Poll, error)
	DeletePoll(ctx context.Context, id int64) error
	CreatePollResponse(ctx context.Context, arg CreatePollResponseParams) (model.PollResponse, error)
	PollResults(ctx context.Context, pollID int64) (map[int64]int64, error)
	DeactivateExpiredPolls(ctx context.Context, now time.Time) (int, error)

	// Subscribers and contact messages
	CreateSubscriber(ctx context.Context, arg CreateSubscriberParams) (model.Subscriber, error)
	ListSubscribers(ctx context.Context, limit, offset int) ([]model.Subscriber, error)
	CreateContactMessage(ctx context.Context, arg CreateContactMessageParams) (model.ContactMessage, error)
	ListContactMessages(ctx context.Context, limit, offset int) ([]model.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id int64) (model.ContactMessage, error)

	// Users
	CreateUser(ctx context.Context, arg CreateUserParams) (model.User, error)
	GetUserByID(ctx context.Context, id int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	// Events
	CreateEvent(ctx context.Context, arg CreateEventParams) (model.Event, error)
	ListEvents(ctx context.Context, limit, offset int) ([]model.Event, error)
	PruneEventsBefore(ctx context.Context, cutoff time.Time) (int, error)

	// Dashboard
	DashboardCounts(ctx context.Context) (Counts, error)
}

// Counts aggregates entity totals for the admin dashboard.
type Counts struct {
	Articles       int64 `json:"articles"`
	Categories     int64 `json:"categories"`
	Media          int64 `json:"media"`
	Polls          int64 `json:"polls"`
	Subscribers    int64 `json:"subscribers"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unread_messages"`
}

// MemoryStore is the in-memory Store implementation.
type MemoryStore struct {
	mu sync.RWMutex

	categories    map[int64]*model.Category
	articles      map[int64]*model.Article
	media         map[int64]*model.Media
	polls         map[int64]*model.Poll
	pollOptions   map[int64]*model.PollOption
	pollResponses map[int64]*model.PollResponse
	subscribers   map[int64]*model.Subscriber
	messages      map[int64]*model.ContactMessage
	users         map[int64]*model.User
	events        map[int64]*model.Event

	// Per-entity sequence counters. Monotonic for the process lifetime,
	// never reused after deletes.
	seq map[string]int64

	now func() time.Time
}

// Sequence names, one counter per entity family.
const (
	seqCategory     = "category"
	seqArticle      = "article"
	seqMedia        = "media"
	seqPoll         = "poll"
	seqPollOption   = "poll_option"
	seqPollResponse = "poll_response"
	seqSubscriber   = "subscriber"
	seqMessage      = "message"
	seqUser         = "user"
	seqEvent        = "event"
)

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{
		categories:    make(map[int64]*model.Category),
		articles:      make(map[int64]*model.Article),
		media:         make(map[int64]*model.Media),
		polls:         make(map[int64]*model.Poll),
		pollOptions:   make(map[int64]*model.PollOption),
		pollResponses: make(map[int64]*model.PollResponse),
		subscribers:   make(map[int64]*model.Subscriber),
		messages:      make(map[int64]*model.ContactMessage),
		users:         make(map[int64]*model.User),
		events:        make(map[int64]*model.Event),
		seq:           make(map[string]int64),
		now:           time.Now,
	}
}

// nextID returns the next identifier for an entity family.
// Callers must hold the write lock.
func (s *MemoryStore) nextID(entity string) int64 {
	s.seq[entity]++
	return s.seq[entity]
}

// clampPage normalizes limit/offset: non-positive limits fall back to
// DefaultListLimit, negative offsets to zero.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// paginate slices a pre-sorted result set by [offset, offset+limit).
func paginate[T any](items []T, limit, offset int) []T {
	limit, offset = clampPage(limit, offset)
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
