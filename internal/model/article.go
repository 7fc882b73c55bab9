// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the
// application including Article, Category, Media, Poll and User structures.
package model

import (
	"time"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
)

// Article represents a published news article with trilingual content.
type Article struct {
	ID           int64     `json:"id"`
	Title        i18n.Text `json:"title"`
	Content      i18n.Text `json:"content"`
	Excerpt      i18n.Text `json:"excerpt"`
	Slug         string    `json:"slug"`
	ImageURL     string    `json:"image_url,omitempty"`
	CategoryID   int64     `json:"category_id"`
	AuthorID     int64     `json:"author_id"`
	Featured     bool      `json:"featured"`
	Tags         []string  `json:"tags"`
	ReadTime     int       `json:"read_time"`
	ViewCount    int64     `json:"view_count"`
	CommentCount int64     `json:"comment_count"`
	PublishedAt  time.Time `json:"published_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasTag returns true if the article carries the given tag.
func (a *Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Matches returns true if any localized title or content field contains
// the query as a case-insensitive substring.
func (a *Article) Matches(query string) bool {
	return a.Title.ContainsFold(query) || a.Content.ContainsFold(query)
}
