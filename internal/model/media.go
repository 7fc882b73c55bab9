// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
)

// Media types
const (
	MediaTypePhoto   = "photo"
	MediaTypeVideo   = "video"
	MediaTypePodcast = "podcast"
)

// IsValidMediaType returns true if t is a known media type.
func IsValidMediaType(t string) bool {
	return t == MediaTypePhoto || t == MediaTypeVideo || t == MediaTypePodcast
}

// Media represents a gallery item: a photo, video or podcast episode.
type Media struct {
	ID           int64     `json:"id"`
	Title        i18n.Text `json:"title"`
	Description  i18n.Text `json:"description"`
	Type         string    `json:"type"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	PublishedAt  time.Time `json:"published_at"`
}
