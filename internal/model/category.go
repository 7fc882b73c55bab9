// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
)

// Category represents a news section (e.g. politics, sports, culture).
// The slug is immutable after creation and is the public lookup key.
type Category struct {
	ID        int64     `json:"id"`
	Name      i18n.Text `json:"name"`
	Slug      string    `json:"slug"`
	Icon      string    `json:"icon,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
