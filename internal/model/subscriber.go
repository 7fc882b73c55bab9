// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Subscriber represents a newsletter signup. Email is unique
// (case-insensitive); repeated signups return the existing record.
type Subscriber struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	PreferredLanguage string    `json:"preferred_language"`
	UnsubscribeToken  string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
}

// ContactMessage represents a message submitted through the contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
