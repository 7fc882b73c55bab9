// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/store"
)

// SubscribeRequest represents the newsletter signup form.
type SubscribeRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	PreferredLanguage string `json:"preferred_language,omitempty"`
}

// ContactRequest represents the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// Subscribe handles POST /api/subscribe. Repeated signups with the same
// email return the existing subscription rather than erroring.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	fieldErrors := make(map[string]string)
	if req.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if !validEmail(req.Email) {
		fieldErrors["email"] = "A valid email is required"
	}
	lang := req.PreferredLanguage
	if lang == "" {
		lang = i18n.MatchLanguage(r.Header.Get("Accept-Language"))
	} else if !i18n.IsSupported(lang) {
		fieldErrors["preferred_language"] = "Unsupported language"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	subscriber, err := h.store.CreateSubscriber(r.Context(), store.CreateSubscriberParams{
		Name:              req.Name,
		Email:             req.Email,
		PreferredLanguage: lang,
	})
	if err != nil {
		WriteInternalError(w, "Failed to subscribe")
		return
	}

	WriteCreated(w, subscriber)
}

// Contact handles POST /api/contact.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	fieldErrors := make(map[string]string)
	if req.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if !validEmail(req.Email) {
		fieldErrors["email"] = "A valid email is required"
	}
	if req.Subject == "" {
		fieldErrors["subject"] = "Subject is required"
	}
	if req.Message == "" {
		fieldErrors["message"] = "Message is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	message, err := h.store.CreateContactMessage(r.Context(), store.CreateContactMessageParams{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		WriteInternalError(w, "Failed to send message")
		return
	}

	WriteCreated(w, message)
}
