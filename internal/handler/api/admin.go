// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strings"

	"github.com/nouvelayiti/nouvel-go/internal/auth"
	"github.com/nouvelayiti/nouvel-go/internal/middleware"
	"github.com/nouvelayiti/nouvel-go/internal/model"
	"github.com/nouvelayiti/nouvel-go/internal/store"
)

// LoginRequest represents the admin login form.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
}

// CheckAuthResponse is the session probe response.
type CheckAuthResponse struct {
	Authenticated bool       `json:"authenticated"`
	User          model.User `json:"user"`
}

// authorID returns the id of the admin user on the request context, for
// stamping created content.
func authorID(r *http.Request) int64 {
	return middleware.GetUserID(r)
}

// Login handles POST /api/admin/login. Credentials are verified against
// the stored argon2id hash; the session token is rotated on success.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		WriteUnauthorized(w, "Invalid credentials")
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		h.logger.Warn("failed login attempt", "category", model.EventCategoryAuth, "username", req.Username, "ip", middleware.ClientIP(r))
		WriteUnauthorized(w, "Invalid credentials")
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		h.logger.Warn("failed login attempt", "category", model.EventCategoryAuth, "username", req.Username, "ip", middleware.ClientIP(r))
		WriteUnauthorized(w, "Invalid credentials")
		return
	}

	// Rotate the session token to prevent fixation.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		WriteInternalError(w, "Failed to establish session")
		return
	}
	h.sessions.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	h.logger.Info("admin login", "category", model.EventCategoryAuth, "user_id", user.ID)
	WriteSuccess(w, LoginResponse{Success: true, User: user}, nil)
}

// CheckAuth handles GET /api/admin/check-auth. It sits behind the admin
// guard, so reaching it means the session is valid.
func (h *Handler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}
	WriteSuccess(w, CheckAuthResponse{Authenticated: true, User: *user}, nil)
}

// Logout handles POST /api/admin/logout. Destroying an absent session is
// a no-op, so logout always succeeds.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		WriteInternalError(w, "Failed to destroy session")
		return
	}
	WriteSuccess(w, map[string]bool{"success": true}, nil)
}

// Dashboard handles GET /api/admin/dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.DashboardCounts(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to load dashboard")
		return
	}
	WriteSuccess(w, counts, nil)
}

// ListEvents handles GET /api/admin/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, store.DefaultListLimit)
	events, err := h.store.ListEvents(r.Context(), limit, offset)
	if err != nil {
		WriteInternalError(w, "Failed to list events")
		return
	}
	WriteSuccess(w, events, &Meta{Limit: limit, Offset: offset})
}

// ListContactMessages handles GET /api/admin/messages.
func (h *Handler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, store.DefaultListLimit)
	messages, err := h.store.ListContactMessages(r.Context(), limit, offset)
	if err != nil {
		WriteInternalError(w, "Failed to list messages")
		return
	}
	WriteSuccess(w, messages, &Meta{Limit: limit, Offset: offset})
}

// MarkMessageRead handles POST /api/admin/messages/{id}/read.
func (h *Handler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid message ID", nil)
		return
	}

	message, err := h.store.MarkContactMessageRead(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Message not found")
		} else {
			WriteInternalError(w, "Failed to mark message read")
		}
		return
	}
	WriteSuccess(w, message, nil)
}

// ListSubscribers handles GET /api/admin/subscribers.
func (h *Handler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, store.DefaultListLimit)
	subscribers, err := h.store.ListSubscribers(r.Context(), limit, offset)
	if err != nil {
		WriteInternalError(w, "Failed to list subscribers")
		return
	}
	WriteSuccess(w, subscribers, &Meta{Limit: limit, Offset: offset})
}
