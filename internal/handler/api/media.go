// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/model"
	"github.com/nouvelayiti/nouvel-go/internal/store"
)

// CreateMediaRequest represents the request body for creating a media item.
type CreateMediaRequest struct {
	Title        i18n.Text `json:"title"`
	Description  i18n.Text `json:"description"`
	Type         string    `json:"type"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
}

// UpdateMediaRequest represents the request body for updating a media item.
type UpdateMediaRequest struct {
	Title        *i18n.Text `json:"title,omitempty"`
	Description  *i18n.Text `json:"description,omitempty"`
	Type         *string    `json:"type,omitempty"`
	URL          *string    `json:"url,omitempty"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty"`
}

// ListMedia handles GET /api/media. The type query parameter filters by
// media kind (photo, video, podcast).
func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	mediaType := r.URL.Query().Get("type")
	if mediaType != "" && !model.IsValidMediaType(mediaType) {
		WriteBadRequest(w, "Invalid media type", map[string]string{"type": "Must be photo, video or podcast"})
		return
	}

	limit, offset := parseLimitOffset(r, store.DefaultListLimit)
	media, err := h.store.ListMedia(r.Context(), mediaType, limit, offset)
	if err != nil {
		WriteInternalError(w, "Failed to list media")
		return
	}
	WriteSuccess(w, media, &Meta{Limit: limit, Offset: offset})
}

// CreateMedia handles POST /api/admin/media.
func (h *Handler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	var req CreateMediaRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	fieldErrors := make(map[string]string)
	if req.Title.IsEmpty() {
		fieldErrors["title"] = "Title is required in at least one language"
	}
	if !model.IsValidMediaType(req.Type) {
		fieldErrors["type"] = "Must be photo, video or podcast"
	}
	if req.URL == "" {
		fieldErrors["url"] = "URL is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	media, err := h.store.CreateMedia(r.Context(), store.CreateMediaParams{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create media")
		return
	}

	h.logger.Info("media created", "category", "content", "id", media.ID, "type", media.Type)
	WriteCreated(w, media)
}

// GetMedia handles GET /api/admin/media/{id}.
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid media ID", nil)
		return
	}

	media, err := h.store.GetMediaByID(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Media not found")
		} else {
			WriteInternalError(w, "Failed to retrieve media")
		}
		return
	}
	WriteSuccess(w, media, nil)
}

// UpdateMedia handles PUT /api/admin/media/{id}.
func (h *Handler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid media ID", nil)
		return
	}

	var req UpdateMediaRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Type != nil && !model.IsValidMediaType(*req.Type) {
		WriteValidationError(w, map[string]string{"type": "Must be photo, video or podcast"})
		return
	}

	media, err := h.store.UpdateMedia(r.Context(), id, store.UpdateMediaParams{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Media not found")
		} else {
			WriteInternalError(w, "Failed to update media")
		}
		return
	}
	WriteSuccess(w, media, nil)
}

// DeleteMedia handles DELETE /api/admin/media/{id}.
func (h *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid media ID", nil)
		return
	}

	if err := h.store.DeleteMedia(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete media")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
