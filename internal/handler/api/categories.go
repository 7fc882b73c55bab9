// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/store"
	"github.com/nouvelayiti/nouvel-go/internal/util"
)

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name  i18n.Text `json:"name"`
	Slug  string    `json:"slug,omitempty"`
	Icon  string    `json:"icon,omitempty"`
	Color string    `json:"color,omitempty"`
}

// UpdateCategoryRequest represents the request body for updating a category.
// The slug is immutable and not part of the update surface.
type UpdateCategoryRequest struct {
	Name  *i18n.Text `json:"name,omitempty"`
	Icon  *string    `json:"icon,omitempty"`
	Color *string    `json:"color,omitempty"`
}

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list categories")
		return
	}
	WriteSuccess(w, categories, nil)
}

// GetCategoryBySlug handles GET /api/categories/{slug}.
func (h *Handler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	category, err := h.store.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Category not found")
		} else {
			WriteInternalError(w, "Failed to retrieve category")
		}
		return
	}
	WriteSuccess(w, category, nil)
}

// CreateCategory handles POST /api/admin/categories.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if req.Name.IsEmpty() {
		WriteValidationError(w, map[string]string{"name": "Name is required in at least one language"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Name.Resolve(i18n.DefaultLanguage))
	}
	if !util.IsValidSlug(slug) {
		WriteValidationError(w, map[string]string{"slug": "Invalid slug"})
		return
	}
	if h.store.CategorySlugExists(r.Context(), slug) {
		WriteValidationError(w, map[string]string{"slug": "Slug already exists"})
		return
	}

	category, err := h.store.CreateCategory(r.Context(), store.CreateCategoryParams{
		Name:  req.Name,
		Slug:  slug,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create category")
		return
	}

	h.logger.Info("category created", "category", "content", "id", category.ID, "slug", category.Slug)
	WriteCreated(w, category)
}

// GetCategory handles GET /api/admin/categories/{id}.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid category ID", nil)
		return
	}

	category, err := h.store.GetCategoryByID(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Category not found")
		} else {
			WriteInternalError(w, "Failed to retrieve category")
		}
		return
	}
	WriteSuccess(w, category, nil)
}

// UpdateCategory handles PUT /api/admin/categories/{id}.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid category ID", nil)
		return
	}

	var req UpdateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Name != nil && req.Name.IsEmpty() {
		WriteValidationError(w, map[string]string{"name": "Name cannot be cleared"})
		return
	}

	category, err := h.store.UpdateCategory(r.Context(), id, store.UpdateCategoryParams{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Category not found")
		} else {
			WriteInternalError(w, "Failed to update category")
		}
		return
	}
	WriteSuccess(w, category, nil)
}

// DeleteCategory handles DELETE /api/admin/categories/{id}.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid category ID", nil)
		return
	}

	if err := h.store.DeleteCategory(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
