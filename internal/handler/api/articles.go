// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/model"
	"github.com/nouvelayiti/nouvel-go/internal/render"
	"github.com/nouvelayiti/nouvel-go/internal/store"
	"github.com/nouvelayiti/nouvel-go/internal/util"
)

// defaultHighlightLimit applies to the featured and popular subsets.
const defaultHighlightLimit = 3

// CreateArticleRequest represents the request body for creating an article.
type CreateArticleRequest struct {
	Title      i18n.Text `json:"title"`
	Content    i18n.Text `json:"content"`
	Excerpt    i18n.Text `json:"excerpt"`
	Slug       string    `json:"slug,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	CategoryID int64     `json:"category_id"`
	Featured   bool      `json:"featured"`
	Tags       []string  `json:"tags,omitempty"`
	ReadTime   int       `json:"read_time,omitempty"`
}

// UpdateArticleRequest represents the request body for updating an article.
// Absent fields are left unchanged; the publish time never changes.
type UpdateArticleRequest struct {
	Title      *i18n.Text `json:"title,omitempty"`
	Content    *i18n.Text `json:"content,omitempty"`
	Excerpt    *i18n.Text `json:"excerpt,omitempty"`
	ImageURL   *string    `json:"image_url,omitempty"`
	CategoryID *int64     `json:"category_id,omitempty"`
	Featured   *bool      `json:"featured,omitempty"`
	Tags       *[]string  `json:"tags,omitempty"`
	ReadTime   *int       `json:"read_time,omitempty"`
}

// ArticleHTMLResponse is an article with its markdown content rendered to
// sanitized HTML, returned when the client asks for format=html.
type ArticleHTMLResponse struct {
	model.Article
	ContentHTML i18n.Text `json:"content_html"`
}

// ListArticles handles GET /api/articles.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, store.DefaultListLimit)
	articles, err := h.store.ListArticles(r.Context(), limit, offset)
	if err != nil {
		WriteInternalError(w, "Failed to list articles")
		return
	}
	WriteSuccess(w, articles, &Meta{Limit: limit, Offset: offset})
}

// ListFeaturedArticles handles GET /api/articles/featured.
func (h *Handler) ListFeaturedArticles(w http.ResponseWriter, r *http.Request) {
	limit := ParseIntParam(r, "limit", defaultHighlightLimit, 1, maxListLimit)
	articles, err := h.store.ListFeaturedArticles(r.Context(), limit)
	if err != nil {
		WriteInternalError(w, "Failed to list featured articles")
		return
	}
	WriteSuccess(w, articles, nil)
}

// ListPopularArticles handles GET /api/articles/popular.
func (h *Handler) ListPopularArticles(w http.ResponseWriter, r *http.Request) {
	limit := ParseIntParam(r, "limit", defaultHighlightLimit, 1, maxListLimit)
	articles, err := h.store.ListPopularArticles(r.Context(), limit)
	if err != nil {
		WriteInternalError(w, "Failed to list popular articles")
		return
	}
	WriteSuccess(w, articles, nil)
}

// ListArticlesByCategory handles GET /api/articles/category/{categoryID}.
func (h *Handler) ListArticlesByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := ParseIDParam(r, "categoryID")
	if err != nil {
		WriteBadRequest(w, "Invalid category ID", nil)
		return
	}

	limit, offset := parseLimitOffset(r, store.DefaultListLimit)
	articles, err := h.store.ListArticlesByCategory(r.Context(), categoryID, limit, offset)
	if err != nil {
		WriteInternalError(w, "Failed to list articles")
		return
	}
	WriteSuccess(w, articles, &Meta{Limit: limit, Offset: offset})
}

// ListRelatedArticles handles GET /api/articles/related/{articleID}.
func (h *Handler) ListRelatedArticles(w http.ResponseWriter, r *http.Request) {
	articleID, err := ParseIDParam(r, "articleID")
	if err != nil {
		WriteBadRequest(w, "Invalid article ID", nil)
		return
	}

	limit := ParseIntParam(r, "limit", defaultHighlightLimit, 1, maxListLimit)
	articles, err := h.store.ListRelatedArticles(r.Context(), articleID, limit)
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Article not found")
		} else {
			WriteInternalError(w, "Failed to list related articles")
		}
		return
	}
	WriteSuccess(w, articles, nil)
}

// SearchArticles handles GET /api/articles/search.
func (h *Handler) SearchArticles(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		WriteBadRequest(w, "Missing search query", map[string]string{"q": "Query is required"})
		return
	}

	limit, offset := parseLimitOffset(r, store.DefaultListLimit)
	articles, err := h.store.SearchArticles(r.Context(), query, limit, offset)
	if err != nil {
		WriteInternalError(w, "Search failed")
		return
	}
	WriteSuccess(w, articles, &Meta{Limit: limit, Offset: offset})
}

// GetArticleBySlug handles GET /api/articles/{slug}. With format=html the
// markdown body of every language is rendered to sanitized HTML.
func (h *Handler) GetArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	article, err := h.store.GetArticleBySlug(r.Context(), slug)
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Article not found")
		} else {
			WriteInternalError(w, "Failed to retrieve article")
		}
		return
	}

	if r.URL.Query().Get("format") == "html" {
		html, err := renderContentHTML(article.Content)
		if err != nil {
			WriteInternalError(w, "Failed to render article")
			return
		}
		WriteSuccess(w, ArticleHTMLResponse{Article: article, ContentHTML: html}, nil)
		return
	}

	WriteSuccess(w, article, nil)
}

// renderContentHTML renders each language's markdown body.
func renderContentHTML(content i18n.Text) (i18n.Text, error) {
	var out i18n.Text
	var err error
	if out.Ht, err = render.Markdown(content.Ht); err != nil {
		return i18n.Text{}, err
	}
	if out.Fr, err = render.Markdown(content.Fr); err != nil {
		return i18n.Text{}, err
	}
	if out.En, err = render.Markdown(content.En); err != nil {
		return i18n.Text{}, err
	}
	return out, nil
}

// CreateArticle handles POST /api/admin/articles.
func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req CreateArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	fieldErrors := make(map[string]string)
	if req.Title.IsEmpty() {
		fieldErrors["title"] = "Title is required in at least one language"
	}
	if req.Content.IsEmpty() {
		fieldErrors["content"] = "Content is required in at least one language"
	}
	if req.CategoryID <= 0 {
		fieldErrors["category_id"] = "Category is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title.Resolve(i18n.DefaultLanguage))
	}
	if !util.IsValidSlug(slug) {
		WriteValidationError(w, map[string]string{"slug": "Invalid slug"})
		return
	}
	if h.store.ArticleSlugExists(r.Context(), slug) {
		WriteValidationError(w, map[string]string{"slug": "Slug already exists"})
		return
	}

	readTime := req.ReadTime
	if readTime <= 0 {
		readTime = util.EstimateReadTime(req.Content.Resolve(i18n.DefaultLanguage))
	}

	article, err := h.store.CreateArticle(r.Context(), store.CreateArticleParams{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		Slug:       slug,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
		AuthorID:   authorID(r),
		Featured:   req.Featured,
		Tags:       req.Tags,
		ReadTime:   readTime,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create article")
		return
	}

	h.logger.Info("article created", "category", "content", "id", article.ID, "slug", article.Slug)
	WriteCreated(w, article)
}

// GetArticle handles GET /api/admin/articles/{id}.
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid article ID", nil)
		return
	}

	article, err := h.store.GetArticleByID(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Article not found")
		} else {
			WriteInternalError(w, "Failed to retrieve article")
		}
		return
	}
	WriteSuccess(w, article, nil)
}

// UpdateArticle handles PUT /api/admin/articles/{id}.
func (h *Handler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid article ID", nil)
		return
	}

	var req UpdateArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	article, err := h.store.UpdateArticle(r.Context(), id, store.UpdateArticleParams{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
		Featured:   req.Featured,
		Tags:       req.Tags,
		ReadTime:   req.ReadTime,
	})
	if err != nil {
		if isNotFound(err) {
			WriteNotFound(w, "Article not found")
		} else {
			WriteInternalError(w, "Failed to update article")
		}
		return
	}
	WriteSuccess(w, article, nil)
}

// DeleteArticle handles DELETE /api/admin/articles/{id}.
func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r, "id")
	if err != nil {
		WriteBadRequest(w, "Invalid article ID", nil)
		return
	}

	if err := h.store.DeleteArticle(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete article")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
