// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/model"
)

func TestListArticles(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/articles", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var articles []model.Article
	decodeData(t, rec, &articles)
	assert.NotEmpty(t, articles)
}

func TestListArticlesPagination(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/articles?limit=2&offset=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var first []model.Article
	decodeData(t, rec, &first)
	require.Len(t, first, 2)

	rec = app.do(t, http.MethodGet, "/articles?limit=2&offset=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var second []model.Article
	decodeData(t, rec, &second)

	for _, a := range second {
		assert.NotEqual(t, first[0].ID, a.ID)
		assert.NotEqual(t, first[1].ID, a.ID)
	}
}

func TestGetArticleBySlug(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/articles/nouvo-inisyativ-pou-agrikilti-ayiti", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var article model.Article
	decodeData(t, rec, &article)
	assert.Equal(t, "nouvo-inisyativ-pou-agrikilti-ayiti", article.Slug)

	title, ok := article.Title.Get(i18n.LangHaitian)
	require.True(t, ok)
	assert.Equal(t, "Nouvo inisyativ pou agrikilti Ayiti", title)
}

func TestGetArticleBySlugNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/articles/pa-egziste", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestGetArticleHTMLFormat(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/articles/nouvo-inisyativ-pou-agrikilti-ayiti?format=html", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var article ArticleHTMLResponse
	decodeData(t, rec, &article)
	assert.Contains(t, article.ContentHTML.Ht, "<p>")
}

func TestListFeaturedArticles(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/articles/featured", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var articles []model.Article
	decodeData(t, rec, &articles)
	require.NotEmpty(t, articles)
	for _, a := range articles {
		assert.True(t, a.Featured, "featured list returned non-featured article %d", a.ID)
	}
}

func TestSearchArticles(t *testing.T) {
	app := newTestApp(t)

	for _, q := range []string{"agrikilti", "AGRIKILTI", "Agrikilti"} {
		rec := app.do(t, http.MethodGet, "/articles/search?q="+q, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var articles []model.Article
		decodeData(t, rec, &articles)

		found := false
		for _, a := range articles {
			if a.Slug == "nouvo-inisyativ-pou-agrikilti-ayiti" {
				found = true
			}
		}
		assert.True(t, found, "query %q missed the seeded article", q)
	}
}

func TestSearchArticlesMissingQuery(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/articles/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListArticlesByCategoryInvalidID(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/articles/category/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRelatedArticles(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/articles/related/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var related []model.Article
	decodeData(t, rec, &related)
	for _, a := range related {
		assert.NotEqual(t, int64(1), a.ID, "related list must exclude the source article")
	}

	rec = app.do(t, http.MethodGet, "/articles/related/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminCreateArticle(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAdmin(t)

	req := CreateArticleRequest{
		Title:      i18n.NewText("Nouvèl tès", "Actualité test", "Test news"),
		Content:    i18n.NewText("kontni tès", "contenu test", "test content"),
		CategoryID: 1,
	}
	rec := app.do(t, http.MethodPost, "/admin/articles", req, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var article model.Article
	decodeData(t, rec, &article)
	assert.NotZero(t, article.ID)
	assert.Equal(t, "nouvel-tes", article.Slug)
	assert.NotZero(t, article.ReadTime)
	assert.False(t, article.PublishedAt.IsZero())
}

func TestAdminCreateArticleValidation(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAdmin(t)

	rec := app.do(t, http.MethodPost, "/admin/articles", CreateArticleRequest{}, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title")
	assert.Contains(t, rec.Body.String(), "content")
	assert.Contains(t, rec.Body.String(), "category_id")
}

func TestAdminCreateArticleDuplicateSlug(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAdmin(t)

	req := CreateArticleRequest{
		Title:      i18n.NewText("Doub", "Double", "Duplicate"),
		Content:    i18n.NewText("k", "c", "c"),
		Slug:       "nouvo-inisyativ-pou-agrikilti-ayiti",
		CategoryID: 1,
	}
	rec := app.do(t, http.MethodPost, "/admin/articles", req, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "slug")
}

func TestAdminUpdateArticle(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAdmin(t)

	newTitle := i18n.NewText("Chanje", "Changé", "Changed")
	rec := app.do(t, http.MethodPut, "/admin/articles/1", UpdateArticleRequest{Title: &newTitle}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var article model.Article
	decodeData(t, rec, &article)
	assert.Equal(t, newTitle, article.Title)

	rec = app.do(t, http.MethodPut, "/admin/articles/999", UpdateArticleRequest{Title: &newTitle}, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDeleteArticle(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAdmin(t)

	rec := app.do(t, http.MethodDelete, "/admin/articles/1", nil, cookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(t, http.MethodGet, "/admin/articles/1", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminArticlesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/admin/articles", CreateArticleRequest{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
