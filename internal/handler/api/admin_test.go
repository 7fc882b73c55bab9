// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nouvelayiti/nouvel-go/internal/auth"
	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/model"
	"github.com/nouvelayiti/nouvel-go/internal/store"
)

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/admin/login", LoginRequest{Username: "admin", Password: testAdminPassword})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp LoginResponse
	decodeData(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "admin", resp.User.Username)
	// The hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "argon2id")
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/admin/login", LoginRequest{Username: "admin", Password: "move-modpas"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/admin/login", LoginRequest{Username: "pa-la", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckAuth(t *testing.T) {
	app := newTestApp(t)

	// Without a session.
	rec := app.do(t, http.MethodGet, "/admin/check-auth", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// With a session.
	cookie := app.loginAdmin(t)
	rec = app.do(t, http.MethodGet, "/admin/check-auth", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CheckAuthResponse
	decodeData(t, rec, &resp)
	assert.True(t, resp.Authenticated)
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAdmin(t)

	rec := app.do(t, http.MethodPost, "/admin/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// The old session no longer works.
	rec = app.do(t, http.MethodGet, "/admin/check-auth", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEditorRoleForbidden(t *testing.T) {
	app := newTestApp(t)

	hash, err := auth.HashPassword("editè-modpas")
	require.NoError(t, err)
	_, err = app.store.CreateUser(context.Background(), store.CreateUserParams{
		Username: "editè", Email: "e@test.ht", PasswordHash: hash, Role: model.RoleEditor,
	})
	require.NoError(t, err)

	cookie := app.loginAs(t, "editè", "editè-modpas")
	rec := app.do(t, http.MethodGet, "/admin/dashboard", nil, cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDashboard(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAdmin(t)

	rec := app.do(t, http.MethodGet, "/admin/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var counts store.Counts
	decodeData(t, rec, &counts)
	assert.Equal(t, int64(4), counts.Articles)
	assert.Equal(t, int64(4), counts.Categories)
}

func TestAdminMessages(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAdmin(t)

	rec := app.do(t, http.MethodPost, "/contact", ContactRequest{
		Name: "Jan", Email: "jan@example.ht", Subject: "Bonjou", Message: "Mèsi.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var msg model.ContactMessage
	decodeData(t, rec, &msg)

	rec = app.do(t, http.MethodGet, "/admin/messages", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var messages []model.ContactMessage
	decodeData(t, rec, &messages)
	require.Len(t, messages, 1)

	rec = app.do(t, http.MethodPost, fmt.Sprintf("/admin/messages/%d/read", msg.ID), nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var read model.ContactMessage
	decodeData(t, rec, &read)
	assert.True(t, read.Read)

	rec = app.do(t, http.MethodPost, "/admin/messages/999/read", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminSubscribers(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAdmin(t)

	rec := app.do(t, http.MethodPost, "/subscribe", SubscribeRequest{Name: "Jan", Email: "jan@b.ht"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodGet, "/admin/subscribers", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var subs []model.Subscriber
	decodeData(t, rec, &subs)
	require.Len(t, subs, 1)
	// Unsubscribe tokens stay internal.
	assert.NotContains(t, rec.Body.String(), "unsubscribe_token")
}

func TestAdminEvents(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAdmin(t)

	_, err := app.store.CreateEvent(context.Background(), store.CreateEventParams{
		Level: model.EventLevelWarning, Category: model.EventCategorySystem, Message: "tès",
	})
	require.NoError(t, err)

	rec := app.do(t, http.MethodGet, "/admin/events", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var events []model.Event
	decodeData(t, rec, &events)
	require.NotEmpty(t, events)
}

func TestAdminMediaCRUD(t *testing.T) {
	app := newTestApp(t)
	cookie := app.loginAdmin(t)

	// Unauthenticated create is rejected.
	rec := app.do(t, http.MethodPost, "/admin/media", CreateMediaRequest{})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	create := CreateMediaRequest{
		Title: i18n.NewText("Foto tès", "Photo test", "Test photo"),
		Type:  model.MediaTypePhoto,
		URL:   "https://example.ht/foto.jpg",
	}
	rec = app.do(t, http.MethodPost, "/admin/media", create, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var media model.Media
	decodeData(t, rec, &media)

	badType := "hologram"
	rec = app.do(t, http.MethodPut, fmt.Sprintf("/admin/media/%d", media.ID), UpdateMediaRequest{Type: &badType}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodDelete, fmt.Sprintf("/admin/media/%d", media.ID), nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
