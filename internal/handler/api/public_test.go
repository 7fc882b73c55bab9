// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nouvelayiti/nouvel-go/internal/model"
)

func TestSubscribe(t *testing.T) {
	app := newTestApp(t)

	req := SubscribeRequest{Name: "Woselor", Email: "woselor@example.ht", PreferredLanguage: "fr"}
	rec := app.do(t, http.MethodPost, "/subscribe", req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var sub model.Subscriber
	decodeData(t, rec, &sub)
	assert.Equal(t, "fr", sub.PreferredLanguage)

	// Same email again returns the existing subscription.
	again := SubscribeRequest{Name: "Lòt Non", Email: "WOSELOR@EXAMPLE.HT"}
	rec = app.do(t, http.MethodPost, "/subscribe", again)
	require.Equal(t, http.StatusCreated, rec.Code)

	var dup model.Subscriber
	decodeData(t, rec, &dup)
	assert.Equal(t, sub.ID, dup.ID)
	assert.Equal(t, "Woselor", dup.Name)
}

func TestSubscribeValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   SubscribeRequest
		field string
	}{
		{"missing name", SubscribeRequest{Email: "a@b.ht"}, "name"},
		{"missing email", SubscribeRequest{Name: "Jan"}, "email"},
		{"bad email", SubscribeRequest{Name: "Jan", Email: "pa-yon-imel"}, "email"},
		{"bad language", SubscribeRequest{Name: "Jan", Email: "a@b.ht", PreferredLanguage: "de"}, "preferred_language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			rec := app.do(t, http.MethodPost, "/subscribe", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.field)
		})
	}
}

func TestSubscribeDefaultLanguage(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/subscribe", SubscribeRequest{Name: "Jan", Email: "jan@b.ht"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var sub model.Subscriber
	decodeData(t, rec, &sub)
	assert.Equal(t, "ht", sub.PreferredLanguage)

	// Without an explicit preference the Accept-Language header decides.
	body, err := json.Marshal(SubscribeRequest{Name: "Marie", Email: "marie@b.ht"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/subscribe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	decodeData(t, rec, &sub)
	assert.Equal(t, "fr", sub.PreferredLanguage)
}

func TestContact(t *testing.T) {
	app := newTestApp(t)

	req := ContactRequest{Name: "Jan", Email: "jan@example.ht", Subject: "Bonjou", Message: "Mwen renmen sit la."}
	rec := app.do(t, http.MethodPost, "/contact", req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var msg model.ContactMessage
	decodeData(t, rec, &msg)
	assert.False(t, msg.Read)
	assert.NotZero(t, msg.ID)
}

func TestContactValidation(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/contact", ContactRequest{Email: "jan@example.ht"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "name")
	assert.Contains(t, body, "subject")
	assert.Contains(t, body, "message")
}

func TestMediaTypeFilterAPI(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/media?type=photo", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var media []model.Media
	decodeData(t, rec, &media)
	for _, m := range media {
		assert.Equal(t, model.MediaTypePhoto, m.Type)
	}

	rec = app.do(t, http.MethodGet, "/media?type=hologram", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
