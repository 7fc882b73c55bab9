// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import "testing"

func TestIsSupported(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"ht", true},
		{"fr", true},
		{"en", true},
		{"es", false},
		{"", false},
		{"HT", false},
	}

	for _, tt := range tests {
		if got := IsSupported(tt.code); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "ht"},
		{"exact french", "fr", "fr"},
		{"regional french", "fr-FR,fr;q=0.9", "fr"},
		{"english preferred", "en-US,en;q=0.9,fr;q=0.5", "en"},
		{"unsupported falls back", "de-DE", "ht"},
		{"garbage falls back", ";;;", "ht"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchLanguage(tt.header); got != tt.want {
				t.Errorf("MatchLanguage(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestTextGet(t *testing.T) {
	text := NewText("Nouvèl", "Nouvelles", "News")

	for _, tt := range []struct {
		lang string
		want string
	}{
		{"ht", "Nouvèl"},
		{"fr", "Nouvelles"},
		{"en", "News"},
	} {
		got, ok := text.Get(tt.lang)
		if !ok || got != tt.want {
			t.Errorf("Get(%q) = (%q, %v), want (%q, true)", tt.lang, got, ok, tt.want)
		}
	}

	if _, ok := text.Get("es"); ok {
		t.Error("Get with unknown language should report missing")
	}
	if _, ok := (Text{Fr: "seulement"}).Get("ht"); ok {
		t.Error("Get with empty variant should report missing")
	}
}

func TestTextGetSwitchingLanguageOnly(t *testing.T) {
	// Switching the active language changes only the resolved variant,
	// not the underlying record.
	text := NewText("Tit", "Titre", "Title")
	ht, _ := text.Get("ht")
	fr, _ := text.Get("fr")
	en, _ := text.Get("en")
	if ht == fr || fr == en {
		t.Fatal("expected distinct variants per language")
	}
	if text != NewText("Tit", "Titre", "Title") {
		t.Error("Get must not mutate the Text value")
	}
}

func TestTextResolve(t *testing.T) {
	tests := []struct {
		name string
		text Text
		lang string
		want string
	}{
		{"direct hit", NewText("a", "b", "c"), "fr", "b"},
		{"missing ht falls to fr", Text{Fr: "b", En: "c"}, "ht", "b"},
		{"missing fr falls to ht", Text{Ht: "a", En: "c"}, "fr", "a"},
		{"only english", Text{En: "c"}, "ht", "c"},
		{"empty text", Text{}, "en", ""},
		{"unknown language uses fallback order", NewText("a", "b", "c"), "de", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.Resolve(tt.lang); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestTextContainsFold(t *testing.T) {
	text := NewText(
		"Nouvo inisyativ pou agrikilti Ayiti",
		"Nouvelle initiative pour l'agriculture en Haïti",
		"New agriculture initiative for Haiti",
	)

	tests := []struct {
		query string
		want  bool
	}{
		{"agrikilti", true},
		{"AGRIKILTI", true},
		{"Agrikilti", true},
		{"agriculture", true},
		{"HAÏTI", true},
		{"football", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := text.ContainsFold(tt.query); got != tt.want {
			t.Errorf("ContainsFold(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestTextIsEmpty(t *testing.T) {
	if !(Text{}).IsEmpty() {
		t.Error("zero Text should be empty")
	}
	if (Text{En: "x"}).IsEmpty() {
		t.Error("Text with a variant should not be empty")
	}
}
