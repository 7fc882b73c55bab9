// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n provides trilingual content support for the news site.
// Every localized field is stored as a Text value carrying its Haitian
// Creole, French and English variants side by side.
package i18n

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language codes for site content.
const (
	LangHaitian = "ht"
	LangFrench  = "fr"
	LangEnglish = "en"
)

// DefaultLanguage is used when no language preference is available.
const DefaultLanguage = LangHaitian

// SupportedLanguages lists the content languages in fallback order.
var SupportedLanguages = []string{LangHaitian, LangFrench, LangEnglish}

var (
	supportedTags = []language.Tag{
		language.MustParse(LangHaitian),
		language.MustParse(LangFrench),
		language.MustParse(LangEnglish),
	}
	matcher = language.NewMatcher(supportedTags)
	folder  = cases.Fold()
)

// IsSupported reports whether code is a supported content language.
func IsSupported(code string) bool {
	for _, lang := range SupportedLanguages {
		if lang == code {
			return true
		}
	}
	return false
}

// MatchLanguage resolves an Accept-Language header value to a supported
// language code. Returns DefaultLanguage when the header is empty or
// matches nothing.
func MatchLanguage(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLanguage
	}
	return SupportedLanguages[index]
}

// Text holds the per-language variants of a localized field.
type Text struct {
	Ht string `json:"ht"`
	Fr string `json:"fr"`
	En string `json:"en"`
}

// NewText builds a Text from the variants in supported-language order.
func NewText(ht, fr, en string) Text {
	return Text{Ht: ht, Fr: fr, En: en}
}

// Get returns the variant for the given language. The second return value
// is false when the language is unknown or the variant is empty, making a
// missing translation an explicit, observable condition.
func (t Text) Get(lang string) (string, bool) {
	var s string
	switch lang {
	case LangHaitian:
		s = t.Ht
	case LangFrench:
		s = t.Fr
	case LangEnglish:
		s = t.En
	default:
		return "", false
	}
	if s == "" {
		return "", false
	}
	return s, true
}

// Resolve returns the variant for the given language, falling back through
// the supported languages in order. Returns the empty string only when no
// variant is populated at all.
func (t Text) Resolve(lang string) string {
	if s, ok := t.Get(lang); ok {
		return s
	}
	for _, fallback := range SupportedLanguages {
		if fallback == lang {
			continue
		}
		if s, ok := t.Get(fallback); ok {
			return s
		}
	}
	return ""
}

// IsEmpty reports whether no variant is populated.
func (t Text) IsEmpty() bool {
	return t.Ht == "" && t.Fr == "" && t.En == ""
}

// ContainsFold reports whether any variant contains the query as a
// case-insensitive substring, using Unicode case folding.
func (t Text) ContainsFold(query string) bool {
	if query == "" {
		return false
	}
	q := folder.String(query)
	for _, s := range []string{t.Ht, t.Fr, t.En} {
		if s == "" {
			continue
		}
		if strings.Contains(folder.String(s), q) {
			return true
		}
	}
	return false
}
