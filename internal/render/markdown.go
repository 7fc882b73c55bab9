// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render converts article markdown into HTML safe for embedding.
package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer uses bluemonday's UGCPolicy, which allows safe HTML tags
// for user-generated content while stripping dangerous elements like
// <script> and event handlers.
var htmlSanitizer = bluemonday.UGCPolicy()

// Markdown converts markdown source to sanitized HTML. Editors write
// article bodies in markdown; clients that ask for format=html receive
// this output.
func Markdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}
