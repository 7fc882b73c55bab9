// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		contains    string
		notContains string
	}{
		{
			name:     "heading",
			source:   "# Tit",
			contains: "<h1>Tit</h1>",
		},
		{
			name:     "emphasis",
			source:   "yon mo **enpòtan**",
			contains: "<strong>enpòtan</strong>",
		},
		{
			name:        "script stripped",
			source:      "bonjou <script>alert('x')</script>",
			contains:    "bonjou",
			notContains: "<script>",
		},
		{
			name:        "event handler stripped",
			source:      `<img src="a.jpg" onerror="alert(1)">`,
			notContains: "onerror",
		},
		{
			name:     "link kept",
			source:   "[lyen](https://example.ht)",
			contains: `href="https://example.ht"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Markdown(tt.source)
			if err != nil {
				t.Fatalf("Markdown() error: %v", err)
			}
			if tt.contains != "" && !strings.Contains(got, tt.contains) {
				t.Errorf("output %q does not contain %q", got, tt.contains)
			}
			if tt.notContains != "" && strings.Contains(got, tt.notContains) {
				t.Errorf("output %q should not contain %q", got, tt.notContains)
			}
		})
	}
}
