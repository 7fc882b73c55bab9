// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "strings"

// wordsPerMinute is the average adult reading speed used for estimates.
const wordsPerMinute = 200

// EstimateReadTime returns the estimated reading time of a text in whole
// minutes, with a minimum of 1 for non-empty text.
func EstimateReadTime(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
