package util

import (
	"strings"
	"testing"
)

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single word", "bonjou", 1},
		{"under a minute", strings.Repeat("mo ", 150), 1},
		{"exactly one minute", strings.Repeat("mo ", 200), 1},
		{"two minutes", strings.Repeat("mo ", 350), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateReadTime(tt.text); got != tt.want {
				t.Errorf("EstimateReadTime() = %d, want %d", got, tt.want)
			}
		})
	}
}
