package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "sub second", duration: 250 * time.Millisecond, expected: "250ms"},
		{name: "zero", duration: 0, expected: "0ms"},
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestPlural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		expected string
	}{
		{n: 0, expected: "rows"},
		{n: 1, expected: "row"},
		{n: 7, expected: "rows"},
	}

	for _, tt := range tests {
		if got := Plural(tt.n, "row"); got != tt.expected {
			t.Fatalf("Plural(%d) = %s, want %s", tt.n, got, tt.expected)
		}
	}
}
