package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncateRunesHelper(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		max    int
		suffix string
		want   string
	}{
		{"zero max", "hello", 0, "…", ""},
		{"fits", "hello", 10, "…", "hello"},
		{"ascii", "Wisdom Village", 8, "…", "Wisdom …"},
		{"wide runes", "日本語タイトル", 7, "…", "日本語…"},
		{"suffix wider than max", "hello", 1, "...", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunesHelper(tt.input, tt.max, tt.suffix)
			if got != tt.want {
				t.Errorf("truncateRunesHelper(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
			if w := runewidth.StringWidth(got); w > tt.max {
				t.Errorf("width %d exceeds %d", w, tt.max)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("日本", 6); runewidth.StringWidth(got) != 6 {
		t.Errorf("padRight width = %d, want 6", runewidth.StringWidth(got))
	}
	if got := padRight("toolong", 3); got != "toolong" {
		t.Errorf("padRight should not cut, got %q", got)
	}
}

func TestMeter(t *testing.T) {
	tests := []struct {
		value, limit float64
		width        int
		filled       int
	}{
		{50, 100, 10, 5},
		{150, 100, 10, 10},
		{0, 100, 10, 0},
		{0.1, 100, 10, 1},
		{10, 0, 10, 0},
	}
	for _, tt := range tests {
		got := meter(tt.value, tt.limit, tt.width)
		if n := strings.Count(got, "█"); n != tt.filled {
			t.Errorf("meter(%v, %v) filled %d, want %d", tt.value, tt.limit, n, tt.filled)
		}
		if n := len([]rune(got)); n != tt.width {
			t.Errorf("meter(%v, %v) width %d, want %d", tt.value, tt.limit, n, tt.width)
		}
	}
	if meter(5, 10, 0) != "" {
		t.Error("zero width meter should be empty")
	}
}

func TestClampInt(t *testing.T) {
	if clampInt(-1, 0, 4) != 0 || clampInt(9, 0, 4) != 4 || clampInt(2, 0, 4) != 2 {
		t.Error("clampInt out of bounds")
	}
}
