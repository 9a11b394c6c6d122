package cmd

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"short unchanged", "Network Technician", 40, "Network Technician"},
		{"exact length unchanged", strings.Repeat("x", 40), 40, strings.Repeat("x", 40)},
		{"long ASCII cut", strings.Repeat("x", 41), 40, strings.Repeat("x", 37) + "..."},
		{"multibyte cut on rune boundary", strings.Repeat("é", 30), 24, strings.Repeat("é", 21) + "..."},
		{"mixed width cut", "Опытный сетевой инженер со стажем десять лет", 40, "Опытный сетевой инженер со стажем дес..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.n)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate produced invalid UTF-8: %q", got)
			}
			if got := utf8.RuneCountInString(got); got > tt.n {
				t.Errorf("rune count = %d, want at most %d", got, tt.n)
			}
		})
	}
}
