package display

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxLen   int
		expected string
	}{
		{
			name:     "period line at width 10",
			text:     "Tonight: 45°F - Rain",
			maxLen:   10,
			expected: "Tonight:\n45°F -\nRain",
		},
		{
			name:     "long word is not split",
			text:     "Supercalifragilisticexpialidocious",
			maxLen:   10,
			expected: "Supercalifragilisticexpialidocious",
		},
		{
			name:     "long word gets its own line",
			text:     "a Supercalifragilisticexpialidocious b",
			maxLen:   10,
			expected: "a\nSupercalifragilisticexpialidocious\nb",
		},
		{
			name:     "empty",
			text:     "",
			maxLen:   10,
			expected: "",
		},
		{
			name:     "whitespace only",
			text:     "   \t ",
			maxLen:   10,
			expected: "",
		},
		{
			name:     "fits on one line",
			text:     "Tonight: 45°F - Rain",
			maxLen:   30,
			expected: "Tonight: 45°F - Rain",
		},
		{
			name:     "exact fit stays on one line",
			text:     "abcd efghi",
			maxLen:   10,
			expected: "abcd efghi",
		},
		{
			name:     "one over wraps",
			text:     "abcde efghi",
			maxLen:   10,
			expected: "abcde\nefghi",
		},
		{
			name:     "collapses repeated whitespace",
			text:     "  Slight   Chance\tRain  ",
			maxLen:   30,
			expected: "Slight Chance Rain",
		},
		{
			name:     "non-positive width puts each word on its own line",
			text:     "Rain Likely",
			maxLen:   0,
			expected: "Rain\nLikely",
		},
		{
			name:     "default width",
			text:     "Thursday Night: 28°F - Chance Light Snow then Mostly Cloudy",
			maxLen:   30,
			expected: "Thursday Night: 28°F - Chance\nLight Snow then Mostly Cloudy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WrapText(tt.text, tt.maxLen)
			if result != tt.expected {
				t.Errorf("WrapText(%q, %d) = %q, want %q", tt.text, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestWrapText_LinesWithinWidth(t *testing.T) {
	text := "Tonight: 45°F - Chance Rain And Snow Showers then Patchy Blowing Snow"

	for _, maxLen := range []int{10, 15, 20, 30} {
		for _, line := range strings.Split(WrapText(text, maxLen), "\n") {
			if utf8.RuneCountInString(line) > maxLen {
				t.Errorf("maxLen %d: line %q is %d runes", maxLen, line, utf8.RuneCountInString(line))
			}
			if strings.TrimSpace(line) != line {
				t.Errorf("maxLen %d: line %q has surrounding whitespace", maxLen, line)
			}
		}
	}
}
