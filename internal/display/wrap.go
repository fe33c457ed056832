package display

import (
	"strings"
	"unicode/utf8"
)

// WrapText greedily packs the whitespace-separated words of text into lines of
// at most maxLen runes, joined by "\n". A word is only moved to the next line
// when the line plus a separating space plus the word would exceed maxLen, so
// no emitted line carries a trailing space. Words longer than maxLen are
// emitted on their own line unsplit. A maxLen of zero or less puts every word
// on its own line.
func WrapText(text string, maxLen int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	lines := make([]string, 0, len(words))
	line := words[0]
	lineLen := utf8.RuneCountInString(line)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if maxLen > 0 && lineLen+1+wordLen <= maxLen {
			line += " " + word
			lineLen += 1 + wordLen
			continue
		}
		lines = append(lines, line)
		line = word
		lineLen = wordLen
	}
	lines = append(lines, line)

	return strings.Join(lines, "\n")
}
