package format

import (
	"strings"
	"unicode/utf8"
)

// TruncateText truncates text to maxLen runes with ellipsis
func TruncateText(text string, maxLen int) string {
	if maxLen <= 0 {
		return text
	}

	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Preview collapses line breaks to spaces and truncates to maxLen runes
func Preview(text string, maxLen int) string {
	return TruncateText(newlines.Replace(text), maxLen)
}
