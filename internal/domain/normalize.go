package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeBody prepares comment text for storage and duplicate comparison:
//   - converts to Unicode NFC, so composed and decomposed accents compare equal
//   - trims leading/trailing whitespace
//   - compresses runs of spaces and tabs within a line into one space
//
// Case and line breaks are preserved.
func NormalizeBody(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r != '\n' && unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}

	return b.String()
}
