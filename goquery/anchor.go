package goquery

import (
	"strings"
	"unicode"
)

// GenerateAnchor creates a URL-safe fragment from a heading title for
// headings that carry no id attribute. Letters and digits are kept
// lowercase; runs of spaces and hyphens collapse to a single hyphen.
func GenerateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
