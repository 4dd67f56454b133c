package parser

import (
	"regexp"
	"strings"
)

const ellipsis = "..."

var blankRunRe = regexp.MustCompile(`\n{2,}`)

// PreviewText produces the card preview for text: markdown stripped, runs of
// blank lines collapsed to a single newline, trimmed, and truncated to
// maxLength runes with a trailing ellipsis marker when cut short. A
// non-positive maxLength yields an empty string.
func PreviewText(text string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	out := StripMarkdown(text)
	out = blankRunRe.ReplaceAllString(out, "\n")
	out = strings.TrimSpace(out)

	runes := []rune(out)
	if len(runes) > maxLength {
		return string(runes[:maxLength]) + ellipsis
	}
	return out
}
