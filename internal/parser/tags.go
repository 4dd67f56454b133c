package parser

import (
	"regexp"
	"strings"
)

// inlineTagRe matches a # immediately followed by a letter, then letters,
// digits, underscores, or hyphens, with optional hierarchical /segments. The
// leading group restricts matches to the start of text or after whitespace.
var inlineTagRe = regexp.MustCompile(`(^|\s)(#[A-Za-z][0-9A-Za-z_-]*(?:/[0-9A-Za-z_-]+)*)`)

// ExtractTags returns the unique tags of text in first-encounter order:
// inline #tags from the body first, then frontmatter tags (prefixed with #)
// appended when not already present. Matching is case-sensitive.
func ExtractTags(text string) []string {
	raw, body := splitFrontmatter(text)

	seen := make(map[string]struct{})
	var out []string

	for _, m := range inlineTagRe.FindAllStringSubmatch(body, -1) {
		tag := m[2]
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	for _, tag := range frontmatterTags(raw) {
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}
