// Package parser extracts tags, preview text, and frontmatter metadata from
// raw note content. Everything here is a pure transform over the input text.
package parser

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"
)

const frontmatterDelim = "---"

// Frontmatter holds the fields the dashboard cares about from a note's
// leading metadata block.
type Frontmatter struct {
	Title   string
	Tags    []string
	Date    time.Time
	HasDate bool
}

// ParseFrontmatter returns the typed frontmatter fields of text, or the zero
// value when no metadata block is present or it fails to parse.
func ParseFrontmatter(text string) Frontmatter {
	raw, _ := splitFrontmatter(text)
	if raw == nil {
		return Frontmatter{}
	}

	var fm Frontmatter
	if title, ok := raw["title"].(string); ok {
		fm.Title = strings.TrimSpace(title)
	}
	fm.Tags = frontmatterTags(raw)

	for _, key := range []string{"date", "created"} {
		s, ok := raw[key].(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		if t, err := dateparse.ParseAny(s); err == nil {
			fm.Date = t
			fm.HasDate = true
			break
		}
	}

	return fm
}

// SplitBody returns text with any leading frontmatter block removed.
func SplitBody(text string) string {
	_, body := splitFrontmatter(text)
	return body
}

// splitFrontmatter separates the YAML metadata block (between leading ---
// delimiters) from the body. When no block is found, or the YAML is invalid,
// the entire content is body.
func splitFrontmatter(text string) (map[string]any, string) {
	trimmed := strings.TrimLeft(text, "\n\r")
	if !strings.HasPrefix(trimmed, frontmatterDelim) {
		return nil, text
	}

	rest := trimmed[len(frontmatterDelim):]
	idx := strings.Index(rest, "\n"+frontmatterDelim)
	if idx < 0 {
		return nil, text
	}

	block := rest[:idx]
	body := rest[idx+1+len(frontmatterDelim):]
	body = strings.TrimLeft(body, "\n\r")

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return nil, text
	}

	return raw, body
}

// frontmatterTags reads the tags field, accepting both the inline bracketed
// list and the dash-list form (yaml treats them identically), plus a bare
// scalar for convenience.
func frontmatterTags(raw map[string]any) []string {
	value, ok := raw["tags"]
	if !ok {
		return nil
	}

	var out []string
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	case string:
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}

	return out
}
