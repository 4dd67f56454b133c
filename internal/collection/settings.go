package collection

import (
	"strings"

	"github.com/Paintersrp/corkboard/internal/constants"
)

// Settings are the persisted display settings of the board.
type Settings struct {
	Title           string   `yaml:"title"`
	Folder          string   `yaml:"folder"`
	MaxNotes        int      `yaml:"max_notes"`
	ExcludedFolders []string `yaml:"excluded_folders"`
	Extensions      []string `yaml:"extensions"`
}

func defaultSettings() Settings {
	return Settings{
		Title:      constants.DefaultBoardTitle,
		MaxNotes:   constants.DefaultMaxNotes,
		Extensions: []string{constants.DefaultExtension},
	}
}

func (s *Settings) ensureDefaults() {
	if strings.TrimSpace(s.Title) == "" {
		s.Title = constants.DefaultBoardTitle
	}
	if s.MaxNotes <= 0 {
		s.MaxNotes = constants.DefaultMaxNotes
	}
	s.Extensions = normalizeExtensions(s.Extensions)
}

// normalizeExtensions lowercases entries, strips leading dots, and drops
// empties. An empty result falls back to the primary note extension.
func normalizeExtensions(exts []string) []string {
	seen := make(map[string]struct{}, len(exts))
	var out []string
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			continue
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	if len(out) == 0 {
		out = []string{constants.DefaultExtension}
	}
	return out
}

// AllowsExtension reports whether ext (lowercase, no dot) is in the allowed
// set.
func (s Settings) AllowsExtension(ext string) bool {
	for _, allowed := range s.Extensions {
		if allowed == strings.ToLower(ext) {
			return true
		}
	}
	return false
}
