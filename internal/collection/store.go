// Package collection holds the process-wide board state: pinned notes,
// manual ordering, per-note colors, and display settings. All paths are
// vault-relative. Every mutation persists immediately through the injected
// Repository; a failed save is logged and the in-memory mutation stands.
package collection

import (
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// Palette is the fixed set of color tokens a card may be assigned.
var Palette = []string{"red", "orange", "yellow", "green", "blue", "purple", "pink", "gray"}

// Store is the collection state store shared by every rendering surface.
// Reconciliation runs under the store mutex so a pipeline run never observes
// a half-applied rename.
type Store struct {
	mu       sync.Mutex
	repo     Repository
	logger   *slog.Logger
	pinned   map[string]struct{}
	order    []string
	colors   map[string]string
	settings Settings
}

// NewStore loads the persisted state from repo, falling back to defaults
// when nothing was saved yet or the load fails.
func NewStore(repo Repository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		repo:     repo,
		logger:   logger,
		pinned:   make(map[string]struct{}),
		colors:   make(map[string]string),
		settings: defaultSettings(),
	}

	state, err := repo.Load()
	if err != nil {
		logger.Warn("board state load failed, using defaults", "error", err)
		return s
	}
	if state == nil {
		return s
	}

	for _, p := range state.Pinned {
		s.pinned[p] = struct{}{}
	}
	s.order = append(s.order, state.Order...)
	for path, color := range state.Colors {
		s.colors[path] = color
	}
	s.settings = state.Settings
	s.settings.ensureDefaults()

	return s
}

// persist must be called with the mutex held.
func (s *Store) persist() {
	state := &persistedState{
		Order:    append([]string(nil), s.order...),
		Colors:   make(map[string]string, len(s.colors)),
		Settings: s.settings,
	}
	for p := range s.pinned {
		state.Pinned = append(state.Pinned, p)
	}
	for path, color := range s.colors {
		state.Colors[path] = color
	}

	if err := s.repo.Save(state); err != nil {
		s.logger.Warn("board state save failed", "error", err)
	}
}

func (s *Store) IsPinned(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pinned[path]
	return ok
}

// TogglePin flips the pinned flag for path and returns the new state.
func (s *Store) TogglePin(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pinned bool
	if _, ok := s.pinned[path]; ok {
		delete(s.pinned, path)
	} else {
		s.pinned[path] = struct{}{}
		pinned = true
	}

	s.persist()
	return pinned
}

// OrderIndex returns the manual position of path, or -1 when unordered.
func (s *Store) OrderIndex(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.order {
		if p == path {
			return i
		}
	}
	return -1
}

// SetOrder replaces the manual order wholesale.
func (s *Store) SetOrder(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = append([]string(nil), paths...)
	s.persist()
}

func (s *Store) Color(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	color, ok := s.colors[path]
	return color, ok
}

// SetColor assigns one of the palette tokens to path. Unknown tokens are
// ignored.
func (s *Store) SetColor(path, color string) {
	if !validColor(color) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colors[path] = color
	s.persist()
}

func (s *Store) ClearColor(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.colors[path]; !ok {
		return
	}
	delete(s.colors, path)
	s.persist()
}

func validColor(color string) bool {
	for _, c := range Palette {
		if c == color {
			return true
		}
	}
	return false
}

// Settings returns a copy of the current display settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings := s.settings
	settings.ExcludedFolders = append([]string(nil), s.settings.ExcludedFolders...)
	settings.Extensions = append([]string(nil), s.settings.Extensions...)
	return settings
}

// SetTitle updates the board title; an empty title falls back to the
// default.
func (s *Store) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Title = strings.TrimSpace(title)
	s.settings.ensureDefaults()
	s.persist()
}

func (s *Store) SetFolder(folder string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Folder = strings.Trim(strings.TrimSpace(folder), "/")
	s.persist()
}

// SetMaxNotes parses raw and applies it when it is a positive integer.
// Non-numeric or non-positive input is rejected silently and the prior
// value retained; the return reports whether the value was accepted.
func (s *Store) SetMaxNotes(raw string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.MaxNotes = n
	s.persist()
	return true
}

func (s *Store) SetExcludedFolders(folders []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ExcludedFolders = nil
	for _, f := range folders {
		f = strings.Trim(strings.TrimSpace(f), "/")
		if f != "" {
			s.settings.ExcludedFolders = append(s.settings.ExcludedFolders, f)
		}
	}
	s.persist()
}

func (s *Store) SetExtensions(exts []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Extensions = normalizeExtensions(exts)
	s.persist()
}

// ReconcileRename replaces oldPath with newPath across pins, colors, and
// order, preserving positions and values. The whole swap happens under one
// lock acquisition so a concurrent pipeline run sees either the old or the
// new identity, never neither.
func (s *Store) ReconcileRename(oldPath, newPath string) {
	if oldPath == "" || newPath == "" || oldPath == newPath {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	if _, ok := s.pinned[oldPath]; ok {
		delete(s.pinned, oldPath)
		s.pinned[newPath] = struct{}{}
		changed = true
	}
	if color, ok := s.colors[oldPath]; ok {
		delete(s.colors, oldPath)
		s.colors[newPath] = color
		changed = true
	}
	for i, p := range s.order {
		if p == oldPath {
			s.order[i] = newPath
			changed = true
		}
	}

	if changed {
		s.persist()
	}
}

// ReconcileDelete removes path from pins, colors, and order. Absent paths
// are a no-op.
func (s *Store) ReconcileDelete(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	if _, ok := s.pinned[path]; ok {
		delete(s.pinned, path)
		changed = true
	}
	if _, ok := s.colors[path]; ok {
		delete(s.colors, path)
		changed = true
	}
	for i, p := range s.order {
		if p == path {
			s.order = append(s.order[:i], s.order[i+1:]...)
			changed = true
			break
		}
	}

	if changed {
		s.persist()
	}
}
