package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/Paintersrp/corkboard/internal/pathutil"
)

// NoteChangedMsg reports a created or modified note.
type NoteChangedMsg struct {
	Path string
}

// NoteRenamedMsg reports a rename observed as a Rename event followed
// shortly by a Create for the new name.
type NoteRenamedMsg struct {
	Old string
	New string
}

// NoteRemovedMsg reports a deleted note, or a rename whose new name never
// showed up inside the pairing window.
type NoteRemovedMsg struct {
	Path string
}

type VaultWatcherErrMsg struct {
	Err error
}

// renamePairWindow is how long a Rename event waits for its matching
// Create before being reported as a removal.
const renamePairWindow = 250 * time.Millisecond

// VaultWatcher translates fsnotify events on the vault tree into tea
// messages. Start returns a command that blocks until one message is
// ready; the Update loop re-invokes Start after handling each message.
type VaultWatcher struct {
	watcher  *fsnotify.Watcher
	vault    string
	done     chan struct{}
	once     sync.Once
	relevant func(rel string) bool
}

// NewVaultWatcher watches vault recursively. relevant filters events by
// vault-relative path; nil accepts every .md file.
func NewVaultWatcher(vault string, relevant func(rel string) bool) (*VaultWatcher, error) {
	normalizedVault := pathutil.NormalizePath(vault)
	if normalizedVault == "" {
		return nil, errors.New("vault directory cannot be empty")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if relevant == nil {
		relevant = func(rel string) bool {
			return strings.EqualFold(filepath.Ext(rel), ".md")
		}
	}

	watcher := &VaultWatcher{
		watcher:  w,
		vault:    normalizedVault,
		done:     make(chan struct{}),
		relevant: relevant,
	}

	if err := watcher.addRecursive(normalizedVault); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return watcher, nil
}

func (w *VaultWatcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}

				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = w.addRecursive(event.Name)
						continue
					}
				}

				rel := w.relevantPath(event.Name)
				if rel == "" {
					continue
				}

				switch {
				case event.Op&fsnotify.Rename != 0:
					if msg := w.pairRename(rel); msg != nil {
						return msg
					}
				case event.Op&fsnotify.Remove != 0:
					return NoteRemovedMsg{Path: rel}
				case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
					return NoteChangedMsg{Path: rel}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return VaultWatcherErrMsg{Err: err}
				}
			}
		}
	}
}

// pairRename waits for the Create half of a rename. An unpaired Rename
// is a removal.
func (w *VaultWatcher) pairRename(old string) tea.Msg {
	timer := time.NewTimer(renamePairWindow)
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return nil
		case <-timer.C:
			return NoteRemovedMsg{Path: old}
		case event, ok := <-w.watcher.Events:
			if !ok {
				return NoteRemovedMsg{Path: old}
			}
			if event.Op&fsnotify.Create == 0 {
				continue
			}
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				_ = w.addRecursive(event.Name)
				continue
			}
			rel := w.relevantPath(event.Name)
			if rel == "" {
				continue
			}
			return NoteRenamedMsg{Old: old, New: rel}
		}
	}
}

func (w *VaultWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})

	return closeErr
}

func (w *VaultWatcher) addRecursive(root string) error {
	normalized := pathutil.NormalizePath(root)
	return filepath.WalkDir(normalized, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if strings.HasPrefix(filepath.Base(path), ".") && path != normalized {
			return filepath.SkipDir
		}

		return w.watcher.Add(path)
	})
}

// relevantPath returns the vault-relative path of an event target, or ""
// when the target sits outside the vault or fails the relevance filter.
func (w *VaultWatcher) relevantPath(name string) string {
	normalized := pathutil.NormalizePath(name)
	rel, err := pathutil.VaultRelative(w.vault, normalized)
	if err != nil {
		return ""
	}

	if rel == "." || rel == "" || strings.HasPrefix(rel, "..") {
		return ""
	}
	if strings.HasPrefix(filepath.Base(rel), ".") {
		return ""
	}
	if !w.relevant(rel) {
		return ""
	}

	return rel
}
