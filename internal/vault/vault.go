// Package vault is the file-system boundary for notes. All paths exposed
// by this package are vault-relative with forward slashes; conversion to
// absolute paths happens here and nowhere else.
package vault

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Paintersrp/corkboard/internal/pathutil"
)

// NoteFile is one candidate note discovered by List.
type NoteFile struct {
	Path    string // vault-relative, forward slashes
	Ext     string // lowercase, no leading dot
	ModTime time.Time
}

type Vault struct {
	dir    string
	logger *slog.Logger
}

func New(dir string, logger *slog.Logger) *Vault {
	if logger == nil {
		logger = slog.Default()
	}
	return &Vault{dir: dir, logger: logger}
}

func (v *Vault) Dir() string {
	return v.dir
}

// Abs resolves a vault-relative path to an absolute one.
func (v *Vault) Abs(rel string) string {
	return filepath.Join(v.dir, filepath.FromSlash(rel))
}

// List walks the vault and returns every regular file, skipping dotfiles
// and dot-directories. Extension and folder filtering belongs to the
// pipeline, not here.
func (v *Vault) List() ([]NoteFile, error) {
	var files []NoteFile

	err := filepath.Walk(v.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		name := filepath.Base(path)
		if strings.HasPrefix(name, ".") && path != v.dir {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(v.dir, path)
		if err != nil {
			return err
		}

		files = append(files, NoteFile{
			Path:    filepath.ToSlash(rel),
			Ext:     pathutil.Ext(path),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vault %s: %w", v.dir, err)
	}

	return files, nil
}

func (v *Vault) Read(rel string) ([]byte, error) {
	data, err := os.ReadFile(v.Abs(rel))
	if err != nil {
		return nil, fmt.Errorf("failed to read note %s: %w", rel, err)
	}
	return data, nil
}

// Create writes a new note under folder, deriving the filename from the
// title. Name collisions get a numeric suffix. A non-empty title becomes
// the leading heading. Returns the vault-relative path of the new note.
func (v *Vault) Create(folder, title, content string) (string, error) {
	name := slugify(title)
	if name == "" {
		name = "capture-" + time.Now().Format("20060102-150405")
	}

	dir := filepath.Join(v.dir, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", folder, err)
	}

	path := filepath.Join(dir, name+".md")
	for i := 2; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(dir, fmt.Sprintf("%s-%d.md", name, i))
	}

	var b strings.Builder
	if strings.TrimSpace(title) != "" {
		b.WriteString("# " + strings.TrimSpace(title) + "\n\n")
	}
	b.WriteString(content)
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write note: %w", err)
	}

	rel, err := filepath.Rel(v.dir, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

func (v *Vault) Rename(oldRel, newRel string) error {
	newAbs := v.Abs(newRel)
	if err := os.MkdirAll(filepath.Dir(newAbs), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create target folder: %w", err)
	}
	if err := os.Rename(v.Abs(oldRel), newAbs); err != nil {
		return fmt.Errorf("failed to rename %s: %w", oldRel, err)
	}
	return nil
}

func (v *Vault) Delete(rel string) error {
	if err := os.Remove(v.Abs(rel)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", rel, err)
	}
	return nil
}

// slugify lowercases the title and keeps letters, digits, and dashes,
// collapsing everything else into single dashes.
func slugify(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := true
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
