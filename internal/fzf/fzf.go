// Package fzf is the fuzzy note picker used by the open and pin
// commands. It lists the same notes the board shows and previews them
// as rendered markdown.
package fzf

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/corkboard/internal/collection"
	"github.com/Paintersrp/corkboard/internal/parser"
	"github.com/Paintersrp/corkboard/internal/pathutil"
	"github.com/Paintersrp/corkboard/internal/vault"
)

// FuzzyFinder encapsulates the fuzzy selection over vault notes.
type FuzzyFinder struct {
	vault  *vault.Vault
	store  *collection.Store
	Header string
	files  []vault.NoteFile
}

func NewFuzzyFinder(v *vault.Vault, store *collection.Store, header string) *FuzzyFinder {
	return &FuzzyFinder{vault: v, store: store, Header: header}
}

// Run prompts for a note and returns its vault-relative path. A
// cancelled prompt surfaces fuzzyfinder.ErrAbort.
func (f *FuzzyFinder) Run(query string) (string, error) {
	settings := f.store.Settings()

	listing, err := f.vault.List()
	if err != nil {
		return "", fmt.Errorf("error listing notes: %w", err)
	}

	f.files = f.files[:0]
	for _, file := range listing {
		if settings.AllowsExtension(file.Ext) {
			f.files = append(f.files, file)
		}
	}

	idx, err := f.selectFile(query)
	if err != nil {
		return "", err
	}
	return f.files[idx].Path, nil
}

func (f *FuzzyFinder) selectFile(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	labels := make([]string, len(f.files))
	for i, file := range f.files {
		content, err := f.vault.Read(file.Path)
		if err != nil {
			labels[i] = file.Path
			continue
		}
		labels[i] = noteLabel(file.Path, string(content), f.store.IsPinned(file.Path))
	}

	return fuzzyfinder.Find(f.files, func(i int) string {
		return labels[i]
	}, options...)
}

// noteLabel is the display line for one note: pin marker, title, tags.
func noteLabel(path, content string, pinned bool) string {
	title := parser.ParseFrontmatter(content).Title
	if title == "" {
		title = titleFromPath(path)
	}

	label := title
	if pinned {
		label = "● " + label
	}

	tags := parser.ExtractTags(content)
	if len(tags) > 0 {
		label = fmt.Sprintf("%s [%s]", label, strings.Join(tags, ", "))
	}
	return label
}

func titleFromPath(path string) string {
	base := path
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if ext := pathutil.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, "."+ext)
	}
	return strings.ReplaceAll(base, "-", " ")
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	content, err := f.vault.Read(f.files[i].Path)
	if err != nil {
		return "Error reading note"
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(string(content))
	if err != nil {
		return "Error rendering markdown"
	}
	return markdown
}
