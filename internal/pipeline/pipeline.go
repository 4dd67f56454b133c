// Package pipeline turns a raw vault listing into the ordered card set a
// rendering surface displays. Every run is a full recompute; nothing here
// carries state between runs.
package pipeline

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Paintersrp/corkboard/internal/collection"
	"github.com/Paintersrp/corkboard/internal/constants"
	"github.com/Paintersrp/corkboard/internal/parser"
	"github.com/Paintersrp/corkboard/internal/pathutil"
	"github.com/Paintersrp/corkboard/internal/vault"
)

// PinFilter selects which pin partition is visible.
type PinFilter int

const (
	PinAll PinFilter = iota
	PinPinnedOnly
	PinUnpinnedOnly
)

// Next cycles the tri-state filter: all, pinned, unpinned.
func (f PinFilter) Next() PinFilter {
	switch f {
	case PinAll:
		return PinPinnedOnly
	case PinPinnedOnly:
		return PinUnpinnedOnly
	default:
		return PinAll
	}
}

func (f PinFilter) String() string {
	switch f {
	case PinPinnedOnly:
		return "pinned"
	case PinUnpinnedOnly:
		return "unpinned"
	default:
		return "all"
	}
}

// Filter is the visibility selection applied during a pipeline run. Tag
// must carry its leading # and matches exactly; empty means no tag filter.
type Filter struct {
	Pins PinFilter
	Tag  string
}

// Library is the subset of the vault the pipeline reads from.
type Library interface {
	List() ([]vault.NoteFile, error)
	Read(rel string) ([]byte, error)
}

type Builder struct {
	library       Library
	store         *collection.Store
	logger        *slog.Logger
	previewLength int
}

func New(library Library, store *collection.Store, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		library:       library,
		store:         store,
		logger:        logger,
		previewLength: constants.DefaultPreviewLength,
	}
}

// note is the intermediate record between preload and card assembly.
type note struct {
	file vault.NoteFile
	fm   parser.Frontmatter
	tags []string
	body string
}

// Build runs the full pipeline under filter. A listing failure returns an
// error and no partial result; an unreadable note is logged and dropped.
func (b *Builder) Build(filter Filter) (Result, error) {
	listing, err := b.library.List()
	if err != nil {
		return Result{}, fmt.Errorf("failed to gather candidates: %w", err)
	}

	settings := b.store.Settings()
	candidates := b.gather(listing, settings)

	// Pre-limit by recency so large vaults stay bounded before any reads.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ModTime.After(candidates[j].ModTime)
	})
	limit := settings.MaxNotes * constants.FetchMultiplier
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	notes := b.preload(candidates)
	notes = b.applyPins(notes, filter.Pins)

	tagSet := collectTags(notes)

	if filter.Tag != "" {
		notes = applyTag(notes, filter.Tag)
	}

	if len(notes) > settings.MaxNotes {
		notes = notes[:settings.MaxNotes]
	}

	result := Result{AllTags: tagSet}
	for _, n := range notes {
		card := b.assemble(n)
		if card.Pinned {
			result.Pinned = append(result.Pinned, card)
		} else {
			result.Unpinned = append(result.Unpinned, card)
		}
	}

	b.orderCards(result.Pinned)
	b.orderCards(result.Unpinned)
	result.position()

	return result, nil
}

// gather applies the extension, source-folder, and excluded-folder
// filters to the raw listing.
func (b *Builder) gather(listing []vault.NoteFile, settings collection.Settings) []vault.NoteFile {
	var out []vault.NoteFile
	for _, f := range listing {
		if !settings.AllowsExtension(f.Ext) {
			continue
		}
		if !pathutil.WithinFolder(settings.Folder, f.Path) {
			continue
		}
		excluded := false
		for _, ex := range settings.ExcludedFolders {
			if pathutil.WithinFolder(ex, f.Path) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (b *Builder) preload(candidates []vault.NoteFile) []note {
	var notes []note
	for _, f := range candidates {
		data, err := b.library.Read(f.Path)
		if err != nil {
			b.logger.Warn("skipping unreadable note", "path", f.Path, "error", err)
			continue
		}
		text := string(data)
		body := parser.SplitBody(text)
		notes = append(notes, note{
			file: f,
			fm:   parser.ParseFrontmatter(text),
			tags: parser.ExtractTags(text),
			body: body,
		})
	}
	return notes
}

func (b *Builder) applyPins(notes []note, pins PinFilter) []note {
	if pins == PinAll {
		return notes
	}
	var out []note
	for _, n := range notes {
		pinned := b.store.IsPinned(n.file.Path)
		if (pins == PinPinnedOnly) == pinned {
			out = append(out, n)
		}
	}
	return out
}

func applyTag(notes []note, tag string) []note {
	var out []note
	for _, n := range notes {
		for _, t := range n.tags {
			if t == tag {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

// collectTags gathers the distinct tags of the pin-filtered set, sorted,
// so the tag menu offers every reachable selection.
func collectTags(notes []note) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, n := range notes {
		for _, t := range n.tags {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

func (b *Builder) assemble(n note) Card {
	title := n.fm.Title
	if title == "" {
		title = titleFromPath(n.file.Path)
	}

	date := n.file.ModTime
	if n.fm.HasDate {
		date = n.fm.Date
	}

	color, _ := b.store.Color(n.file.Path)

	return Card{
		Path:    n.file.Path,
		Title:   title,
		Preview: parser.PreviewText(n.body, b.previewLength),
		Size:    sizeClassFor(n.body),
		Pinned:  b.store.IsPinned(n.file.Path),
		Color:   color,
		Tags:    n.tags,
		Date:    date,
		ModTime: n.file.ModTime,
	}
}

// orderCards sorts cards in place: manually positioned cards first by
// their order index, then unpositioned cards by modtime, newest first.
// The sort is stable so equal timestamps keep encounter order.
func (b *Builder) orderCards(cards []Card) {
	indexes := make(map[string]int, len(cards))
	for _, c := range cards {
		indexes[c.Path] = b.store.OrderIndex(c.Path)
	}

	sort.SliceStable(cards, func(i, j int) bool {
		oi, oj := indexes[cards[i].Path], indexes[cards[j].Path]
		switch {
		case oi >= 0 && oj >= 0:
			return oi < oj
		case oi >= 0:
			return true
		case oj >= 0:
			return false
		default:
			return cards[i].ModTime.After(cards[j].ModTime)
		}
	})
}

// titleFromPath derives a display title from the filename.
func titleFromPath(rel string) string {
	base := rel
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return strings.ReplaceAll(base, "-", " ")
}
