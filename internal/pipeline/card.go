package pipeline

import "time"

// SizeClass is the ordinal height bucket of a card, derived from content
// length so the grid stays visually varied without measuring rendered
// output.
type SizeClass int

const (
	SizeSmall SizeClass = iota + 1
	SizeMedium
	SizeLarge
)

const (
	smallMaxChars  = 120
	mediumMaxChars = 400
)

func sizeClassFor(body string) SizeClass {
	switch n := len(body); {
	case n <= smallMaxChars:
		return SizeSmall
	case n <= mediumMaxChars:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// Card is the view model one note contributes to a rendering surface.
type Card struct {
	Path     string
	Title    string
	Preview  string
	Size     SizeClass
	Pinned   bool
	Color    string
	Tags     []string
	Date     time.Time
	ModTime  time.Time
	Position int
}

// Result is one pipeline run's output: the two ordered partitions plus
// the distinct tags available for filtering.
type Result struct {
	Pinned   []Card
	Unpinned []Card
	AllTags  []string
}

// position assigns each card its index in the flattened pinned-then-
// unpinned sequence. Drop targets and keyboard focus address cards by
// this index.
func (r *Result) position() {
	i := 0
	for j := range r.Pinned {
		r.Pinned[j].Position = i
		i++
	}
	for j := range r.Unpinned {
		r.Unpinned[j].Position = i
		i++
	}
}

// Flattened returns the pinned partition followed by the unpinned one.
func (r Result) Flattened() []Card {
	out := make([]Card, 0, len(r.Pinned)+len(r.Unpinned))
	out = append(out, r.Pinned...)
	out = append(out, r.Unpinned...)
	return out
}

func (r Result) Total() int {
	return len(r.Pinned) + len(r.Unpinned)
}

func (r Result) Empty() bool {
	return r.Total() == 0
}

// Section describes which partitions a run produced, so surfaces can
// render section headers, a single flat run, or an empty state.
type Section int

const (
	SectionEmpty Section = iota
	SectionPinnedOnly
	SectionUnpinnedOnly
	SectionBoth
)

func (r Result) Sectioned() Section {
	switch {
	case len(r.Pinned) > 0 && len(r.Unpinned) > 0:
		return SectionBoth
	case len(r.Pinned) > 0:
		return SectionPinnedOnly
	case len(r.Unpinned) > 0:
		return SectionUnpinnedOnly
	default:
		return SectionEmpty
	}
}
