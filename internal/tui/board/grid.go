package board

import (
	"github.com/Paintersrp/corkboard/internal/pipeline"
)

const (
	minColumnWidth = 28
	maxColumns     = 4
)

// cardRect is the screen-space footprint of one card, used for mouse hit
// testing. Coordinates are relative to the top-left of the grid area.
type cardRect struct {
	position int
	path     string
	col      int
	x, y     int
	w, h     int
}

// gridLayout places one section's cards masonry-style: each card lands in
// the currently shortest column, so columns stay balanced while every
// card keeps its pipeline order.
type gridLayout struct {
	columns    int
	colWidth   int
	rects      []cardRect
	colHeights []int
}

// cardHeight is the rendered height of a card, border included.
func cardHeight(size pipeline.SizeClass) int {
	switch size {
	case pipeline.SizeSmall:
		return 5
	case pipeline.SizeMedium:
		return 7
	default:
		return 9
	}
}

func columnsFor(width int) (count, colWidth int) {
	count = width / minColumnWidth
	if count < 1 {
		count = 1
	}
	if count > maxColumns {
		count = maxColumns
	}
	colWidth = width / count
	return count, colWidth
}

func layoutGrid(cards []pipeline.Card, width, originY int) gridLayout {
	columns, colWidth := columnsFor(width)
	g := gridLayout{
		columns:    columns,
		colWidth:   colWidth,
		colHeights: make([]int, columns),
	}

	for _, c := range cards {
		col := 0
		for i := 1; i < columns; i++ {
			if g.colHeights[i] < g.colHeights[col] {
				col = i
			}
		}

		h := cardHeight(c.Size)
		g.rects = append(g.rects, cardRect{
			position: c.Position,
			path:     c.Path,
			col:      col,
			x:        col * colWidth,
			y:        originY + g.colHeights[col],
			w:        colWidth,
			h:        h,
		})
		g.colHeights[col] += h
	}

	return g
}

func (g gridLayout) height() int {
	max := 0
	for _, h := range g.colHeights {
		if h > max {
			max = h
		}
	}
	return max
}

// sectionLayout is one rendered partition, optionally preceded by a
// header line.
type sectionLayout struct {
	title   string
	headerY int // -1 when no header is rendered
	cards   []pipeline.Card
	grid    gridLayout
}

// boardLayout is the full grid area: the pinned section above the
// unpinned one, with headers only when both are present.
type boardLayout struct {
	width    int
	sections []sectionLayout
	total    int
}

func layoutBoard(result pipeline.Result, width int) boardLayout {
	b := boardLayout{width: width}
	showHeaders := result.Sectioned() == pipeline.SectionBoth

	y := 0
	add := func(title string, cards []pipeline.Card) {
		if len(cards) == 0 {
			return
		}
		headerY := -1
		if showHeaders {
			headerY = y
			y++
		}
		grid := layoutGrid(cards, width, y)
		y += grid.height()
		b.sections = append(b.sections, sectionLayout{
			title:   title,
			headerY: headerY,
			cards:   cards,
			grid:    grid,
		})
	}

	add("Pinned", result.Pinned)
	add("Notes", result.Unpinned)
	b.total = y

	return b
}

// hit returns the card footprint containing the point, if any.
func (b boardLayout) hit(x, y int) (cardRect, bool) {
	for _, s := range b.sections {
		for _, r := range s.grid.rects {
			if x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h {
				return r, true
			}
		}
	}
	return cardRect{}, false
}

// rectFor returns the footprint of the card at the given flattened
// position.
func (b boardLayout) rectFor(position int) (cardRect, bool) {
	for _, s := range b.sections {
		for _, r := range s.grid.rects {
			if r.position == position {
				return r, true
			}
		}
	}
	return cardRect{}, false
}
