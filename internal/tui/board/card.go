package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/corkboard/internal/pipeline"
)

func truncateLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func (m Model) renderCard(c pipeline.Card, r cardRect) string {
	style := m.styles.card
	switch {
	case m.drag.phase == dragActive && m.drag.source == c.Position:
		style = m.styles.cardDragged
	case m.drag.phase == dragActive && m.drag.target == c.Position:
		style = m.styles.cardTarget
	case m.cursor == c.Position:
		style = m.styles.cardFocused
	default:
		if c.Color != "" {
			style = style.Copy().BorderForeground(m.theme.CardColor(c.Color))
		}
	}

	innerW := r.w - 4
	innerH := r.h - 2
	if innerW < 1 || innerH < 1 {
		return ""
	}

	title := c.Title
	if c.Pinned {
		title = m.styles.pinMarker.Render("●") + " " + title
	}

	meta := m.styles.cardDate.Render(c.Date.Format("Jan 02"))
	if len(c.Tags) > 0 {
		meta += " " + m.styles.cardTags.Render(truncateLine(strings.Join(c.Tags, " "), innerW-7))
	}

	lines := []string{
		m.styles.cardTitle.Render(truncateLine(title, innerW)),
		meta,
	}
	for _, l := range strings.Split(c.Preview, "\n") {
		lines = append(lines, truncateLine(l, innerW))
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return style.Copy().
		Width(r.w - 2).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
}

// renderBoard draws every section as masonry columns. Column stacking
// mirrors layoutBoard exactly so mouse hit testing lines up with what is
// on screen.
func (m Model) renderBoard() string {
	var sections []string
	for _, s := range m.layout.sections {
		stacks := make([][]string, s.grid.columns)
		for i, r := range s.grid.rects {
			stacks[r.col] = append(stacks[r.col], m.renderCard(s.cards[i], r))
		}

		cols := make([]string, 0, len(stacks))
		for _, stack := range stacks {
			cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, stack...))
		}
		grid := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

		if s.headerY >= 0 {
			header := m.styles.section.Render(s.title)
			grid = lipgloss.JoinVertical(lipgloss.Left, header, grid)
		}
		sections = append(sections, grid)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
