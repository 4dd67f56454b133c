package board

import (
	tea "github.com/charmbracelet/bubbletea"
)

type dragPhase int

const (
	dragIdle dragPhase = iota
	dragPressed
	dragActive
)

// dragThreshold is how far (in cells) the mouse must travel from the
// press point before a press becomes a drag rather than a click.
const dragThreshold = 1

type dragState struct {
	phase  dragPhase
	source int
	target int
	startX int
	startY int
}

func (d *dragState) reset() {
	*d = dragState{source: -1, target: -1}
}

// reorder moves the element at from so it lands at index to, shifting the
// rest. Out-of-range indices and self-drops return the input unchanged.
func reorder(paths []string, from, to int) []string {
	if from < 0 || from >= len(paths) || to < 0 || to >= len(paths) || from == to {
		return paths
	}

	out := make([]string, 0, len(paths))
	out = append(out, paths[:from]...)
	out = append(out, paths[from+1:]...)

	out = append(out[:to], append([]string{paths[from]}, out[to:]...)...)
	return out
}

// handleMouse drives the drag state machine. Press on a card arms it,
// motion past the threshold starts the drag, motion over another card
// marks it as the drop target, and release commits the reorder against
// the latest flattened card sequence. Release anywhere else cancels.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x := msg.X - m.gridOriginX()
	y := msg.Y - m.gridOriginY() + m.scroll

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if r, ok := m.layout.hit(x, y); ok {
			m.drag = dragState{phase: dragPressed, source: r.position, target: -1, startX: x, startY: y}
			m.cursor = r.position
		}

	case tea.MouseActionMotion:
		switch m.drag.phase {
		case dragPressed:
			if absInt(x-m.drag.startX) > dragThreshold || absInt(y-m.drag.startY) > dragThreshold {
				m.drag.phase = dragActive
			}
		case dragActive:
			m.drag.target = -1
			if r, ok := m.layout.hit(x, y); ok && r.position != m.drag.source {
				m.drag.target = r.position
			}
		}

	case tea.MouseActionRelease:
		drag := m.drag
		m.drag.reset()
		if drag.phase == dragActive && drag.target >= 0 {
			return m.commitDrop(drag.source, drag.target)
		}
	}

	return nil
}

// commitDrop recomputes the manual order from the visible flattened
// sequence and persists it wholesale.
func (m *Model) commitDrop(from, to int) tea.Cmd {
	cards := m.result.Flattened()
	paths := make([]string, len(cards))
	for i, c := range cards {
		paths[i] = c.Path
	}

	m.state.Store.SetOrder(reorder(paths, from, to))
	m.cursor = to
	return m.refresh()
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
