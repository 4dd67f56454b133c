package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RefreshMsg asks a surface to re-run the pipeline. Only a message
// carrying the debouncer's current generation should be acted on.
type RefreshMsg struct {
	generation uint64
}

// Debouncer coalesces bursts of file-system events into a single refresh:
// every event bumps the generation and arms a fresh timer, and only the
// timer armed by the last event still carries the current generation when
// it fires. It is driven entirely from the Update loop, so no locking.
type Debouncer struct {
	interval   time.Duration
	generation uint64
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules a refresh after the quiet interval, superseding any
// refresh scheduled earlier.
func (d *Debouncer) Trigger() tea.Cmd {
	d.generation++
	gen := d.generation
	return tea.Tick(d.interval, func(time.Time) tea.Msg {
		return RefreshMsg{generation: gen}
	})
}

// Ready reports whether msg is the live refresh rather than a superseded
// one.
func (d *Debouncer) Ready(msg RefreshMsg) bool {
	return msg.generation == d.generation
}
