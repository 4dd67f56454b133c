package sidebar

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/corkboard/internal/collection"
)

// refreshRequestMsg asks the parent model to re-run the pipeline after a
// delegate-level mutation.
type refreshRequestMsg struct{}

func requestRefresh() tea.Msg {
	return refreshRequestMsg{}
}

type delegateKeyMap struct {
	togglePin  key.Binding
	cycleColor key.Binding
	clearColor key.Binding
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		togglePin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin"),
		),
		cycleColor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "color"),
		),
		clearColor: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear color"),
		),
	}
}

func newItemDelegate(keys *delegateKeyMap, store *collection.Store) list.DefaultDelegate {
	d := list.NewDefaultDelegate()

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		item, ok := m.SelectedItem().(ListItem)
		if !ok {
			return nil
		}
		path := item.card.Path

		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.togglePin):
				if store.TogglePin(path) {
					return tea.Batch(m.NewStatusMessage("Pinned "+path), requestRefresh)
				}
				return tea.Batch(m.NewStatusMessage("Unpinned "+path), requestRefresh)

			case key.Matches(msg, keys.cycleColor):
				store.SetColor(path, nextColor(item.card.Color))
				return requestRefresh

			case key.Matches(msg, keys.clearColor):
				store.ClearColor(path)
				return requestRefresh
			}
		}

		return nil
	}

	shortHelp := []key.Binding{keys.togglePin, keys.cycleColor}
	d.ShortHelpFunc = func() []key.Binding {
		return shortHelp
	}
	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{{keys.togglePin, keys.cycleColor, keys.clearColor}}
	}

	return d
}

func nextColor(current string) string {
	for i, c := range collection.Palette {
		if c == current {
			return collection.Palette[(i+1)%len(collection.Palette)]
		}
	}
	return collection.Palette[0]
}
