package sidebar

import "github.com/charmbracelet/bubbles/key"

type sidebarKeyMap struct {
	openNote  key.Binding
	cyclePins key.Binding
	cycleTag  key.Binding
	clearTag  key.Binding
	yank      key.Binding
}

func newSidebarKeyMap() *sidebarKeyMap {
	return &sidebarKeyMap{
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		cyclePins: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "pin filter"),
		),
		cycleTag: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "next tag"),
		),
		clearTag: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "clear tag"),
		),
		yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank"),
		),
	}
}
