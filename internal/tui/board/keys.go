package board

import "github.com/charmbracelet/bubbles/key"

type boardKeyMap struct {
	up            key.Binding
	down          key.Binding
	left          key.Binding
	right         key.Binding
	openNote      key.Binding
	togglePin     key.Binding
	cycleColor    key.Binding
	clearColor    key.Binding
	yank          key.Binding
	capture       key.Binding
	editTitle     key.Binding
	cyclePins     key.Binding
	tagMenu       key.Binding
	clearTag      key.Binding
	preview       key.Binding
	toggleHelp    key.Binding
	submitAltView key.Binding
	exitAltView   key.Binding
	quit          key.Binding
}

func newBoardKeyMap() *boardKeyMap {
	return &boardKeyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
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
		yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank"),
		),
		capture: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		editTitle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "edit title"),
		),
		cyclePins: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "pin filter"),
		),
		tagMenu: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "tag filter"),
		),
		clearTag: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "clear tag"),
		),
		preview: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "preview"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		submitAltView: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		exitAltView: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (m boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		m.openNote,
		m.togglePin,
		m.capture,
		m.cyclePins,
		m.tagMenu,
		m.toggleHelp,
		m.quit,
	}
}

func (m boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.up, m.down, m.left, m.right},
		{m.openNote, m.preview, m.yank, m.capture},
		{m.togglePin, m.cycleColor, m.clearColor, m.editTitle},
		{m.cyclePins, m.tagMenu, m.clearTag, m.quit},
	}
}
