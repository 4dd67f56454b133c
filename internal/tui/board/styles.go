package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/corkboard/internal/theme"
)

type boardStyles struct {
	app        lipgloss.Style
	title      lipgloss.Style
	titleInput lipgloss.Style
	filterLine lipgloss.Style
	status     lipgloss.Style
	errBanner  lipgloss.Style
	empty      lipgloss.Style
	section    lipgloss.Style

	card        lipgloss.Style
	cardFocused lipgloss.Style
	cardDragged lipgloss.Style
	cardTarget  lipgloss.Style
	cardTitle   lipgloss.Style
	cardTags    lipgloss.Style
	cardDate    lipgloss.Style
	pinMarker   lipgloss.Style

	overlay lipgloss.Style
	help    lipgloss.Style
}

func newBoardStyles(t theme.Theme) boardStyles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return boardStyles{
		app: lipgloss.NewStyle().Padding(1, 2),
		title: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			Padding(0, 1),
		titleInput: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1),
		filterLine: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),
		status: lipgloss.NewStyle().
			Foreground(t.Accent),
		errBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BF616A")).
			Bold(true).
			Padding(1, 2),
		empty: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(1, 2),
		section: lipgloss.NewStyle().
			Foreground(t.Muted).
			Bold(true).
			Padding(0, 1),

		card: card,
		cardFocused: card.Copy().
			BorderForeground(t.Accent),
		cardDragged: card.Copy().
			BorderForeground(t.Muted).
			Faint(true),
		cardTarget: card.Copy().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Accent),
		cardTitle: lipgloss.NewStyle().
			Bold(true),
		cardTags: lipgloss.NewStyle().
			Foreground(t.Accent),
		cardDate: lipgloss.NewStyle().
			Foreground(t.Muted),
		pinMarker: lipgloss.NewStyle().
			Foreground(t.Pinned),

		overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(1, 2),
		help: lipgloss.NewStyle().
			Padding(0, 1),
	}
}
