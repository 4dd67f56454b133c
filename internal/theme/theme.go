// Package theme resolves the board's colors from the configured theme
// choice. Resolution walks an ordered policy table: a valid custom accent
// wins, then the fixed dark theme, then a default derived from the host
// terminal's background.
package theme

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Theme struct {
	Name   string
	Accent lipgloss.AdaptiveColor
	Border lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
	Pinned lipgloss.AdaptiveColor

	cardColors map[string]string
}

// CardColor maps a palette token to its terminal color. Unknown tokens
// fall back to the muted border color so a corrupt state file never
// breaks rendering.
func (t Theme) CardColor(token string) lipgloss.Color {
	if hex, ok := t.cardColors[token]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color("240")
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type rule struct {
	applies func(choice, custom string) bool
	build   func(choice, custom string) Theme
}

// policy is evaluated top to bottom; the first applicable rule wins.
var policy = []rule{
	{
		applies: func(choice, custom string) bool {
			return choice == "custom" && hexColorRe.MatchString(custom)
		},
		build: func(_, custom string) Theme {
			t := darkTheme()
			t.Name = "custom"
			t.Accent = lipgloss.AdaptiveColor{Light: custom, Dark: custom}
			return t
		},
	},
	{
		applies: func(choice, _ string) bool {
			// An invalid custom color degrades to the dark theme.
			return choice == "dark" || choice == "custom"
		},
		build: func(_, _ string) Theme {
			return darkTheme()
		},
	},
	{
		applies: func(_, _ string) bool { return true },
		build: func(_, _ string) Theme {
			return hostTheme()
		},
	},
}

// Resolve returns the theme for the configured choice ("auto", "dark",
// or "custom") and custom accent color.
func Resolve(choice, customColor string) Theme {
	for _, r := range policy {
		if r.applies(choice, customColor) {
			return r.build(choice, customColor)
		}
	}
	return darkTheme()
}

var darkCardColors = map[string]string{
	"red":    "#BF616A",
	"orange": "#D08770",
	"yellow": "#EBCB8B",
	"green":  "#A3BE8C",
	"blue":   "#81A1C1",
	"purple": "#B48EAD",
	"pink":   "#D699B6",
	"gray":   "#4C566A",
}

func darkTheme() Theme {
	return Theme{
		Name:       "dark",
		Accent:     lipgloss.AdaptiveColor{Light: "#5E81AC", Dark: "#88C0D0"},
		Border:     lipgloss.AdaptiveColor{Light: "#3B4252", Dark: "#3B4252"},
		Muted:      lipgloss.AdaptiveColor{Light: "#616E88", Dark: "#616E88"},
		Pinned:     lipgloss.AdaptiveColor{Light: "#EBCB8B", Dark: "#EBCB8B"},
		cardColors: darkCardColors,
	}
}

func lightTheme() Theme {
	return Theme{
		Name:   "light",
		Accent: lipgloss.AdaptiveColor{Light: "#5E81AC", Dark: "#5E81AC"},
		Border: lipgloss.AdaptiveColor{Light: "#D8DEE9", Dark: "#D8DEE9"},
		Muted:  lipgloss.AdaptiveColor{Light: "#7B88A1", Dark: "#7B88A1"},
		Pinned: lipgloss.AdaptiveColor{Light: "#B48500", Dark: "#B48500"},
		cardColors: map[string]string{
			"red":    "#BF616A",
			"orange": "#CB775D",
			"yellow": "#B48500",
			"green":  "#6C8A50",
			"blue":   "#5E81AC",
			"purple": "#8F6CA8",
			"pink":   "#B06D8E",
			"gray":   "#AAB2C0",
		},
	}
}

// hostTheme picks a default from the terminal's reported background.
func hostTheme() Theme {
	if termenv.HasDarkBackground() {
		return darkTheme()
	}
	return lightTheme()
}
