package settings

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

type InputModel struct {
	Title string
	Hint  string
	Input textinput.Model
}

func initialInputModel() InputModel {
	input := textinput.New()
	input.CharLimit = 200

	return InputModel{Input: input}
}

func (m InputModel) View() string {
	view := fmt.Sprintf("%s\n\n%s", titleStyle.Render(m.Title), m.Input.View())
	if m.Hint != "" {
		view += "\n\n" + helpStyle.Render(m.Hint)
	}
	return view
}
