package board

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// captureModel is the quick-capture form: a title input and a body
// textarea. Submission and cancellation are decided by the board model.
type captureModel struct {
	title     textinput.Model
	body      textarea.Model
	focusBody bool
}

func newCaptureModel() captureModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 120

	body := textarea.New()
	body.Placeholder = "Note..."
	body.ShowLineNumbers = false

	return captureModel{title: title, body: body}
}

func (c *captureModel) Focus() tea.Cmd {
	c.focusBody = false
	c.body.Blur()
	return c.title.Focus()
}

func (c *captureModel) Blur() {
	c.title.Blur()
	c.body.Blur()
}

func (c *captureModel) Reset() {
	c.title.SetValue("")
	c.body.SetValue("")
	c.focusBody = false
}

func (c *captureModel) SetSize(width, height int) {
	c.title.Width = width
	c.body.SetWidth(width)
	c.body.SetHeight(height)
}

func (c captureModel) Values() (title, body string) {
	return c.title.Value(), c.body.Value()
}

func (c captureModel) Update(msg tea.Msg) (captureModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "tab" {
		c.focusBody = !c.focusBody
		if c.focusBody {
			c.title.Blur()
			return c, c.body.Focus()
		}
		c.body.Blur()
		return c, c.title.Focus()
	}

	var cmd tea.Cmd
	if c.focusBody {
		c.body, cmd = c.body.Update(msg)
	} else {
		c.title, cmd = c.title.Update(msg)
	}
	return c, cmd
}

func (c captureModel) View(styles boardStyles) string {
	return styles.overlay.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		styles.title.Render("New note"),
		c.title.View(),
		"",
		c.body.View(),
		"",
		styles.filterLine.Render(fmt.Sprintf("%s · %s · %s", "tab: switch", "ctrl+s: save", "esc: cancel")),
	))
}
