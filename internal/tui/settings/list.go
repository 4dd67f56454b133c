// Package settings is the interactive editor for board and host
// configuration. Board display settings write through the collection
// store; host settings write back to the config file.
package settings

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erikgeiser/promptkit/selection"

	"github.com/Paintersrp/corkboard/internal/collection"
	"github.com/Paintersrp/corkboard/internal/config"
	"github.com/Paintersrp/corkboard/internal/state"
)

const (
	settingTitle            = "Title"
	settingFolder           = "Folder"
	settingMaxNotes         = "MaxNotes"
	settingExcludedFolders  = "ExcludedFolders"
	settingExtensions       = "Extensions"
	settingVaultDir         = "VaultDir"
	settingEditor           = "Editor"
	settingEditorArgs       = "EditorArgs"
	settingTheme            = "Theme"
	settingThemeColor       = "ThemeColor"
	settingCaptureFolder    = "CaptureFolder"
	settingOpenAfterCapture = "OpenAfterCapture"
)

type ListItem struct {
	title       string
	description string
}

func (i ListItem) Title() string       { return i.title }
func (i ListItem) Description() string { return i.description }
func (i ListItem) FilterValue() string { return i.title }

type listKeyMap struct {
	toggleEditItem key.Binding
	exitInputMode  key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleEditItem: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit item"),
		),
		exitInputMode: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit input mode"),
		),
	}
}

type ListModel struct {
	list               list.Model
	keys               *listKeyMap
	config             *config.Config
	store              *collection.Store
	input              InputModel
	inputActive        bool
	editorSelect       *selection.Model[string]
	editorSelectActive bool
	themeSelect        *selection.Model[string]
	themeSelectActive  bool
}

func NewListModel(cfg *config.Config, store *collection.Store) ListModel {
	listKeys := newListKeyMap()
	input := initialInputModel()

	settingList := list.New(buildItems(cfg, store), list.NewDefaultDelegate(), 0, 0)
	settingList.Title = "Settings"
	settingList.Styles.Title = titleStyle
	settingList.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{listKeys.toggleEditItem}
	}

	return ListModel{
		list:         settingList,
		keys:         listKeys,
		config:       cfg,
		store:        store,
		input:        input,
		editorSelect: newEditorSelect(),
		themeSelect:  newThemeSelect(),
	}
}

func newEditorSelect() *selection.Model[string] {
	sel := selection.New("Please select an editor option.", config.EditorNames())
	sel.Filter = nil
	return selection.NewModel(sel)
}

func newThemeSelect() *selection.Model[string] {
	sel := selection.New("Please select a theme.", config.ThemeNames())
	sel.Filter = nil
	return selection.NewModel(sel)
}

// buildItems renders the current values into list rows. The whole slice
// is rebuilt after every edit so board settings stay in sync with the
// store.
func buildItems(cfg *config.Config, store *collection.Store) []list.Item {
	boardSettings := store.Settings()

	folder := boardSettings.Folder
	if folder == "" {
		folder = "all folders"
	}
	excluded := strings.Join(boardSettings.ExcludedFolders, ", ")
	if excluded == "" {
		excluded = "none"
	}
	openAfter := "no"
	if cfg.OpenAfterCapture {
		openAfter = "yes"
	}

	return []list.Item{
		ListItem{title: settingTitle, description: boardSettings.Title},
		ListItem{title: settingFolder, description: folder},
		ListItem{title: settingMaxNotes, description: strconv.Itoa(boardSettings.MaxNotes)},
		ListItem{title: settingExcludedFolders, description: excluded},
		ListItem{title: settingExtensions, description: strings.Join(boardSettings.Extensions, ", ")},
		ListItem{title: settingVaultDir, description: cfg.VaultDir},
		ListItem{title: settingEditor, description: cfg.Editor},
		ListItem{title: settingEditorArgs, description: cfg.EditorArgs},
		ListItem{title: settingTheme, description: cfg.Theme},
		ListItem{title: settingThemeColor, description: cfg.ThemeColor},
		ListItem{title: settingCaptureFolder, description: cfg.CaptureFolder},
		ListItem{title: settingOpenAfterCapture, description: openAfter},
	}
}

// inputHint names the expected format for free-form settings that are
// not obvious from their value alone.
func inputHint(title string) string {
	switch title {
	case settingMaxNotes:
		return "a positive number of cards to show"
	case settingExcludedFolders:
		return "comma-separated folders to hide, e.g. archive, templates"
	case settingExtensions:
		return "comma-separated extensions, e.g. md, txt"
	case settingThemeColor:
		return "hex accent for the custom theme, e.g. #88C0D0"
	case settingFolder:
		return "vault subfolder to show, empty for the whole vault"
	default:
		return ""
	}
}

func (m ListModel) Init() tea.Cmd {
	return tea.Batch(m.editorSelect.Init(), m.themeSelect.Init())
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		if m.editorSelectActive {
			if key.Matches(msg, m.keys.exitInputMode) {
				m.editorSelectActive = false
				return m, nil
			}

			var cmd tea.Cmd
			_, cmd = m.editorSelect.Update(msg)
			cmds = append(cmds, cmd)

			if key.Matches(msg, m.keys.toggleEditItem) {
				choice, err := m.editorSelect.Value()
				if err != nil {
					return m, nil
				}

				m.config.Editor = choice
				m.editorSelectActive = false
				cmds = append(cmds, m.applyAndRefresh(settingEditor))

				m.editorSelect = newEditorSelect()
				cmds = append(cmds, m.editorSelect.Init())
			}

			return m, tea.Batch(cmds...)
		}

		if m.themeSelectActive {
			if key.Matches(msg, m.keys.exitInputMode) {
				m.themeSelectActive = false
				return m, nil
			}

			var cmd tea.Cmd
			_, cmd = m.themeSelect.Update(msg)
			cmds = append(cmds, cmd)

			if key.Matches(msg, m.keys.toggleEditItem) {
				choice, err := m.themeSelect.Value()
				if err != nil {
					return m, nil
				}

				m.config.Theme = choice
				m.themeSelectActive = false
				cmds = append(cmds, m.applyAndRefresh(settingTheme))

				m.themeSelect = newThemeSelect()
				cmds = append(cmds, m.themeSelect.Init())
			}

			return m, tea.Batch(cmds...)
		}

		if m.inputActive {
			if key.Matches(msg, m.keys.exitInputMode) {
				m.input.Input.Blur()
				m.inputActive = false
				return m, nil
			}

			var cmd tea.Cmd
			m.input.Input, cmd = m.input.Input.Update(msg)
			cmds = append(cmds, cmd)

			if key.Matches(msg, m.keys.toggleEditItem) {
				item, ok := m.list.SelectedItem().(ListItem)
				if !ok {
					return m, nil
				}

				value := m.input.Input.Value()
				m.input.Input.Reset()
				m.input.Input.Blur()
				m.inputActive = false

				cmds = append(cmds, m.applyInput(item.Title(), value))
			}

			return m, tea.Batch(cmds...)
		}

		if key.Matches(msg, m.keys.toggleEditItem) {
			item, ok := m.list.SelectedItem().(ListItem)
			if !ok {
				return m, nil
			}

			switch item.Title() {
			case settingEditor:
				m.editorSelectActive = true
			case settingTheme:
				m.themeSelectActive = true
			case settingOpenAfterCapture:
				m.config.OpenAfterCapture = !m.config.OpenAfterCapture
				return m, m.applyAndRefresh(settingOpenAfterCapture)
			default:
				m.inputActive = true
				m.input.Title = item.Title()
				m.input.Hint = inputHint(item.Title())
				m.input.Input.Focus()
				m.input.Input.SetValue(m.currentValue(item.Title()))
			}
			return m, nil
		}
	}

	newListModel, cmd := m.list.Update(msg)
	m.list = newListModel
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// currentValue is the raw editable value for title, unlike the list
// description which may carry a placeholder like "all folders".
func (m ListModel) currentValue(title string) string {
	boardSettings := m.store.Settings()
	switch title {
	case settingTitle:
		return boardSettings.Title
	case settingFolder:
		return boardSettings.Folder
	case settingMaxNotes:
		return strconv.Itoa(boardSettings.MaxNotes)
	case settingExcludedFolders:
		return strings.Join(boardSettings.ExcludedFolders, ", ")
	case settingExtensions:
		return strings.Join(boardSettings.Extensions, ", ")
	case settingVaultDir:
		return m.config.VaultDir
	case settingEditorArgs:
		return m.config.EditorArgs
	case settingThemeColor:
		return m.config.ThemeColor
	case settingCaptureFolder:
		return m.config.CaptureFolder
	default:
		return ""
	}
}

// applyInput routes a submitted value to the store or the config,
// whichever owns the setting.
func (m *ListModel) applyInput(title, value string) tea.Cmd {
	switch title {
	case settingTitle:
		m.store.SetTitle(value)
	case settingFolder:
		m.store.SetFolder(value)
	case settingMaxNotes:
		if !m.store.SetMaxNotes(value) {
			return m.list.NewStatusMessage(
				statusMessageStyle("MaxNotes must be a positive whole number"),
			)
		}
	case settingExcludedFolders:
		m.store.SetExcludedFolders(splitList(value))
	case settingExtensions:
		m.store.SetExtensions(splitList(value))
	case settingVaultDir:
		m.config.VaultDir = value
	case settingEditorArgs:
		m.config.EditorArgs = value
	case settingThemeColor:
		m.config.ThemeColor = value
	case settingCaptureFolder:
		m.config.CaptureFolder = strings.Trim(strings.TrimSpace(value), "/")
	default:
		return nil
	}

	return m.applyAndRefresh(title)
}

// applyAndRefresh saves the host config, rebuilds the rows, and posts
// the status message. Board settings persist through the store on
// write, so the config save is the only remaining side effect.
func (m *ListModel) applyAndRefresh(title string) tea.Cmd {
	if err := m.config.Save(); err != nil {
		return m.list.NewStatusMessage(
			statusMessageStyle(fmt.Sprintf("Failed to save config: %v", err)),
		)
	}

	cmd := m.list.SetItems(buildItems(m.config, m.store))
	return tea.Batch(cmd, m.list.NewStatusMessage(statusMessageStyle("Updated and Saved: "+title)))
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (m ListModel) View() string {
	if m.inputActive {
		return appStyle.Render(inputStyle.Render(m.input.View()))
	}
	if m.editorSelectActive {
		return appStyle.Render(m.editorSelect.View())
	}
	if m.themeSelectActive {
		return appStyle.Render(m.themeSelect.View())
	}
	return appStyle.Render(m.list.View())
}

func Run(s *state.State) error {
	defer s.Close()

	m := NewListModel(s.Config, s.Store)
	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		} else {
			log.Fatalf("Error running program: %v", err)
		}
	}

	return nil
}
