// Package sidebar is the compact list variant of the board: the same
// filtered, pinned-first card sequence rendered with a bubbles list
// instead of a grid.
package sidebar

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/corkboard/internal/constants"
	"github.com/Paintersrp/corkboard/internal/editor"
	"github.com/Paintersrp/corkboard/internal/pipeline"
	"github.com/Paintersrp/corkboard/internal/state"
)

type editorFinishedMsg struct {
	err error
}

type Model struct {
	list         list.Model
	state        *state.State
	keys         *sidebarKeyMap
	delegateKeys *delegateKeyMap
	debounce     *state.Debouncer
	filter       pipeline.Filter
	result       pipeline.Result
	buildErr     error
	width        int
	height       int
}

func NewModel(s *state.State) *Model {
	dkeys := newDelegateKeyMap()
	lkeys := newSidebarKeyMap()
	delegate := newItemDelegate(dkeys, s.Store)

	l := list.New(nil, delegate, 0, 0)
	l.Title = s.Store.Settings().Title
	l.Styles.Title = titleStyle
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{lkeys.openNote, lkeys.cyclePins, lkeys.cycleTag}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{lkeys.openNote, lkeys.cyclePins, lkeys.cycleTag, lkeys.clearTag, lkeys.yank}
	}

	return &Model{
		list:         l,
		state:        s,
		keys:         lkeys,
		delegateKeys: dkeys,
		debounce:     state.NewDebouncer(constants.QuietInterval),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshItems(), m.state.Watcher.Start())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case state.NoteChangedMsg:
		return m, tea.Batch(m.debounce.Trigger(), m.state.Watcher.Start())

	case state.NoteRenamedMsg:
		m.state.HandleWatcherMsg(msg)
		return m, tea.Batch(m.debounce.Trigger(), m.state.Watcher.Start())

	case state.NoteRemovedMsg:
		m.state.HandleWatcherMsg(msg)
		return m, tea.Batch(m.debounce.Trigger(), m.state.Watcher.Start())

	case state.VaultWatcherErrMsg:
		cmds = append(cmds, m.list.NewStatusMessage(statusStyle(fmt.Sprintf("watcher error: %v", msg.Err))))
		return m, tea.Batch(append(cmds, m.state.Watcher.Start())...)

	case state.RefreshMsg:
		if m.debounce.Ready(msg) {
			return m, m.refreshItems()
		}
		return m, nil

	case refreshRequestMsg:
		return m, m.refreshItems()

	case editorFinishedMsg:
		if msg.err != nil {
			cmds = append(cmds, m.list.NewStatusMessage(statusStyle(fmt.Sprintf("editor error: %v", msg.err))))
		}
		cmds = append(cmds, m.refreshItems())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.openNote):
			return m, m.openSelected()

		case key.Matches(msg, m.keys.cyclePins):
			m.filter.Pins = m.filter.Pins.Next()
			return m, tea.Batch(
				m.refreshItems(),
				m.list.NewStatusMessage(statusStyle("pins: "+m.filter.Pins.String())),
			)

		case key.Matches(msg, m.keys.cycleTag):
			m.filter.Tag = nextTag(m.result.AllTags, m.filter.Tag)
			return m, m.refreshItems()

		case key.Matches(msg, m.keys.clearTag):
			if m.filter.Tag != "" {
				m.filter.Tag = ""
				return m, m.refreshItems()
			}

		case key.Matches(msg, m.keys.yank):
			return m, m.yankSelected()
		}
	}

	nl, cmd := m.list.Update(msg)
	m.list = nl
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	return appStyle.Render(m.list.View())
}

// refreshItems re-runs the pipeline and swaps the list contents
// wholesale.
func (m *Model) refreshItems() tea.Cmd {
	result, err := m.state.Pipeline.Build(m.filter)
	m.buildErr = err
	if err != nil {
		return m.list.NewStatusMessage(statusStyle(fmt.Sprintf("could not load notes: %v", err)))
	}

	m.result = result
	m.list.Title = m.listTitle()
	return m.list.SetItems(itemsFromResult(result))
}

func (m *Model) listTitle() string {
	title := m.state.Store.Settings().Title
	if m.filter.Pins != pipeline.PinAll {
		title += " · " + m.filter.Pins.String()
	}
	if m.filter.Tag != "" {
		title += " · " + m.filter.Tag
	}
	return title
}

// nextTag cycles through the available tags, ending on no filter.
func nextTag(tags []string, current string) string {
	if len(tags) == 0 {
		return ""
	}
	if current == "" {
		return tags[0]
	}
	for i, t := range tags {
		if t == current {
			if i+1 < len(tags) {
				return tags[i+1]
			}
			return ""
		}
	}
	return tags[0]
}

func (m *Model) openSelected() tea.Cmd {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	launch, err := editor.LaunchForPath(m.state.Vault.Abs(item.card.Path))
	if err != nil {
		return m.list.NewStatusMessage(statusStyle(fmt.Sprintf("open failed: %v", err)))
	}

	if launch.Wait {
		return tea.ExecProcess(launch.Cmd, func(err error) tea.Msg {
			return editorFinishedMsg{err: err}
		})
	}

	if err := launch.Cmd.Start(); err != nil {
		return m.list.NewStatusMessage(statusStyle(fmt.Sprintf("open failed: %v", err)))
	}
	return nil
}

func (m *Model) yankSelected() tea.Cmd {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	data, err := m.state.Vault.Read(item.card.Path)
	if err != nil {
		return m.list.NewStatusMessage(statusStyle(fmt.Sprintf("yank failed: %v", err)))
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return m.list.NewStatusMessage(statusStyle(fmt.Sprintf("yank failed: %v", err)))
	}
	return m.list.NewStatusMessage(statusStyle("copied " + item.card.Path))
}

func Run(s *state.State) error {
	m := NewModel(s)
	defer s.Close()

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		} else {
			log.Fatalf("Error running program: %v", err)
		}
	}

	return nil
}
