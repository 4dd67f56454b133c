// Package board renders the card-grid dashboard: notes as colorable,
// pinnable cards in masonry columns, reorderable with the mouse.
package board

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/corkboard/internal/cache"
	"github.com/Paintersrp/corkboard/internal/collection"
	"github.com/Paintersrp/corkboard/internal/constants"
	"github.com/Paintersrp/corkboard/internal/editor"
	"github.com/Paintersrp/corkboard/internal/pipeline"
	"github.com/Paintersrp/corkboard/internal/state"
	"github.com/Paintersrp/corkboard/internal/theme"
)

const renderCacheSize = 64

type mode int

const (
	modeBoard mode = iota
	modeTitleEdit
	modeCapture
	modeTagMenu
	modePreview
)

type editorFinishedMsg struct {
	err error
}

type Model struct {
	state    *state.State
	theme    theme.Theme
	styles   boardStyles
	keys     *boardKeyMap
	help     help.Model
	debounce *state.Debouncer
	renders  *cache.RenderCache

	filter   pipeline.Filter
	result   pipeline.Result
	layout   boardLayout
	buildErr error

	mode   mode
	cursor int
	scroll int

	titleInput  textinput.Model
	capture     captureModel
	tags        tagMenu
	previewText string

	drag   dragState
	status string
	ready  bool
	width  int
	height int
}

func NewModel(s *state.State) *Model {
	t := theme.Resolve(s.Config.Theme, s.Config.ThemeColor)

	titleInput := textinput.New()
	titleInput.CharLimit = 60

	m := &Model{
		state:      s,
		theme:      t,
		styles:     newBoardStyles(t),
		keys:       newBoardKeyMap(),
		help:       help.New(),
		debounce:   state.NewDebouncer(constants.QuietInterval),
		renders:    cache.NewRenderCache(renderCacheSize),
		titleInput: titleInput,
		capture:    newCaptureModel(),
	}
	m.drag.reset()
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.state.Watcher.Start()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.capture.SetSize(m.gridWidth()-8, m.height/2)
		if !m.ready {
			m.ready = true
			return m, m.refresh()
		}
		m.relayout()
		return m, nil

	case state.NoteChangedMsg:
		m.renders.Invalidate(msg.Path)
		return m, tea.Batch(m.debounce.Trigger(), m.state.Watcher.Start())

	case state.NoteRenamedMsg:
		m.state.HandleWatcherMsg(msg)
		m.renders.Invalidate(msg.Old)
		return m, tea.Batch(m.debounce.Trigger(), m.state.Watcher.Start())

	case state.NoteRemovedMsg:
		m.state.HandleWatcherMsg(msg)
		m.renders.Invalidate(msg.Path)
		return m, tea.Batch(m.debounce.Trigger(), m.state.Watcher.Start())

	case state.VaultWatcherErrMsg:
		m.status = fmt.Sprintf("watcher error: %v", msg.Err)
		return m, m.state.Watcher.Start()

	case state.RefreshMsg:
		if m.debounce.Ready(msg) {
			return m, m.refresh()
		}
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("editor error: %v", msg.err)
		}
		return m, m.refresh()

	case tea.MouseMsg:
		if m.mode == modeBoard {
			return m, m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeTitleEdit:
			return m.updateTitleEdit(msg)
		case modeCapture:
			return m.updateCapture(msg)
		case modeTagMenu:
			return m.updateTagMenu(msg)
		case modePreview:
			return m.updatePreview(msg)
		default:
			return m.updateBoard(msg)
		}
	}

	return m, nil
}

func (m *Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.exitAltView):
		if m.drag.phase != dragIdle {
			m.drag.reset()
		}
		return m, nil

	case key.Matches(msg, m.keys.up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.openNote):
		return m, m.openSelected()

	case key.Matches(msg, m.keys.togglePin):
		if c, ok := m.selectedCard(); ok {
			m.state.Store.TogglePin(c.Path)
			return m, m.refresh()
		}

	case key.Matches(msg, m.keys.cycleColor):
		if c, ok := m.selectedCard(); ok {
			m.state.Store.SetColor(c.Path, nextColor(c.Color))
			return m, m.refresh()
		}

	case key.Matches(msg, m.keys.clearColor):
		if c, ok := m.selectedCard(); ok {
			m.state.Store.ClearColor(c.Path)
			return m, m.refresh()
		}

	case key.Matches(msg, m.keys.yank):
		m.yankSelected()

	case key.Matches(msg, m.keys.capture):
		m.mode = modeCapture
		m.capture.Reset()
		return m, m.capture.Focus()

	case key.Matches(msg, m.keys.editTitle):
		m.mode = modeTitleEdit
		m.titleInput.SetValue(m.state.Store.Settings().Title)
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.cyclePins):
		m.filter.Pins = m.filter.Pins.Next()
		return m, m.refresh()

	case key.Matches(msg, m.keys.tagMenu):
		m.mode = modeTagMenu
		m.tags = newTagMenu(m.result.AllTags, m.filter.Tag)
		return m, nil

	case key.Matches(msg, m.keys.clearTag):
		if m.filter.Tag != "" {
			m.filter.Tag = ""
			return m, m.refresh()
		}

	case key.Matches(msg, m.keys.preview):
		return m, m.openPreview()

	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
	}

	return m, nil
}

func (m *Model) updateTitleEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Enter and esc both commit; the title is too small an edit to need a
	// separate cancel path.
	if key.Matches(msg, m.keys.submitAltView) || key.Matches(msg, m.keys.exitAltView) {
		m.state.Store.SetTitle(m.titleInput.Value())
		m.titleInput.Blur()
		m.mode = modeBoard
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) updateCapture(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitAltView):
		m.capture.Blur()
		m.mode = modeBoard
		return m, nil

	case msg.String() == "ctrl+s":
		return m, m.submitCapture()
	}

	var cmd tea.Cmd
	m.capture, cmd = m.capture.Update(msg)
	return m, cmd
}

func (m *Model) updateTagMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitAltView):
		m.mode = modeBoard
		return m, nil
	case key.Matches(msg, m.keys.up):
		m.tags.up()
	case key.Matches(msg, m.keys.down):
		m.tags.down()
	case key.Matches(msg, m.keys.submitAltView):
		m.filter.Tag = m.tags.Selected()
		m.mode = modeBoard
		return m, m.refresh()
	}
	return m, nil
}

func (m *Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitAltView) || key.Matches(msg, m.keys.preview) || key.Matches(msg, m.keys.quit) {
		m.previewText = ""
		m.mode = modeBoard
	}
	return m, nil
}

func (m *Model) refresh() tea.Cmd {
	result, err := m.state.Pipeline.Build(m.filter)
	m.buildErr = err
	if err == nil {
		m.result = result
	}
	m.relayout()
	m.clampCursor()
	return nil
}

func (m *Model) relayout() {
	m.layout = layoutBoard(m.result, m.gridWidth())
	m.ensureVisible()
}

func (m *Model) clampCursor() {
	if total := m.result.Total(); m.cursor >= total {
		m.cursor = total - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

func (m *Model) selectedCard() (pipeline.Card, bool) {
	cards := m.result.Flattened()
	if m.cursor < 0 || m.cursor >= len(cards) {
		return pipeline.Card{}, false
	}
	return cards[m.cursor], true
}

// moveCursor walks the grid geometrically: it picks the nearest card in
// the requested direction, weighting the cross axis so movement stays
// within a column or row when possible.
func (m *Model) moveCursor(dx, dy int) {
	cur, ok := m.layout.rectFor(m.cursor)
	if !ok {
		if m.result.Total() > 0 {
			m.cursor = 0
			m.ensureVisible()
		}
		return
	}

	bestPos := -1
	bestDist := 0
	for _, s := range m.layout.sections {
		for _, r := range s.grid.rects {
			if r.position == m.cursor {
				continue
			}
			ddx := (r.x + r.w/2) - (cur.x + cur.w/2)
			ddy := (r.y + r.h/2) - (cur.y + cur.h/2)

			if dx != 0 && (sign(ddx) != dx || absInt(ddx) < absInt(ddy)) {
				continue
			}
			if dy != 0 && sign(ddy) != dy {
				continue
			}

			dist := absInt(ddx) + absInt(ddy)
			if dx == 0 {
				dist = absInt(ddy) + 3*absInt(ddx)
			}
			if bestPos < 0 || dist < bestDist {
				bestPos = r.position
				bestDist = dist
			}
		}
	}

	if bestPos >= 0 {
		m.cursor = bestPos
		m.ensureVisible()
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func (m *Model) ensureVisible() {
	r, ok := m.layout.rectFor(m.cursor)
	if !ok {
		m.scroll = 0
		return
	}
	vis := m.gridHeight()
	if r.y < m.scroll {
		m.scroll = r.y
	}
	if r.y+r.h > m.scroll+vis {
		m.scroll = r.y + r.h - vis
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Model) gridWidth() int {
	w := m.width - 4
	if w < minColumnWidth {
		w = minColumnWidth
	}
	return w
}

func (m *Model) gridHeight() int {
	h := m.height - 6
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) gridOriginX() int { return 2 }
func (m *Model) gridOriginY() int { return 3 }

func nextColor(current string) string {
	for i, c := range collection.Palette {
		if c == current {
			return collection.Palette[(i+1)%len(collection.Palette)]
		}
	}
	return collection.Palette[0]
}

func (m *Model) openSelected() tea.Cmd {
	c, ok := m.selectedCard()
	if !ok {
		return nil
	}
	return m.openPath(c.Path)
}

func (m *Model) openPath(rel string) tea.Cmd {
	launch, err := editor.LaunchForPath(m.state.Vault.Abs(rel))
	if err != nil {
		m.status = fmt.Sprintf("open failed: %v", err)
		return nil
	}

	if launch.Wait {
		return tea.ExecProcess(launch.Cmd, func(err error) tea.Msg {
			return editorFinishedMsg{err: err}
		})
	}

	if err := launch.Cmd.Start(); err != nil {
		m.status = fmt.Sprintf("open failed: %v", err)
	}
	return nil
}

func (m *Model) yankSelected() {
	c, ok := m.selectedCard()
	if !ok {
		return
	}
	data, err := m.state.Vault.Read(c.Path)
	if err != nil {
		m.status = fmt.Sprintf("yank failed: %v", err)
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		m.status = fmt.Sprintf("yank failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("copied %s", c.Path)
}

func (m *Model) submitCapture() tea.Cmd {
	title, body := m.capture.Values()
	if strings.TrimSpace(title) == "" && strings.TrimSpace(body) == "" {
		m.status = "nothing to capture"
		return nil
	}

	rel, err := m.state.Vault.Create(m.state.Config.CaptureFolder, title, body)
	if err != nil {
		m.status = fmt.Sprintf("capture failed: %v", err)
		return nil
	}

	m.capture.Blur()
	m.mode = modeBoard
	m.status = fmt.Sprintf("captured %s", rel)

	cmds := []tea.Cmd{m.refresh()}
	if m.state.Config.OpenAfterCapture {
		cmds = append(cmds, m.openPath(rel))
	}
	return tea.Batch(cmds...)
}

// openPreview renders the selected note with glamour, caching the result
// against the note's modtime and the render width.
func (m *Model) openPreview() tea.Cmd {
	c, ok := m.selectedCard()
	if !ok {
		return nil
	}

	w := m.gridWidth() - 8
	if rendered, hit := m.renders.Get(c.Path, c.ModTime, w); hit {
		m.previewText = rendered
		m.mode = modePreview
		return nil
	}

	data, err := m.state.Vault.Read(c.Path)
	if err != nil {
		m.status = fmt.Sprintf("preview failed: %v", err)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(w),
	)
	if err != nil {
		m.status = fmt.Sprintf("preview failed: %v", err)
		return nil
	}

	rendered, err := renderer.Render(string(data))
	if err != nil {
		m.status = fmt.Sprintf("preview failed: %v", err)
		return nil
	}

	m.renders.Put(c.Path, c.ModTime, w, rendered)
	m.previewText = rendered
	m.mode = modePreview
	return nil
}

func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	switch m.mode {
	case modeCapture:
		return m.styles.app.Render(m.capture.View(m.styles))
	case modeTagMenu:
		return m.styles.app.Render(m.tags.View(m.styles))
	case modePreview:
		return m.styles.app.Render(m.styles.overlay.Render(m.previewText))
	}

	var title string
	if m.mode == modeTitleEdit {
		title = m.styles.titleInput.Render(m.titleInput.View())
	} else {
		title = m.styles.title.Render(m.state.Store.Settings().Title)
	}

	body := m.renderBody()

	bottom := m.help.View(m.keys)
	if m.status != "" {
		bottom = m.styles.status.Render(m.status) + "  " + bottom
	}

	return m.styles.app.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.filterLine(),
		body,
		m.styles.help.Render(bottom),
	))
}

func (m *Model) filterLine() string {
	parts := []string{fmt.Sprintf("%d notes", m.result.Total())}
	if m.filter.Pins != pipeline.PinAll {
		parts = append(parts, "pins: "+m.filter.Pins.String())
	}
	if m.filter.Tag != "" {
		parts = append(parts, "tag: "+m.filter.Tag)
	}
	return m.styles.filterLine.Render(strings.Join(parts, " · "))
}

func (m *Model) renderBody() string {
	if m.buildErr != nil {
		return m.styles.errBanner.Render(fmt.Sprintf("could not load notes: %v", m.buildErr))
	}
	if m.result.Empty() {
		return m.styles.empty.Render("No notes here. Press n to capture one.")
	}

	grid := m.renderBoard()
	lines := strings.Split(grid, "\n")

	vis := m.gridHeight()
	start := m.scroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + vis
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}

func Run(s *state.State) error {
	m := NewModel(s)
	defer s.Close()

	if _, err := tea.NewProgram(
		m,
		tea.WithInput(os.Stdin),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		} else {
			log.Fatalf("Error running program: %v", err)
		}
	}

	return nil
}
