// Package browse is an interactive palette browser.
package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/app"
	"tableflip.dev/rampeditor/pkg/color"
	"tableflip.dev/rampeditor/pkg/logging"
	"tableflip.dev/rampeditor/pkg/palette"
	"tableflip.dev/rampeditor/pkg/store"
)

const (
	cellWidth      = 3
	defaultColumns = 16
	defaultLines   = 16
	historyHeight  = 6
	keyHints       = "arrows/hjkl move, [/] page, a color, x remove, w watch, y copy, u undo, r redo, ? help, q quit"
)

type mode int

const (
	modeGrid mode = iota
	modeHelp
	modeInput
	modePicker
)

type inputKind int

const (
	inputColor inputKind = iota
	inputGoto
)

// Model contains UI state
type Model struct {
	svc  *app.Service
	ctx  context.Context
	name string
	mode mode

	pal    *palette.Palette
	cursor address.Address

	history   viewport.Model
	help      helpModel
	input     textinput.Model
	inputKind inputKind
	picker    list.Model
	status    string

	termWidth  int
	termHeight int
}

type errMsg struct{ err error }
type paletteLoadedMsg struct{ pal *palette.Palette }
type appliedMsg struct {
	info palette.OperationInfo
	pal  *palette.Palette
}
type watchStartedMsg struct{ events <-chan store.Event }
type storeEventMsg struct {
	ev     store.Event
	events <-chan store.Event
}

// New creates a browser for the named palette backed by the Service.
func New(ctx context.Context, svc *app.Service, name string) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	ti := textinput.New()
	ti.CharLimit = 16
	return Model{
		svc:     svc,
		ctx:     ctx,
		name:    name,
		history: viewport.New(viewport.WithWidth(40), viewport.WithHeight(historyHeight)),
		input:   ti,
		picker:  newPicker(40, 12),
		status:  keyHints,
	}
}

// Init loads the palette and starts watching the store.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.watch())
}

func (m Model) load() tea.Cmd {
	svc, ctx, name := m.svc, m.ctx, m.name
	return func() tea.Msg {
		p, err := svc.Open(ctx, name)
		if err != nil {
			return errMsg{err}
		}
		return paletteLoadedMsg{p}
	}
}

func (m Model) watch() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		events, err := svc.Watch(ctx)
		if err != nil {
			logging.FromContext(ctx).Debug("browse: watch unavailable", "err", err)
			return nil
		}
		return watchStartedMsg{events}
	}
}

func waitForEvent(events <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg{ev: ev, events: events}
	}
}

// mutate runs fn against the service and reloads the palette.
func (m Model) mutate(fn func(ctx context.Context, name string) (palette.HistoryEntry, error)) tea.Cmd {
	svc, ctx, name := m.svc, m.ctx, m.name
	return func() tea.Msg {
		entry, err := fn(ctx, name)
		if err != nil {
			return errMsg{err}
		}
		p, err := svc.Open(ctx, name)
		if err != nil {
			return errMsg{err}
		}
		return appliedMsg{info: entry.Info, pal: p}
	}
}

func (m Model) apply(op palette.Operation) tea.Cmd {
	return m.mutate(func(ctx context.Context, name string) (palette.HistoryEntry, error) {
		return m.svc.Apply(ctx, name, op)
	})
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case paletteLoadedMsg:
		m.setPalette(msg.pal)
	case appliedMsg:
		m.setPalette(msg.pal)
		m.status = msg.info.String()
	case palettesListedMsg:
		cmd := m.picker.SetItems(msg.items)
		for i, it := range msg.items {
			if string(it.(paletteItem)) == m.name {
				m.picker.Select(i)
			}
		}
		m.mode = modePicker
		return m, cmd
	case watchStartedMsg:
		return m, waitForEvent(msg.events)
	case storeEventMsg:
		cmds := []tea.Cmd{waitForEvent(msg.events)}
		if msg.ev.Type == store.EventCatalogInvalidated || msg.ev.Palette == m.name {
			cmds = append(cmds, m.load())
		}
		return m, tea.Batch(cmds...)
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			return m.handleHelpKey(msg)
		case modeInput:
			return m.handleInputKey(msg)
		case modePicker:
			return m.handlePickerKey(msg)
		}
		return m.handleKey(msg)
	default:
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "q", "esc":
		m.mode = modeGrid
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.update(msg)
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeGrid
		m.input.Blur()
		m.status = keyHints
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.mode = modeGrid
		m.input.Blur()
		return m.submitInput(strings.TrimSpace(m.input.Value()))
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitInput(value string) (tea.Model, tea.Cmd) {
	switch m.inputKind {
	case inputColor:
		c, err := color.ParseHex(value)
		if err != nil {
			m.status = "ERR: " + err.Error()
			return m, nil
		}
		at := m.cursor
		return m, m.apply(&palette.InsertColor{Color: c, Location: &at, Overwrite: true})
	case inputGoto:
		a, err := address.Parse(value)
		if err != nil {
			m.status = "ERR: " + err.Error()
			return m, nil
		}
		if m.pal != nil && !m.pal.Bounds().Contains(a) {
			m.status = fmt.Sprintf("%s is outside %s", a.Hex(), m.pal.Bounds())
			return m, nil
		}
		m.cursor = a
		m.status = keyHints
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "p":
		m.mode = modeGrid
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.mode = modeGrid
		if it, ok := m.picker.SelectedItem().(paletteItem); ok && string(it) != m.name {
			m.name = string(it)
			m.cursor = address.Address{}
			m.status = "opened " + m.name
			return m, m.load()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) prompt(kind inputKind, label string) (tea.Model, tea.Cmd) {
	m.mode = modeInput
	m.inputKind = kind
	m.input.Reset()
	m.input.Prompt = label
	return m, m.input.Focus()
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "?":
		w, h := m.overlaySize()
		m.help = newHelp(w, h)
		m.mode = modeHelp
	case "a":
		return m.prompt(inputColor, "color at "+m.cursor.Hex()+": ")
	case "g":
		return m.prompt(inputGoto, "go to: ")
	case "p":
		return m, m.listPalettes()
	case "left", "h":
		m.move(0, -1)
	case "right", "l":
		m.move(0, 1)
	case "up", "k":
		m.move(-1, 0)
	case "down", "j":
		m.move(1, 0)
	case "]", "pgdown":
		m.page(1)
	case "[", "pgup":
		m.page(-1)
	case "u":
		return m, m.mutate(m.svc.Undo)
	case "r", "ctrl+r":
		return m, m.mutate(m.svc.Redo)
	case "x":
		if !m.occupied() {
			m.status = fmt.Sprintf("%s is empty", m.cursor.Hex())
			return m, nil
		}
		return m, m.apply(&palette.RemoveElement{Location: m.cursor})
	case "w":
		if !m.occupied() {
			m.status = fmt.Sprintf("%s is empty", m.cursor.Hex())
			return m, nil
		}
		return m, m.apply(&palette.InsertWatcher{Source: m.cursor})
	case "y":
		if !m.occupied() {
			m.status = fmt.Sprintf("%s is empty", m.cursor.Hex())
			return m, nil
		}
		return m, m.apply(&palette.CopyColor{Source: m.cursor, Resolve: true})
	}
	return m, nil
}

func (m *Model) setPalette(p *palette.Palette) {
	m.pal = p
	m.clampCursor()
	m.history.SetContent(historyContent(p))
}

func (m Model) occupied() bool {
	if m.pal == nil {
		return false
	}
	_, ok := m.pal.Expression(m.cursor)
	return ok
}

// visible returns how many lines and columns of a page fit on screen.
func (m Model) visible() (lines, columns int) {
	lines, columns = defaultLines, defaultColumns
	if m.termWidth > 0 {
		columns = max((m.termWidth-2)/cellWidth, 1)
	}
	if m.termHeight > 0 {
		lines = max(m.termHeight-historyHeight-8, 1)
	}
	if m.pal != nil {
		b := m.pal.Bounds()
		lines = min(lines, b.Lines)
		columns = min(columns, b.Columns)
	}
	return lines, columns
}

func (m *Model) move(dLine, dColumn int) {
	lines, columns := m.visible()
	line := min(max(int(m.cursor.Line)+dLine, 0), lines-1)
	column := min(max(int(m.cursor.Column)+dColumn, 0), columns-1)
	m.cursor = address.New(m.cursor.Page, uint8(line), uint8(column))
}

func (m *Model) page(delta int) {
	pages := 1
	if m.pal != nil {
		pages = m.pal.Bounds().Pages
	}
	page := (int(m.cursor.Page) + delta + pages) % pages
	m.cursor = address.New(uint16(page), m.cursor.Line, m.cursor.Column)
}

func (m *Model) clampCursor() {
	if m.pal == nil {
		return
	}
	if int(m.cursor.Page) >= m.pal.Bounds().Pages {
		m.cursor = address.New(0, m.cursor.Line, m.cursor.Column)
	}
	m.move(0, 0)
}

// applySizes recalculates pane sizes based on the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.history.SetWidth(max(m.termWidth-2, 10))
	m.history.SetHeight(historyHeight)
	w, h := m.overlaySize()
	m.picker.SetSize(w, h)
	if m.mode == modeHelp {
		m.help.setSize(w, h)
	}
}

func (m Model) overlaySize() (width, height int) {
	width, height = 80, 24
	if m.termWidth > 0 {
		width = max(m.termWidth-4, 20)
	}
	if m.termHeight > 0 {
		height = max(m.termHeight-2, 8)
	}
	return width, height
}

// Run starts the browser on the named palette.
func Run(ctx context.Context, svc *app.Service, name string) error {
	p := tea.NewProgram(New(ctx, svc, name), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
