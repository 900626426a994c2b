package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"combobox/internal/combobox"
	"combobox/internal/config"
	"combobox/internal/dom"
	"combobox/internal/eventbus"
	"combobox/internal/logging"
	"combobox/internal/ui/views"
)

// Model is the Bubble Tea program hosting one combobox. It renders the
// controller's element tree and is the controller's Host.
type Model struct {
	ctrl   *combobox.Controller
	bus    eventbus.EventBus
	config *config.Config

	keys         KeyMap
	input        textinput.Model
	help         help.Model
	helpRenderer *HelpRenderer
	renderer     *views.Renderer
	layout       views.Layout
	anim         popupAnimation

	width  int
	height int

	offset       int // first list row inside the popup window
	iconShown    bool
	inputFocused bool
	inspector    bool
	accepted     bool
	status       string

	// commands requested by the controller through Host calls
	pending []tea.Cmd

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the UI model and the controller it hosts
func NewModel(cfg *config.Config, bus eventbus.EventBus) (*Model, error) {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type to filter"
	ti.Focus()

	m := &Model{
		bus:          bus,
		config:       cfg,
		keys:         DefaultKeyMap(),
		input:        ti,
		help:         help.New(),
		helpRenderer: NewHelpRenderer(),
		renderer:     views.NewRenderer(nil),
		inputFocused: true,
	}

	opts := combobox.DefaultOptions()
	opts.Data = cfg.Data
	opts.OpenAnimationDelay = cfg.OpenDelay()
	opts.CloseAnimationDelay = cfg.CloseDelay()
	opts.Bus = bus

	input := dom.New("input").SetAttr("id", cfg.ID)
	ctrl, err := combobox.New(input, m, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create combobox: %w", err)
	}
	m.ctrl = ctrl

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Controller returns the hosted combobox
func (m *Model) Controller() *combobox.Controller {
	return m.ctrl
}

// Value returns the current input value
func (m *Model) Value() string {
	return m.ctrl.Value()
}

// Accepted reports whether the user confirmed the value before quitting
func (m *Model) Accepted() bool {
	return m.accepted
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			m.accepted = true
			return m, tea.Quit
		}
		m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.FocusMsg:
		m.focusInput()

	case tea.BlurMsg:
		m.blurInput()

	case animationTickMsg:
		m.pending = append(m.pending, m.anim.step(msg))

	case EventMsg:
		m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("help: %v", msg.err)
			logging.Warn("help pager failed", zap.Error(msg.err))
		}

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.pending = append(m.pending, cmd)
	}

	return m, m.flush()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.pending = append(m.pending, m.showHelp())
		return
	case key.Matches(msg, m.keys.Inspector):
		m.inspector = !m.inspector
		return
	case key.Matches(msg, m.keys.ToggleFocus):
		if m.inputFocused {
			m.blurInput()
		} else {
			m.focusInput()
		}
		return
	}

	if !m.inputFocused {
		return
	}

	if m.ctrl.HandleKeyDown(m.keys.controllerKey(msg)) {
		m.syncInput()
		return
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.pending = append(m.pending, cmd)

	if v := m.input.Value(); v != before {
		m.ctrl.HandleInput(v)
	}
	m.syncInput()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	if m.layout.OnClearIcon(msg.X, msg.Y) {
		m.ctrl.HandleClearClick()
		m.syncInput()
		return
	}
	if id, ok := m.layout.ItemAt(msg.Y); ok {
		m.ctrl.HandleItemClick(id)
		m.syncInput()
		return
	}
	if msg.Y == m.layout.InputRow {
		m.focusInput()
		return
	}
	m.blurInput()
}

func (m *Model) focusInput() {
	if m.inputFocused {
		return
	}
	m.inputFocused = true
	m.pending = append(m.pending, m.input.Focus())
	m.ctrl.HandleFocus()
}

func (m *Model) blurInput() {
	if !m.inputFocused {
		return
	}
	m.inputFocused = false
	m.input.Blur()
	m.ctrl.HandleBlur()
}

// syncInput copies a value the controller set into the text field
func (m *Model) syncInput() {
	if v := m.ctrl.Value(); v != m.input.Value() {
		m.input.SetValue(v)
		m.input.CursorEnd()
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ValueCommittedEvent:
		m.status = fmt.Sprintf("selected %q", e.Value)
	case eventbus.ValueClearedEvent:
		m.status = "cleared"
	case eventbus.ConfigLoadedEvent:
		m.status = fmt.Sprintf("loaded %d items", e.Items)
	}
}

func (m *Model) showHelp() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent(m.config.Label, m.keys)
	ops := NewHelpOps(m.program)
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

func (m *Model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	out, layout := m.renderer.Render(m.buildViewState())
	m.layout = layout
	return out
}

func (m *Model) buildViewState() views.ViewState {
	items := m.ctrl.Items()
	rows := make([]views.Row, 0, len(items))
	for _, li := range items {
		selected, _ := li.Attr(combobox.AttrSelected)
		rows = append(rows, views.Row{
			ID:       li.ID(),
			Text:     li.Text(),
			Focused:  li.HasClass(combobox.ClassFocus),
			Selected: selected == "true",
		})
	}

	s := views.ViewState{
		Width:      m.width,
		Label:      m.config.Label,
		InputView:  m.input.View(),
		ClearIcon:  m.iconShown,
		Rows:       rows,
		Offset:     m.clampOffset(len(rows)),
		ListHeight: m.config.ListHeight,
		Status:     m.status,
		Help:       m.help.View(m.keys),
	}

	if len(rows) == 0 {
		if p := m.ctrl.List().FindFirst(func(e *dom.Element) bool { return e.Tag == "p" }); p != nil {
			s.NoData = p.Text()
		}
	}

	window := len(rows)
	if window > s.ListHeight {
		window = s.ListHeight
	}
	if window < 1 {
		window = 1
	}
	s.Reveal = m.anim.rows(window)

	if m.inspector {
		s.Inspector = m.inspectorLines()
	}
	return s
}

func (m *Model) clampOffset(n int) int {
	maxOffset := n - m.config.ListHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	return m.offset
}

func (m *Model) inspectorLines() []string {
	var aria []string
	for _, a := range m.ctrl.Input().Attrs() {
		if strings.HasPrefix(a.Name, "aria-") {
			aria = append(aria, a.Name+"="+a.Value)
		}
	}

	lines := []string{
		strings.Join(aria, " "),
		fmt.Sprintf("focus=%s popup=%s", m.ctrl.Focus(), m.ctrl.Popup()),
	}
	if el := m.ctrl.FocusedElement(); el != nil && m.ctrl.Focus().IsListItem() {
		lines = append(lines, el.String())
	}
	return lines
}

// Host implementation. The controller is still being built while New runs,
// so elements are told apart by class.

// SlideDown reveals the popup over d
func (m *Model) SlideDown(el *dom.Element, d time.Duration) {
	if el.HasClass(combobox.ClassPopup) {
		m.pending = append(m.pending, m.anim.animateTo(1, d))
		return
	}
	m.Show(el)
}

// SlideUp hides the popup over d
func (m *Model) SlideUp(el *dom.Element, d time.Duration) {
	if el.HasClass(combobox.ClassPopup) {
		m.pending = append(m.pending, m.anim.animateTo(0, d))
		return
	}
	m.Hide(el)
}

// Show makes el visible immediately
func (m *Model) Show(el *dom.Element) {
	switch {
	case el.HasClass(combobox.ClassPopup):
		m.anim.snap(1)
	case el.HasClass(combobox.ClassClearIcon):
		m.iconShown = true
	}
}

// Hide makes el invisible immediately
func (m *Model) Hide(el *dom.Element) {
	switch {
	case el.HasClass(combobox.ClassPopup):
		m.anim.snap(0)
	case el.HasClass(combobox.ClassClearIcon):
		m.iconShown = false
	}
}

// ScrollIntoView moves the popup window so that el is visible
func (m *Model) ScrollIntoView(el *dom.Element) {
	if m.ctrl == nil {
		return
	}
	idx := el.Index()
	if idx < 0 || !m.ctrl.List().Contains(el) {
		return
	}

	height := m.config.ListHeight
	switch {
	case idx < m.offset:
		m.offset = idx
	case idx >= m.offset+height:
		m.offset = idx - height + 1
	}
}

var _ combobox.Host = (*Model)(nil)
