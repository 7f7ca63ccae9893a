package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexmk92/combobox/core"
	coreTypes "github.com/alexmk92/combobox/core/types"
	"github.com/alexmk92/combobox/ui/components"
)

const (
	defaultWidth   = 60
	maxMenuRows    = 10
	minMenuRows    = 3
	sourceDeadline = 30 * time.Second
)

// Model is the terminal front end of one combobox. It translates bubbletea
// messages into state machine events and draws the result through the slot
// registry.
type Model struct {
	// Core dependencies
	sel      *core.Select
	source   coreTypes.Source
	registry *components.Registry
	keys     KeyMap

	input textinput.Model
	title string

	// Viewport dimensions
	width    int
	menuRows int
	offset   int

	// Final result
	submitted bool
	err       error
}

// Messages for async option loading
type optionsLoadedMsg []coreTypes.Entry
type errorMsg error

// Start creates the model. source may be nil when the options were handed to
// the Select up front; registry may be nil for the default renderers.
func Start(sel *core.Select, source coreTypes.Source, registry *components.Registry) *Model {
	if registry == nil {
		registry = components.NewRegistry()
	}

	return &Model{
		sel:      sel,
		source:   source,
		registry: registry,
		keys:     DefaultKeyMap(),
		input:    NewFilterInput(),
		title:    sel.Config().AriaLabel,
		menuRows: maxMenuRows,
	}
}

func (m *Model) Select() *core.Select { return m.sel }

// Init runs the mount behavior and kicks off option loading.
func (m *Model) Init() tea.Cmd {
	m.sel.Init()
	m.sync()

	if m.source == nil {
		return textinput.Blink
	}

	m.sel.SetLoading(true)
	return tea.Batch(textinput.Blink, m.loadOptions())
}

// loadOptions runs the source off the event loop; the result comes back as a
// message so the options are replaced in one step.
func (m *Model) loadOptions() tea.Cmd {
	source := m.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sourceDeadline)
		defer cancel()

		entries, err := source.Load(ctx)
		if err != nil {
			return errorMsg(fmt.Errorf("%s source: %w", source.Name(), err))
		}
		return optionsLoadedMsg(entries)
	}
}

// Update handles every message and keeps the text editor in step with the
// state machine afterwards.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.menuRows = max(minMenuRows, min(maxMenuRows, msg.Height-m.controlLine()-2))

	case optionsLoadedMsg:
		m.sel.SetOptions([]coreTypes.Entry(msg))
		m.sel.SetLoading(false)

	case errorMsg:
		m.err = msg
		m.sel.SetLoading(false)
		return m, tea.Quit

	case tea.FocusMsg:
		m.sel.Focus()

	case tea.BlurMsg:
		m.sel.Blur()

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		// Cursor blink and friends belong to the editor
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	m.sync()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.submitted {
		return nil
	}
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	disabled := m.sel.Config().IsDisabled
	if !m.sel.IsFocused() && !disabled {
		// The first key after leaving only brings focus back
		m.sel.Focus()
		return nil
	}

	if ev, ok := m.keys.event(msg); ok {
		if m.sel.KeyDown(ev) {
			return nil
		}

		switch ev.Key {
		case coreTypes.KeyEnter:
			if !m.sel.MenuIsOpen() {
				m.submitted = true
				return tea.Quit
			}
			return nil
		case coreTypes.KeyTab:
			m.sel.Blur()
			return nil
		case coreTypes.KeyEscape, coreTypes.KeyArrowUp, coreTypes.KeyArrowDown,
			coreTypes.KeyPageUp, coreTypes.KeyPageDown, coreTypes.KeyHome, coreTypes.KeyEnd:
			return nil
		}
	}

	if disabled || !m.sel.Config().IsSearchable {
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if text := m.input.Value(); text != m.sel.InputValue() {
		m.sel.InputChange(text)
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	l := m.layout()

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.offset = max(0, m.offset-1)
		return
	case msg.Button == tea.MouseButtonWheelDown:
		m.offset = min(m.offset+1, max(0, l.totalRows-m.menuRows))
		return
	case msg.Action == tea.MouseActionMotion:
		if row, ok := l.rowAt(msg.Y); ok && row.Option != nil {
			m.sel.HoverOptionAt(row.Option.FocusIndex)
		}
		return
	case msg.Action != tea.MouseActionPress:
		return
	}

	button, ok := mouseButton(msg.Button)
	if !ok {
		return
	}

	if msg.Y == l.controlY {
		m.pressControl(l.zoneAt(msg.X), button)
		return
	}

	if row, ok := l.rowAt(msg.Y); ok {
		if row.Option != nil && button == coreTypes.ButtonLeft {
			m.sel.SelectOption(row.Option.Option)
		}
		return
	}

	// Anywhere else is outside the combobox
	m.sel.Blur()
}

func (m *Model) pressControl(z zone, button coreTypes.MouseButton) {
	switch z.kind {
	case zoneRemove:
		if button == coreTypes.ButtonLeft {
			m.sel.RemoveValue(z.option)
		}
	case zoneClear:
		m.sel.ClearIndicatorMouseDown(button)
	case zoneDropdown:
		m.sel.DropdownIndicatorMouseDown(button)
	default:
		if button == coreTypes.ButtonLeft {
			m.sel.ControlMouseDown(z.kind == zoneInput)
		}
	}
}

// sync copies state machine state into the editor and keeps the focused row
// inside the menu window.
func (m *Model) sync() {
	if text := m.sel.InputValue(); m.input.Value() != text {
		m.input.SetValue(text)
	}

	if m.sel.IsFocused() && !m.input.Focused() {
		m.input.Focus()
	} else if !m.sel.IsFocused() && m.input.Focused() {
		m.input.Blur()
	}

	m.scrollToFocus(m.sel.Props().Rows)
}

func (m *Model) scrollToFocus(rows []core.MenuRow) {
	if len(rows) <= m.menuRows {
		m.offset = 0
		return
	}

	for i, row := range rows {
		if row.Option == nil || !row.Option.IsFocused {
			continue
		}
		if i < m.offset {
			m.offset = i
			// Show the heading of a group's first option
			if i > 0 && rows[i-1].Group != nil {
				m.offset = i - 1
			}
		}
		if i >= m.offset+m.menuRows {
			m.offset = i - m.menuRows + 1
		}
		break
	}

	m.offset = min(m.offset, len(rows)-m.menuRows)
}

// View renders the control row, the menu and the status line.
func (m *Model) View() string {
	if m.submitted {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("%s %s", errorStyle.Render("✗"), errorStyle.Render(m.err.Error()))
	}

	l := m.layout()
	var b strings.Builder

	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n")
	}
	b.WriteString(l.control)

	if len(l.menuLines) > 0 {
		b.WriteString("\n")
		b.WriteString(m.registry.Menu().RenderMenu(l.menuLines, l.width))
	}

	if l.status != "" {
		b.WriteString("\n")
		b.WriteString(l.status)
	}

	return b.String()
}

// Result is the submitted form value, "name=value" when a name is configured.
// The second result is false when nothing was submitted.
func (m *Model) Result() (string, bool) {
	if !m.submitted {
		return "", false
	}

	cfg := m.sel.Config()
	value := core.HiddenValue(m.sel.SelectedOptions(), cfg.Mode(), cfg.Delimiter)
	if cfg.Name != "" {
		return cfg.Name + "=" + value, true
	}
	return value, true
}

// FinalOutput returns what should be printed after the TUI exits: the submitted
// value, or the error that stopped the program.
func (m *Model) FinalOutput() string {
	if m.err != nil {
		return fmt.Sprintf("%s %s", errorStyle.Render("✗"), errorStyle.Render(m.err.Error()))
	}

	if value, ok := m.Result(); ok {
		return value
	}

	return ""
}

// Err is the error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) controlLine() int {
	if m.title != "" {
		return 1
	}
	return 0
}

func (m *Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func mouseButton(b tea.MouseButton) (coreTypes.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return coreTypes.ButtonLeft, true
	case tea.MouseButtonMiddle:
		return coreTypes.ButtonMiddle, true
	case tea.MouseButtonRight:
		return coreTypes.ButtonRight, true
	default:
		return 0, false
	}
}
