package ui

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexmk92/combobox/core"
	coreTypes "github.com/alexmk92/combobox/core/types"
	"github.com/alexmk92/combobox/core/sources"
)

func colorEntries() []coreTypes.Entry {
	return []coreTypes.Entry{
		coreTypes.Option{Label: "red", Value: "r"},
		coreTypes.Option{Label: "green", Value: "g"},
		coreTypes.Option{Label: "blue", Value: "b"},
	}
}

func newModel(t *testing.T, entries []coreTypes.Entry, source coreTypes.Source, mutate func(*core.Config)) *Model {
	t.Helper()

	cfg := core.DefaultConfig()
	cfg.InstanceID = "test"
	cfg.Logger = log.New(io.Discard)
	if mutate != nil {
		mutate(&cfg)
	}

	m := Start(core.NewSelect(entries, cfg, core.Handlers{}), source, nil)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	return m
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeyboardSelectAndSubmit(t *testing.T) {
	m := newModel(t, colorEntries(), nil, func(c *core.Config) { c.Name = "color" })

	send(m, tea.FocusMsg{})
	require.True(t, m.sel.MenuIsOpen())

	send(m, keyMsg(tea.KeyDown))
	require.NotNil(t, m.sel.FocusedOption())
	assert.Equal(t, "green", m.sel.FocusedOption().Label)

	send(m, keyMsg(tea.KeyEnter))
	assert.False(t, m.sel.MenuIsOpen())
	assert.Equal(t, "green", m.sel.Value().Single().Label)

	cmd := send(m, keyMsg(tea.KeyEnter))
	assert.True(t, isQuit(cmd))

	value, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "color=g", value)
	assert.Equal(t, "color=g", m.FinalOutput())
	assert.Empty(t, m.View())
}

func TestFirstKeyOnlyFocuses(t *testing.T) {
	m := newModel(t, colorEntries(), nil, nil)

	send(m, keyMsg(tea.KeyDown))

	assert.True(t, m.sel.IsFocused())
	require.NotNil(t, m.sel.FocusedOption())
	assert.Equal(t, "red", m.sel.FocusedOption().Label)
}

func TestTypingFilters(t *testing.T) {
	m := newModel(t, colorEntries(), nil, func(c *core.Config) { c.OpenMenuOnFocus = false })
	send(m, tea.FocusMsg{})
	require.False(t, m.sel.MenuIsOpen())

	send(m, runes("b"), runes("l"))

	assert.Equal(t, "bl", m.sel.InputValue())
	assert.True(t, m.sel.MenuIsOpen())
	assert.Equal(t, "blue", m.sel.FocusedOption().Label)
	assert.Contains(t, m.View(), "1 result available.")

	send(m, keyMsg(tea.KeyBackspace))
	assert.Equal(t, "b", m.sel.InputValue())

	send(m, keyMsg(tea.KeyEsc))
	assert.Equal(t, "", m.sel.InputValue())
	assert.Equal(t, "", m.input.Value(), "editor follows the state machine")
	assert.False(t, m.sel.MenuIsOpen())
}

func TestSpaceTypesWhileFiltering(t *testing.T) {
	m := newModel(t, []coreTypes.Entry{coreTypes.Option{Label: "sky blue", Value: "sb"}}, nil, nil)
	send(m, tea.FocusMsg{})

	send(m, runes("sky"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, runes("b"))

	assert.Equal(t, "sky b", m.sel.InputValue())
}

func TestFocusAndBlurMessages(t *testing.T) {
	m := newModel(t, colorEntries(), nil, nil)

	send(m, tea.FocusMsg{})
	assert.True(t, m.sel.IsFocused())
	assert.True(t, m.input.Focused())

	send(m, tea.BlurMsg{})
	assert.False(t, m.sel.IsFocused())
	assert.False(t, m.sel.MenuIsOpen())
	assert.False(t, m.input.Focused())
}

func TestTabLeavesWhenNotSelecting(t *testing.T) {
	m := newModel(t, colorEntries(), nil, func(c *core.Config) { c.TabSelectsValue = false })
	send(m, tea.FocusMsg{})

	send(m, keyMsg(tea.KeyTab))

	assert.False(t, m.sel.IsFocused())
	assert.True(t, m.sel.Value().IsNull())
}

func TestQuitDoesNotSubmit(t *testing.T) {
	m := newModel(t, colorEntries(), nil, nil)

	cmd := send(m, keyMsg(tea.KeyCtrlC))

	assert.True(t, isQuit(cmd))
	_, ok := m.Result()
	assert.False(t, ok)
	assert.Empty(t, m.FinalOutput())
}

func TestAsyncLoading(t *testing.T) {
	source := sources.NewStaticSource([]string{"one=1", "two=2"})
	m := newModel(t, nil, source, nil)

	assert.True(t, m.sel.IsLoading())
	send(m, tea.FocusMsg{})
	assert.Contains(t, m.View(), "Loading...")

	send(m, optionsLoadedMsg{coreTypes.Option{Label: "one", Value: "1"}})

	assert.False(t, m.sel.IsLoading())
	assert.Len(t, m.sel.Options(), 1)
	assert.Equal(t, "one", m.sel.FocusedOption().Label)
}

func TestLoadOptionsCommand(t *testing.T) {
	source := sources.NewStaticSource([]string{"one=1", "two=2"})
	m := newModel(t, nil, source, nil)

	msg := m.loadOptions()()

	loaded, ok := msg.(optionsLoadedMsg)
	require.True(t, ok)
	assert.Len(t, loaded, 2)
}

func TestSourceError(t *testing.T) {
	m := newModel(t, nil, sources.NewStaticSource(nil), nil)

	cmd := send(m, errorMsg(errors.New("boom")))

	assert.True(t, isQuit(cmd))
	assert.EqualError(t, m.Err(), "boom")
	assert.Contains(t, m.FinalOutput(), "boom")
	assert.False(t, m.sel.IsLoading())
}

func TestMouseDropdownAndOptionClick(t *testing.T) {
	m := newModel(t, colorEntries(), nil, func(c *core.Config) { c.OpenMenuOnFocus = false })

	f := m.layout()
	var dropdown zone
	for _, z := range f.zones {
		if z.kind == zoneDropdown {
			dropdown = z
		}
	}
	require.Equal(t, zoneDropdown, dropdown.kind)

	send(m, tea.MouseMsg{X: dropdown.start, Y: f.controlY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.sel.IsFocused())
	require.True(t, m.sel.MenuIsOpen())

	// Hover then click the third row
	send(m, tea.MouseMsg{X: 3, Y: f.controlY + 3, Action: tea.MouseActionMotion})
	assert.Equal(t, "blue", m.sel.FocusedOption().Label)

	send(m, tea.MouseMsg{X: 3, Y: f.controlY + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, "blue", m.sel.Value().Single().Label)
	assert.False(t, m.sel.MenuIsOpen())
}

func TestMouseRightButtonOnDropdownIgnored(t *testing.T) {
	m := newModel(t, colorEntries(), nil, func(c *core.Config) { c.OpenMenuOnFocus = false })

	f := m.layout()
	for _, z := range f.zones {
		if z.kind == zoneDropdown {
			send(m, tea.MouseMsg{X: z.start, Y: f.controlY, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
		}
	}

	assert.False(t, m.sel.MenuIsOpen())
	assert.False(t, m.sel.IsFocused())
}

func TestMouseRemoveChip(t *testing.T) {
	m := newModel(t, colorEntries(), nil, func(c *core.Config) { c.IsMulti = true })
	m.sel.SelectOption(coreTypes.Option{Label: "red", Value: "r"})
	m.sel.SelectOption(coreTypes.Option{Label: "blue", Value: "b"})

	f := m.layout()
	var remove *zone
	for i, z := range f.zones {
		if z.kind == zoneRemove && z.option.Label == "red" {
			remove = &f.zones[i]
		}
	}
	require.NotNil(t, remove)

	send(m, tea.MouseMsg{X: remove.start, Y: f.controlY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.Equal(t, []coreTypes.Option{{Label: "blue", Value: "b"}}, m.sel.SelectedOptions())
}

func TestMouseOutsideBlurs(t *testing.T) {
	m := newModel(t, colorEntries(), nil, nil)
	send(m, tea.FocusMsg{})

	send(m, tea.MouseMsg{X: 0, Y: 19, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, m.sel.IsFocused())
}

func TestMenuScrollsToFocus(t *testing.T) {
	var entries []coreTypes.Entry
	for _, label := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		entries = append(entries, coreTypes.Option{Label: label, Value: label})
	}
	m := newModel(t, entries, nil, nil)
	send(m, tea.WindowSizeMsg{Width: 40, Height: 5})
	require.Equal(t, minMenuRows, m.menuRows)

	send(m, tea.FocusMsg{}, keyMsg(tea.KeyEnd))

	f := m.layout()
	require.Len(t, f.rows, minMenuRows)
	assert.Equal(t, "h", f.rows[len(f.rows)-1].Option.Label)
}

func TestViewShowsTitleAndPlaceholder(t *testing.T) {
	m := newModel(t, colorEntries(), nil, func(c *core.Config) {
		c.AriaLabel = "Pick a color"
		c.Placeholder = "Choose..."
	})

	view := m.View()

	assert.Contains(t, view, "Pick a color")
	assert.Contains(t, view, "Choose...")
	assert.Equal(t, 1, m.layout().controlY)
}
