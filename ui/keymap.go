package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	coreTypes "github.com/alexmk92/combobox/core/types"
)

// KeyMap binds terminal keys to the keys the combobox understands.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Enter     key.Binding
	Space     key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	Escape    key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous option"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next option"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous value"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next value"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first option"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last option"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select / submit"),
		),
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "open / select"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "leave"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close / clear"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "remove value"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "remove value"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// event translates a terminal key into a combobox key event. The second result
// is false for keys that are only text editing.
func (k KeyMap) event(msg tea.KeyMsg) (coreTypes.KeyEvent, bool) {
	bindings := []struct {
		binding key.Binding
		key     coreTypes.Key
		shift   bool
	}{
		{k.Up, coreTypes.KeyArrowUp, false},
		{k.Down, coreTypes.KeyArrowDown, false},
		{k.Left, coreTypes.KeyArrowLeft, false},
		{k.Right, coreTypes.KeyArrowRight, false},
		{k.PageUp, coreTypes.KeyPageUp, false},
		{k.PageDown, coreTypes.KeyPageDown, false},
		{k.Home, coreTypes.KeyHome, false},
		{k.End, coreTypes.KeyEnd, false},
		{k.Enter, coreTypes.KeyEnter, false},
		{k.Space, coreTypes.KeySpace, false},
		{k.Tab, coreTypes.KeyTab, false},
		{k.ShiftTab, coreTypes.KeyTab, true},
		{k.Escape, coreTypes.KeyEscape, false},
		{k.Backspace, coreTypes.KeyBackspace, false},
		{k.Delete, coreTypes.KeyDelete, false},
	}

	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return coreTypes.KeyEvent{Key: b.key, Shift: b.shift}, true
		}
	}
	return coreTypes.KeyEvent{}, false
}
