package core

import (
	"github.com/alexmk92/combobox/core/types"
)

var numberWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
}

// numberOptions returns 17 options labeled "0".."16" with the spelled out
// number as value.
func numberOptions() []types.Option {
	options := make([]types.Option, len(numberWords))
	for i, word := range numberWords {
		options[i] = types.Option{Label: itoa(i), Value: word}
	}
	return options
}

func numberEntries() []types.Entry {
	return entries(numberOptions()...)
}

func entries(options ...types.Option) []types.Entry {
	out := make([]types.Entry, len(options))
	for i, o := range options {
		out[i] = o
	}
	return out
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return string(rune('0'+i/10)) + string(rune('0'+i%10))
}

// recorder captures every outward notification in order.
type recorder struct {
	changes []change
	inputs  []inputChange
	events  []string
}

type change struct {
	value types.Value
	meta  types.ActionMeta
}

type inputChange struct {
	text   string
	action types.InputAction
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		OnChange: func(v types.Value, m types.ActionMeta) {
			r.changes = append(r.changes, change{v, m})
			r.events = append(r.events, "change:"+string(m.Action))
		},
		OnInputChange: func(text string, m types.InputActionMeta) {
			r.inputs = append(r.inputs, inputChange{text, m.Action})
			r.events = append(r.events, "input:"+string(m.Action))
		},
		OnMenuOpen:  func() { r.events = append(r.events, "open") },
		OnMenuClose: func() { r.events = append(r.events, "close") },
		OnFocus:     func() { r.events = append(r.events, "focus") },
		OnBlur:      func() { r.events = append(r.events, "blur") },
	}
}

func (r *recorder) lastChange() change {
	if len(r.changes) == 0 {
		return change{}
	}
	return r.changes[len(r.changes)-1]
}

func (r *recorder) reset() {
	r.changes = nil
	r.inputs = nil
	r.events = nil
}

func key(k types.Key) types.KeyEvent {
	return types.KeyEvent{Key: k}
}
