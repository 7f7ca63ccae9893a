package types

import (
	"context"
	"fmt"
	"reflect"
)

// Types shared by the core engine, the option sources and the ui live in their own
// package so that any of them can import the data model without pulling in the
// state machine (and without running into circular imports).

// Mode decides whether the committed selection holds one option or many.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMulti
)

func (m Mode) String() string {
	switch m {
	case ModeMulti:
		return "multi"
	default:
		return "single"
	}
}

// Entry is one element of a source option list: either an Option or a Group.
// The marker method keeps other types out of the list at compile time.
type Entry interface {
	isEntry()
}

// Option is one selectable entity. Value is expected to be an equality
// comparable primitive (string, number or bool) but the core never checks it.
type Option struct {
	Label      string `yaml:"label" json:"label"`
	Value      any    `yaml:"value" json:"value"`
	IsDisabled bool   `yaml:"disabled,omitempty" json:"isDisabled,omitempty"`
}

func (Option) isEntry() {}

// Equal compares the full option record (label and value). Two options sharing a
// value but carrying different labels are different options.
func (o Option) Equal(other Option) bool {
	return o.Label == other.Label && reflect.DeepEqual(o.Value, other.Value)
}

// ValueString is the string form used for hidden form fields and filtering.
func (o Option) ValueString() string {
	if o.Value == nil {
		return ""
	}
	return fmt.Sprint(o.Value)
}

// Group is a named bucket of options. Groups never nest.
type Group struct {
	Label   string   `yaml:"group" json:"label"`
	Options []Option `yaml:"options" json:"options"`
}

func (Group) isEntry() {}

// Action is the kind attached to every onChange notification.
type Action string

const (
	ActionSelectOption Action = "select-option"
	ActionRemoveValue  Action = "remove-value"
	ActionPopValue     Action = "pop-value"
	ActionClear        Action = "clear"
)

// ActionMeta accompanies the new value handed to onChange. Option is the option
// that was selected or removed (nil for clear).
type ActionMeta struct {
	Action Action
	Option *Option
	Name   string
}

// InputAction is the reason attached to every onInputChange notification.
type InputAction string

const (
	InputActionChange    InputAction = "input-change"
	InputActionMenuClose InputAction = "menu-close"
	InputActionSetValue  InputAction = "set-value"
)

type InputActionMeta struct {
	Action InputAction
}

// Value is the committed selection as reported outward. In single mode it holds
// zero or one option and reads as nil when empty; in multi mode it is an ordered
// sequence that reads as an empty (non-nil) slice when empty.
type Value struct {
	Mode    Mode
	Options []Option
}

// NewValue builds the outward value for a mode from a selection slice.
func NewValue(mode Mode, options []Option) Value {
	if mode == ModeMulti && options == nil {
		options = []Option{}
	}
	return Value{Mode: mode, Options: options}
}

// Single returns the selected option in single mode, or nil.
func (v Value) Single() *Option {
	if len(v.Options) == 0 {
		return nil
	}
	o := v.Options[0]
	return &o
}

// Multi returns the selected options in selection order. Never nil.
func (v Value) Multi() []Option {
	if v.Options == nil {
		return []Option{}
	}
	return v.Options
}

// IsNull reports whether the value is the single mode null value.
func (v Value) IsNull() bool {
	return v.Mode == ModeSingle && len(v.Options) == 0
}

func (v Value) Len() int {
	return len(v.Options)
}

// Key is a keyboard key the state machine understands. Anything else is
// treated as text editing by the caller.
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyPageUp     Key = "PageUp"
	KeyPageDown   Key = "PageDown"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyEnter      Key = "Enter"
	KeySpace      Key = "Spacebar"
	KeyTab        Key = "Tab"
	KeyEscape     Key = "Escape"
	KeyBackspace  Key = "Backspace"
	KeyDelete     Key = "Delete"
)

// KeyEvent is a key press delivered to the state machine.
type KeyEvent struct {
	Key         Key
	Shift       bool
	IsComposing bool
}

// MouseButton follows the DOM numbering: 0 is the primary button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// LabelContext tells a label formatter where the label is going to be shown.
type LabelContext string

const (
	ContextMenu  LabelContext = "menu"
	ContextValue LabelContext = "value"
)

// Source produces an option list for the front end. Loading may block on files
// or child processes, so it takes a context.
type Source interface {
	Load(ctx context.Context) ([]Entry, error)
	Name() string
}
