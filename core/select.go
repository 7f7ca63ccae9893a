package core

import (
	"github.com/google/uuid"

	"github.com/alexmk92/combobox/core/types"
)

// Select is the interaction state machine of one combobox instance. It owns the
// input text, the menu open flag, the focused option and the selection, and
// turns raw events into state changes plus outward notifications.
//
// A Select is not safe for concurrent use. Every event runs to completion before
// it returns, so callers feed it from a single event loop.
type Select struct {
	cfg      Config
	handlers Handlers
	options  []types.Entry

	inputText    string
	menuOpen     bool
	isFocused    bool
	isLoading    bool
	focused      *types.Option
	focusedValue *types.Option
	// focusedIndex is the position of focused in the focusable list, so a
	// record listed twice is still told apart. -1 when nothing is focused.
	focusedIndex int
	selection    []types.Option

	// openAfterFocus is set by a pointer down on an unfocused control so the
	// focus that follows opens the menu.
	openAfterFocus bool
	announcement   string

	value Controlled[[]types.Option]
	input Controlled[string]
	menu  Controlled[bool]
}

// NewSelect creates a state machine over the given options.
func NewSelect(options []types.Entry, cfg Config, handlers Handlers) *Select {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.InstanceID == "" {
		cfg.InstanceID = "combobox-" + uuid.NewString()[:8]
	}

	return &Select{
		cfg:       cfg,
		handlers:  handlers,
		options:      options,
		selection:    []types.Option{},
		focusedIndex: -1,
	}
}

// Init runs the mount-time behavior: AutoFocus focuses the control once.
func (s *Select) Init() {
	if s.cfg.AutoFocus {
		s.Focus()
	}
}

// --- resolved state ---

func (s *Select) Config() Config { return s.cfg }

func (s *Select) Options() []types.Entry { return s.options }

// InputValue is the filter text as rendered (pinned or internal).
func (s *Select) InputValue() string {
	return s.input.Resolve(s.inputText)
}

// MenuIsOpen is the menu visibility as rendered (pinned or internal).
func (s *Select) MenuIsOpen() bool {
	return s.menu.Resolve(s.menuOpen)
}

// SelectedOptions is the selection as rendered (pinned or internal).
func (s *Select) SelectedOptions() []types.Option {
	return s.value.Resolve(s.selection)
}

// Value is the rendered selection in its outward form.
func (s *Select) Value() types.Value {
	return types.NewValue(s.cfg.Mode(), s.SelectedOptions())
}

func (s *Select) IsFocused() bool { return s.isFocused }

func (s *Select) IsLoading() bool { return s.isLoading }

func (s *Select) FocusedOption() *types.Option { return s.focused }

func (s *Select) FocusedValue() *types.Option { return s.focusedValue }

// VisibleOptions is the option matcher applied to the current state.
func (s *Select) VisibleOptions() []types.Entry {
	return VisibleOptions(s.options, s.InputValue(), MatchConfig{
		Filter:       s.cfg.FilterOption,
		NoFilter:     s.cfg.DisableFiltering,
		HideSelected: s.cfg.hideSelected(),
		Selected:     s.SelectedOptions(),
	})
}

func (s *Select) focusable() []types.Option {
	return FocusableOptions(FlattenOptions(s.VisibleOptions()), s.cfg.optionDisabled)
}

// Snapshot captures the state the presentation adapter works from.
func (s *Select) Snapshot() Snapshot {
	return Snapshot{
		InputValue:   s.InputValue(),
		MenuIsOpen:   s.MenuIsOpen(),
		IsFocused:    s.isFocused,
		IsLoading:    s.isLoading,
		Focused:      s.focused,
		FocusedIndex: s.focusedIndex,
		FocusedValue: s.focusedValue,
		Selected:     s.SelectedOptions(),
		Visible:      s.VisibleOptions(),
		Announcement: s.announcement,
	}
}

// Props runs the presentation adapter over the current state.
func (s *Select) Props() Props {
	return Present(s.Snapshot(), s.cfg)
}

// --- external overrides and updates ---

// SetOptions replaces the option list atomically. An open menu that had
// nothing to focus picks up the first new option.
func (s *Select) SetOptions(options []types.Entry) {
	s.options = options
	s.refocus(true)
}

func (s *Select) SetLoading(loading bool) {
	s.isLoading = loading
}

// SetDisabled toggles the whole control. Disabling a focused control blurs it.
func (s *Select) SetDisabled(disabled bool) {
	if disabled && s.isFocused {
		s.Blur()
	}
	s.cfg.IsDisabled = disabled
}

// SetValue pins the selection to an externally controlled value.
func (s *Select) SetValue(options []types.Option) {
	if options == nil {
		options = []types.Option{}
	}
	s.value.Pin(options)
	s.refocus(false)
}

func (s *Select) ReleaseValue() {
	s.value.Release()
	s.refocus(false)
}

// SetInputValue pins the filter text.
func (s *Select) SetInputValue(text string) {
	s.input.Pin(text)
	s.refocus(true)
}

func (s *Select) ReleaseInputValue() {
	s.input.Release()
	s.refocus(true)
}

// SetMenuIsOpen pins the menu visibility.
func (s *Select) SetMenuIsOpen(open bool) {
	s.menu.Pin(open)
	s.refocus(false)
}

func (s *Select) ReleaseMenuIsOpen() {
	s.menu.Release()
	s.refocus(false)
}

// --- events ---

// Focus handles the control receiving keyboard focus.
func (s *Select) Focus() {
	if s.cfg.IsDisabled || s.isFocused {
		return
	}

	s.isFocused = true
	s.cfg.logger().Debug("focus", "instance", s.cfg.InstanceID)
	if s.handlers.OnFocus != nil {
		s.handlers.OnFocus()
	}

	forcedClosed := s.menu.Pinned() && !s.MenuIsOpen()
	if (s.openAfterFocus || s.cfg.OpenMenuOnFocus) && !forcedClosed {
		s.openMenu(FocusFirst)
	}
	s.openAfterFocus = false
}

// Blur handles the control losing keyboard focus.
func (s *Select) Blur() {
	if !s.isFocused {
		return
	}

	s.cfg.logger().Debug("blur", "instance", s.cfg.InstanceID)
	if s.handlers.OnBlur != nil {
		s.handlers.OnBlur()
	}
	s.closeMenu()
	s.isFocused = false
	s.focusedValue = nil
}

// InputChange handles the user typing text into the input.
func (s *Select) InputChange(text string) {
	if s.cfg.IsDisabled || !s.cfg.IsSearchable {
		return
	}

	s.focusedValue = nil
	s.setInput(text, types.InputActionChange)
	s.setMenuOpen(true)
	s.refocus(true)
}

// KeyDown handles a key press and reports whether the key was consumed. Keys
// that are not consumed belong to the text input (typing, caret movement).
func (s *Select) KeyDown(ev types.KeyEvent) bool {
	if s.cfg.IsDisabled {
		return false
	}

	input := s.InputValue()
	open := s.MenuIsOpen()

	switch ev.Key {
	case types.KeyArrowLeft:
		if !s.cfg.IsMulti || input != "" {
			return false
		}
		s.focusValue(false)

	case types.KeyArrowRight:
		if !s.cfg.IsMulti || input != "" {
			return false
		}
		s.focusValue(true)

	case types.KeyBackspace, types.KeyDelete:
		if input != "" {
			return false
		}
		if s.focusedValue != nil {
			s.removeValue(*s.focusedValue)
		} else {
			if !s.cfg.BackspaceRemovesValue {
				return false
			}
			s.popValue()
		}

	case types.KeyTab:
		if ev.IsComposing || ev.Shift || !open || !s.cfg.TabSelectsValue || s.focused == nil {
			return false
		}
		// Tabbing out of a menu that opened on focus must not re-commit the
		// option that was focused because it is the current value.
		if s.cfg.OpenMenuOnFocus && containsOption(s.SelectedOptions(), *s.focused) {
			return false
		}
		s.selectOption(*s.focused)

	case types.KeyEnter:
		if !open || s.focused == nil || ev.IsComposing {
			return false
		}
		s.selectOption(*s.focused)

	case types.KeyEscape:
		if open {
			s.closeMenu()
		} else if s.cfg.IsClearable && s.cfg.EscapeClearsValue {
			s.clearValue()
		} else {
			return false
		}

	case types.KeySpace:
		if input != "" {
			return false
		}
		if !open {
			s.openMenu(FocusFirst)
			break
		}
		if s.focused == nil {
			return false
		}
		s.selectOption(*s.focused)

	case types.KeyArrowUp:
		if open {
			s.focusOption(FocusPrev)
		} else {
			s.openMenu(FocusLast)
		}

	case types.KeyArrowDown:
		if open {
			s.focusOption(FocusNext)
		} else {
			s.openMenu(FocusFirst)
		}

	case types.KeyPageUp, types.KeyPageDown, types.KeyHome, types.KeyEnd:
		if !open {
			return false
		}
		s.focusOption(pageCommands[ev.Key])

	default:
		return false
	}

	return true
}

var pageCommands = map[types.Key]Command{
	types.KeyPageUp:   FocusPageUp,
	types.KeyPageDown: FocusPageDown,
	types.KeyHome:     FocusFirst,
	types.KeyEnd:      FocusLast,
}

// ControlMouseDown handles a pointer down on the control body. onInput is true
// when the pointer landed on the text input itself.
func (s *Select) ControlMouseDown(onInput bool) {
	if s.cfg.IsDisabled {
		return
	}

	if !s.isFocused {
		s.openAfterFocus = s.cfg.OpenMenuOnClick
		s.Focus()
		return
	}

	if !s.MenuIsOpen() {
		if s.cfg.OpenMenuOnClick {
			s.openMenu(FocusFirst)
		}
		return
	}

	if !onInput {
		s.closeMenu()
	}
}

// DropdownIndicatorMouseDown toggles the menu. Only the primary button counts.
func (s *Select) DropdownIndicatorMouseDown(button types.MouseButton) {
	if button != types.ButtonLeft || s.cfg.IsDisabled {
		return
	}

	wasOpen := s.MenuIsOpen()
	if !s.isFocused {
		s.Focus()
	}

	if wasOpen {
		s.closeMenu()
	} else if !s.MenuIsOpen() {
		s.openMenu(FocusFirst)
	}
}

// ClearIndicatorMouseDown clears the value. Only the primary button counts and
// only when the control is clearable.
func (s *Select) ClearIndicatorMouseDown(button types.MouseButton) {
	if button != types.ButtonLeft || s.cfg.IsDisabled || !s.cfg.IsClearable {
		return
	}

	s.clearValue()
	s.openAfterFocus = false
	if !s.isFocused {
		s.Focus()
	}
}

// SelectOption handles an option row being clicked.
func (s *Select) SelectOption(option types.Option) {
	if s.cfg.IsDisabled {
		return
	}
	s.selectOption(option)
}

// HoverOption moves the focus to an enabled option under the pointer. When the
// option is listed more than once the first copy is focused; use
// HoverOptionAt to address a specific row.
func (s *Select) HoverOption(option types.Option) {
	s.HoverOptionAt(indexOfOption(s.focusable(), &option))
}

// HoverOptionAt moves the focus to the focusable option at position, as
// reported by OptionRow.FocusIndex. Disabled rows have no position.
func (s *Select) HoverOptionAt(position int) {
	if s.cfg.IsDisabled || !s.MenuIsOpen() || position < 0 {
		return
	}
	if s.focused != nil && position == s.focusedIndex {
		return
	}
	focusable := s.focusable()
	if position >= len(focusable) {
		return
	}
	s.setFocused(focusable, position)
	s.focusedValue = nil
}

// RemoveValue handles the remove control of a value chip.
func (s *Select) RemoveValue(option types.Option) {
	if s.cfg.IsDisabled {
		return
	}
	s.removeValue(option)
	if !s.isFocused {
		s.openAfterFocus = false
		s.Focus()
	}
}

// --- transitions ---

func (s *Select) openMenu(cmd Command) {
	focusable := s.focusable()

	next := NextFocus(len(focusable), -1, cmd, s.cfg.PageSize)
	if !s.cfg.IsMulti {
		selected := s.SelectedOptions()
		if len(selected) > 0 {
			if i := indexOfOption(focusable, &selected[0]); i >= 0 {
				next = i
			}
		}
	}

	s.focusedValue = nil
	s.setMenuOpen(true)
	s.setFocused(focusable, next)
	s.refocus(false)
	s.cfg.logger().Debug("menu open", "instance", s.cfg.InstanceID, "focused", labelOf(s.focused))
}

// closeMenu clears the input (menu-close) and closes the menu.
func (s *Select) closeMenu() {
	s.setInput("", types.InputActionMenuClose)
	s.setMenuOpen(false)
	s.refocus(false)
	s.cfg.logger().Debug("menu close", "instance", s.cfg.InstanceID)
}

// setMenuOpen updates the internal flag and emits open/close only when the
// rendered visibility was different, so repeated opens or closes are silent.
func (s *Select) setMenuOpen(open bool) {
	was := s.MenuIsOpen()
	s.menuOpen = open
	if was == open {
		return
	}
	if open && s.handlers.OnMenuOpen != nil {
		s.handlers.OnMenuOpen()
	}
	if !open && s.handlers.OnMenuClose != nil {
		s.handlers.OnMenuClose()
	}
}

func (s *Select) setInput(text string, action types.InputAction) {
	s.inputText = text
	if s.handlers.OnInputChange != nil {
		s.handlers.OnInputChange(text, types.InputActionMeta{Action: action})
	}
}

func (s *Select) focusOption(cmd Command) {
	s.focusedValue = nil
	focusable := s.focusable()
	s.setFocused(focusable, NextFocus(len(focusable), s.focusPosition(focusable), cmd, s.cfg.PageSize))
	s.cfg.logger().Debug("focus option", "command", cmd, "focused", labelOf(s.focused))
}

// focusValue moves the chip cursor in multi mode. Moving back from nothing
// starts at the last chip and stops at the first; moving forward past the last
// chip leaves the chips.
func (s *Select) focusValue(forward bool) {
	selected := s.SelectedOptions()
	s.setFocused(nil, -1)
	if len(selected) == 0 {
		return
	}

	index := indexOfOption(selected, s.focusedValue)
	last := len(selected) - 1
	next := -1

	if forward {
		if index > -1 && index < last {
			next = index + 1
		}
	} else {
		switch {
		case index == 0:
			next = 0
		case index == -1:
			next = last
		default:
			next = index - 1
		}
	}

	if next == -1 {
		s.focusedValue = nil
		return
	}
	value := selected[next]
	s.focusedValue = &value
}

func (s *Select) selectOption(option types.Option) {
	next, ev := ApplySelect(s.SelectedOptions(), option, s.cfg.Mode(), s.cfg.IsOptionDisabled)
	if ev == nil {
		s.cfg.logger().Debug("select ignored", "option", option.Label)
		return
	}
	s.commit(next, *ev)
}

func (s *Select) removeValue(option types.Option) {
	next, ev := ApplyRemove(s.SelectedOptions(), &option, s.cfg.Mode())
	if ev == nil {
		return
	}
	s.commit(next, *ev)
}

func (s *Select) popValue() {
	next, ev := ApplyRemove(s.SelectedOptions(), nil, s.cfg.Mode())
	if ev == nil {
		return
	}
	s.commit(next, *ev)
}

func (s *Select) clearValue() {
	next, ev := ApplyClear(s.SelectedOptions(), s.cfg.Mode())
	if ev == nil {
		return
	}
	s.commit(next, *ev)
}

// commit stores a new selection and emits, in order: the set-value input
// change, the menu close (when configured), the blur (when configured) and
// finally the change itself.
func (s *Select) commit(next []types.Option, ev ChangeEvent) {
	s.selection = next
	s.focusedValue = nil
	s.announcement = announce(ev, s.cfg)

	s.setInput("", types.InputActionSetValue)
	if s.cfg.CloseMenuOnSelect {
		s.setMenuOpen(false)
	}
	if s.cfg.BlurInputOnSelect {
		s.Blur()
	}
	s.refocus(false)

	ev.Meta.Name = s.cfg.Name
	s.cfg.logger().Debug("commit", "instance", s.cfg.InstanceID, "action", ev.Meta.Action, "count", ev.Value.Len())
	if s.handlers.OnChange != nil {
		s.handlers.OnChange(ev.Value, ev.Meta)
	}
}

// refocus keeps the focused option valid: it must be focusable and the menu
// must be open. A stale focus moves to the first focusable option; a nil focus
// only does so when preferFirst is set.
func (s *Select) refocus(preferFirst bool) {
	if !s.MenuIsOpen() {
		s.setFocused(nil, -1)
		return
	}

	focusable := s.focusable()
	if s.focused != nil {
		if i := s.focusPosition(focusable); i >= 0 {
			s.setFocused(focusable, i)
			return
		}
	} else if !preferFirst {
		return
	}

	s.setFocused(focusable, NextFocus(len(focusable), -1, FocusFirst, s.cfg.PageSize))
}

// focusPosition locates the focused option in focusable. The tracked position
// wins while it still holds an equal option; after the list changed the first
// equal option is used.
func (s *Select) focusPosition(focusable []types.Option) int {
	if s.focused == nil {
		return -1
	}
	if i := s.focusedIndex; i >= 0 && i < len(focusable) && focusable[i].Equal(*s.focused) {
		return i
	}
	return indexOfOption(focusable, s.focused)
}

// setFocused focuses position i of focusable, or nothing when i is out of range.
func (s *Select) setFocused(focusable []types.Option, i int) {
	if i < 0 || i >= len(focusable) {
		s.focused = nil
		s.focusedIndex = -1
		return
	}
	option := focusable[i]
	s.focused = &option
	s.focusedIndex = i
}

func labelOf(option *types.Option) string {
	if option == nil {
		return ""
	}
	return option.Label
}
