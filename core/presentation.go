package core

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/alexmk92/combobox/core/types"
)

// Snapshot is the read-only view of a Select that Present works from.
type Snapshot struct {
	InputValue   string
	MenuIsOpen   bool
	IsFocused    bool
	IsLoading    bool
	Focused      *types.Option
	// FocusedIndex is the position of Focused among the enabled visible
	// options. It decides which row is focused when a record is listed twice.
	FocusedIndex int
	FocusedValue *types.Option
	Selected     []types.Option
	Visible      []types.Entry
	Announcement string
}

// Props is everything the renderers need for one frame.
type Props struct {
	Control ControlProps
	Input   InputProps

	MenuVisible bool
	// Rows are the menu rows in display order: group headers followed by their
	// options, and top level options.
	Rows []MenuRow
	// MenuNotice is the no-options or loading message shown when the menu is
	// visible but has no rows.
	MenuNotice string

	// Placeholder is set only when there is neither a value nor input text.
	Placeholder string
	SingleValue *ValueRow
	MultiValues []ValueRow

	// HiddenInput is the form field; nil when no Name is configured.
	HiddenInput *HiddenInput

	LiveRegionText        string
	SelectionAnnouncement string
}

type ControlProps struct {
	IsDisabled      bool
	IsFocused       bool
	MenuIsOpen      bool
	HasValue        bool
	IsMulti         bool
	IsSearchable    bool
	ShowClear       bool
	DropdownPointer bool
}

// InputProps carries the text input value and its ARIA attributes.
type InputProps struct {
	ID                   string
	Value                string
	ReadOnly             bool
	Role                 string
	AriaAutocomplete     string
	AriaHaspopup         bool
	AriaExpanded         bool
	AriaActiveDescendant string
	AriaLabel            string
	AriaLabelledBy       string
	AriaDescribedBy      string
}

// MenuRow is either a group header (Group set) or an option (Option set).
type MenuRow struct {
	Group  *GroupRow
	Option *OptionRow
}

type GroupRow struct {
	ID    string
	Label string
}

type OptionRow struct {
	Option     types.Option
	Label      string
	ID         string
	Index      int
	IsFocused  bool
	IsSelected bool
	IsDisabled bool
	// FocusIndex is the row's position among the enabled rows, -1 when
	// disabled. Pointer hover reports it back through Select.HoverOptionAt.
	FocusIndex int
	// Grouped marks rows that belong to a group, for indentation.
	Grouped bool
}

type ValueRow struct {
	Option    types.Option
	Label     string
	IsFocused bool
}

type HiddenInput struct {
	Name  string
	Value string
}

// Present maps state to render props. It makes no decisions beyond formatting.
func Present(snap Snapshot, cfg Config) Props {
	prefix := cfg.InstanceID
	hasValue := len(snap.Selected) > 0
	flat := FlattenOptions(snap.Visible)

	props := Props{
		Control: ControlProps{
			IsDisabled:      cfg.IsDisabled,
			IsFocused:       snap.IsFocused,
			MenuIsOpen:      snap.MenuIsOpen,
			HasValue:        hasValue,
			IsMulti:         cfg.IsMulti,
			IsSearchable:    cfg.IsSearchable,
			ShowClear:       cfg.IsClearable && hasValue && !cfg.IsDisabled,
			DropdownPointer: !cfg.IsDisabled,
		},
		Input: InputProps{
			ID:               prefix + "-input",
			Value:            snap.InputValue,
			ReadOnly:         !cfg.IsSearchable,
			Role:             "combobox",
			AriaAutocomplete: "list",
			AriaHaspopup:     snap.MenuIsOpen,
			AriaExpanded:     snap.MenuIsOpen,
			AriaLabel:        cfg.AriaLabel,
			AriaLabelledBy:   cfg.AriaLabelledBy,
			AriaDescribedBy:  cfg.AriaDescribedBy,
		},
		MenuVisible:           snap.MenuIsOpen,
		LiveRegionText:        resultsText(len(flat)),
		SelectionAnnouncement: snap.Announcement,
	}

	if snap.MenuIsOpen {
		props.Rows = menuRows(snap, cfg)
		for _, row := range props.Rows {
			if row.Option != nil && row.Option.IsFocused {
				props.Input.AriaActiveDescendant = row.Option.ID
			}
		}
		if len(props.Rows) == 0 {
			if snap.IsLoading {
				props.MenuNotice = cfg.loadingMessage(snap.InputValue)
			} else {
				props.MenuNotice = cfg.noOptionsMessage(snap.InputValue)
			}
		}
	}

	if !hasValue && snap.InputValue == "" {
		props.Placeholder = cfg.Placeholder
	}

	if cfg.IsMulti {
		props.MultiValues = lo.Map(snap.Selected, func(o types.Option, _ int) ValueRow {
			return ValueRow{
				Option:    o,
				Label:     cfg.formatLabel(o, types.ContextValue),
				IsFocused: snap.FocusedValue != nil && snap.FocusedValue.Equal(o),
			}
		})
	} else if hasValue && snap.InputValue == "" {
		o := snap.Selected[0]
		props.SingleValue = &ValueRow{Option: o, Label: cfg.formatLabel(o, types.ContextValue)}
	}

	if cfg.Name != "" {
		props.HiddenInput = &HiddenInput{
			Name:  cfg.Name,
			Value: HiddenValue(snap.Selected, cfg.Mode(), cfg.Delimiter),
		}
	}

	return props
}

func menuRows(snap Snapshot, cfg Config) []MenuRow {
	var rows []MenuRow
	index, position := 0, 0

	row := func(o types.Option, id string, grouped bool) MenuRow {
		disabled := cfg.optionDisabled(o)
		focusIndex := -1
		if !disabled {
			focusIndex = position
			position++
		}
		r := &OptionRow{
			Option:     o,
			Label:      cfg.formatLabel(o, types.ContextMenu),
			ID:         id,
			Index:      index,
			IsFocused:  snap.Focused != nil && focusIndex >= 0 && focusIndex == snap.FocusedIndex,
			IsSelected: containsOption(snap.Selected, o),
			IsDisabled: disabled,
			FocusIndex: focusIndex,
			Grouped:    grouped,
		}
		index++
		return MenuRow{Option: r}
	}

	for i, entry := range snap.Visible {
		switch e := entry.(type) {
		case types.Option:
			rows = append(rows, row(e, fmt.Sprintf("%s-option-%d", cfg.InstanceID, i), false))
		case types.Group:
			rows = append(rows, MenuRow{Group: &GroupRow{
				ID:    fmt.Sprintf("%s-group-%d-heading", cfg.InstanceID, i),
				Label: e.Label,
			}})
			for j, o := range e.Options {
				rows = append(rows, row(o, fmt.Sprintf("%s-option-%d-%d", cfg.InstanceID, i, j), true))
			}
		}
	}

	return rows
}

// HiddenValue is the form representation of a selection: the raw value in
// single mode, and the values joined by delimiter in multi mode.
func HiddenValue(selected []types.Option, mode types.Mode, delimiter string) string {
	if len(selected) == 0 {
		return ""
	}
	if mode == types.ModeSingle || len(selected) == 1 {
		return selected[0].ValueString()
	}
	return strings.Join(lo.Map(selected, func(o types.Option, _ int) string {
		return o.ValueString()
	}), delimiter)
}

func resultsText(n int) string {
	if n == 1 {
		return "1 result available."
	}
	return fmt.Sprintf("%d results available.", n)
}

// announce builds the live region text for a committed change.
func announce(ev ChangeEvent, cfg Config) string {
	label := ""
	if ev.Meta.Option != nil {
		label = cfg.formatLabel(*ev.Meta.Option, types.ContextValue)
	}

	switch ev.Meta.Action {
	case types.ActionSelectOption:
		return fmt.Sprintf("option %s, selected.", label)
	case types.ActionRemoveValue, types.ActionPopValue:
		return fmt.Sprintf("option %s, deselected.", label)
	case types.ActionClear:
		return "All selected options have been cleared."
	}
	return ""
}
