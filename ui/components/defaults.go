package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexmk92/combobox/core"
	"github.com/alexmk92/combobox/ui/types"
)

const (
	Pink      = "#E03189"
	Orange    = "#ff6b35"
	Green     = "#BCE921"
	Red       = "#e74c3c"
	LightGray = "#999999"
)

var (
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Green))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Green)).
			Background(lipgloss.Color("#333333"))

	focusedChipStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(lipgloss.Color(Green))

	removeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Red)).
			Background(lipgloss.Color("#333333"))

	indicatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Orange))

	focusedOptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Pink)).
				Bold(true)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Green))

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Orange)).
			Bold(true)

	lightGrayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(LightGray)).
			Italic(true)

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(LightGray)).
			Faint(true)
)

// Defaults returns a fresh default renderer for every slot.
func Defaults() map[types.Slot]any {
	return map[types.Slot]any{
		types.SlotControl:           controlRenderer{},
		types.SlotInput:             inputRenderer{},
		types.SlotPlaceholder:       styled(lightGrayStyle),
		types.SlotSingleValue:       singleValueRenderer{},
		types.SlotMultiValue:        multiValueRenderer{},
		types.SlotClearIndicator:    types.IndicatorRenderFunc(renderClearIndicator),
		types.SlotDropdownIndicator: types.IndicatorRenderFunc(renderDropdownIndicator),
		types.SlotMenu:              menuRenderer{},
		types.SlotGroupHeading:      groupHeadingRenderer{},
		types.SlotOption:            types.OptionRenderFunc(RenderOption),
		types.SlotNoOptionsMessage:  styled(lightGrayStyle),
		types.SlotLoadingMessage:    styled(indicatorStyle),
		types.SlotLiveRegion:        styled(lightGrayStyle.Faint(true)),
	}
}

func styled(style lipgloss.Style) types.TextRenderFunc {
	return func(text string) string {
		if text == "" {
			return ""
		}
		return style.Render(text)
	}
}

type controlRenderer struct{}

func (controlRenderer) RenderControl(props core.ControlProps, row string) string {
	if props.IsDisabled {
		return disabledStyle.Render(row)
	}
	return row
}

type inputRenderer struct{}

func (inputRenderer) RenderInput(_ core.InputProps, view string) string {
	return view
}

type singleValueRenderer struct{}

func (singleValueRenderer) RenderValue(value core.ValueRow, disabled bool) (string, string) {
	if disabled {
		return disabledStyle.Render(value.Label), ""
	}
	return valueStyle.Render(value.Label), ""
}

type multiValueRenderer struct{}

func (multiValueRenderer) RenderValue(value core.ValueRow, disabled bool) (string, string) {
	style := chipStyle
	if value.IsFocused {
		style = focusedChipStyle
	}
	if disabled {
		style = disabledStyle
	}
	return style.Render(" " + value.Label + " "), removeStyle.Render("×")
}

func renderClearIndicator(props core.ControlProps) string {
	if !props.ShowClear {
		return ""
	}
	return indicatorStyle.Render("×")
}

func renderDropdownIndicator(props core.ControlProps) string {
	if props.MenuIsOpen {
		return indicatorStyle.Render("▴")
	}
	return indicatorStyle.Render("▾")
}

type menuRenderer struct{}

func (menuRenderer) RenderMenu(lines []string, _ int) string {
	return strings.Join(lines, "\n")
}

type groupHeadingRenderer struct{}

func (groupHeadingRenderer) RenderGroupHeading(row core.GroupRow, width int) string {
	return headingStyle.Render(Truncate(strings.ToUpper(row.Label), width))
}

// RenderOption is the default option row: a cursor mark, a selected mark and
// the label truncated to the menu width.
func RenderOption(row core.OptionRow, width int) string {
	cursor := "  "
	if row.IsFocused {
		cursor = "› "
	}
	mark := "  "
	if row.IsSelected {
		mark = "✓ "
	}
	indent := ""
	if row.Grouped {
		indent = "  "
	}

	prefix := indent + cursor + mark
	label := Truncate(row.Label, width-runewidth.StringWidth(prefix))

	switch {
	case row.IsDisabled:
		return disabledStyle.Render(prefix + label)
	case row.IsFocused:
		return focusedOptionStyle.Render(prefix + label)
	case row.IsSelected:
		return selectedOptionStyle.Render(prefix + label)
	default:
		return prefix + label
	}
}

// Truncate shortens s to at most width cells, marking the cut with an
// ellipsis. A non-positive width leaves s untouched.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
