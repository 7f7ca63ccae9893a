package types

import (
	"github.com/alexmk92/combobox/core"
)

// Slot names one swappable rendering part of the combobox.
type Slot string

const (
	SlotControl           Slot = "Control"
	SlotInput             Slot = "Input"
	SlotPlaceholder       Slot = "Placeholder"
	SlotSingleValue       Slot = "SingleValue"
	SlotMultiValue        Slot = "MultiValue"
	SlotClearIndicator    Slot = "ClearIndicator"
	SlotDropdownIndicator Slot = "DropdownIndicator"
	SlotMenu              Slot = "Menu"
	SlotGroupHeading      Slot = "GroupHeading"
	SlotOption            Slot = "Option"
	SlotNoOptionsMessage  Slot = "NoOptionsMessage"
	SlotLoadingMessage    Slot = "LoadingMessage"
	SlotLiveRegion        Slot = "LiveRegion"
)

// Slots lists every slot in layout order.
var Slots = []Slot{
	SlotControl, SlotInput, SlotPlaceholder, SlotSingleValue, SlotMultiValue,
	SlotClearIndicator, SlotDropdownIndicator, SlotMenu, SlotGroupHeading,
	SlotOption, SlotNoOptionsMessage, SlotLoadingMessage, SlotLiveRegion,
}

// Renderers for the control row must keep the visible width of what they
// return stable for the same input, the mouse hit zones are measured from it.

// ControlRenderer decorates the assembled control row.
type ControlRenderer interface {
	RenderControl(props core.ControlProps, row string) string
}

// InputRenderer renders the text input. view is the editor's own rendering
// (text and cursor).
type InputRenderer interface {
	RenderInput(props core.InputProps, view string) string
}

// TextRenderer renders a piece of plain text: the placeholder, menu notices and
// the live region.
type TextRenderer interface {
	RenderText(text string) string
}

// ValueRenderer renders the single value or one multi value chip. remove is
// the chip's remove control and is empty for the single value.
type ValueRenderer interface {
	RenderValue(value core.ValueRow, disabled bool) (label string, remove string)
}

// IndicatorRenderer renders the clear or dropdown indicator.
type IndicatorRenderer interface {
	RenderIndicator(props core.ControlProps) string
}

// MenuRenderer joins the already rendered menu lines. It must keep one line per
// row.
type MenuRenderer interface {
	RenderMenu(lines []string, width int) string
}

type GroupHeadingRenderer interface {
	RenderGroupHeading(row core.GroupRow, width int) string
}

type OptionRenderer interface {
	RenderOption(row core.OptionRow, width int) string
}

// Func adapters, so a plain function can fill a slot.

type TextRenderFunc func(text string) string

func (f TextRenderFunc) RenderText(text string) string { return f(text) }

type OptionRenderFunc func(row core.OptionRow, width int) string

func (f OptionRenderFunc) RenderOption(row core.OptionRow, width int) string { return f(row, width) }

type IndicatorRenderFunc func(props core.ControlProps) string

func (f IndicatorRenderFunc) RenderIndicator(props core.ControlProps) string { return f(props) }
