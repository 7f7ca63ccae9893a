package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexmk92/combobox/core"
	coreTypes "github.com/alexmk92/combobox/core/types"
)

type zoneKind int

const (
	zoneControl zoneKind = iota
	zoneValue
	zoneRemove
	zoneInput
	zoneClear
	zoneDropdown
)

// zone is a horizontal span of the control row, [start, end) in cells.
type zone struct {
	kind   zoneKind
	start  int
	end    int
	option coreTypes.Option
}

// frame is one rendered screen plus what mouse hit testing needs to map cells
// back to parts.
type frame struct {
	width     int
	controlY  int
	control   string
	zones     []zone
	rows      []core.MenuRow
	menuLines []string
	totalRows int
	status    string
}

func (f frame) zoneAt(x int) zone {
	for _, z := range f.zones {
		if x >= z.start && x < z.end {
			return z
		}
	}
	return zone{kind: zoneControl}
}

// rowAt maps a screen line to the menu row drawn on it.
func (f frame) rowAt(y int) (core.MenuRow, bool) {
	i := y - f.controlY - 1
	if i < 0 || i >= len(f.rows) {
		return core.MenuRow{}, false
	}
	return f.rows[i], true
}

func (m *Model) layout() frame {
	props := m.sel.Props()
	f := frame{
		width:     m.viewWidth(),
		controlY:  m.controlLine(),
		totalRows: len(props.Rows),
	}

	f.control, f.zones = m.renderControl(props, f.width)

	if props.MenuVisible {
		end := min(len(props.Rows), m.offset+m.menuRows)
		if m.offset < end {
			f.rows = props.Rows[m.offset:end]
		}
		for _, row := range f.rows {
			f.menuLines = append(f.menuLines, m.renderRow(row, f.width))
		}
		if len(f.rows) == 0 && props.MenuNotice != "" {
			notice := m.registry.NoOptionsMessage()
			if m.sel.IsLoading() {
				notice = m.registry.LoadingMessage()
			}
			f.menuLines = append(f.menuLines, notice.RenderText(props.MenuNotice))
		}
	}

	f.status = m.renderStatus(props)
	return f
}

func (m *Model) renderControl(props core.Props, width int) (string, []zone) {
	var parts []string
	var zones []zone
	x := 0

	add := func(s string, kind zoneKind, option coreTypes.Option) {
		if s == "" {
			return
		}
		w := lipgloss.Width(s)
		zones = append(zones, zone{kind: kind, start: x, end: x + w, option: option})
		parts = append(parts, s)
		x += w
	}
	gap := func(n int) {
		parts = append(parts, strings.Repeat(" ", n))
		x += n
	}

	add(promptMark, zoneControl, coreTypes.Option{})

	disabled := props.Control.IsDisabled
	for _, v := range props.MultiValues {
		label, remove := m.registry.MultiValue().RenderValue(v, disabled)
		add(label, zoneValue, v.Option)
		add(remove, zoneRemove, v.Option)
		gap(1)
	}
	if props.SingleValue != nil {
		label, _ := m.registry.SingleValue().RenderValue(*props.SingleValue, disabled)
		add(label, zoneValue, props.SingleValue.Option)
		gap(1)
	}

	if props.Control.IsFocused || props.Input.Value != "" {
		add(m.registry.Input().RenderInput(props.Input, m.input.View()), zoneInput, coreTypes.Option{})
	}
	if props.Placeholder != "" {
		add(m.registry.Placeholder().RenderText(props.Placeholder), zoneInput, coreTypes.Option{})
	}

	clearMark := m.registry.ClearIndicator().RenderIndicator(props.Control)
	dropdown := m.registry.DropdownIndicator().RenderIndicator(props.Control)
	indicators := lipgloss.Width(clearMark) + lipgloss.Width(dropdown) + 1
	gap(max(1, width-x-indicators))

	add(clearMark, zoneClear, coreTypes.Option{})
	gap(1)
	add(dropdown, zoneDropdown, coreTypes.Option{})

	return m.registry.Control().RenderControl(props.Control, strings.Join(parts, "")), zones
}

func (m *Model) renderRow(row core.MenuRow, width int) string {
	if row.Group != nil {
		return m.registry.GroupHeading().RenderGroupHeading(*row.Group, width)
	}
	return m.registry.Option().RenderOption(*row.Option, width)
}

// renderStatus draws the live region: the last selection announcement and, while
// the menu is open, the result count.
func (m *Model) renderStatus(props core.Props) string {
	var text []string
	if props.SelectionAnnouncement != "" {
		text = append(text, props.SelectionAnnouncement)
	}
	if props.MenuVisible {
		text = append(text, props.LiveRegionText)
	}
	return m.registry.LiveRegion().RenderText(strings.Join(text, " "))
}
