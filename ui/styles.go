package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexmk92/combobox/ui/components"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(components.Orange)).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(components.Red)).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(components.Green))

	brandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(components.Pink)).
			Bold(true)
)

// promptMark opens the control row.
var promptMark = brandStyle.Render("❯ ")

// NewFilterInput builds the text editor behind the combobox input. The prompt
// and placeholder are drawn by the control row, so the editor has neither.
func NewFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = ""
	ti.TextStyle = infoStyle
	ti.Width = 0
	return ti
}
