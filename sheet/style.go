package sheet

import "github.com/charmbracelet/lipgloss"

// Style controls the sheet's rendering.
type Style struct {
	Cell     lipgloss.Style
	ReadOnly lipgloss.Style
	Selected lipgloss.Style
	Editing  lipgloss.Style
	// Targeted marks cells a copydown drag would fill.
	Targeted lipgloss.Style
	Handle   lipgloss.Style

	Header    lipgloss.Style
	Separator lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Cell:      lipgloss.NewStyle(),
		ReadOnly:  muted,
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Editing:   lipgloss.NewStyle().Underline(true),
		Targeted:  lipgloss.NewStyle().Background(lipgloss.Color("24")),
		Handle:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Separator: muted,
	}
}
