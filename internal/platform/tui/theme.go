package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles of the interface chrome around the canvas.
type Theme struct {
	// Picker
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Footer line under the editor
	Status lipgloss.Style
	Error  lipgloss.Style

	// Bordered boxes in the gallery
	Panel lipgloss.Style
}

// NewTheme returns the default theme. Styles are created by r so that SSH
// sessions get colors matching their own terminal; a nil r uses the
// default renderer.
func NewTheme(r *lipgloss.Renderer) Theme {
	style := lipgloss.NewStyle
	if r != nil {
		style = r.NewStyle
	}

	return Theme{
		MenuTitle:       style().Foreground(lipgloss.Color("51")).Bold(true),  // Bright cyan
		MenuItemNormal:  style().Foreground(lipgloss.Color("252")),            // Light gray
		MenuItemActive:  style().Foreground(lipgloss.Color("226")).Bold(true), // Bright yellow
		MenuDescription: style().Foreground(lipgloss.Color("245")),            // Medium gray

		Status: style().Foreground(lipgloss.Color("46")),  // Lime green
		Error:  style().Foreground(lipgloss.Color("196")), // Red

		Panel: style().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}
