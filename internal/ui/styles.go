package ui

import "github.com/charmbracelet/lipgloss"

// Color palette. The match highlight keeps the classic grep look:
// bold yellow on the default background.
const (
	ColorYellow = "220" // Match highlight, warnings
	ColorRed    = "196" // Errors
	ColorGray   = "245" // Secondary text, labels
)

// Styles holds the terminal styles for match and diagnostic rendering.
type Styles struct {
	Match   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultStyles returns styled components for color-capable output.
func DefaultStyles() Styles {
	return Styles{
		Match:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorYellow)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Match:   lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
