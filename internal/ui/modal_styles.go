package ui

import "github.com/charmbracelet/lipgloss"

// ModalStyles contains style definitions for modals.
var ModalStyles = struct {
	BoxWarning   lipgloss.Style // red border
	TitleWarning lipgloss.Style
	Label        lipgloss.Style
	Help         lipgloss.Style
	Details      lipgloss.Style
}{
	BoxWarning: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Label: lipgloss.NewStyle(),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color("208")),
}
