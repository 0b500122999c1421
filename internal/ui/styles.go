package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"menucontainer/internal/panel"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorBar       = "236" // Near-black - status bar background
	ColorLight     = "254" // Near-white - light status bar background
	ColorShadow    = "238" // Shadow column
)

// Styles contains shared style definitions used across panels and views.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - for panel titles
	Selected lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted    lipgloss.Style // Dimmed text (muted color)
	Normal   lipgloss.Style // Normal text (text color)
	Hint     lipgloss.Style // Help/hint text (muted color)
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Danger   lipgloss.Style // Usage error flashes
	Dimmed   lipgloss.Style // Central panel under the dimming overlay
	Shadow   lipgloss.Style // Drop shadow next to the central panel

	StatusDefault lipgloss.Style
	StatusLight   lipgloss.Style
	StatusDark    lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Danger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Dimmed: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Faint(true),
	Shadow: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorShadow)),
	StatusDefault: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorBar)),
	StatusLight: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBar)).
		Background(lipgloss.Color(ColorLight)),
	StatusDark: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color("0")),
}

// StatusStyle returns the status bar style for a content status hint.
func StatusStyle(s panel.StatusStyle) lipgloss.Style {
	switch s {
	case panel.StatusLight:
		return Styles.StatusLight
	case panel.StatusDark:
		return Styles.StatusDark
	default:
		return Styles.StatusDefault
	}
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
// This factory standardizes list delegate configuration across the codebase.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
