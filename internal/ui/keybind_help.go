package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// Displays SPC-prefixed bindings filtered by mode; when keyHandler is in leader
// mode with a buffer (e.g. "SPC x"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode, width int) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Width = width
	helpModel.Styles.ShortKey = Styles.Selected
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	prefix := "SPC"
	if len(keyHandler.Buffer) > 0 {
		prefix = strings.Join(keyHandler.Buffer, " ")
	}
	content := Styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Width(width).
		MaxWidth(width).
		Render(content)
}
