package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Views are the content handles embedded into drawer panels. A panel sends its
// View a tea.WindowSizeMsg with the panel's size, not the terminal's.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
