package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"menucontainer/internal/drawer"
)

// DismissModalMsg closes the active modal without acting.
type DismissModalMsg struct{}

// ConfirmModal asks before a destructive action. Enter or y confirms; esc cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{Title: title, Label: label, OnConfirm: onConfirm}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewRemoveBothConfirmModal confirms dropping both side panels' content.
func NewRemoveBothConfirmModal() *ConfirmModal {
	return NewConfirmModal(
		"Remove both panels?",
		"The menu and status panels will be emptied.",
		func() tea.Msg { return RemoveSideMsg{Side: drawer.SideNone, Confirmed: true} },
	).WithDetails("SPC r restores them")
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := ModalStyles.TitleWarning.Render(m.Title) + "\n\n"
	content += ModalStyles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + ModalStyles.Details.Render(m.Details)
	}
	content += "\n\n" + ModalStyles.Help.Render("y/Enter: confirm  Esc: cancel")
	return ModalStyles.BoxWarning.Render(content)
}
