package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"menucontainer/internal/drawer"
	"menucontainer/internal/panel"
)

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// drawerBindings is the key table of the imperative drawer API.
func drawerBindings() []Binding {
	return []Binding{
		{Seq: "q", Cmd: tea.Quit, Desc: "Quit"},
		{Seq: "ctrl+c", Cmd: tea.Quit, Desc: "Quit"},
		{Seq: "SPC q", Cmd: tea.Quit, Desc: "Quit"},
		{Seq: "tab", Cmd: send(CycleFocusMsg{}), Desc: "Next panel"},
		{Seq: "esc", Cmd: send(CloseSideMsg{}), Desc: "Close panel"},
		{Seq: "SPC h", Cmd: send(ToggleSideMsg{Side: drawer.SideLeft}), Desc: "Toggle menu"},
		{Seq: "SPC l", Cmd: send(ToggleSideMsg{Side: drawer.SideRight}), Desc: "Toggle status"},
		{Seq: "SPC o h", Cmd: send(OpenSideMsg{Side: drawer.SideLeft}), Desc: "Open menu", Modes: []AppMode{ModeBrowse}},
		{Seq: "SPC o l", Cmd: send(OpenSideMsg{Side: drawer.SideRight}), Desc: "Open status", Modes: []AppMode{ModeBrowse}},
		{Seq: "SPC x h", Cmd: send(RemoveSideMsg{Side: drawer.SideLeft}), Desc: "Remove menu"},
		{Seq: "SPC x l", Cmd: send(RemoveSideMsg{Side: drawer.SideRight}), Desc: "Remove status"},
		{Seq: "SPC x x", Cmd: send(RemoveSideMsg{Side: drawer.SideNone}), Desc: "Remove both"},
		{Seq: "SPC r", Cmd: send(RestorePanelsMsg{}), Desc: "Restore panels"},
	}
}

// handleCommand runs a drawer command message.
func (m *AppModel) handleCommand(msg tea.Msg) {
	c := m.Container
	switch msg := msg.(type) {
	case ToggleSideMsg:
		switch msg.Side {
		case drawer.SideLeft:
			m.setFlash(c.ToggleLeft(true, nil))
		case drawer.SideRight:
			m.setFlash(c.ToggleRight(true, nil))
		}
	case OpenSideMsg:
		m.setFlash(c.Toggle(msg.Side, true, false, nil))
	case CloseSideMsg:
		if c.State() == drawer.Open {
			m.setFlash(c.Toggle(c.ActiveSide(), false, true, nil))
		}
	case RemoveSideMsg:
		switch msg.Side {
		case drawer.SideLeft:
			c.RemoveLeft()
		case drawer.SideRight:
			c.RemoveRight()
		default:
			if !msg.Confirmed {
				m.Modal = NewRemoveBothConfirmModal()
				return
			}
			m.Modal = nil
			c.RemoveBoth()
		}
	case RestorePanelsMsg:
		m.restore()
	case CycleFocusMsg:
		m.Focus.Next()
	}
}

// restore re-runs the wiring providers of empty side panels.
func (m *AppModel) restore() {
	for _, id := range []panel.ID{panel.Left, panel.Right} {
		provide, ok := m.wiring[id]
		if !ok || m.Container.IsFilled(id) {
			continue
		}
		content, err := provide()
		if err == nil {
			err = m.Container.Assign(content, id)
		}
		if err != nil {
			m.setFlash(err)
			return
		}
	}
}
