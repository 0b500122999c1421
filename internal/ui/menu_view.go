package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type pageItem struct {
	index int
	page  Page
}

func (p pageItem) FilterValue() string { return p.page.Title }
func (p pageItem) Title() string       { return p.page.Title }
func (p pageItem) Description() string { return "" }

// MenuView lists pages; enter shows the selected page in the central panel.
type MenuView struct {
	list  list.Model
	Pages []Page
}

// Ensure MenuView implements View.
var _ View = (*MenuView)(nil)

// NewMenuView creates a menu over pages.
func NewMenuView(pages []Page) *MenuView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "Pages"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	m := &MenuView{list: l, Pages: pages}
	items := make([]list.Item, len(pages))
	for i, p := range pages {
		items[i] = pageItem{index: i, page: p}
	}
	m.list.SetItems(items)
	return m
}

// Selected returns the index of the highlighted page.
func (m *MenuView) Selected() int {
	return m.list.Index()
}

// Init implements View.
func (m *MenuView) Init() tea.Cmd { return nil }

// Update implements View.
func (m *MenuView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "enter" && len(m.Pages) > 0 {
			idx := m.list.Index()
			return m, func() tea.Msg { return ShowPageMsg{Index: idx} }
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *MenuView) View() string {
	if m.list.Width() == 0 {
		m.list.SetSize(30, 20)
	}
	return m.list.View()
}
