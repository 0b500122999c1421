package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"menucontainer/internal/panel"
)

// PageView renders a markdown page in a scrollable viewport.
type PageView struct {
	Page     Page
	viewport viewport.Model
	renderer *glamour.TermRenderer
	wrap     int
}

// Ensure PageView is a View that styles the status bar and releases its renderer.
var (
	_ View                = (*PageView)(nil)
	_ panel.StyleProvider = (*PageView)(nil)
	_ panel.Discarder     = (*PageView)(nil)
)

// NewPageView creates a view for page.
func NewPageView(page Page) *PageView {
	return &PageView{Page: page, viewport: viewport.New(80, 20)}
}

// StatusStyle implements panel.StyleProvider.
func (p *PageView) StatusStyle() panel.StatusStyle { return panel.StatusLight }

// Discard implements panel.Discarder.
func (p *PageView) Discard() {
	p.renderer = nil
	p.viewport.SetContent("")
}

// Init implements View.
func (p *PageView) Init() tea.Cmd {
	p.render()
	return p.viewport.Init()
}

// Update implements View.
func (p *PageView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		p.viewport.Width = msg.Width
		p.viewport.Height = msg.Height
		p.render()
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View implements View.
func (p *PageView) View() string {
	return p.viewport.View()
}

// render re-renders the markdown when the wrap width changed.
func (p *PageView) render() {
	wrap := p.viewport.Width - 2
	if wrap < 10 {
		wrap = 10
	}
	if p.renderer != nil && wrap == p.wrap {
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		log.Printf("ui.PageView.render: %s: %v", p.Page.Title, err)
		p.viewport.SetContent(p.Page.Markdown)
		return
	}
	out, err := r.Render(p.Page.Markdown)
	if err != nil {
		log.Printf("ui.PageView.render: %s: %v", p.Page.Title, err)
		out = p.Page.Markdown
	}
	p.renderer = r
	p.wrap = wrap
	p.viewport.SetContent(out)
	p.viewport.GotoTop()
}
