package ui

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"menucontainer/internal/panel"
)

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and backs one drawer surface.
type Panel struct {
	ID     panel.ID
	View   View
	Bounds BoundsFunc

	visible bool
	offset  float64
	shadow  float64
	fresh   bool // attached since the last Start
	w, h    int
}

// Ensure Panel is a drawer surface host.
var (
	_ panel.Host       = (*Panel)(nil)
	_ panel.ShadowHost = (*Panel)(nil)
)

// NewPanel creates a visible, empty panel.
func NewPanel(id panel.ID, bounds BoundsFunc) *Panel {
	return &Panel{ID: id, Bounds: bounds, visible: true}
}

// Attach implements panel.Host. Content must be a View.
func (p *Panel) Attach(c panel.Content) {
	v, ok := c.(View)
	if !ok {
		log.Printf("ui.Panel.Attach: %s panel: content %T is not a View", p.ID, c)
		p.View = nil
		return
	}
	p.View = v
	p.fresh = true
}

// Detach implements panel.Host.
func (p *Panel) Detach(panel.Content) {
	p.View = nil
	p.fresh = false
}

// SetVisible implements panel.Host.
func (p *Panel) SetVisible(visible bool) { p.visible = visible }

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool { return p.visible }

// SetHorizontalOffset implements panel.Host. The offset is in drawer units.
func (p *Panel) SetHorizontalOffset(offset float64) { p.offset = offset }

// Offset returns the horizontal offset in drawer units.
func (p *Panel) Offset() float64 { return p.offset }

// SetShadowOpacity implements panel.ShadowHost.
func (p *Panel) SetShadowOpacity(opacity float64) { p.shadow = opacity }

// Shadow returns the shadow opacity.
func (p *Panel) Shadow() float64 { return p.shadow }

// Start returns the commands a freshly attached View needs: its Init and
// a size message. Returns nil when nothing was attached since the last call.
func (p *Panel) Start() tea.Cmd {
	if !p.fresh || p.View == nil {
		return nil
	}
	p.fresh = false
	var cmds []tea.Cmd
	cmds = append(cmds, p.View.Init())
	if p.w > 0 && p.h > 0 {
		var cmd tea.Cmd
		p.View, cmd = p.View.Update(tea.WindowSizeMsg{Width: p.w, Height: p.h})
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Resize records the panel size and forwards it to the View.
func (p *Panel) Resize(w, h int) tea.Cmd {
	p.w, p.h = w, h
	if p.View == nil {
		return nil
	}
	var cmd tea.Cmd
	p.View, cmd = p.View.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return cmd
}

// Size returns the last size given to Resize.
func (p *Panel) Size() (w, h int) { return p.w, p.h }

// Update forwards msg to the View.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	if p.View == nil {
		return nil
	}
	var cmd tea.Cmd
	p.View, cmd = p.View.Update(msg)
	return cmd
}

// Lines renders the View into exactly h lines of exactly w columns.
func (p *Panel) Lines(w, h int) []string {
	var body string
	if p.View != nil {
		body = p.View.View()
	} else {
		body = Styles.Empty.Render("(no " + p.ID.String() + " content)")
	}
	return fitBlock(strings.Split(body, "\n"), w, h)
}
