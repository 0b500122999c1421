package ui

import (
	"errors"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"menucontainer/internal/config"
	"menucontainer/internal/drawer"
	"menucontainer/internal/panel"
	"menucontainer/internal/telemetry"
	"menucontainer/internal/ui/textutil"
)

// AppModel is the root model: a drawer container whose three surfaces are
// terminal panels.
type AppModel struct {
	Mode       AppMode
	Container  *drawer.Container
	Panels     map[panel.ID]*Panel
	Dimmer     *Dimmer
	Animator   *TickAnimator
	Drag       *DragTracker
	Layout     DrawerLayout
	KeyHandler *KeyHandler
	Focus      *FocusManager
	Pages      []Page
	Modal      *ConfirmModal
	Recorder   *telemetry.Recorder // optional; feeds RecentSpansMsg

	spansSent uint64

	wiring   drawer.Wiring
	pending  *config.Config // applied once both panels are closed
	flash    string
	width    int
	height   int
	lastSent DrawerStatusMsg
}

// NewAppModel creates the root model. wiring fills the panels; opts are passed
// to drawer.New after the model's own options.
func NewAppModel(cfg config.Config, wiring drawer.Wiring, opts ...drawer.Option) (*AppModel, error) {
	settings := cfg.Settings()
	layout := DrawerLayout{CellsPerUnit: cfg.UI.CellsPerUnit, SideWidth: settings.SidePanelWidth}
	m := &AppModel{
		Mode:     ModeBrowse,
		Panels:   make(map[panel.ID]*Panel, len(panel.All)),
		Dimmer:   &Dimmer{},
		Animator: NewTickAnimator(cfg.UI.FrameInterval),
		Drag:     NewDragTracker(layout),
		Layout:   layout,
		Focus:    &FocusManager{Current: panel.Central, Order: []panel.ID{panel.Central}},
		Pages:    DefaultPages(),
		wiring:   wiring,
	}
	for _, id := range panel.All {
		m.Panels[id] = NewPanel(id, layout.Bounds(id))
	}

	base := []drawer.Option{
		drawer.WithSettings(settings),
		drawer.WithAnimator(m.Animator),
		drawer.WithWiring(wiring),
		drawer.WithStateChange(m.onStateChange),
	}
	c, err := drawer.New(drawer.Hosts{
		Left:    m.Panels[panel.Left],
		Right:   m.Panels[panel.Right],
		Central: m.Panels[panel.Central],
		Overlay: m.Dimmer,
	}, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	m.Container = c

	reg := NewKeybindRegistry()
	reg.RegisterAll(drawerBindings())
	m.KeyHandler = NewKeyHandler(reg)
	return m, nil
}

// AsTeaModel returns a tea.Model for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.startPanels()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.applyPending()
	return a, tea.Batch(cmd, a.startPanels(), a.Animator.Cmd(), a.publish())
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.width <= 0 || a.height <= statusBarHeight {
		return ""
	}
	return a.render() + "\n" + a.statusBar()
}

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height)
	case FrameMsg:
		return m.Animator.Advance(msg.Time)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return nil
	case tea.KeyMsg:
		m.flash = ""
		if m.Modal != nil {
			_, cmd := m.Modal.Update(msg)
			return cmd
		}
		if consumed, cmd := m.KeyHandler.Handle(msg); consumed {
			return cmd
		}
		return m.Panels[m.Focus.Current].Update(msg)
	case ConfigChangedMsg:
		m.configChanged(msg)
		return nil
	case ShowPageMsg:
		return m.showPage(msg.Index)
	case DismissModalMsg:
		m.Modal = nil
		return nil
	case ToggleSideMsg, OpenSideMsg, CloseSideMsg, RemoveSideMsg, RestorePanelsMsg, CycleFocusMsg:
		m.handleCommand(msg)
		return nil
	}
	// everything else (spinner ticks, viewport messages) goes to every view
	var cmds []tea.Cmd
	for _, id := range panel.All {
		cmds = append(cmds, m.Panels[id].Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) resize(w, h int) tea.Cmd {
	m.width, m.height = w, h
	var cmds []tea.Cmd
	for _, id := range panel.All {
		p := m.Panels[id]
		_, _, pw, ph := p.Bounds(w, h)
		cmds = append(cmds, p.Resize(pw, ph))
	}
	return tea.Batch(cmds...)
}

// handleMouse feeds left-button drags that start on the central panel into
// the drawer.
func (m *AppModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action == tea.MouseActionPress && !m.onCentral(msg.X, msg.Y) {
		return
	}
	samples, tap := m.Drag.HandleMouse(msg)
	for _, s := range samples {
		m.Container.Handle(s)
	}
	if tap {
		m.Container.Tap()
	}
}

// onCentral reports whether the cell is on the visible part of the central panel.
func (m *AppModel) onCentral(x, y int) bool {
	if y < 0 || y >= m.height-statusBarHeight {
		return false
	}
	cx := m.Layout.CentralX(m.Container.Offset())
	return x >= cx && x < cx+m.width
}

func (m *AppModel) showPage(i int) tea.Cmd {
	if i < 0 || i >= len(m.Pages) {
		return nil
	}
	if err := m.Container.Assign(NewPageView(m.Pages[i]), panel.Central); err != nil {
		m.setFlash(err)
		return nil
	}
	if m.Container.State() == drawer.Open {
		m.setFlash(m.Container.Toggle(m.Container.ActiveSide(), false, true, nil))
	}
	return nil
}

func (m *AppModel) configChanged(msg ConfigChangedMsg) {
	if msg.Err != nil {
		log.Printf("ui.AppModel.configChanged: %v", msg.Err)
		m.flash = "config: " + msg.Err.Error()
		return
	}
	cfg := msg.Config
	m.pending = &cfg
}

// applyPending installs reloaded settings once the drawer is Closed.
func (m *AppModel) applyPending() {
	if m.pending == nil || m.Container.State() != drawer.Closed {
		return
	}
	cfg := *m.pending
	m.pending = nil
	if err := m.Container.ApplySettings(cfg.Settings()); err != nil {
		m.setFlash(err)
		return
	}
	m.Animator.Interval = cfg.UI.FrameInterval
	m.Layout.CellsPerUnit = cfg.UI.CellsPerUnit
	m.Layout.SideWidth = cfg.Drawer.SidePanelWidth
	m.Drag.Layout = m.Layout
	for _, id := range panel.All {
		m.Panels[id].Bounds = m.Layout.Bounds(id)
	}
	if m.width > 0 {
		m.resize(m.width, m.height)
	}
}

// onStateChange keeps focus and mode on the most prominent panel.
func (m *AppModel) onStateChange(from, to drawer.State) {
	switch to {
	case drawer.Open:
		id, ok := m.Container.ActiveSide().Panel()
		if !ok {
			return
		}
		m.Mode = ModePanel
		m.Focus.Order = []panel.ID{id, panel.Central}
		m.Focus.SetFocus(id)
	case drawer.Closed:
		m.Mode = ModeBrowse
		m.Focus.Order = []panel.ID{panel.Central}
		m.Focus.SetFocus(panel.Central)
	}
}

func (m *AppModel) startPanels() tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range panel.All {
		cmds = append(cmds, m.Panels[id].Start())
	}
	return tea.Batch(cmds...)
}

// publish sends a DrawerStatusMsg to every view when the drawer changed, and
// a RecentSpansMsg when new spans were recorded.
func (m *AppModel) publish() tea.Cmd {
	var cmds []tea.Cmd
	if m.Recorder != nil && m.Recorder.Version() != m.spansSent {
		m.spansSent = m.Recorder.Version()
		msg := RecentSpansMsg{Spans: m.Recorder.Recent()}
		for _, id := range panel.All {
			cmds = append(cmds, m.Panels[id].Update(msg))
		}
	}
	st := DrawerStatusMsg{
		State:   m.Container.State(),
		Side:    m.Container.ActiveSide(),
		Offset:  m.Container.Offset(),
		Overlay: m.Container.OverlayAttached(),
		Left:    m.Container.IsFilled(panel.Left),
		Right:   m.Container.IsFilled(panel.Right),
	}
	if st == m.lastSent {
		return tea.Batch(cmds...)
	}
	m.lastSent = st
	for _, id := range panel.All {
		cmds = append(cmds, m.Panels[id].Update(st))
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) setFlash(err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, drawer.ErrEmptyPanel):
		m.flash = "panel is empty"
	case errors.Is(err, drawer.ErrBusy):
		m.flash = "busy, try again"
	default:
		m.flash = err.Error()
	}
}

// render draws the panel stack.
func (m *AppModel) render() string {
	w, h := m.width, m.height-statusBarHeight
	central := m.Panels[panel.Central]
	lines := m.Dimmer.Apply(central.Lines(w, h))

	var background []string
	sw := m.Layout.SideCells(w)
	switch {
	case m.Panels[panel.Left].Visible():
		for _, l := range m.Panels[panel.Left].Lines(sw, h) {
			background = append(background, textutil.FitStyled(l, w))
		}
	case m.Panels[panel.Right].Visible():
		pad := strings.Repeat(" ", w-sw)
		for _, l := range m.Panels[panel.Right].Lines(sw, h) {
			background = append(background, pad+l)
		}
	}
	x := m.Layout.CentralX(central.Offset())
	out := compose(background, lines, x, w, shadowGlyph(central.Shadow()))
	if m.Modal != nil {
		out = overlayCenter(out, m.Modal.View(), w)
	}
	return out
}

func (m *AppModel) statusBar() string {
	if m.KeyHandler.LeaderWaiting {
		return RenderKeybindHelp(m.KeyHandler, m.Mode, m.width)
	}
	style := StatusStyle(m.Container.StatusStyle())
	left := " " + m.Container.State().String()
	if side := m.Container.ActiveSide(); side != drawer.SideNone {
		left += " " + side.String()
	}
	right := "SPC commands  q quit "
	if m.flash != "" {
		left += "  " + m.flash
	}
	gap := m.width - textutil.VisualWidth(left) - textutil.VisualWidth(right)
	if gap < 1 {
		return style.Render(textutil.PadRightVisual(left, m.width))
	}
	return style.Render(left + strings.Repeat(" ", gap) + right)
}
