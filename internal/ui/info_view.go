package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"menucontainer/internal/drawer"
	"menucontainer/internal/panel"
	"menucontainer/internal/telemetry"
)

// InfoView shows the drawer status; it lives in the right panel.
type InfoView struct {
	status  DrawerStatusMsg
	spans   []telemetry.Span
	spinner spinner.Model
	width   int
}

// Ensure InfoView is a View that styles the status bar.
var (
	_ View                = (*InfoView)(nil)
	_ panel.StyleProvider = (*InfoView)(nil)
)

// NewInfoView creates an info view.
func NewInfoView() *InfoView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Title
	return &InfoView{spinner: s}
}

// StatusStyle implements panel.StyleProvider.
func (v *InfoView) StatusStyle() panel.StatusStyle { return panel.StatusDark }

// Status returns the last status received.
func (v *InfoView) Status() DrawerStatusMsg { return v.status }

// Init implements View.
func (v *InfoView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *InfoView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
	case DrawerStatusMsg:
		wasSliding := v.status.State == drawer.Sliding
		v.status = msg
		if msg.State == drawer.Sliding && !wasSliding {
			return v, v.spinner.Tick
		}
	case RecentSpansMsg:
		v.spans = msg.Spans
	case spinner.TickMsg:
		// spin only while a panel is being dragged
		if v.status.State != drawer.Sliding {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}
	return v, nil
}

// View implements View.
func (v *InfoView) View() string {
	var b strings.Builder
	title := "Drawer"
	if v.status.State == drawer.Sliding {
		title += " " + v.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n\n")
	row := func(k, val string) {
		b.WriteString(Styles.Muted.Render(fmt.Sprintf("%-8s", k)) + Styles.Normal.Render(val) + "\n")
	}
	row("state", v.status.State.String())
	row("side", v.status.Side.String())
	row("offset", fmt.Sprintf("%.0f", v.status.Offset))
	row("overlay", onOff(v.status.Overlay))
	row("left", filled(v.status.Left))
	row("right", filled(v.status.Right))

	if len(v.spans) > 0 {
		b.WriteString("\n" + Styles.Title.Render("Recent") + "\n")
		for _, s := range v.spans {
			line := fmt.Sprintf("%-14s %-5s %s", s.Name, s.Attributes["drawer.side"], s.Duration.Round(time.Millisecond))
			style := Styles.Normal
			if s.Failed {
				style = Styles.Danger
			}
			b.WriteString(style.Render(line) + "\n")
		}
	}
	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func filled(b bool) string {
	if b {
		return "filled"
	}
	return "empty"
}
