package ui

import (
	"menucontainer/internal/config"
	"menucontainer/internal/drawer"
	"menucontainer/internal/telemetry"
)

// ShowPageMsg is sent when the user picks a page from the menu panel.
type ShowPageMsg struct {
	Index int
}

// ToggleSideMsg opens or closes a side panel (SPC h / SPC l).
type ToggleSideMsg struct {
	Side drawer.Side
}

// OpenSideMsg opens a side panel without animation (SPC o h / SPC o l).
type OpenSideMsg struct {
	Side drawer.Side
}

// CloseSideMsg closes whichever side panel is open (esc).
type CloseSideMsg struct{}

// RemoveSideMsg drops a side panel's content (SPC x h / SPC x l); SideNone removes both.
type RemoveSideMsg struct {
	Side      drawer.Side
	Confirmed bool // SideNone asks first unless set
}

// RestorePanelsMsg re-runs the panel wiring for empty side panels (SPC r).
type RestorePanelsMsg struct{}

// CycleFocusMsg moves key focus to the next visible panel (tab).
type CycleFocusMsg struct{}

// ConfigChangedMsg carries a reloaded configuration from config.Loader.Watch.
type ConfigChangedMsg struct {
	Config config.Config
	Err    error
}

// DrawerStatusMsg is sent to every panel's View when the drawer changes.
type DrawerStatusMsg struct {
	State   drawer.State
	Side    drawer.Side
	Offset  float64
	Overlay bool
	Left    bool // left panel has content
	Right   bool // right panel has content
}

// RecentSpansMsg is sent to every panel's View when drawer spans complete.
type RecentSpansMsg struct {
	Spans []telemetry.Span // newest first
}
