package drawer

import "menucontainer/internal/panel"

// State is the interaction state of the side panels.
type State int

const (
	Closed State = iota
	Sliding
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Sliding:
		return "Sliding"
	case Open:
		return "Open"
	default:
		return "Unknown"
	}
}

// Side is the side panel participating in the current gesture or open state.
// Holding a single Side keeps "left and right both active" unrepresentable.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Panel returns the panel ID backing the side. SideNone maps to false.
func (s Side) Panel() (panel.ID, bool) {
	switch s {
	case SideLeft:
		return panel.Left, true
	case SideRight:
		return panel.Right, true
	default:
		return 0, false
	}
}

// Session is the ephemeral state of one drag gesture.
type Session struct {
	WasOpenAtStart bool
	Translation    float64
	Velocity       float64
}
