// Package panel models the three fixed content slots of a drawer container and the
// embeddable surface each slot is backed by.
package panel

// ID identifies one of the three fixed panels.
type ID int

const (
	Left ID = iota
	Right
	Central
)

// All lists the panels in the order wiring is applied.
var All = []ID{Central, Left, Right}

func (id ID) String() string {
	switch id {
	case Left:
		return "left"
	case Right:
		return "right"
	case Central:
		return "central"
	default:
		return "unknown"
	}
}

// Valid reports whether id names one of the three panels.
func (id ID) Valid() bool {
	return id == Left || id == Right || id == Central
}

// IsSide reports whether id is Left or Right.
func (id ID) IsSide() bool {
	return id == Left || id == Right
}

// Content is an opaque handle to embeddable child content.
// Surfaces never inspect it beyond attach/detach.
type Content any

// Discarder is implemented by content that must release resources when a surface
// drops it.
type Discarder interface {
	Discard()
}

// StatusStyle is a host-chrome styling hint (status bar appearance).
type StatusStyle int

const (
	StatusDefault StatusStyle = iota
	StatusLight
	StatusDark
)

func (s StatusStyle) String() string {
	switch s {
	case StatusLight:
		return "light"
	case StatusDark:
		return "dark"
	default:
		return "default"
	}
}

// StyleProvider is implemented by content that wants to style host chrome
// while it is the most prominent visible content.
type StyleProvider interface {
	StatusStyle() StatusStyle
}

// StyleOf returns c's preferred status style, or StatusDefault.
func StyleOf(c Content) StatusStyle {
	if p, ok := c.(StyleProvider); ok {
		return p.StatusStyle()
	}
	return StatusDefault
}
