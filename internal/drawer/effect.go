package drawer

// Effect is a side-effect command produced by a state transition.
// The Container executes effects in order; effects following an animated
// MoveCentral run once the move settles.
type Effect interface {
	effect()
}

// MoveCentral sets the central surface's horizontal offset.
type MoveCentral struct {
	Offset   float64
	Animated bool
}

// ShowSide shows the given side surface and hides the other. SideNone hides both.
type ShowSide struct {
	Side Side
}

// AttachOverlay puts the dimming layer over the central surface at zero alpha.
type AttachOverlay struct{}

// FadeOverlay animates the dimming layer's alpha, detaching it afterwards when Detach is set.
type FadeOverlay struct {
	Alpha  float64
	Detach bool
}

// Settle resolves a pending move to Open or Closed.
type Settle struct {
	Open bool
}

func (MoveCentral) effect()   {}
func (ShowSide) effect()      {}
func (AttachOverlay) effect() {}
func (FadeOverlay) effect()   {}
func (Settle) effect()        {}
