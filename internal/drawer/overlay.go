package drawer

// OverlayHost draws the dimming layer over the central surface.
// AttachOverlay may be called while already attached.
type OverlayHost interface {
	AttachOverlay()
	SetOverlayAlpha(alpha float64)
	DetachOverlay()
}

// Overlay tracks whether the dimming layer is attached. Its effects depend
// only on the State it is told about.
type Overlay struct {
	alpha    float64
	attached bool
}

// NewOverlay creates a detached overlay that fades in to alpha.
func NewOverlay(alpha float64) Overlay {
	return Overlay{alpha: alpha}
}

// Attached reports whether the layer is attached.
func (o *Overlay) Attached() bool { return o.attached }

// React returns the effects for entering s.
func (o *Overlay) React(s State) []Effect {
	switch s {
	case Open:
		if o.attached {
			return nil
		}
		o.attached = true
		return []Effect{AttachOverlay{}, FadeOverlay{Alpha: o.alpha}}
	case Closed:
		if !o.attached {
			return nil
		}
		o.attached = false
		return []Effect{FadeOverlay{Alpha: 0, Detach: true}}
	default:
		return nil
	}
}

type nopOverlayHost struct{}

func (nopOverlayHost) AttachOverlay()          {}
func (nopOverlayHost) SetOverlayAlpha(float64) {}
func (nopOverlayHost) DetachOverlay()          {}
