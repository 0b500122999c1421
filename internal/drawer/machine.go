package drawer

// Machine is the panel interaction state machine. Every transition mutates only
// the machine and returns the effects the caller must execute.
type Machine struct {
	width   float64
	state   State
	active  Side
	session *Session
	overlay Overlay
}

// NewMachine creates a Closed machine for panels of the given width.
func NewMachine(width, overlayAlpha float64) *Machine {
	return &Machine{width: width, overlay: NewOverlay(overlayAlpha)}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Active returns the side participating in the gesture or open state.
func (m *Machine) Active() Side { return m.active }

// LeftActive reports whether the left panel is active.
func (m *Machine) LeftActive() bool { return m.active == SideLeft }

// RightActive reports whether the right panel is active.
func (m *Machine) RightActive() bool { return m.active == SideRight }

// Session returns the gesture in progress, or nil.
func (m *Machine) Session() *Session { return m.session }

// Width returns the side panel width.
func (m *Machine) Width() float64 { return m.width }

// OverlayAttached reports whether the dimming layer is attached.
func (m *Machine) OverlayAttached() bool { return m.overlay.Attached() }

// SetWidth changes the panel width. Only meaningful while Closed.
func (m *Machine) SetWidth(width float64) { m.width = width }

// SetOverlayAlpha changes the alpha the overlay fades in to.
func (m *Machine) SetOverlayAlpha(alpha float64) { m.overlay.alpha = alpha }

// IsVisible reports whether side is open.
func (m *Machine) IsVisible(side Side) bool {
	return side != SideNone && m.state == Open && m.active == side
}

// Begin starts a gesture session. It returns ok=false when a transition is
// already in flight; the whole gesture is then ignored.
func (m *Machine) Begin(velocity float64, leftFilled, rightFilled bool) ([]Effect, bool) {
	if m.state == Sliding {
		return nil, false
	}
	var fx []Effect
	wasOpen := m.state == Open
	if !wasOpen {
		side := SideNone
		if velocity >= 0 && leftFilled {
			side = SideLeft
		} else if rightFilled {
			side = SideRight
		}
		fx = append(fx, m.activate(side)...)
	}
	m.session = &Session{WasOpenAtStart: wasOpen, Velocity: velocity}
	fx = append(fx, m.setState(Sliding)...)
	return fx, true
}

// Slide moves the central panel for the clamped translation t.
func (m *Machine) Slide(t, velocity float64, stationary bool) []Effect {
	if m.session == nil {
		return nil
	}
	m.session.Velocity = velocity
	if stationary {
		return nil
	}
	m.session.Translation = t
	off, ok := SlideOffset(m.active, m.session.WasOpenAtStart, t, m.width)
	if !ok {
		return nil
	}
	return []Effect{MoveCentral{Offset: off}}
}

// End resolves the gesture at the final translation t.
func (m *Machine) End(t float64) []Effect {
	if m.session == nil {
		return nil
	}
	wasOpen := m.session.WasOpenAtStart
	m.session = nil
	open, ok := Resolve(m.active, wasOpen, t, m.width)
	if !ok {
		return m.setState(Closed)
	}
	return m.move(m.active, open, true)
}

// Toggle opens or closes side programmatically. Closing a side that is not
// open yields no effects.
func (m *Machine) Toggle(side Side, open, animated bool) ([]Effect, error) {
	if m.state == Sliding {
		return nil, ErrBusy
	}
	var fx []Effect
	if open {
		fx = append(fx, m.activate(side)...)
	} else if side != m.active || m.state == Closed {
		return nil, nil
	}
	fx = append(fx, m.setState(Sliding)...)
	return append(fx, m.move(side, open, animated)...), nil
}

// Tap closes the open panel.
func (m *Machine) Tap() []Effect {
	if m.state != Open {
		return nil
	}
	fx := m.setState(Sliding)
	return append(fx, m.move(m.active, false, true)...)
}

// Settle finishes a pending move. It is a no-op unless the machine is Sliding
// without a gesture in progress.
func (m *Machine) Settle(open bool) []Effect {
	if m.state != Sliding || m.session != nil {
		return nil
	}
	if open && m.active != SideNone {
		return m.setState(Open)
	}
	return m.setState(Closed)
}

// Release deactivates side, closing it immediately when it participates in the
// current state. Used when the side's content is removed.
func (m *Machine) Release(side Side) []Effect {
	if side == SideNone || m.active != side {
		return nil
	}
	var fx []Effect
	if m.state != Closed {
		m.session = nil
		fx = append(fx, MoveCentral{Offset: 0})
		fx = append(fx, m.setState(Closed)...)
	}
	return append(fx, m.activate(SideNone)...)
}

func (m *Machine) move(side Side, open, animated bool) []Effect {
	return []Effect{
		MoveCentral{Offset: Target(side, open, m.width), Animated: animated},
		Settle{Open: open},
	}
}

func (m *Machine) activate(side Side) []Effect {
	if side == m.active {
		return nil
	}
	m.active = side
	return []Effect{ShowSide{Side: side}}
}

func (m *Machine) setState(s State) []Effect {
	if s == m.state {
		return nil
	}
	m.state = s
	return m.overlay.React(s)
}

// SlideOffset maps a clamped drag translation to the central panel offset.
// ok is false when the translation points away from the gesture's direction
// and the offset must stay where it is.
func SlideOffset(side Side, closing bool, t, width float64) (offset float64, ok bool) {
	switch side {
	case SideLeft:
		if closing {
			if t > 0 {
				return 0, false
			}
			return width + t, true
		}
		if t < 0 {
			return 0, false
		}
		return t, true
	case SideRight:
		if closing {
			if t < 0 {
				return 0, false
			}
			return t - width, true
		}
		if t > 0 {
			return 0, false
		}
		return t, true
	default:
		return 0, false
	}
}

// Resolve decides whether a released gesture snaps open. At exactly half the
// panel width the gesture completes (opens when it was closed, closes when it
// was open). ok is false when no side is active.
func Resolve(side Side, wasOpen bool, t, width float64) (open bool, ok bool) {
	half := width / 2
	switch side {
	case SideLeft:
		if wasOpen {
			return t > -half, true
		}
		return t >= half, true
	case SideRight:
		if wasOpen {
			return t < half, true
		}
		return t <= -half, true
	default:
		return false, false
	}
}

// Target is the central panel offset when side is fully open or closed.
func Target(side Side, open bool, width float64) float64 {
	if !open {
		return 0
	}
	switch side {
	case SideLeft:
		return width
	case SideRight:
		return -width
	default:
		return 0
	}
}
