// Package gesture converts a horizontal drag sample stream into clamped
// translation steps for the drawer state machine.
package gesture

import "math"

// Phase is the lifecycle position of a drag sample.
type Phase int

const (
	Begin Phase = iota
	Change
	End
	Cancel
)

func (p Phase) String() string {
	switch p {
	case Begin:
		return "begin"
	case Change:
		return "change"
	case End:
		return "end"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Sample is one pointer/drag input. TranslationX is cumulative since Begin;
// VelocityX is in distance units per second.
type Sample struct {
	Phase        Phase
	TranslationX float64
	VelocityX    float64
}

// Step is what the tracker emits for a sample.
type Step struct {
	Phase       Phase
	Translation float64 // clamped to [-width, width]
	Velocity    float64
	// Stationary marks a Change sample with zero velocity; the offset is not updated for it.
	Stationary bool
}

// Terminal reports whether the step ends the gesture.
func (s Step) Terminal() bool {
	return s.Phase != Begin && s.Phase != Change
}

// Tracker clamps translations and remembers the last one for gesture resolution.
// Zero value is unusable; construct with NewTracker.
type Tracker struct {
	width float64
	last  float64
}

// NewTracker creates a tracker clamping to [-width, width].
func NewTracker(width float64) *Tracker {
	return &Tracker{width: width}
}

// Width returns the clamp bound.
func (t *Tracker) Width() float64 { return t.width }

// SetWidth changes the clamp bound; takes effect on the next sample.
func (t *Tracker) SetWidth(width float64) { t.width = width }

// Last returns the last recorded clamped translation.
func (t *Tracker) Last() float64 { return t.last }

// Track converts a sample into a step.
func (t *Tracker) Track(s Sample) Step {
	switch s.Phase {
	case Begin:
		t.last = 0
		v := s.VelocityX
		if !finite(v) {
			v = 0
		}
		return Step{Phase: Begin, Velocity: v}
	case Change:
		if !finite(s.TranslationX) || !finite(s.VelocityX) {
			// unusable sample: hold the last position
			return Step{Phase: Change, Translation: t.last, Stationary: true}
		}
		tr := Clamp(s.TranslationX, t.width)
		t.last = tr
		return Step{
			Phase:       Change,
			Translation: tr,
			Velocity:    s.VelocityX,
			Stationary:  s.VelocityX == 0,
		}
	default:
		v := s.VelocityX
		if !finite(v) {
			v = 0
		}
		return Step{Phase: s.Phase, Translation: t.last, Velocity: v}
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp limits t to [-width, width]. NaN clamps to 0.
func Clamp(t, width float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	if t > width {
		return width
	}
	if t < -width {
		return -width
	}
	return t
}
