package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"menucontainer/internal/gesture"
)

// DragState represents the current state of a mouse drag.
type DragState int

const (
	DragStateIdle DragState = iota
	DragStatePressed
	DragStateDragging
)

// DragTracker turns left-button mouse events into drawer gesture samples.
// A press followed by motion is a drag; a press released without motion is a tap.
type DragTracker struct {
	Layout DrawerLayout
	Now    func() time.Time

	state  DragState
	startX int
	lastX  int
	lastAt time.Time
}

// NewDragTracker creates an idle tracker.
func NewDragTracker(layout DrawerLayout) *DragTracker {
	return &DragTracker{Layout: layout, Now: time.Now}
}

// State returns the drag state.
func (d *DragTracker) State() DragState { return d.state }

// HandleMouse processes a mouse event. It returns the samples to feed the
// drawer and whether the event completed a tap.
func (d *DragTracker) HandleMouse(msg tea.MouseMsg) (samples []gesture.Sample, tap bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil, false
		}
		d.state = DragStatePressed
		d.startX = msg.X
		d.lastX = msg.X
		d.lastAt = d.Now()
	case tea.MouseActionMotion:
		if d.state == DragStateIdle || msg.X == d.lastX && d.state == DragStatePressed {
			return nil, false
		}
		now := d.Now()
		v := d.velocity(msg.X, now)
		if d.state == DragStatePressed {
			d.state = DragStateDragging
			samples = append(samples, gesture.Sample{Phase: gesture.Begin, VelocityX: v})
		}
		d.lastX = msg.X
		d.lastAt = now
		samples = append(samples, gesture.Sample{
			Phase:        gesture.Change,
			TranslationX: d.Layout.Units(msg.X - d.startX),
			VelocityX:    v,
		})
	case tea.MouseActionRelease:
		switch d.state {
		case DragStatePressed:
			tap = true
		case DragStateDragging:
			samples = append(samples, gesture.Sample{
				Phase:        gesture.End,
				TranslationX: d.Layout.Units(d.lastX - d.startX),
			})
		}
		d.reset()
	}
	return samples, tap
}

// Cancel abandons a drag in progress, e.g. when the terminal loses the button release.
func (d *DragTracker) Cancel() []gesture.Sample {
	dragging := d.state == DragStateDragging
	d.reset()
	if !dragging {
		return nil
	}
	return []gesture.Sample{{Phase: gesture.Cancel}}
}

// velocity is in drawer units per second.
func (d *DragTracker) velocity(x int, now time.Time) float64 {
	dt := now.Sub(d.lastAt)
	if dt <= 0 {
		dt = time.Millisecond
	}
	return d.Layout.Units(x-d.lastX) / dt.Seconds()
}

func (d *DragTracker) reset() {
	d.state = DragStateIdle
	d.startX = 0
	d.lastX = 0
	d.lastAt = time.Time{}
}
