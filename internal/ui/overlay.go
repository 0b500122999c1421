package ui

import "menucontainer/internal/drawer"

// Dimmer is the dimming layer drawn over the central panel.
// A terminal cannot blend colors, so any non-zero alpha renders the
// central panel faint.
type Dimmer struct {
	attached bool
	alpha    float64
}

// Ensure Dimmer is a drawer overlay host.
var _ drawer.OverlayHost = (*Dimmer)(nil)

// AttachOverlay implements drawer.OverlayHost.
func (d *Dimmer) AttachOverlay() { d.attached = true }

// SetOverlayAlpha implements drawer.OverlayHost.
func (d *Dimmer) SetOverlayAlpha(alpha float64) { d.alpha = alpha }

// DetachOverlay implements drawer.OverlayHost.
func (d *Dimmer) DetachOverlay() {
	d.attached = false
	d.alpha = 0
}

// Attached reports whether the layer is attached.
func (d *Dimmer) Attached() bool { return d.attached }

// Alpha returns the current alpha.
func (d *Dimmer) Alpha() float64 { return d.alpha }

// Active reports whether the layer currently dims anything.
func (d *Dimmer) Active() bool { return d.attached && d.alpha > 0 }

// Apply dims lines when the layer is active.
func (d *Dimmer) Apply(lines []string) []string {
	if !d.Active() {
		return lines
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Styles.Dimmed.Render(stripANSI(l))
	}
	return out
}
