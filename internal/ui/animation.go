package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"menucontainer/internal/drawer"
)

// FrameMsg advances running animations.
type FrameMsg struct {
	Time time.Time
}

type animation struct {
	start time.Time
	d     time.Duration
	step  func(float64)
	done  func()
}

// TickAnimator runs drawer animations on Bubble Tea's update loop: frames are
// tea.Tick messages, and every step and completion runs inside Update.
type TickAnimator struct {
	Interval time.Duration
	Now      func() time.Time

	running []*animation
	ticking bool
}

// Ensure TickAnimator is a drawer animator.
var _ drawer.Animator = (*TickAnimator)(nil)

// NewTickAnimator creates an animator ticking every interval.
func NewTickAnimator(interval time.Duration) *TickAnimator {
	return &TickAnimator{Interval: interval, Now: time.Now}
}

// Animate implements drawer.Animator. The animation starts on the next frame.
func (a *TickAnimator) Animate(d time.Duration, step func(float64), done func()) {
	a.running = append(a.running, &animation{start: a.Now(), d: d, step: step, done: done})
}

// Running reports the number of unfinished animations.
func (a *TickAnimator) Running() int { return len(a.running) }

// Cmd schedules the next frame when animations are waiting and no frame is pending.
func (a *TickAnimator) Cmd() tea.Cmd {
	if a.ticking || len(a.running) == 0 {
		return nil
	}
	a.ticking = true
	return tea.Tick(a.Interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// Advance steps every animation to now, completing finished ones, and returns
// the command for the next frame.
func (a *TickAnimator) Advance(now time.Time) tea.Cmd {
	a.ticking = false
	current := a.running
	a.running = nil

	var keep []*animation
	for _, an := range current {
		p := 1.0
		if an.d > 0 {
			p = float64(now.Sub(an.start)) / float64(an.d)
		}
		if p >= 1 {
			an.step(1)
			an.done()
			continue
		}
		if p < 0 {
			p = 0
		}
		an.step(easeInOut(p))
		keep = append(keep, an)
	}
	// completions may have queued new animations
	a.running = append(keep, a.running...)
	return a.Cmd()
}

func easeInOut(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}
