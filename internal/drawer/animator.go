package drawer

import "time"

// Animator runs a timed property change. step receives progress in [0, 1];
// done is called once after the final step. Implementations must call both
// on the UI thread that drives the Container.
type Animator interface {
	Animate(d time.Duration, step func(progress float64), done func())
}

// Immediate applies every animation synchronously.
type Immediate struct{}

// Animate implements Animator.
func (Immediate) Animate(_ time.Duration, step func(float64), done func()) {
	step(1)
	done()
}

func lerp(from, to, p float64) float64 {
	return from + (to-from)*p
}
