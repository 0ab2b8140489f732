package stream

import "math"

// Interpolator tracks the eased progress of a fixed-length animation.
type Interpolator struct {
	duration float64
	elapsed  float64
	easing   func(float64) float64
}

// NewInterpolator creates an Interpolator lasting duration seconds.
func NewInterpolator(duration float64, easing func(float64) float64) Interpolator {
	return Interpolator{duration: duration, easing: easing}
}

// Advance moves the interpolator forward, stopping at the end.
func (i *Interpolator) Advance(elapsedSeconds float64) {
	i.elapsed = math.Min(i.elapsed+elapsedSeconds, i.duration)
}

// Finish jumps to the end.
func (i *Interpolator) Finish() {
	i.elapsed = i.duration
}

func (i *Interpolator) IsFinished() bool {
	return i.elapsed >= i.duration
}

// Progress returns the eased position in [0, 1].
func (i *Interpolator) Progress() float64 {
	if i.duration <= 0 {
		return 1
	}
	t := i.elapsed / i.duration
	if i.easing == nil {
		return t
	}
	return i.easing(t)
}
