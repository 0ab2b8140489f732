package stream

import (
	"github.com/matt-g-everett/mapanim/animation"
)

// An ArrowAnimation moves and turns the direction arrow.
type ArrowAnimation struct {
	base
}

// NewArrowAnimation creates an ArrowAnimation. The arrow follows live
// location updates, so a newer arrow animation always replaces an older one.
func NewArrowAnimation(fromPos, toPos animation.Point, fromAngle, toAngle float64,
	duration float64, easing func(float64) float64) *ArrowAnimation {

	a := new(ArrowAnimation)
	a.typ = animation.Arrow
	a.flags = Flags{Blendable: true, Interruptible: true}
	a.interp = NewInterpolator(duration, easing)

	a.add(track{
		object:   animation.ObjectArrow,
		property: animation.Position,
		from:     animation.PointValue(fromPos),
		to:       animation.PointValue(toPos),
	})
	a.add(track{
		object:   animation.ObjectArrow,
		property: animation.Angle,
		kind:     trackAngle,
		from:     animation.ScalarValue(fromAngle),
		to:       animation.ScalarValue(toAngle),
	})

	return a
}
