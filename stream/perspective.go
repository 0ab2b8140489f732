package stream

import (
	"github.com/matt-g-everett/mapanim/animation"
)

// A PerspectiveSwitch tilts the map plane into or out of 3D. It cannot be
// interrupted; a second switch waits for the first to finish.
type PerspectiveSwitch struct {
	base
}

// NewPerspectiveSwitch creates a PerspectiveSwitch from params.StartAngle to
// params.EndAngle.
func NewPerspectiveSwitch(params animation.PerspectiveParams, duration float64,
	easing func(float64) float64) *PerspectiveSwitch {

	p := new(PerspectiveSwitch)
	p.typ = animation.MapPerspective
	p.flags = Flags{Blendable: true}
	p.interp = NewInterpolator(duration, easing)

	p.add(track{
		object:   animation.ObjectMapPlane,
		property: animation.AnglePerspective,
		from:     animation.ScalarValue(params.StartAngle),
		to:       animation.ScalarValue(params.EndAngle),
	})
	p.add(track{
		object:   animation.ObjectMapPlane,
		property: animation.SwitchPerspective,
		kind:     trackConstant,
		to:       animation.PerspectiveValue(params),
	})

	return p
}
