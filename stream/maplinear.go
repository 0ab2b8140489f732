package stream

import (
	"github.com/matt-g-everett/mapanim/animation"
)

// MapState is the part of the view a map animation moves.
type MapState struct {
	Position animation.Point
	Scale    float64
	Angle    float64
}

// A MapLinear is an Animation that eases the map plane from one state to
// another. Only the properties that actually change are animated, so a pure
// zoom and a pure pan can run side by side.
type MapLinear struct {
	base
}

// NewMapLinear creates a MapLinear animation lasting duration seconds.
func NewMapLinear(from, to MapState, duration float64, easing func(float64) float64) *MapLinear {
	m := new(MapLinear)
	m.typ = animation.MapLinear
	m.flags = Flags{Blendable: true, Interruptible: true}
	m.interp = NewInterpolator(duration, easing)

	if from.Position != to.Position {
		m.add(track{
			object:   animation.ObjectMapPlane,
			property: animation.Position,
			from:     animation.PointValue(from.Position),
			to:       animation.PointValue(to.Position),
		})
	}
	if from.Scale != to.Scale {
		m.add(track{
			object:   animation.ObjectMapPlane,
			property: animation.Scale,
			from:     animation.ScalarValue(from.Scale),
			to:       animation.ScalarValue(to.Scale),
		})
	}
	if from.Angle != to.Angle {
		m.add(track{
			object:   animation.ObjectMapPlane,
			property: animation.Angle,
			kind:     trackAngle,
			from:     animation.ScalarValue(from.Angle),
			to:       animation.ScalarValue(to.Angle),
		})
	}

	return m
}

// NewMapScale creates a zoom-only animation. It is typed separately so that
// it can be finished without touching pans.
func NewMapScale(from, to float64, duration float64, easing func(float64) float64) *MapLinear {
	m := NewMapLinear(MapState{Scale: from}, MapState{Scale: to}, duration, easing)
	m.typ = animation.MapScale
	return m
}
