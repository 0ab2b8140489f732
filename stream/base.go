package stream

import (
	"github.com/matt-g-everett/mapanim/animation"
	"github.com/matt-g-everett/mapanim/util"
)

// Flags holds the combine policy shared by the animations in this package.
type Flags struct {
	Blendable            bool
	Interruptible        bool
	InterruptedOnCombine bool
}

type trackKind int

const (
	trackLinear trackKind = iota
	trackAngle
	trackConstant
)

// track animates one (object, property) pair from one value to another.
type track struct {
	object   animation.Object
	property animation.Property
	kind     trackKind
	from     animation.Value
	to       animation.Value
}

func (t track) at(p float64) animation.Value {
	switch {
	case t.kind == trackConstant:
		return t.to
	case t.to.Kind == animation.ValuePoint:
		return animation.PointValue(animation.Point{
			X: util.Lerp(t.from.Point.X, t.to.Point.X, p),
			Y: util.Lerp(t.from.Point.Y, t.to.Point.Y, p),
		})
	case t.kind == trackAngle:
		return animation.ScalarValue(util.LerpAngle(t.from.Scalar, t.to.Scalar, p))
	default:
		return animation.ScalarValue(util.Lerp(t.from.Scalar, t.to.Scalar, p))
	}
}

// base implements animation.Animation over a list of tracks sharing one
// Interpolator. The concrete animations only pick the type, tracks and flags.
type base struct {
	typ    animation.Type
	flags  Flags
	tracks []track
	interp Interpolator

	started     bool
	interrupted bool
}

func (b *base) add(t track) {
	b.tracks = append(b.tracks, t)
}

func (b *base) find(object animation.Object, property animation.Property) (track, bool) {
	for _, t := range b.tracks {
		if t.object == object && t.property == property {
			return t, true
		}
	}
	return track{}, false
}

func (b *base) Type() animation.Type {
	return b.typ
}

func (b *base) Objects() []animation.Object {
	var out []animation.Object
	for _, t := range b.tracks {
		if !containsObject(out, t.object) {
			out = append(out, t.object)
		}
	}
	return out
}

func (b *base) Properties(object animation.Object) []animation.Property {
	var out []animation.Property
	for _, t := range b.tracks {
		if t.object == object {
			out = append(out, t.property)
		}
	}
	return out
}

func (b *base) HasObject(object animation.Object) bool {
	for _, t := range b.tracks {
		if t.object == object {
			return true
		}
	}
	return false
}

func (b *base) HasProperty(object animation.Object, property animation.Property) bool {
	_, ok := b.find(object, property)
	return ok
}

func (b *base) GetProperty(object animation.Object, property animation.Property) (animation.Value, bool) {
	t, ok := b.find(object, property)
	if !ok {
		return animation.Value{}, false
	}
	return t.at(b.interp.Progress()), true
}

func (b *base) CouldBeBlended() bool {
	return b.flags.Blendable
}

// CouldBeBlendedWith allows two blendable animations to share a group when
// their types differ or when they touch disjoint properties.
func (b *base) CouldBeBlendedWith(other animation.Animation) bool {
	if !b.CouldBeBlended() || !other.CouldBeBlended() {
		return false
	}
	if b.typ != other.Type() {
		return true
	}
	for _, t := range b.tracks {
		if other.HasProperty(t.object, t.property) {
			return false
		}
	}
	return true
}

func (b *base) CouldBeInterrupted() bool {
	return b.flags.Interruptible
}

func (b *base) InterruptedOnCombine() bool {
	return b.flags.InterruptedOnCombine
}

func (b *base) OnStart() {
	b.started = true
}

func (b *base) OnFinish() {}

func (b *base) Advance(elapsedSeconds float64) {
	b.interp.Advance(elapsedSeconds)
}

func (b *base) IsFinished() bool {
	return b.interp.IsFinished()
}

func (b *base) Interrupt() {
	b.interrupted = true
}

func (b *base) Finish() {
	b.interp.Finish()
}

func containsObject(objects []animation.Object, object animation.Object) bool {
	for _, o := range objects {
		if o == object {
			return true
		}
	}
	return false
}
