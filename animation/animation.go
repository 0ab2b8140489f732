// Package animation schedules and blends view-state animations for a map
// renderer. A System owns a chain of animation groups: only the front group
// runs, its members' values are blended per property, and values of retired
// animations are kept in a one-shot cache so queries stay continuous across
// animation boundaries.
//
// A System is not safe for concurrent use. All calls are expected to come from
// the goroutine driving the render loop.
package animation

// Object names a logical animatable entity.
type Object int

const (
	ObjectMapPlane Object = iota
	ObjectArrow
)

func (o Object) String() string {
	switch o {
	case ObjectMapPlane:
		return "map-plane"
	case ObjectArrow:
		return "arrow"
	}
	return "unknown"
}

// Property names a facet of an Object.
type Property int

const (
	Position Property = iota
	Scale
	Angle
	AnglePerspective
	SwitchPerspective
)

func (p Property) String() string {
	switch p {
	case Position:
		return "position"
	case Scale:
		return "scale"
	case Angle:
		return "angle"
	case AnglePerspective:
		return "angle-perspective"
	case SwitchPerspective:
		return "switch-perspective"
	}
	return "unknown"
}

// Type is the declared kind of an Animation, used by FinishTypeAnimations.
type Type int

const (
	Sequence Type = iota
	Parallel
	MapLinear
	MapScale
	MapFollow
	MapPerspective
	Arrow
	KineticScroll
)

func (t Type) String() string {
	switch t {
	case Sequence:
		return "sequence"
	case Parallel:
		return "parallel"
	case MapLinear:
		return "map-linear"
	case MapScale:
		return "map-scale"
	case MapFollow:
		return "map-follow"
	case MapPerspective:
		return "map-perspective"
	case Arrow:
		return "arrow"
	case KineticScroll:
		return "kinetic-scroll"
	}
	return "unknown"
}

// An Animation changes one or more (Object, Property) pairs over time.
// Implementations are supplied by callers; the System only drives them.
type Animation interface {
	Type() Type

	// Objects returns every object the animation affects.
	Objects() []Object
	// Properties returns the properties animated for object.
	Properties(object Object) []Property
	HasObject(object Object) bool
	HasProperty(object Object, property Property) bool
	// GetProperty returns the current value of the pair, if the animation
	// defines one right now.
	GetProperty(object Object, property Property) (Value, bool)

	CouldBeBlended() bool
	CouldBeBlendedWith(other Animation) bool
	CouldBeInterrupted() bool
	// InterruptedOnCombine reports whether any combine into the animation's
	// group interrupts it, regardless of compatibility.
	InterruptedOnCombine() bool

	OnStart()
	OnFinish()
	// Advance moves the animation forward by elapsedSeconds.
	Advance(elapsedSeconds float64)
	IsFinished() bool
	Interrupt()
	// Finish snaps the animation to its logical end state.
	Finish()
}
