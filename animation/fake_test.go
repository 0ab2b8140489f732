package animation_test

import (
	"fmt"

	"github.com/matt-g-everett/mapanim/animation"
)

type pair struct {
	object   animation.Object
	property animation.Property
}

// recorder collects lifecycle notifications from every fake in a test.
type recorder struct {
	events []string
}

func (r *recorder) log(name, event string) {
	r.events = append(r.events, fmt.Sprintf("%s:%s", name, event))
}

func (r *recorder) count(name, event string) int {
	want := fmt.Sprintf("%s:%s", name, event)
	n := 0
	for _, e := range r.events {
		if e == want {
			n++
		}
	}
	return n
}

// fakeAnimation is a scriptable Animation. Values are fixed until Advance
// reaches duration, at which point end values (if any) take over.
type fakeAnimation struct {
	name string
	rec  *recorder
	typ  animation.Type

	order  []pair
	values map[pair]animation.Value
	end    map[pair]animation.Value

	blendable            bool
	interruptible        bool
	interruptedOnCombine bool
	incompatible         map[animation.Animation]bool
	compatibleWithAll    bool

	duration float64
	elapsed  float64
	finished bool

	onStart func()
}

func newFake(rec *recorder, name string) *fakeAnimation {
	return &fakeAnimation{
		name:              name,
		rec:               rec,
		typ:               animation.MapLinear,
		values:            make(map[pair]animation.Value),
		end:               make(map[pair]animation.Value),
		blendable:         true,
		interruptible:     true,
		incompatible:      make(map[animation.Animation]bool),
		compatibleWithAll: true,
		duration:          1,
	}
}

func (f *fakeAnimation) with(object animation.Object, property animation.Property, v animation.Value) *fakeAnimation {
	p := pair{object, property}
	if _, ok := f.values[p]; !ok {
		f.order = append(f.order, p)
	}
	f.values[p] = v
	return f
}

func (f *fakeAnimation) endWith(object animation.Object, property animation.Property, v animation.Value) *fakeAnimation {
	f.end[pair{object, property}] = v
	return f
}

// conflictsWith makes f refuse to blend with other.
func (f *fakeAnimation) conflictsWith(other animation.Animation) *fakeAnimation {
	f.incompatible[other] = true
	return f
}

func (f *fakeAnimation) snapToEnd() {
	for p, v := range f.end {
		f.values[p] = v
	}
	f.finished = true
}

func (f *fakeAnimation) Type() animation.Type { return f.typ }

func (f *fakeAnimation) Objects() []animation.Object {
	var out []animation.Object
	seen := make(map[animation.Object]bool)
	for _, p := range f.order {
		if !seen[p.object] {
			seen[p.object] = true
			out = append(out, p.object)
		}
	}
	return out
}

func (f *fakeAnimation) Properties(object animation.Object) []animation.Property {
	var out []animation.Property
	for _, p := range f.order {
		if p.object == object {
			out = append(out, p.property)
		}
	}
	return out
}

func (f *fakeAnimation) HasObject(object animation.Object) bool {
	for _, p := range f.order {
		if p.object == object {
			return true
		}
	}
	return false
}

func (f *fakeAnimation) HasProperty(object animation.Object, property animation.Property) bool {
	_, ok := f.values[pair{object, property}]
	return ok
}

func (f *fakeAnimation) GetProperty(object animation.Object, property animation.Property) (animation.Value, bool) {
	v, ok := f.values[pair{object, property}]
	return v, ok
}

func (f *fakeAnimation) CouldBeBlended() bool { return f.blendable }

func (f *fakeAnimation) CouldBeBlendedWith(other animation.Animation) bool {
	if f.incompatible[other] {
		return false
	}
	if o, ok := other.(*fakeAnimation); ok && o.incompatible[f] {
		return false
	}
	return f.compatibleWithAll
}

func (f *fakeAnimation) CouldBeInterrupted() bool   { return f.interruptible }
func (f *fakeAnimation) InterruptedOnCombine() bool { return f.interruptedOnCombine }

func (f *fakeAnimation) OnStart() {
	f.rec.log(f.name, "start")
	if f.onStart != nil {
		f.onStart()
	}
}

func (f *fakeAnimation) OnFinish() { f.rec.log(f.name, "finish") }

func (f *fakeAnimation) Advance(elapsedSeconds float64) {
	f.rec.log(f.name, "advance")
	f.elapsed += elapsedSeconds
	if f.elapsed >= f.duration {
		f.snapToEnd()
	}
}

func (f *fakeAnimation) IsFinished() bool { return f.finished }

func (f *fakeAnimation) Interrupt() { f.rec.log(f.name, "interrupt") }

func (f *fakeAnimation) Finish() {
	f.rec.log(f.name, "rewind")
	f.snapToEnd()
}
