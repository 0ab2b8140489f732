package animation

// System owns the animation chain and the property cache.
type System struct {
	chain      []*group
	cache      propertyCache
	lastScreen Screen
}

// NewSystem creates an empty System.
func NewSystem() *System {
	s := new(System)
	s.cache = make(propertyCache)
	return s
}

// CombineAnimation merges animation into the chain without disturbing
// compatible running animations. Walking the groups front to back, the first
// group that can take it gets it; incompatible interruptible members of each
// examined group are interrupted and retired along the way. An interruptible
// animation that conflicts while other groups are queued is dropped. If no
// group takes it, it is pushed as a new trailing group.
func (s *System) CombineAnimation(animation Animation) {
	for i := 0; i < len(s.chain); i++ {
		g := s.chain[i]
		couldBeBlended := animation.CouldBeBlended()

		var interrupted []*member
		for _, m := range g.members {
			if m.anim.InterruptedOnCombine() {
				interrupted = append(interrupted, m)
			} else if !m.anim.CouldBeBlendedWith(animation) {
				if !m.anim.CouldBeInterrupted() {
					couldBeBlended = false
					break
				}
				interrupted = append(interrupted, m)
			}
		}

		g.remove(interrupted)
		for _, m := range interrupted {
			m.anim.Interrupt()
			s.saveResult(m.anim)
		}

		if couldBeBlended {
			g.add(animation)
			if g.started {
				animation.OnStart()
			}
			return
		}

		queued := len(s.chain) > 1
		if g.empty() {
			// The next group is not started here; Advance, Finish or a Push
			// onto an empty chain does that.
			s.removeGroup(i)
			i--
		}

		if queued && animation.CouldBeInterrupted() {
			return
		}
	}

	s.PushAnimation(animation)
}

// PushAnimation appends animation as a new trailing group. It starts at once
// only if the chain was empty.
func (s *System) PushAnimation(animation Animation) {
	s.chain = append(s.chain, newGroup(animation))
	if len(s.chain) == 1 {
		s.startFront()
	}
}

// Advance moves every animation of the front group forward. Finished ones are
// notified, retired to the cache and removed. When the front group drains,
// the next group starts. A front group that has not been started yet is
// started before it is advanced.
func (s *System) Advance(elapsedSeconds float64) {
	if len(s.chain) == 0 {
		return
	}
	s.startFront()
	if len(s.chain) == 0 {
		return
	}

	front := s.chain[0]
	var finished []*member
	for _, m := range front.snapshot() {
		if !m.live {
			continue
		}
		m.anim.Advance(elapsedSeconds)
		if m.anim.IsFinished() {
			finished = append(finished, m)
		}
	}

	front.remove(finished)
	for _, m := range finished {
		m.anim.OnFinish()
		s.saveResult(m.anim)
	}

	s.drainFront(front)
}

// FinishAnimations force-finishes every front-group animation matching
// predicate and retires it to the cache. With rewind, each is snapped to its
// end state first. With finishAll, matching animations are also removed from
// queued groups, silently: they never ran, so nothing is retired for them.
func (s *System) FinishAnimations(predicate func(Animation) bool, rewind, finishAll bool) {
	if len(s.chain) == 0 {
		return
	}
	s.startFront()
	if len(s.chain) == 0 {
		return
	}

	front := s.chain[0]
	finished := front.collect(predicate)
	front.remove(finished)

	if finishAll {
		for i := len(s.chain) - 1; i > 0; i-- {
			g := s.chain[i]
			g.remove(g.collect(predicate))
			if g.empty() {
				s.removeGroup(i)
			}
		}
	}

	for _, m := range finished {
		if rewind {
			m.anim.Finish()
		}
		s.saveResult(m.anim)
	}

	s.drainFront(front)
}

// FinishTypeAnimations finishes the animations declaring type t.
func (s *System) FinishTypeAnimations(t Type, rewind, finishAll bool) {
	s.FinishAnimations(func(a Animation) bool {
		return a.Type() == t
	}, rewind, finishAll)
}

// FinishObjectAnimations finishes the animations affecting object.
func (s *System) FinishObjectAnimations(object Object, rewind, finishAll bool) {
	s.FinishAnimations(func(a Animation) bool {
		return a.HasObject(object)
	}, rewind, finishAll)
}

// GetProperty blends the value of the pair across the running group. If no
// running animation supplies it, the cached value of a retired animation is
// returned and erased.
func (s *System) GetProperty(object Object, property Property) (Value, bool) {
	if len(s.chain) > 0 {
		var blender Blender
		for _, m := range s.chain[0].members {
			if !m.anim.HasProperty(object, property) {
				continue
			}
			if v, ok := m.anim.GetProperty(object, property); ok {
				blender.Blend(v)
			}
		}
		if !blender.IsEmpty() {
			return blender.Finish(), true
		}
	}

	return s.cache.take(object, property)
}

// AnimationExists reports whether a running animation affects object or an
// unread cached value for it remains.
func (s *System) AnimationExists(object Object) bool {
	if len(s.chain) > 0 {
		for _, m := range s.chain[0].members {
			if m.anim.HasObject(object) {
				return true
			}
		}
	}
	return s.cache.hasObject(object)
}

// HasAnimations reports whether the chain holds any group.
func (s *System) HasAnimations() bool {
	return len(s.chain) > 0
}

// Groups returns the number of groups in the chain, the running one included.
func (s *System) Groups() int {
	return len(s.chain)
}

// FrontSize returns the number of running animations.
func (s *System) FrontSize() int {
	if len(s.chain) == 0 {
		return 0
	}
	return len(s.chain[0].members)
}

// saveResult is the only writer of the cache.
func (s *System) saveResult(a Animation) {
	for _, object := range a.Objects() {
		for _, property := range a.Properties(object) {
			if v, ok := a.GetProperty(object, property); ok {
				s.cache.put(object, property, v)
			}
		}
	}
}

// drainFront starts the next group if front is still the running group and
// has no members left. Notifications may already have reshaped the chain.
func (s *System) drainFront(front *group) {
	if len(s.chain) > 0 && s.chain[0] == front && front.empty() {
		s.startNext()
	}
}

func (s *System) removeGroup(i int) {
	copy(s.chain[i:], s.chain[i+1:])
	s.chain[len(s.chain)-1] = nil
	s.chain = s.chain[:len(s.chain)-1]
}

// startNext pops the front group and starts the new front.
func (s *System) startNext() {
	if len(s.chain) == 0 {
		return
	}
	s.removeGroup(0)
	s.startFront()
}

// startFront notifies every member of the front group once. A member removed
// by a sibling's OnStart is skipped.
func (s *System) startFront() {
	if len(s.chain) == 0 || s.chain[0].started {
		return
	}

	front := s.chain[0]
	front.started = true
	for _, m := range front.snapshot() {
		if m.live {
			m.anim.OnStart()
		}
	}
}
