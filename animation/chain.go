package animation

// member is the handle a group keeps for an animation. live is cleared the
// moment the animation leaves its group, so snapshots taken before a
// notification pass can tell that a sibling went away in the meantime.
type member struct {
	anim Animation
	live bool
}

// group is a set of animations that run together. Only the group at the front
// of the chain is running.
type group struct {
	members []*member
	started bool
}

func newGroup(a Animation) *group {
	g := new(group)
	g.add(a)
	return g
}

func (g *group) add(a Animation) *member {
	m := &member{anim: a, live: true}
	g.members = append(g.members, m)
	return m
}

func (g *group) empty() bool {
	return len(g.members) == 0
}

// snapshot copies the member list so callers can notify animations that may
// mutate the group.
func (g *group) snapshot() []*member {
	return append([]*member(nil), g.members...)
}

// collect returns, in order, the live members matching predicate.
func (g *group) collect(predicate func(Animation) bool) []*member {
	var out []*member
	for _, m := range g.members {
		if m.live && predicate(m.anim) {
			out = append(out, m)
		}
	}
	return out
}

// remove drops the given members, keeping the relative order of the rest.
func (g *group) remove(victims []*member) {
	if len(victims) == 0 {
		return
	}
	for _, m := range victims {
		m.live = false
	}
	kept := g.members[:0]
	for _, m := range g.members {
		if m.live {
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(g.members); i++ {
		g.members[i] = nil
	}
	g.members = kept
}
