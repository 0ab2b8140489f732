package animation

// Blender folds simultaneous contributions to one property into a single
// value. Scalars and points are averaged; perspective bundles replace the
// aggregate outright.
type Blender struct {
	value   Value
	counter int
}

// Blend folds v into the aggregate.
func (b *Blender) Blend(v Value) {
	if v.Kind == ValuePerspective {
		b.value = v
		b.counter = 1
		return
	}

	if b.counter != 0 {
		// A different kind discards what was accumulated so far.
		if b.value.Kind != v.Kind {
			b.value = v
			b.counter = 1
			return
		}

		switch v.Kind {
		case ValueScalar:
			b.value.Scalar += v.Scalar
		case ValuePoint:
			b.value.Point = b.value.Point.Add(v.Point)
		}
	} else {
		b.value = v
	}
	b.counter++
}

// Finish returns the mean of the folded contributions and resets the counter.
func (b *Blender) Finish() Value {
	if b.counter == 0 {
		return b.value
	}

	scalar := 1.0 / float64(b.counter)
	b.counter = 0
	switch b.value.Kind {
	case ValueScalar:
		b.value.Scalar *= scalar
	case ValuePoint:
		b.value.Point = b.value.Point.Mul(scalar)
	}
	return b.value
}

// IsEmpty reports whether nothing has been folded since the last Finish.
func (b *Blender) IsEmpty() bool {
	return b.counter == 0
}
