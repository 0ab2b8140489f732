package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlender_AveragesScalars(t *testing.T) {
	var b Blender
	assert.True(t, b.IsEmpty())

	b.Blend(ScalarValue(1))
	b.Blend(ScalarValue(2))
	b.Blend(ScalarValue(6))
	assert.False(t, b.IsEmpty())

	v := b.Finish()
	assert.Equal(t, ValueScalar, v.Kind)
	assert.InDelta(t, 3.0, v.Scalar, 1e-9)
	assert.True(t, b.IsEmpty())
}

func TestBlender_AveragesPoints(t *testing.T) {
	var b Blender
	b.Blend(PointValue(Point{X: 10, Y: 0}))
	b.Blend(PointValue(Point{X: 20, Y: 4}))

	v := b.Finish()
	assert.Equal(t, ValuePoint, v.Kind)
	assert.InDelta(t, 15.0, v.Point.X, 1e-9)
	assert.InDelta(t, 2.0, v.Point.Y, 1e-9)
}

func TestBlender_KindChangeResets(t *testing.T) {
	var b Blender
	b.Blend(ScalarValue(100))
	b.Blend(ScalarValue(200))
	b.Blend(PointValue(Point{X: 3, Y: 3}))
	b.Blend(PointValue(Point{X: 5, Y: 1}))

	v := b.Finish()
	assert.Equal(t, ValuePoint, v.Kind)
	assert.Equal(t, Point{X: 4, Y: 2}, v.Point)
}

func TestBlender_PerspectiveIsNeverAveraged(t *testing.T) {
	first := PerspectiveParams{Enable: true, StartAngle: 0, EndAngle: 1}
	last := PerspectiveParams{Enable: false, StartAngle: 1, EndAngle: 0, AngleFOV: 0.5}

	var b Blender
	b.Blend(ScalarValue(7))
	b.Blend(PerspectiveValue(first))
	b.Blend(PerspectiveValue(last))

	v := b.Finish()
	assert.Equal(t, ValuePerspective, v.Kind)
	assert.Equal(t, last, v.Perspective)
}

func TestBlender_ScalarAfterPerspectiveReplaces(t *testing.T) {
	var b Blender
	b.Blend(PerspectiveValue(PerspectiveParams{Enable: true}))
	b.Blend(ScalarValue(0.4))

	v := b.Finish()
	assert.Equal(t, ValueScalar, v.Kind)
	assert.InDelta(t, 0.4, v.Scalar, 1e-9)
}

func TestPropertyCache_TakeErases(t *testing.T) {
	c := make(propertyCache)
	c.put(ObjectMapPlane, Scale, ScalarValue(2))
	c.put(ObjectMapPlane, Scale, ScalarValue(3))

	assert.True(t, c.hasObject(ObjectMapPlane))
	assert.False(t, c.hasObject(ObjectArrow))

	v, ok := c.take(ObjectMapPlane, Scale)
	assert.True(t, ok)
	assert.InDelta(t, 3.0, v.Scalar, 1e-9)

	_, ok = c.take(ObjectMapPlane, Scale)
	assert.False(t, ok)
	assert.False(t, c.hasObject(ObjectMapPlane))
}
