package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEasing(t *testing.T) {
	f, ok := Easing("Linear")
	assert.True(t, ok)
	assert.InDelta(t, 0.25, f(0.25), 1e-9)

	f, ok = Easing("")
	assert.True(t, ok)
	assert.InDelta(t, 0.5, f(0.5), 1e-9)

	f, ok = Easing("NoSuchCurve")
	assert.False(t, ok)
	assert.InDelta(t, 1.0, f(1), 1e-9)
}

func TestLerpAngle_ShortArc(t *testing.T) {
	from := 350 * math.Pi / 180
	to := 10 * math.Pi / 180

	mid := LerpAngle(from, to, 0.5)
	assert.InDelta(t, 0.0, math.Remainder(mid, 2*math.Pi), 1e-9)
	assert.InDelta(t, 4.0, Lerp(2, 6, 0.5), 1e-9)
}
