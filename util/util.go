package util

import (
	"math"

	"github.com/fogleman/ease"
)

// DefaultEasing is used when no easing, or an unknown one, is requested.
const DefaultEasing = "InOutQuad"

var easings = map[string]func(float64) float64{
	"Linear":     ease.Linear,
	"InQuad":     ease.InQuad,
	"OutQuad":    ease.OutQuad,
	"InOutQuad":  ease.InOutQuad,
	"InCubic":    ease.InCubic,
	"OutCubic":   ease.OutCubic,
	"InOutCubic": ease.InOutCubic,
	"InQuart":    ease.InQuart,
	"OutQuart":   ease.OutQuart,
	"InOutQuart": ease.InOutQuart,
	"InSine":     ease.InSine,
	"OutSine":    ease.OutSine,
	"InOutSine":  ease.InOutSine,
}

// Easing looks up an easing curve by name. The second result is false when
// the name is unknown and the default curve was returned instead.
func Easing(name string) (func(float64) float64, bool) {
	if name == "" {
		return easings[DefaultEasing], true
	}
	f, ok := easings[name]
	if !ok {
		return easings[DefaultEasing], false
	}
	return f, true
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpAngle interpolates between two angles in radians along the shorter arc.
func LerpAngle(a, b, t float64) float64 {
	d := math.Remainder(b-a, 2*math.Pi)
	return a + d*t
}
