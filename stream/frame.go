package stream

import (
	"encoding/binary"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/mapanim/animation"
)

const frameVersion = 1

const (
	flagPerspective = 1 << iota
	flagArrow
	flagAnimating
)

// Frame is the view state handed to the renderer for one tick.
type Frame struct {
	Center           animation.Point    `json:"center"`
	Angle            float64            `json:"angle"`
	Scale            float64            `json:"scale"`
	Perspective      bool               `json:"perspective"`
	PerspectiveAngle float64            `json:"perspectiveAngle"`
	HasArrow         bool               `json:"hasArrow"`
	Arrow            animation.Point    `json:"arrow"`
	ArrowAngle       float64            `json:"arrowAngle"`
	Animating        bool               `json:"animating"`
	Bounds           [4]animation.Point `json:"bounds"`
	MarkerColour     colorful.Color     `json:"-"`
	Marker           string             `json:"marker"`
}

// MapState returns the map part of the frame, the starting point for the
// next map animation.
func (f *Frame) MapState() MapState {
	return MapState{Position: f.Center, Scale: f.Scale, Angle: f.Angle}
}

// MarshalBinary converts a Frame into little-endian binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, 2+8*8+1+3)
	binary.LittleEndian.PutUint16(data, frameVersion)
	for _, v := range []float64{
		f.Center.X, f.Center.Y, f.Angle, f.Scale,
		f.PerspectiveAngle, f.Arrow.X, f.Arrow.Y, f.ArrowAngle,
	} {
		data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
	}

	var flags byte
	if f.Perspective {
		flags |= flagPerspective
	}
	if f.HasArrow {
		flags |= flagArrow
	}
	if f.Animating {
		flags |= flagAnimating
	}
	r, g, b := f.MarkerColour.Clamped().RGB255()
	data = append(data, flags, r, g, b)

	return data, nil
}
