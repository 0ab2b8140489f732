package animation

import "math"

// Screen is the view the renderer currently shows.
type Screen struct {
	Position    Point
	Scale       float64
	Angle       float64
	PixelWidth  float64
	PixelHeight float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Center returns the middle of r.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Offset moves r by d.
func (r Rect) Offset(d Point) Rect {
	return Rect{MinX: r.MinX + d.X, MinY: r.MinY + d.Y, MaxX: r.MaxX + d.X, MaxY: r.MaxY + d.Y}
}

// Scale multiplies every coordinate of r by k.
func (r Rect) Scale(k float64) Rect {
	return Rect{MinX: r.MinX * k, MinY: r.MinY * k, MaxX: r.MaxX * k, MaxY: r.MaxY * k}
}

// AnyRect is a rectangle rotated by Angle around its Center. Local is
// expressed relative to Center.
type AnyRect struct {
	Center Point
	Angle  float64
	Local  Rect
}

// Corners returns the four global corners of r, counter-clockwise from the
// local minimum.
func (r AnyRect) Corners() [4]Point {
	sin, cos := math.Sincos(r.Angle)
	rotate := func(x, y float64) Point {
		return Point{X: r.Center.X + x*cos - y*sin, Y: r.Center.Y + x*sin + y*cos}
	}
	return [4]Point{
		rotate(r.Local.MinX, r.Local.MinY),
		rotate(r.Local.MaxX, r.Local.MinY),
		rotate(r.Local.MaxX, r.Local.MaxY),
		rotate(r.Local.MinX, r.Local.MaxY),
	}
}

// GetRect returns the view rectangle for this frame: the current screen with
// its scale, angle and position replaced by animated map-plane values where
// any are available. The screen is remembered as the last screen.
func (s *System) GetRect(current Screen) AnyRect {
	s.lastScreen = current

	scale := current.Scale
	angle := current.Angle
	pos := current.Position

	if v, ok := s.GetProperty(ObjectMapPlane, Scale); ok {
		scale = v.Scalar
	}
	if v, ok := s.GetProperty(ObjectMapPlane, Angle); ok {
		angle = v.Scalar
	}
	if v, ok := s.GetProperty(ObjectMapPlane, Position); ok {
		pos = v.Point
	}

	local := Rect{MaxX: current.PixelWidth, MaxY: current.PixelHeight}
	local = local.Offset(local.Center().Mul(-1)).Scale(scale)
	return AnyRect{Center: pos, Angle: angle, Local: local}
}

// LastScreen returns the screen passed to the latest GetRect call.
func (s *System) LastScreen() Screen {
	return s.lastScreen
}

// GetPerspectiveAngle returns the animated perspective angle of the map plane.
func (s *System) GetPerspectiveAngle() (float64, bool) {
	v, ok := s.GetProperty(ObjectMapPlane, AnglePerspective)
	return v.Scalar, ok
}

// SwitchPerspective returns the pending perspective switch of the map plane.
func (s *System) SwitchPerspective() (PerspectiveParams, bool) {
	v, ok := s.GetProperty(ObjectMapPlane, SwitchPerspective)
	return v.Perspective, ok
}

// GetArrowPosition returns the animated position of the direction arrow.
func (s *System) GetArrowPosition() (Point, bool) {
	v, ok := s.GetProperty(ObjectArrow, Position)
	return v.Point, ok
}

// GetArrowAngle returns the animated heading of the direction arrow.
func (s *System) GetArrowAngle() (float64, bool) {
	v, ok := s.GetProperty(ObjectArrow, Angle)
	return v.Scalar, ok
}
