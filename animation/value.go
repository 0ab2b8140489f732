package animation

// ValueKind discriminates the payload carried by a Value.
type ValueKind int

const (
	// ValueScalar carries a single float64 (scale, angle, perspective angle).
	ValueScalar ValueKind = iota
	// ValuePoint carries a 2D point (position).
	ValuePoint
	// ValuePerspective carries a PerspectiveParams bundle. These are never averaged.
	ValuePerspective
)

func (k ValueKind) String() string {
	switch k {
	case ValueScalar:
		return "scalar"
	case ValuePoint:
		return "point"
	case ValuePerspective:
		return "perspective"
	}
	return "unknown"
}

// Point is a position in global map coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul scales both components of p by k.
func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// PerspectiveParams describes a switch into or out of 3D perspective.
type PerspectiveParams struct {
	Enable     bool    `json:"enable"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	AngleFOV   float64 `json:"angleFOV"`
	IsAuto     bool    `json:"isAuto"`
}

// Value is a single unit of animatable state. Only the field selected by Kind
// is meaningful.
type Value struct {
	Kind        ValueKind
	Scalar      float64
	Point       Point
	Perspective PerspectiveParams
}

// ScalarValue wraps v in a Value.
func ScalarValue(v float64) Value {
	return Value{Kind: ValueScalar, Scalar: v}
}

// PointValue wraps p in a Value.
func PointValue(p Point) Value {
	return Value{Kind: ValuePoint, Point: p}
}

// PerspectiveValue wraps params in a Value.
func PerspectiveValue(params PerspectiveParams) Value {
	return Value{Kind: ValuePerspective, Perspective: params}
}
