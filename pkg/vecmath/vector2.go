package vecmath

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultMagnitude is the length FromAngle gives its result
const DefaultMagnitude = 1.0

// Vec2 represents an immutable 2D vector or point
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// New creates a Vec2 from its components
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors
func Add(a, b Vec2) Vec2 {
	return FromR2(r2.Add(a.ToR2(), b.ToR2()))
}

// Subtract returns the difference between two vectors
func Subtract(a, b Vec2) Vec2 {
	return FromR2(r2.Sub(a.ToR2(), b.ToR2()))
}

// Multiply returns the vector scaled by a scalar
func Multiply(v Vec2, s float64) Vec2 {
	return FromR2(r2.Scale(s, v.ToR2()))
}

// Dot returns the dot product of two vectors
func Dot(a, b Vec2) float64 {
	return r2.Dot(a.ToR2(), b.ToR2())
}

// Magnitude returns the Euclidean length sqrt(x*x + y*y) of the vector.
// A vector whose squared length underflows has magnitude 0.
func Magnitude(v Vec2) float64 {
	return math.Sqrt(r2.Norm2(v.ToR2()))
}

// Normalize returns a unit vector in the same direction.
// A vector with magnitude exactly 0 normalizes to the zero vector.
func Normalize(v Vec2) Vec2 {
	mag := Magnitude(v)
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}

// Distance returns the distance between two points
func Distance(a, b Vec2) float64 {
	return Magnitude(Subtract(a, b))
}

// Reflect mirrors incident across the surface with the given normal.
// The normal does not need to be unit length; a zero normal leaves incident
// unchanged.
func Reflect(incident, normal Vec2) Vec2 {
	n := Normalize(normal)
	return Subtract(incident, Multiply(n, 2*Dot(incident, n)))
}

// Angle returns the angle of the vector from the positive x-axis in radians,
// in the range (-π, π]. The zero vector has angle 0.
func Angle(v Vec2) float64 {
	a := math.Atan2(v.Y, v.X)
	if a == -math.Pi {
		// atan2(-0, x<0) lands on the excluded end of the range
		return math.Pi
	}
	return a
}

// FromAngle returns the vector of length DefaultMagnitude pointing at angle
func FromAngle(angle float64) Vec2 {
	return FromAngleMagnitude(angle, DefaultMagnitude)
}

// FromAngleMagnitude returns the vector of the given length pointing at angle
func FromAngleMagnitude(angle, magnitude float64) Vec2 {
	return Vec2{
		X: math.Cos(angle) * magnitude,
		Y: math.Sin(angle) * magnitude,
	}
}

// Cross returns the 2D cross product, the z-component of the 3D cross
// product with z=0
func Cross(a, b Vec2) float64 {
	return r2.Cross(a.ToR2(), b.ToR2())
}

// Lerp interpolates linearly between a (t=0) and b (t=1)
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Rotate returns v rotated counter-clockwise by angle radians around the origin
func Rotate(v Vec2, angle float64) Vec2 {
	return FromR2(r2.Rotate(v.ToR2(), angle, r2.Vec{}))
}

// Add returns the sum of two vectors
func (v Vec2) Add(other Vec2) Vec2 { return Add(v, other) }

// Sub returns the difference between two vectors
func (v Vec2) Sub(other Vec2) Vec2 { return Subtract(v, other) }

// Scale returns the vector scaled by a scalar
func (v Vec2) Scale(s float64) Vec2 { return Multiply(v, s) }

// Dot returns the dot product of two vectors
func (v Vec2) Dot(other Vec2) float64 { return Dot(v, other) }

// Cross returns the 2D cross product
func (v Vec2) Cross(other Vec2) float64 { return Cross(v, other) }

// Magnitude returns the length of the vector
func (v Vec2) Magnitude() float64 { return Magnitude(v) }

// Normalize returns a unit vector in the same direction
func (v Vec2) Normalize() Vec2 { return Normalize(v) }

// Distance returns the distance between two points
func (v Vec2) Distance(other Vec2) float64 { return Distance(v, other) }

// Reflect mirrors the vector across the surface with the given normal
func (v Vec2) Reflect(normal Vec2) Vec2 { return Reflect(v, normal) }

// Angle returns the angle of the vector from the positive x-axis
func (v Vec2) Angle() float64 { return Angle(v) }

// Rotate returns the vector rotated by angle radians
func (v Vec2) Rotate(angle float64) Vec2 { return Rotate(v, angle) }

// IsZero checks if the vector is exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx reports whether both components are within epsilon of w's
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return scalar.EqualWithinAbs(v.X, w.X, epsilon) && scalar.EqualWithinAbs(v.Y, w.Y, epsilon)
}

// String formats the vector as (x, y) using the shortest exact representation
func (v Vec2) String() string {
	return Format(v, -1)
}

// Format renders the vector as (x, y) with prec digits after the decimal
// point; prec -1 uses the shortest representation that round-trips
func Format(v Vec2, prec int) string {
	return "(" + FormatScalar(v.X, prec) + ", " + FormatScalar(v.Y, prec) + ")"
}

// FormatScalar renders a float the same way Format renders a component
func FormatScalar(f float64, prec int) string {
	if prec < 0 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', prec, 64)
}
