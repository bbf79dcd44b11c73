package core

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for float comparisons and for nudging
// hit points off a surface.
const Epsilon = 1e-4

// FloatEqual reports whether a and b differ by less than Epsilon
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a 4-component value used for points (W=1), vectors (W=0) and
// colors (X,Y,Z as red, green, blue; W=0)
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from raw components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a point (W=1)
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a vector (W=0)
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Color creates a color from red, green and blue components
func Color(r, g, b float64) Tuple {
	return Tuple{X: r, Y: g, Z: b}
}

// Black is the background color
var Black = Color(0, 0, 0)

// White is full intensity on every channel
var White = Color(1, 1, 1)

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the component-wise sum. Point + vector yields a point.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference. Point - point yields a vector.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the negation of every component
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// MultiplyVec returns the component-wise (Hadamard) product, used to blend colors
func (t Tuple) MultiplyVec(other Tuple) Tuple {
	return Tuple{t.X * other.X, t.Y * other.Y, t.Z * other.Z, t.W * other.W}
}

// Length returns the magnitude of the tuple
func (t Tuple) Length() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit vector in the same direction. The result is
// always a vector; a zero-length input yields NaN components.
func (t Tuple) Normalize() Tuple {
	v := Vector(t.X, t.Y, t.Z)
	length := v.Length()
	return Tuple{v.X / length, v.Y / length, v.Z / length, 0}
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect reflects the vector around normal: in - normal * 2 * dot(in, normal)
func (t Tuple) Reflect(normal Tuple) Tuple {
	r := t.Subtract(normal.Multiply(2 * t.Dot(normal)))
	r.W = 0
	return r
}

// Clamp returns a color with components clamped to [min, max]
func (t Tuple) Clamp(minVal, maxVal float64) Tuple {
	return Tuple{
		X: max(minVal, min(maxVal, t.X)),
		Y: max(minVal, min(maxVal, t.Y)),
		Z: max(minVal, min(maxVal, t.Z)),
		W: t.W,
	}
}

// Luminance returns the perceptual luminance of an RGB color
func (t Tuple) Luminance() float64 {
	return 0.299*t.X + 0.587*t.Y + 0.114*t.Z
}

// Equals reports whether every component is within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return FloatEqual(t.X, other.X) &&
		FloatEqual(t.Y, other.Y) &&
		FloatEqual(t.Z, other.Z) &&
		FloatEqual(t.W, other.W)
}

func (t Tuple) String() string {
	switch t.W {
	case 1:
		return fmt.Sprintf("point(%.5g, %.5g, %.5g)", t.X, t.Y, t.Z)
	case 0:
		return fmt.Sprintf("vector(%.5g, %.5g, %.5g)", t.X, t.Y, t.Z)
	}
	return fmt.Sprintf("tuple(%.5g, %.5g, %.5g, %.5g)", t.X, t.Y, t.Z, t.W)
}
