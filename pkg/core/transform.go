package core

import "math"

// Translation returns a 4x4 matrix moving points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity4()
	m.Set(0, 3, x)
	m.Set(1, 3, y)
	m.Set(2, 3, z)
	return m
}

// Scaling returns a 4x4 matrix scaling each axis
func Scaling(x, y, z float64) Matrix {
	m := Identity4()
	m.Set(0, 0, x)
	m.Set(1, 1, y)
	m.Set(2, 2, z)
	return m
}

// RotationX returns a left-handed rotation around the x axis
func RotationX(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return NewMatrix([][]float64{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationY returns a left-handed rotation around the y axis
func RotationY(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return NewMatrix([][]float64{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationZ returns a left-handed rotation around the z axis
func RotationZ(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return NewMatrix([][]float64{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shearing returns a shear where each component moves in proportion to
// the other two, e.g. xy moves x in proportion to y
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix([][]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// ViewTransform orients the world relative to an eye at from looking at to.
// The rows of the orientation are left, true up and -forward, composed
// with a translation by -from.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrix([][]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}

// Chain composes transforms in the order they should be applied, so
// Chain(a, b, c) == c * b * a
func Chain(transforms ...Matrix) Matrix {
	result := Identity4()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}

// Translate applies a translation after m
func (m Matrix) Translate(x, y, z float64) Matrix {
	return Translation(x, y, z).Multiply(m)
}

// Scale applies a scaling after m
func (m Matrix) Scale(x, y, z float64) Matrix {
	return Scaling(x, y, z).Multiply(m)
}

// RotateX applies a rotation around x after m
func (m Matrix) RotateX(radians float64) Matrix {
	return RotationX(radians).Multiply(m)
}

// RotateY applies a rotation around y after m
func (m Matrix) RotateY(radians float64) Matrix {
	return RotationY(radians).Multiply(m)
}

// RotateZ applies a rotation around z after m
func (m Matrix) RotateZ(radians float64) Matrix {
	return RotationZ(radians).Multiply(m)
}

// Shear applies a shearing after m
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}
