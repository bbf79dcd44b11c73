package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is a double-napped cone x² + z² = y² truncated to the open
// interval (Minimum, Maximum). Closed adds end caps whose radius is |y|.
type Cone struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite, open double cone
func NewCone() *Cone {
	return &Cone{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewTruncatedCone creates a cone bounded to (minimum, maximum)
func NewTruncatedCone(minimum, maximum float64, closed bool) *Cone {
	c := NewCone()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}

// LocalIntersect tests both nappes and, when closed, both caps
func (c *Cone) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case core.FloatEqual(a, 0) && core.FloatEqual(b, 0):
		// Parallel to a nappe and through the apex: no wall hit
	case core.FloatEqual(a, 0):
		// Parallel to one nappe: a single crossing of the other
		xs = appendWithinBounds(xs, c, ray, -cc/(2*b), c.Minimum, c.Maximum)
	default:
		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		xs = appendWithinBounds(xs, c, ray, t0, c.Minimum, c.Maximum)
		xs = appendWithinBounds(xs, c, ray, t1, c.Minimum, c.Maximum)
	}

	if c.Closed {
		xs = intersectCaps(xs, c, ray, c.Minimum, c.Maximum, math.Abs)
	}
	return xs
}

// LocalNormalAt returns a cap normal inside the cap radius near either
// end, otherwise the wall normal, whose y component points away from the
// apex
func (c *Cone) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	capRadius2 := point.Y * point.Y

	if dist < capRadius2 && point.Y >= c.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if dist < capRadius2 && point.Y <= c.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.Vector(point.X, y, point.Z)
}
