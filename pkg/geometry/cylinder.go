package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a unit-radius cylinder around the y axis, truncated to the
// open interval (Minimum, Maximum). Closed adds end caps.
type Cylinder struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite, open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewTruncatedCylinder creates a cylinder bounded to (minimum, maximum)
func NewTruncatedCylinder(minimum, maximum float64, closed bool) *Cylinder {
	c := NewCylinder()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}

// LocalIntersect tests the side wall and, when closed, both caps
func (c *Cylinder) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections

	// Rays parallel to the y axis can only hit the caps
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if !core.FloatEqual(a, 0) {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

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
		xs = intersectCaps(xs, c, ray, c.Minimum, c.Maximum, func(float64) float64 { return 1 })
	}
	return xs
}

// LocalNormalAt returns a cap normal inside the cap radius near either
// end, otherwise the radial wall normal
func (c *Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}
	return core.Vector(point.X, 0, point.Z)
}

// appendWithinBounds adds t if the ray's y at t lies strictly between
// minimum and maximum
func appendWithinBounds(xs Intersections, s Shape, ray core.Ray, t, minimum, maximum float64) Intersections {
	y := ray.Origin.Y + t*ray.Direction.Y
	if minimum < y && y < maximum {
		xs = append(xs, NewIntersection(t, s))
	}
	return xs
}

// intersectCaps adds hits on the planes y = minimum and y = maximum that
// fall within radiusAt(y) of the axis. Rays nearly parallel to the caps
// skip them.
func intersectCaps(xs Intersections, s Shape, ray core.Ray, minimum, maximum float64, radiusAt func(y float64) float64) Intersections {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	for _, y := range [2]float64{minimum, maximum} {
		if math.IsInf(y, 0) {
			continue
		}
		t := (y - ray.Origin.Y) / ray.Direction.Y
		x := ray.Origin.X + t*ray.Direction.X
		z := ray.Origin.Z + t*ray.Direction.Z
		r := radiusAt(y)
		if x*x+z*z <= r*r {
			xs = append(xs, NewIntersection(t, s))
		}
	}
	return xs
}
