package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is a unit sphere centred at the object-space origin
type Sphere struct {
	shapeBase
}

// NewSphere creates a unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

// NewGlassSphere creates a unit sphere with a fully transparent glass material
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.NewGlass())
	return s
}

// LocalIntersect solves |o + td|² = 1 and returns both roots, even when
// they lie behind the ray origin
func (s *Sphere) LocalIntersect(ray core.Ray) Intersections {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(core.Point(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return Intersections{NewIntersection(t1, s), NewIntersection(t2, s)}
}

// LocalNormalAt points from the centre to the surface point
func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.Point(0, 0, 0))
}
