package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane (y = 0) in object space
type Plane struct {
	shapeBase
}

// NewPlane creates a plane with the default material
func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

// LocalIntersect returns the single crossing of y = 0. Rays parallel to the
// plane miss it, including rays lying in the plane.
func (p *Plane) LocalIntersect(ray core.Ray) Intersections {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{NewIntersection(t, p)}
}

// LocalNormalAt is constant +y
func (p *Plane) LocalNormalAt(core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}
