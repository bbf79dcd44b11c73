package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every axis
type Cube struct {
	shapeBase
}

// NewCube creates a cube with the default material
func NewCube() *Cube {
	return &Cube{shapeBase: newShapeBase()}
}

// LocalIntersect uses the slab method: the ray hits when the largest
// per-axis entry is not beyond the smallest per-axis exit
func (c *Cube) LocalIntersect(ray core.Ray) Intersections {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := max(xtMin, ytMin, ztMin)
	tMax := min(xtMax, ytMax, ztMax)

	// NaN appears when the ray lies exactly in a face plane while parallel to it
	if tMin > tMax || math.IsNaN(tMin) || math.IsNaN(tMax) {
		return nil
	}
	return Intersections{NewIntersection(tMin, c), NewIntersection(tMax, c)}
}

// checkAxis returns where the ray enters and leaves the slab [-1, 1] on
// one axis. A direction near zero sends both to infinity with the sign of
// the numerator.
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// LocalNormalAt picks the face whose axis has the largest magnitude
func (c *Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	absX, absY, absZ := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := max(absX, absY, absZ)

	switch maxc {
	case absX:
		return core.Vector(point.X, 0, 0)
	case absY:
		return core.Vector(0, point.Y, 0)
	}
	return core.Vector(0, 0, point.Z)
}
