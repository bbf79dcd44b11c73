package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle is a flat triangle with cached edges and face normal
type Triangle struct {
	shapeBase
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple // P2-P1 and P3-P1
	Normal     core.Tuple
}

// NewTriangle creates a triangle from three object-space points
func NewTriangle(p1, p2, p3 core.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		shapeBase: newShapeBase(),
		P1:        p1,
		P2:        p2,
		P3:        p3,
		E1:        e1,
		E2:        e2,
		Normal:    e2.Cross(e1).Normalize(),
	}
}

// LocalIntersect uses the Möller-Trumbore algorithm
func (tr *Triangle) LocalIntersect(ray core.Ray) Intersections {
	dirCrossE2 := ray.Direction.Cross(tr.E2)
	det := tr.E1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		// Ray is parallel to the triangle plane
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(tr.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(tr.E1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * tr.E2.Dot(originCrossE1)
	return Intersections{NewIntersection(t, tr)}
}

// LocalNormalAt is the cached face normal
func (tr *Triangle) LocalNormalAt(core.Tuple) core.Tuple {
	return tr.Normal
}
