package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Shapes work in their own object space; Intersect and NormalAt handle
// the conversion from world space. The interface is closed to this
// package: every shape embeds shapeBase.
type Shape interface {
	// LocalIntersect returns every intersection of an object-space ray,
	// including those behind the origin
	LocalIntersect(ray core.Ray) Intersections
	// LocalNormalAt returns the object-space normal at an object-space point
	LocalNormalAt(point core.Tuple) core.Tuple

	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix)
	Material() *material.Material
	SetMaterial(m material.Material)
	Parent() *Group

	base() *shapeBase
}
