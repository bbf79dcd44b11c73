package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// shapeBase holds the state shared by every shape: its transform with
// cached inverses, its own material, and the group it belongs to.
type shapeBase struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	parent           *Group
}

func newShapeBase() shapeBase {
	return shapeBase{
		transform:        core.Identity4(),
		inverse:          core.Identity4(),
		inverseTranspose: core.Identity4(),
		material:         material.DefaultMaterial(),
	}
}

func (b *shapeBase) base() *shapeBase {
	return b
}

// Transform returns the object-to-parent transform
func (b *shapeBase) Transform() core.Matrix {
	return b.transform
}

// InverseTransform returns the cached parent-to-object transform
func (b *shapeBase) InverseTransform() core.Matrix {
	return b.inverse
}

// SetTransform replaces the transform and refreshes the cached inverses.
// A singular matrix leaves NaN/Inf in the cache; callers building shapes
// from untrusted input should check with Matrix.TryInverse first.
func (b *shapeBase) SetTransform(m core.Matrix) {
	b.transform = m
	b.inverse = m.Inverse()
	b.inverseTranspose = b.inverse.Transpose()
}

// Material returns the shape's own material, which may be modified in place
func (b *shapeBase) Material() *material.Material {
	return &b.material
}

// SetMaterial copies m into the shape
func (b *shapeBase) SetMaterial(m material.Material) {
	b.material = m
}

// Parent returns the group containing the shape, or nil at the top level
func (b *shapeBase) Parent() *Group {
	return b.parent
}

// Intersect transforms a world ray into object space and intersects it
// with the shape
func Intersect(s Shape, ray core.Ray) Intersections {
	return s.LocalIntersect(ray.Transform(s.InverseTransform()))
}

// NormalAt returns the world-space unit normal at a world-space point,
// accounting for every enclosing group
func NormalAt(s Shape, worldPoint core.Tuple) core.Tuple {
	localPoint := WorldToObject(s, worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	return NormalToWorld(s, localNormal)
}

// WorldToObject converts a world-space point into the shape's object
// space by applying each ancestor's inverse from the root down
func WorldToObject(s Shape, point core.Tuple) core.Tuple {
	if parent := s.Parent(); parent != nil {
		point = WorldToObject(parent, point)
	}
	return s.InverseTransform().MultiplyTuple(point)
}

// NormalToWorld converts an object-space normal to world space, walking
// from the shape up to the root
func NormalToWorld(s Shape, normal core.Tuple) core.Tuple {
	normal = s.base().inverseTranspose.MultiplyTuple(normal)
	normal.W = 0
	normal = normal.Normalize()

	if parent := s.Parent(); parent != nil {
		normal = NormalToWorld(parent, normal)
	}
	return normal
}
