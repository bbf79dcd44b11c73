package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Group is an ordered collection of shapes sharing a transform. It has
// no surface of its own.
type Group struct {
	shapeBase
	Name     string
	children []Shape
}

// NewGroup creates an empty group
func NewGroup(name string) *Group {
	return &Group{shapeBase: newShapeBase(), Name: name}
}

// AddChild appends s to the group and makes the group its parent. A shape
// belongs to at most one group; adding it elsewhere re-parents it.
func (g *Group) AddChild(s Shape) {
	s.base().parent = g
	g.children = append(g.children, s)
}

// Children returns the group's shapes in insertion order
func (g *Group) Children() []Shape {
	return g.children
}

// Len returns the number of direct children
func (g *Group) Len() int {
	return len(g.children)
}

// LocalIntersect intersects the ray, already in the group's space, with
// every child and returns the union sorted by T
func (g *Group) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt panics: normals are always computed on the leaf shape
// that was hit, never on a group
func (g *Group) LocalNormalAt(core.Tuple) core.Tuple {
	panic(fmt.Errorf("geometry: group %q has no surface normal: %w", g.Name, errors.ErrUnsupported))
}
