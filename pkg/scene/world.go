package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// World is the set of shapes and the single light being rendered.
// It is built before rendering and only read afterwards.
type World struct {
	Objects []geometry.Shape
	Light   *lights.PointLight // nil means an unlit world
}

// NewWorld creates an empty world without a light
func NewWorld() *World {
	return &World{}
}

// Add appends top-level shapes
func (w *World) Add(shapes ...geometry.Shape) {
	w.Objects = append(w.Objects, shapes...)
}

// SetLight replaces the world's light
func (w *World) SetLight(light lights.PointLight) {
	w.Light = &light
}

// Contains reports whether s is in the world, either at the top level or
// inside a group
func (w *World) Contains(s geometry.Shape) bool {
	for _, obj := range w.Objects {
		if containsShape(obj, s) {
			return true
		}
	}
	return false
}

func containsShape(root, s geometry.Shape) bool {
	if root == s {
		return true
	}
	if g, ok := root.(*geometry.Group); ok {
		for _, child := range g.Children() {
			if containsShape(child, s) {
				return true
			}
		}
	}
	return false
}

// Intersect returns every intersection of the ray with the world's
// objects, sorted by T
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, geometry.Intersect(obj, ray)...)
	}
	xs.Sort()
	return xs
}
