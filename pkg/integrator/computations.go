package integrator

import (
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Computations holds the values needed to shade one intersection
type Computations struct {
	T          float64
	Object     geometry.Shape
	Point      core.Tuple
	OverPoint  core.Tuple // Point nudged out along the normal, origin for shadow and reflection rays
	UnderPoint core.Tuple // Point nudged in against the normal, origin for refraction rays
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool
	N1         float64 // Refractive index of the medium being left
	N2         float64 // Refractive index of the medium being entered
}

// PrepareComputations precomputes the shading state for hit. xs is the full
// sorted intersection list the hit came from and is walked to find the
// refractive indices on either side of the surface.
func PrepareComputations(hit geometry.Intersection, ray core.Ray, xs geometry.Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.At(hit.T),
		EyeV:   ray.Direction.Negate(),
	}

	comps.NormalV = geometry.NormalAt(hit.Object, comps.Point)
	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	comps.N1, comps.N2 = refractiveIndices(hit, xs)

	return comps
}

// refractiveIndices tracks which objects the ray is inside while walking xs
// up to hit. Objects enter and leave the stack on alternate crossings. If
// hit never appears in xs both indices stay at vacuum.
func refractiveIndices(hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = material.Vacuum, material.Vacuum
	var containers []geometry.Shape

	for _, i := range xs {
		if i == hit {
			n1 = topIndex(containers)
		}

		if idx := slices.Index(containers, i.Object); idx >= 0 {
			containers = slices.Delete(containers, idx, idx+1)
		} else {
			containers = append(containers, i.Object)
		}

		if i == hit {
			n2 = topIndex(containers)
			break
		}
	}
	return n1, n2
}

func topIndex(containers []geometry.Shape) float64 {
	if len(containers) == 0 {
		return material.Vacuum
	}
	return containers[len(containers)-1].Material().RefractiveIndex
}
