package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultMaxDepth is the reflection/refraction bounce limit used when none is configured
const DefaultMaxDepth = 5

// WhittedIntegrator shades rays with Phong lighting, hard shadows and
// recursive mirror reflection and refraction. Rays that escape the scene
// are black.
type WhittedIntegrator struct {
	MaxDepth int
}

// NewWhittedIntegrator creates an integrator that follows at most maxDepth
// secondary bounces. A negative depth falls back to DefaultMaxDepth.
func NewWhittedIntegrator(maxDepth int) *WhittedIntegrator {
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}
	return &WhittedIntegrator{MaxDepth: maxDepth}
}

// RayColor traces a camera ray through the scene's world
func (wi *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Tuple {
	return wi.ColorAt(s.World, ray, wi.MaxDepth)
}

// ColorAt returns the color seen along ray, following at most remaining bounces
func (wi *WhittedIntegrator) ColorAt(w *scene.World, ray core.Ray, remaining int) core.Tuple {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	return wi.ShadeHit(w, PrepareComputations(hit, ray, xs), remaining)
}

// ShadeHit combines surface lighting with reflected and refracted light.
// Surfaces that are both reflective and transparent weight the two by the
// Schlick reflectance.
func (wi *WhittedIntegrator) ShadeHit(w *scene.World, comps Computations, remaining int) core.Tuple {
	m := comps.Object.Material()

	surface := core.Black
	if w.Light != nil {
		shadowed := wi.IsShadowed(w, comps.OverPoint)
		surface = lights.Lighting(m, comps.Object, *w.Light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)
	}

	reflected := wi.ReflectedColor(w, comps, remaining)
	refracted := wi.RefractedColor(w, comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether something sits between point and the light.
// A world without a light leaves every point in shadow.
func (wi *WhittedIntegrator) IsShadowed(w *scene.World, point core.Tuple) bool {
	if w.Light == nil {
		return true
	}

	v := w.Light.Position.Subtract(point)
	distance := v.Length()
	ray := core.NewRay(point, v.Normalize())

	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.T < distance
}

// ReflectedColor follows the mirror ray from the hit
func (wi *WhittedIntegrator) ReflectedColor(w *scene.World, comps Computations, remaining int) core.Tuple {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective <= 0 {
		return core.Black
	}

	ray := core.NewRay(comps.OverPoint, comps.ReflectV)
	return wi.ColorAt(w, ray, remaining-1).Multiply(reflective)
}

// RefractedColor follows the transmitted ray through the surface using
// Snell's law. Total internal reflection transmits nothing.
func (wi *WhittedIntegrator) RefractedColor(w *scene.World, comps Computations, remaining int) core.Tuple {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency <= 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).Subtract(comps.EyeV.Multiply(nRatio))

	ray := core.NewRay(comps.UnderPoint, direction)
	return wi.ColorAt(w, ray, remaining-1).Multiply(transparency)
}

// Schlick approximates the Fresnel reflectance at the hit
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
