package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// PointLight is an infinitely small light radiating equally in every direction
type PointLight struct {
	Position  core.Tuple
	Intensity core.Tuple
}

// NewPointLight creates a point light
func NewPointLight(position, intensity core.Tuple) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Lighting shades a surface point with the Phong reflection model.
// The material color comes from its pattern when one is set, evaluated in
// object's space (object may be nil, in which case the pattern sees the
// world point). Ambient light is always present; a point in shadow gets
// nothing else. The result is not clamped.
func Lighting(m *material.Material, object geometry.Shape, light PointLight, point, eyev, normalv core.Tuple, inShadow bool) core.Tuple {
	color := m.Color
	if m.Pattern != nil {
		objectPoint := point
		if object != nil {
			objectPoint = geometry.WorldToObject(object, point)
		}
		color = material.PatternAtObject(m.Pattern, objectPoint)
	}

	effectiveColor := color.MultiplyVec(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := lightv.Negate().Reflect(normalv)
	if reflectDotEye := reflectv.Dot(eyev); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
