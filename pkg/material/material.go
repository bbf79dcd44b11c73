package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Refractive indices of common media
const (
	Vacuum     = 1.0
	Air        = 1.00029
	Water      = 1.333
	Glass      = 1.5
	CrownGlass = 1.52
	Diamond    = 2.417
)

// Material describes surface appearance under the Phong model plus the
// reflective and refractive terms used by the recursive shader.
// Materials are values; a shape owns its own copy. Pattern is a shared
// reference and must not be mutated while rendering.
type Material struct {
	Color           core.Tuple
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 = matte, 1 = perfect mirror
	Transparency    float64 // 0 = opaque
	RefractiveIndex float64
	Pattern         Pattern // optional, overrides Color
}

// DefaultMaterial returns a white, opaque, non-reflective material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		RefractiveIndex: Vacuum,
	}
}

// NewGlass returns a fully transparent material with the index of glass
func NewGlass() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = Glass
	return m
}

// NewMirror returns a dark, fully reflective material
func NewMirror() Material {
	m := DefaultMaterial()
	m.Color = core.Black
	m.Diffuse = 0.1
	m.Specular = 1.0
	m.Shininess = 300
	m.Reflective = 1.0
	return m
}

// ColorAt returns the material color at a point in object space,
// resolving the pattern if one is set
func (m *Material) ColorAt(objectPoint core.Tuple) core.Tuple {
	if m.Pattern == nil {
		return m.Color
	}
	return PatternAtObject(m.Pattern, objectPoint)
}
