package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewShowcaseScene creates a room with a checkered floor, a striped back
// wall, a mirror sphere and a hollow glass sphere
func NewShowcaseScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       400,
		Height:      200,
		FieldOfView: 1.152,
		From:        core.Point(-2.6, 1.5, -3.9),
		To:          core.Point(-0.6, 1, -0.8),
		Up:          core.Vector(0, 1, 0),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	w := NewWorld()
	w.SetLight(lights.NewPointLight(core.Point(-4.9, 4.9, -1), core.White))

	// Floor
	floor := geometry.NewPlane()
	floor.SetTransform(core.RotationY(0.31415))
	checkers := material.NewCheckersPattern(core.Color(0.35, 0.35, 0.35), core.Color(0.65, 0.65, 0.65))
	fm := floor.Material()
	fm.Pattern = checkers
	fm.Specular = 0
	fm.Reflective = 0.4

	// Back wall
	wall := geometry.NewPlane()
	wall.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 5)))
	stripes := material.NewStripePattern(core.Color(0.45, 0.45, 0.45), core.Color(0.55, 0.55, 0.55))
	stripes.SetTransform(core.Chain(core.Scaling(0.25, 0.25, 0.25), core.RotationY(math.Pi/2)))
	wm := wall.Material()
	wm.Pattern = stripes
	wm.Ambient = 0
	wm.Diffuse = 0.4
	wm.Specular = 0
	wm.Reflective = 0.3

	// Mirror sphere
	mirror := geometry.NewSphere()
	mirror.SetTransform(core.Chain(core.Scaling(0.6, 0.6, 0.6), core.Translation(-0.6, 0.6, 0.6)))
	mirror.SetMaterial(material.NewMirror())

	// Glass sphere with an air bubble
	glass := geometry.NewGlassSphere()
	glass.SetTransform(core.Chain(core.Scaling(0.7, 0.7, 0.7), core.Translation(0.6, 0.7, -0.6)))
	gm := glass.Material()
	gm.Color = core.Color(0.8, 0.8, 0.9)
	gm.Ambient = 0
	gm.Diffuse = 0.2
	gm.Specular = 0.9
	gm.Shininess = 300
	gm.Transparency = 0.8
	gm.Reflective = 0.9

	bubble := geometry.NewSphere()
	bubble.SetTransform(core.Chain(core.Scaling(0.35, 0.35, 0.35), core.Translation(0.6, 0.7, -0.6)))
	bm := bubble.Material()
	*bm = *gm
	bm.RefractiveIndex = material.Air

	// Gradient and ring spheres in the background
	gradient := geometry.NewSphere()
	gradient.SetTransform(core.Chain(core.Scaling(0.4, 0.4, 0.4), core.Translation(-2.2, 0.4, 1.5)))
	gp := material.NewGradientPattern(core.Color(1, 0.2, 0.1), core.Color(0.1, 0.2, 1))
	gp.SetTransform(core.Chain(core.Translation(1, 0, 0), core.Scaling(2, 1, 1)))
	gradient.Material().Pattern = gp

	ring := geometry.NewSphere()
	ring.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.8, 0.5, 1.2)))
	rp := material.NewRingPattern(core.Color(0.9, 0.8, 0.2), core.Color(0.2, 0.5, 0.2))
	rp.SetTransform(core.Scaling(0.2, 0.2, 0.2))
	ring.Material().Pattern = rp

	w.Add(floor, wall, mirror, glass, bubble, gradient, ring)

	sampling := DefaultSamplingConfig()
	sampling.SamplesPerPixel = 4
	return NewScene("showcase", w, cameraConfig, sampling)
}
