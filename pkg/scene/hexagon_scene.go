package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewHexagonScene builds a hexagon of spheres and cylinders from six
// nested groups, each rotated about y
func NewHexagonScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       400,
		Height:      200,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 2.5, -3.5),
		To:          core.Point(0, 0.4, 0),
		Up:          core.Vector(0, 1, 0),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	w := NewWorld()
	w.SetLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	floor := geometry.NewPlane()
	fm := floor.Material()
	fm.Pattern = material.NewCheckersPattern(core.Color(0.9, 0.9, 0.9), core.Color(0.2, 0.2, 0.3))
	fm.Specular = 0
	fm.Reflective = 0.2

	hex := NewHexagon()
	hex.SetTransform(core.Chain(core.RotationX(-math.Pi/6), core.Translation(0, 0.9, 0)))

	w.Add(floor, hex)
	return NewScene("hexagon", w, cameraConfig, DefaultSamplingConfig())
}

// NewHexagon returns a unit hexagon in the xz plane made of six sides
func NewHexagon() *geometry.Group {
	hex := geometry.NewGroup("hexagon")
	for n := 0; n < 6; n++ {
		side := hexagonSide()
		side.SetTransform(core.RotationY(float64(n) * math.Pi / 3))
		hex.AddChild(side)
	}
	return hex
}

func hexagonSide() *geometry.Group {
	corner := geometry.NewSphere()
	corner.SetTransform(core.Chain(core.Scaling(0.25, 0.25, 0.25), core.Translation(0, 0, -1)))

	edge := geometry.NewTruncatedCylinder(0, 1, false)
	edge.SetTransform(core.Chain(
		core.Scaling(0.25, 1, 0.25),
		core.RotationZ(-math.Pi/2),
		core.RotationY(-math.Pi/6),
		core.Translation(0, 0, -1),
	))

	for _, s := range []geometry.Shape{corner, edge} {
		m := s.Material()
		m.Color = core.Color(0.8, 0.3, 0.2)
		m.Reflective = 0.3
	}

	side := geometry.NewGroup("hexagon-side")
	side.AddChild(corner)
	side.AddChild(edge)
	return side
}
