package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewPrimitivesScene lines up a cube, a cylinder, a cone and a triangle
func NewPrimitivesScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       400,
		Height:      200,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 3, -9),
		To:          core.Point(0, 1, 0),
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
	fm.Pattern = material.NewRingPattern(core.Color(0.8, 0.8, 0.8), core.Color(0.6, 0.6, 0.7))
	fm.Specular = 0

	cube := geometry.NewCube()
	cube.SetTransform(core.Chain(core.RotationY(math.Pi/5), core.Translation(-3.5, 1, 0)))
	cube.Material().Color = core.Color(0.2, 0.5, 0.9)

	cylinder := geometry.NewTruncatedCylinder(0, 2, true)
	cylinder.SetTransform(core.Chain(core.Scaling(0.8, 1, 0.8), core.Translation(-1.1, 0, 0)))
	cylinder.Material().Color = core.Color(0.9, 0.4, 0.2)

	cone := geometry.NewTruncatedCone(-1, 0, true)
	cone.SetTransform(core.Chain(core.Scaling(1, 2, 1), core.Translation(1.2, 2, 0)))
	cm := cone.Material()
	cm.Color = core.Color(0.3, 0.8, 0.3)
	cm.Reflective = 0.2

	triangle := geometry.NewTriangle(core.Point(-1, 0, 0), core.Point(1, 0, 0), core.Point(0, 2, 0))
	triangle.SetTransform(core.Chain(core.RotationY(-math.Pi/8), core.Translation(3.5, 0, 0.5)))
	tm := triangle.Material()
	tm.Color = core.Color(0.9, 0.8, 0.2)
	tm.Specular = 0.3

	w.Add(floor, cube, cylinder, cone, triangle)
	return NewScene("primitives", w, cameraConfig, DefaultSamplingConfig())
}
