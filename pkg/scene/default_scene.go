package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewDefaultWorld creates the reference world: a white light up and to the
// left, a large matte green sphere and a smaller sphere inside it
func NewDefaultWorld() *World {
	w := NewWorld()
	w.SetLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	outer := geometry.NewSphere()
	m := outer.Material()
	m.Color = core.Color(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2

	inner := geometry.NewSphere()
	inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	w.Add(outer, inner)
	return w
}

// NewDefaultScene views the default world from slightly above and in front
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       400,
		Height:      200,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 1.5, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	return NewScene("default", NewDefaultWorld(), cameraConfig, DefaultSamplingConfig())
}
