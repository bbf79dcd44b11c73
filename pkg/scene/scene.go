package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Metadata       Metadata
	World          *World
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of jittered rays per pixel; 1 samples the pixel centre
	MaxDepth        int // Maximum reflection/refraction recursion depth
}

// DefaultSamplingConfig returns one sample per pixel and a recursion depth of 5
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 1,
		MaxDepth:        5,
	}
}

// NewScene creates a scene with a camera built from config
func NewScene(name string, world *World, config geometry.CameraConfig, sampling SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		World:          world,
		Camera:         geometry.NewCameraFromConfig(config),
		CameraConfig:   config,
		SamplingConfig: sampling,
	}
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.World.Objects {
		count += s.countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts the leaves below a shape
func (s *Scene) countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.Group:
		count := 0
		for _, child := range obj.Children() {
			count += s.countPrimitivesInShape(child)
		}
		return count
	default:
		// Regular shapes count as 1 primitive each
		return 1
	}
}
