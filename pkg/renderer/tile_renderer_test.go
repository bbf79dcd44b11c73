package renderer

import (
	"image"
	"math"
	"sync/atomic"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// MockIntegrator returns a fixed color and counts calls
type MockIntegrator struct {
	returnColor core.Tuple
	callCount   atomic.Int64
}

func (m *MockIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Tuple {
	m.callCount.Add(1)
	return m.returnColor
}

// directionIntegrator colors a ray by its direction, so different rays
// give different colors
type directionIntegrator struct{}

func (directionIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Tuple {
	d := ray.Direction
	return core.Color(d.X, d.Y, d.Z)
}

// createTestScene creates a small scene around the default world
func createTestScene(width, height int) *scene.Scene {
	return scene.NewDefaultScene(geometry.CameraConfig{Width: width, Height: height})
}

func TestTileRenderer_SingleSampleUsesPixelCentre(t *testing.T) {
	s := createTestScene(8, 4)
	tr := NewTileRenderer(s, directionIntegrator{})
	canvas := NewCanvas(8, 4)
	tile := NewTile(0, image.Rect(0, 0, 8, 4))

	stats := tr.RenderTile(tile, canvas, 1)

	if stats.TotalPixels != 32 || stats.TotalSamples != 32 || stats.TilesRendered != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			d := s.Camera.RayForPixel(x, y).Direction
			if got := canvas.PixelAt(x, y); !got.Equals(core.Color(d.X, d.Y, d.Z)) {
				t.Errorf("(%d, %d): expected centre ray %v, got %v", x, y, d, got)
			}
		}
	}
}

func TestTileRenderer_Supersampling(t *testing.T) {
	s := createTestScene(8, 8)
	mock := &MockIntegrator{returnColor: core.Color(0.25, 0.5, 0.75)}
	tr := NewTileRenderer(s, mock)
	canvas := NewCanvas(8, 8)
	tile := NewTile(0, image.Rect(2, 2, 6, 6))

	stats := tr.RenderTile(tile, canvas, 4)

	if got := mock.callCount.Load(); got != 64 {
		t.Errorf("Expected 64 integrator calls, got %d", got)
	}
	if stats.AverageSamples != 4 {
		t.Errorf("Expected 4 samples/pixel, got %f", stats.AverageSamples)
	}
	if got := canvas.PixelAt(3, 3); !got.Equals(mock.returnColor) {
		t.Errorf("Expected averaged color %v, got %v", mock.returnColor, got)
	}
	if got := canvas.PixelAt(0, 0); got != core.Black {
		t.Errorf("Pixel outside the tile was written: %v", got)
	}
}

func TestTileRenderer_JitterStaysInsidePixel(t *testing.T) {
	// An untransformed camera keeps each direction component monotonic
	// across a pixel, so the corners bound every jittered sample
	s := &scene.Scene{
		Name:   "jitter",
		World:  scene.NewWorld(),
		Camera: geometry.NewCamera(4, 4, math.Pi/2),
	}
	tr := NewTileRenderer(s, directionIntegrator{})

	a := NewCanvas(4, 4)
	b := NewCanvas(4, 4)
	tr.RenderTile(NewTile(7, image.Rect(0, 0, 4, 4)), a, 16)
	tr.RenderTile(NewTile(7, image.Rect(0, 0, 4, 4)), b, 16)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if a.PixelAt(x, y) != b.PixelAt(x, y) {
				t.Errorf("(%d, %d): same tile seed gave %v and %v", x, y, a.PixelAt(x, y), b.PixelAt(x, y))
			}

			loX, hiX := math.Inf(1), math.Inf(-1)
			loY, hiY := math.Inf(1), math.Inf(-1)
			for _, corner := range [][2]float64{{-0.5, -0.5}, {-0.5, 0.5}, {0.5, -0.5}, {0.5, 0.5}} {
				d := s.Camera.RayForPixelOffset(x, y, corner[0], corner[1]).Direction
				loX, hiX = min(loX, d.X), max(hiX, d.X)
				loY, hiY = min(loY, d.Y), max(hiY, d.Y)
			}

			got := a.PixelAt(x, y)
			if got.X < loX || got.X > hiX {
				t.Errorf("(%d, %d): x %v outside [%v, %v]", x, y, got.X, loX, hiX)
			}
			if got.Y < loY || got.Y > hiY {
				t.Errorf("(%d, %d): y %v outside [%v, %v]", x, y, got.Y, loY, hiY)
			}
		}
	}
}
