package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		integrator: integratorInst,
	}
}

// RenderTile traces every pixel of tile into canvas. With one sample a
// pixel gets a single ray through its centre; with more, each ray is
// jittered within the pixel using the tile's sampler and the
// results are averaged.
func (tr *TileRenderer) RenderTile(tile *Tile, canvas *Canvas, samplesPerPixel int) RenderStats {
	samplesPerPixel = max(1, samplesPerPixel)
	camera := tr.scene.Camera
	bounds := tile.Bounds

	stats := RenderStats{
		TotalPixels:   bounds.Dx() * bounds.Dy(),
		TilesRendered: 1,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var ps PixelStats
			if samplesPerPixel == 1 {
				ps.AddSample(tr.integrator.RayColor(camera.RayForPixel(x, y), tr.scene))
			} else {
				for s := 0; s < samplesPerPixel; s++ {
					dx, dy := core.JitterOffset(tile.Sampler)
					ps.AddSample(tr.integrator.RayColor(camera.RayForPixelOffset(x, y, dx, dy), tr.scene))
				}
			}
			canvas.WritePixel(x, y, ps.GetColor())
			stats.TotalSamples += ps.SampleCount
		}
	}

	stats.finalize()
	return stats
}
