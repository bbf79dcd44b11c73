package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultTileSize is the tile edge length used when none is configured
const DefaultTileSize = 32

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for a render. Zero sampling fields
// defer to the scene's SamplingConfig.
type RenderConfig struct {
	TileSize        int // Edge length of each square tile in pixels
	NumWorkers      int // Number of parallel workers (0 = use CPU count)
	SamplesPerPixel int // Overrides the scene's samples per pixel when > 0
	MaxDepth        int // Overrides the scene's recursion depth when > 0
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX     int // Tile coordinates (not pixel coordinates)
	TileY     int
	Bounds    image.Rectangle // Pixel bounds of the tile
	TileImage *image.RGBA     // Image data for just this tile

	// Progress information
	TileNumber int // Number of tiles finished so far, including this one
	TotalTiles int // Total number of tiles in the image
}

// Raytracer renders a scene into a canvas using a pool of tile workers
type Raytracer struct {
	scene      *scene.Scene
	config     RenderConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer that shades with a Whitted integrator
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	rt := &Raytracer{
		scene:  s,
		config: config,
		logger: logger,
	}
	rt.integrator = integrator.NewWhittedIntegrator(rt.maxDepth())
	return rt
}

// SetIntegrator replaces the integrator used to color camera rays
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

func (rt *Raytracer) samplesPerPixel() int {
	if rt.config.SamplesPerPixel > 0 {
		return rt.config.SamplesPerPixel
	}
	return max(1, rt.scene.SamplingConfig.SamplesPerPixel)
}

func (rt *Raytracer) maxDepth() int {
	if rt.config.MaxDepth > 0 {
		return rt.config.MaxDepth
	}
	return rt.scene.SamplingConfig.MaxDepth
}

// Render traces the whole image. tileCallback, if non-nil, is called once
// per finished tile from the calling goroutine, in completion order.
func (rt *Raytracer) Render(ctx context.Context, tileCallback func(TileCompletionResult)) (*Canvas, RenderStats, error) {
	camera := rt.scene.Camera
	width, height := camera.HSize, camera.VSize
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	startTime := time.Now()
	canvas := NewCanvas(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize)
	samples := rt.samplesPerPixel()
	pool := NewWorkerPool(NewTileRenderer(rt.scene, rt.integrator), canvas, samples, rt.config.NumWorkers)

	rt.logger.Printf("Rendering %s: %dx%d, %d tiles, %d samples/pixel, depth %d (using %d workers)...\n",
		rt.scene.Name, width, height, len(tiles), samples, rt.maxDepth(), pool.GetNumWorkers())

	results := make(chan TileResult)
	errCh := make(chan error, 1)
	go func() {
		errCh <- pool.Run(ctx, tiles, results)
		close(results)
	}()

	var stats RenderStats
	for result := range results {
		stats.Add(result.Stats)

		if tileCallback != nil {
			tile := result.Tile
			tileCallback(TileCompletionResult{
				TileX:      tile.Bounds.Min.X / rt.config.TileSize,
				TileY:      tile.Bounds.Min.Y / rt.config.TileSize,
				Bounds:     tile.Bounds,
				TileImage:  canvas.SubImage(tile.Bounds),
				TileNumber: stats.TilesRendered,
				TotalTiles: len(tiles),
			})
		}
	}

	if err := <-errCh; err != nil {
		rt.logger.Printf("Rendering cancelled after %d of %d tiles: %v\n", stats.TilesRendered, len(tiles), err)
		return nil, stats, err
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d samples, %.1f samples/pixel)\n",
		stats.Duration, stats.TotalSamples, stats.AverageSamples)

	return canvas, stats, nil
}
