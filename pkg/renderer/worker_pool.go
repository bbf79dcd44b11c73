package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // Index of the tile in submission order
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Tile   *Tile
	Stats  RenderStats
}

// WorkerPool renders tiles in parallel into a shared canvas. Tiles never
// overlap, so workers write disjoint pixels.
type WorkerPool struct {
	renderer        *TileRenderer
	canvas          *Canvas
	samplesPerPixel int
	numWorkers      int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *TileRenderer, canvas *Canvas, samplesPerPixel, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		renderer:        renderer,
		canvas:          canvas,
		samplesPerPixel: samplesPerPixel,
		numWorkers:      numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile and sends one result per finished tile. It
// returns when all tiles are done or ctx is cancelled; a cancelled run
// returns ctx's error. Workers check for cancellation between tiles.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, results chan<- TileResult) error {
	g, ctx := errgroup.WithContext(ctx)
	tasks := make(chan TileTask)

	g.Go(func() error {
		defer close(tasks)
		for i, tile := range tiles {
			select {
			case tasks <- TileTask{Tile: tile, TaskID: i}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			for task := range tasks {
				if err := ctx.Err(); err != nil {
					return err
				}

				stats := wp.renderer.RenderTile(task.Tile, wp.canvas, wp.samplesPerPixel)

				select {
				case results <- TileResult{TaskID: task.TaskID, Tile: task.Tile, Stats: stats}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	return g.Wait()
}
