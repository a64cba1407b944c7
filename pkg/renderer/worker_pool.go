package renderer

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// WorkerPool renders tiles in parallel. Tiles never overlap, so workers
// write to disjoint pixels and share only read-only scene data.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls render for every tile and merges the per-tile stats.
// Cancelling ctx stops scheduling further tiles.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, render func(tile *Tile) RenderStats) (RenderStats, error) {
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	var mu sync.Mutex
	total := RenderStats{Workers: wp.numWorkers}

	for _, tile := range tiles {
		tile := tile // per-iteration copy for Go < 1.22 loop semantics
		if groupCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			stats := render(tile)

			mu.Lock()
			total.Add(stats)
			total.Tiles++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return total, err
	}
	// Catch cancellation that stopped scheduling before any worker saw it
	if err := ctx.Err(); err != nil {
		return total, err
	}
	return total, nil
}
