package renderer

import (
	"image"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// RenderStats summarizes a completed render pass
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Elapsed         time.Duration
}

// RenderPass renders the full image, fanning rows out across workers.
// Every row derives its random stream from the base seed, so output is
// bit-identical for a fixed seed regardless of the worker count. Rows are
// emitted top to bottom, left to right within a row.
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	start := time.Now()

	workers := rt.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	var remaining atomic.Int64
	remaining.Store(int64(rt.height))

	var group errgroup.Group
	group.SetLimit(workers)

	for j := rt.height - 1; j >= 0; j-- {
		j := j
		group.Go(func() error {
			rt.renderRow(j, img)

			if left := remaining.Add(-1); rt.logger != nil && (left%50 == 0 || left == 0) {
				rt.logger.Printf("scanlines remaining: %d", left)
			}
			return nil
		})
	}

	// Row rendering cannot fail; Wait only synchronizes the workers
	_ = group.Wait()

	stats := RenderStats{
		Width:           rt.width,
		Height:          rt.height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		Workers:         workers,
		Elapsed:         time.Since(start),
	}

	return img, stats
}
