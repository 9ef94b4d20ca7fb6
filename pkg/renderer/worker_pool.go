package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/meshtrace/meshtrace/pkg/core"
)

// pixel is one rendered pixel in a worker's private output buffer
type pixel struct {
	x, y  int
	color core.Vec3
}

// workerResult is one worker's complete output, or its failure
type workerResult struct {
	pixels []pixel
	err    error
}

// workerPool runs N workers that repeatedly claim pixel batches from
// the scheduler and render them. Workers share only the scheduler and
// the read-only scene; each appends to its own buffer.
type workerPool struct {
	rt         *Raytracer
	scheduler  *Scheduler
	numWorkers int
	results    chan workerResult
	wg         sync.WaitGroup
}

func newWorkerPool(rt *Raytracer, scheduler *Scheduler, numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		rt:         rt,
		scheduler:  scheduler,
		numWorkers: numWorkers,
		results:    make(chan workerResult, numWorkers),
	}
}

// run starts all workers and blocks until they finish. It returns
// every worker's pixel buffer, or the first worker failure. Any
// failure aborts the render: a missing batch would leave undefined
// pixels, so there is no partial-result path.
func (wp *workerPool) run() ([][]pixel, error) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
	wp.wg.Wait()
	close(wp.results)

	buffers := make([][]pixel, 0, wp.numWorkers)
	var firstErr error
	for result := range wp.results {
		if result.err != nil && firstErr == nil {
			firstErr = result.err
		}
		buffers = append(buffers, result.pixels)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return buffers, nil
}

// worker is the per-goroutine render loop: claim a batch, render its
// pixels, repeat until the scheduler is exhausted.
func (wp *workerPool) worker(id int) {
	defer wp.wg.Done()

	var buffer []pixel
	defer func() {
		if r := recover(); r != nil {
			wp.results <- workerResult{err: fmt.Errorf("worker %d failed: %v", id, r)}
			return
		}
		wp.results <- workerResult{pixels: buffer}
	}()

	width, height := wp.rt.width, wp.rt.height
	for {
		start, count, ok := wp.scheduler.ClaimBatch()
		if !ok {
			return
		}
		end := min(start+count, width*height)
		for idx := start; idx < end; idx++ {
			x, y := idx%width, idx/width
			if y >= height {
				break // past the end of the frame
			}
			buffer = append(buffer, pixel{x: x, y: y, color: wp.rt.renderPixel(x, y)})
		}
	}
}
