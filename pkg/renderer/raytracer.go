// Package renderer implements the rendering engine: screen basis
// construction, ray-triangle intersection with barycentric
// interpolation, Phong shading with hard shadows, and the parallel
// pixel-batch scheduler that drives the workers.
package renderer

import (
	"log/slog"
	"time"

	"github.com/meshtrace/meshtrace/pkg/core"
	"github.com/meshtrace/meshtrace/pkg/scene"
)

// Options configures a Raytracer.
type Options struct {
	Camera           core.Vec3 // camera position
	ScreenOrigin     core.Vec3 // screen center point
	Up               core.Vec3 // |Up| sets half the screen height
	Width            int
	Height           int
	Workers          int // 0 means one per CPU
	BatchSize        int
	SpecularExponent float64
	Logger           *slog.Logger // nil means slog.Default()
}

// RenderStats describes a completed render
type RenderStats struct {
	TotalPixels int
	Batches     int
	Workers     int
	Elapsed     time.Duration
}

// Raytracer renders a scene to a frame. It is immutable once built;
// all mutable render state lives in the per-render scheduler and the
// workers' private buffers.
type Raytracer struct {
	scene            *scene.Scene
	screen           ScreenBasis
	camera           core.Vec3
	width, height    int
	workers          int
	batchSize        int
	specularExponent float64
	logger           *slog.Logger
}

// NewRaytracer builds a raytracer for the given scene and options.
// Degenerate camera/screen geometry fails here, before any rendering.
func NewRaytracer(s *scene.Scene, opts Options) (*Raytracer, error) {
	screen, err := NewScreenBasis(opts.Camera, opts.ScreenOrigin, opts.Up, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = 256
	}
	return &Raytracer{
		scene:            s,
		screen:           screen,
		camera:           opts.Camera,
		width:            opts.Width,
		height:           opts.Height,
		workers:          opts.Workers,
		batchSize:        batchSize,
		specularExponent: opts.SpecularExponent,
		logger:           logger,
	}, nil
}

// renderPixel casts the primary ray for pixel (x, y) and shades the
// nearest hit, or returns the background color on a miss.
func (rt *Raytracer) renderPixel(x, y int) core.Vec3 {
	point := rt.screen.PixelPoint(x, y)
	ray := core.NewRay(rt.camera, point.Subtract(rt.camera).Normalize())
	hit, ok := NearestHit(rt.scene, ray)
	if !ok {
		return rt.scene.Background
	}
	return Shade(rt.scene, hit, rt.camera, rt.specularExponent)
}

// Render renders the full frame. The output is identical for any
// worker count: scheduling decides who renders each pixel, the frame
// assembler alone decides where it lands.
func (rt *Raytracer) Render() (*Frame, RenderStats, error) {
	scheduler := NewScheduler(rt.width*rt.height, rt.batchSize)
	pool := newWorkerPool(rt, scheduler, rt.workers)
	rt.logger.Debug("render starting",
		"width", rt.width, "height", rt.height,
		"workers", pool.numWorkers, "batch_size", rt.batchSize,
		"triangles", len(rt.scene.Triangles), "lights", len(rt.scene.Lights))

	start := time.Now()
	buffers, err := pool.run()
	if err != nil {
		return nil, RenderStats{}, err
	}
	frame, err := assembleFrame(rt.width, rt.height, buffers)
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		Batches:     scheduler.BatchesClaimed(),
		Workers:     pool.numWorkers,
		Elapsed:     time.Since(start),
	}
	rt.logger.Info("render complete",
		"pixels", stats.TotalPixels, "batches", stats.Batches,
		"workers", stats.Workers, "elapsed", stats.Elapsed)
	return frame, stats, nil
}
