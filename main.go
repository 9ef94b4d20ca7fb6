package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/meshtrace/meshtrace/pkg/config"
	"github.com/meshtrace/meshtrace/pkg/loaders"
	"github.com/meshtrace/meshtrace/pkg/renderer"
	"github.com/meshtrace/meshtrace/pkg/scene"
)

func main() {
	configPath := flag.String("config", "", "TOML render config file")
	meshPath := flag.String("mesh", "", "triangle mesh text file (default: built-in scene)")
	lightsPath := flag.String("lights", "", "lights text file")
	output := flag.String("o", "render.png", "output image path (.png or .ppm)")
	width := flag.Int("width", 0, "image width (overrides config)")
	height := flag.Int("height", 0, "image height (overrides config)")
	workers := flag.Int("workers", 0, "number of render workers (0 = one per CPU)")
	batchSize := flag.Int("batch", 0, "pixel batch size (overrides config)")
	verbose := flag.Bool("v", false, "enable debug logging")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Triangle-mesh raytracer")
		fmt.Println("Usage: meshtrace [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("With no -mesh file, a built-in two-triangle scene is rendered.")
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error("configuration failed", "error", err)
			os.Exit(1)
		}
	}
	if *meshPath != "" {
		cfg.MeshFile = *meshPath
	}
	if *lightsPath != "" {
		cfg.LightsFile = *lightsPath
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *batchSize > 0 {
		cfg.BatchSize = *batchSize
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	scn, err := buildScene(cfg)
	if err != nil {
		logger.Error("scene load failed", "error", err)
		os.Exit(1)
	}

	rt, err := renderer.NewRaytracer(scn, renderer.Options{
		Camera:           cfg.CameraPosition(),
		ScreenOrigin:     cfg.ScreenOriginPoint(),
		Up:               cfg.UpVector(),
		Width:            cfg.Width,
		Height:           cfg.Height,
		Workers:          cfg.Workers,
		BatchSize:        cfg.BatchSize,
		SpecularExponent: cfg.SpecularExponent,
		Logger:           logger,
	})
	if err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	frame, stats, err := rt.Render()
	if err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
	logger.Info("writing output", "path", *output)
	if err := writeFrame(frame, *output); err != nil {
		logger.Error("output failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %d pixels in %v (%d workers, %d batches) -> %s\n",
		stats.TotalPixels, stats.Elapsed, stats.Workers, stats.Batches, *output)
}

// buildScene assembles the scene from the configured input files, or
// falls back to the built-in default scene when no mesh file is given.
func buildScene(cfg config.Config) (*scene.Scene, error) {
	if cfg.MeshFile == "" {
		return scene.NewDefaultScene(cfg.AmbientColor(), cfg.BackgroundColor()), nil
	}

	triangles, err := loaders.LoadMesh(cfg.MeshFile)
	if err != nil {
		return nil, err
	}
	var lights []scene.Light
	if cfg.LightsFile != "" {
		lights, err = loaders.LoadLights(cfg.LightsFile)
		if err != nil {
			return nil, err
		}
	}
	if m, ok := cfg.ModelTransform(); ok {
		triangles = scene.TransformTriangles(triangles, m)
	}
	return scene.NewScene(triangles, lights, cfg.AmbientColor(), cfg.BackgroundColor()), nil
}

// writeFrame encodes the frame according to the output extension:
// .ppm gets the plain-text raster, anything else goes through the PNG
// codec.
func writeFrame(frame *renderer.Frame, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return frame.WritePPM(file)
	}
	if err := png.Encode(file, frame.RGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %v", err)
	}
	return nil
}
