package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshtrace/meshtrace/pkg/config"
	"github.com/meshtrace/meshtrace/pkg/core"
	"github.com/meshtrace/meshtrace/pkg/renderer"
	"github.com/meshtrace/meshtrace/pkg/scene"
)

func TestBuildScene(t *testing.T) {
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "mesh.txt")
	lightsPath := filepath.Join(dir, "lights.txt")
	require.NoError(t, os.WriteFile(meshPath,
		[]byte("0,0,0 0,0,0 1,0,0 1,0,0 0,0,0 1,0,0 0,1,0 0,0,0 1,0,0\n"), 0644))
	require.NoError(t, os.WriteFile(lightsPath,
		[]byte("0,5,0 1,1,1\n"), 0644))

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		expectErr bool
		triangles int
		lights    int
	}{
		{"default scene when no mesh file", func(c *config.Config) {}, false, 2, 2},
		{"mesh without lights", func(c *config.Config) { c.MeshFile = meshPath }, false, 1, 0},
		{"mesh with lights", func(c *config.Config) {
			c.MeshFile = meshPath
			c.LightsFile = lightsPath
		}, false, 1, 1},
		{"missing mesh file", func(c *config.Config) { c.MeshFile = filepath.Join(dir, "nope.txt") }, true, 0, 0},
		{"missing lights file", func(c *config.Config) {
			c.MeshFile = meshPath
			c.LightsFile = filepath.Join(dir, "nope.txt")
		}, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			s, err := buildScene(cfg)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, s.Triangles, tt.triangles)
			assert.Len(t, s.Lights, tt.lights)
		})
	}
}

func TestBuildScene_AppliesTransform(t *testing.T) {
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "mesh.txt")
	require.NoError(t, os.WriteFile(meshPath,
		[]byte("0,0,0 0,0,0 1,0,0 1,0,0 0,0,0 1,0,0 0,1,0 0,0,0 1,0,0\n"), 0644))

	cfg := config.Default()
	cfg.MeshFile = meshPath
	cfg.Transform = &config.Transform{Translate: [3]float64{0, 0, 5}}

	s, err := buildScene(cfg)
	require.NoError(t, err)
	assert.Equal(t, core.NewVec3(0, 0, 5), s.Triangles[0].V0.Position)
}

func TestWriteFrame(t *testing.T) {
	s := scene.NewScene(nil, nil, core.Vec3{}, core.NewVec3(0.2, 0.2, 0.2))
	rt, err := renderer.NewRaytracer(s, renderer.Options{
		Camera:           core.NewVec3(0, 0, -4),
		ScreenOrigin:     core.NewVec3(0, 0, 0),
		Up:               core.NewVec3(0, 1, 0),
		Width:            4,
		Height:           4,
		Workers:          1,
		BatchSize:        4,
		SpecularExponent: 32,
	})
	require.NoError(t, err)
	frame, _, err := rt.Render()
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.ppm"} {
		path := filepath.Join(dir, name)
		require.NoError(t, writeFrame(frame, path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
