// Package config holds the render configuration consumed by the
// renderer: camera and screen geometry, resolution, scheduling
// parameters, and scene colors. Values come from built-in defaults,
// optionally overlaid by a TOML file, optionally overlaid by CLI
// flags.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/meshtrace/meshtrace/pkg/core"
)

// Transform describes an optional model transform applied to loaded
// geometry at preprocessing time. Order: scale, then rotation about
// X, Y, Z (degrees), then translation.
type Transform struct {
	Translate [3]float64 `toml:"translate"`
	RotateDeg [3]float64 `toml:"rotate_deg"`
	Scale     [3]float64 `toml:"scale"`
}

// Config is the full render configuration.
type Config struct {
	// Scene colors
	Ambient    [3]float64 `toml:"ambient"`
	Background [3]float64 `toml:"background"`

	// Camera / screen geometry
	Camera       [3]float64 `toml:"camera"`
	ScreenOrigin [3]float64 `toml:"screen_origin"`
	Up           [3]float64 `toml:"up"` // |up| sets half the screen height

	// Raster
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Scheduling
	Workers   int `toml:"workers"`
	BatchSize int `toml:"batch_size"`

	// Shading
	SpecularExponent float64 `toml:"specular_exponent"`

	// Input files (optional; CLI flags take precedence)
	MeshFile   string `toml:"mesh"`
	LightsFile string `toml:"lights"`

	Transform *Transform `toml:"transform"`
}

// Default returns the built-in configuration: a camera on the -Z axis
// looking at a unit-ish screen at the origin, 640x480, one worker per
// CPU decided later by the renderer when Workers is 0.
func Default() Config {
	return Config{
		Ambient:          [3]float64{0.1, 0.1, 0.1},
		Background:       [3]float64{0.05, 0.05, 0.1},
		Camera:           [3]float64{0, 0, -4},
		ScreenOrigin:     [3]float64{0, 0, 0},
		Up:               [3]float64{0, 1, 0},
		Width:            640,
		Height:           480,
		Workers:          0,
		BatchSize:        256,
		SpecularExponent: 32,
	}
}

// Load reads a TOML config file over the defaults
func Load(filename string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %v", filename, err)
	}
	return cfg, nil
}

// Validate reports configuration values the renderer cannot work with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.SpecularExponent <= 0 {
		return fmt.Errorf("specular exponent must be positive, got %g", c.SpecularExponent)
	}
	return nil
}

// AmbientColor returns the ambient light color as a vector
func (c Config) AmbientColor() core.Vec3 { return vec3(c.Ambient) }

// BackgroundColor returns the background color as a vector
func (c Config) BackgroundColor() core.Vec3 { return vec3(c.Background) }

// CameraPosition returns the camera position as a vector
func (c Config) CameraPosition() core.Vec3 { return vec3(c.Camera) }

// ScreenOriginPoint returns the screen origin as a vector
func (c Config) ScreenOriginPoint() core.Vec3 { return vec3(c.ScreenOrigin) }

// UpVector returns the up vector
func (c Config) UpVector() core.Vec3 { return vec3(c.Up) }

// ModelTransform builds the model transform matrix, if one is
// configured. The second return value reports whether a transform was
// set at all.
func (c Config) ModelTransform() (core.Mat4, bool) {
	t := c.Transform
	if t == nil {
		return core.Identity(), false
	}
	m := core.Identity()
	if t.Scale != [3]float64{} {
		m = core.Scale(vec3(t.Scale)).Mul(m)
	}
	if t.RotateDeg != [3]float64{} {
		rad := func(deg float64) float64 { return deg * math.Pi / 180 }
		m = core.RotateX(rad(t.RotateDeg[0])).Mul(m)
		m = core.RotateY(rad(t.RotateDeg[1])).Mul(m)
		m = core.RotateZ(rad(t.RotateDeg[2])).Mul(m)
	}
	if t.Translate != [3]float64{} {
		m = core.Translate(vec3(t.Translate)).Mul(m)
	}
	return m, true
}

func vec3(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
