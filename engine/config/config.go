// Package config loads engine settings from YAML. Every field is optional: a document only
// overrides the values it names and everything else keeps the Default value.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"gopkg.in/yaml.v3"
)

// Config is the root of an engine configuration file.
type Config struct {
	Window     WindowConfig `yaml:"window"`
	MaxFps     int          `yaml:"max_fps"`     // 0 = unlimited
	ClearColor [4]float32   `yaml:"clear_color"` // RGBA
	DepthTest  bool         `yaml:"depth_test"`
	CullFace   bool         `yaml:"cull_face"`
	AutoAspect bool         `yaml:"auto_aspect"`
	Profiling  bool         `yaml:"profiling"`
	Camera     CameraConfig `yaml:"camera"`
}

// WindowConfig configures the host window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// CameraConfig configures the initial camera.
type CameraConfig struct {
	FovDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	Position   [3]float32 `yaml:"position"`
	LookAt     [3]float32 `yaml:"look_at"`
	Up         [3]float32 `yaml:"up"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - Config: the defaults
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "oxy-gl",
			Width:  1280,
			Height: 720,
		},
		MaxFps:     60,
		ClearColor: [4]float32{0, 0, 0, 1},
		DepthTest:  true,
		CullFace:   true,
		AutoAspect: true,
		Camera: CameraConfig{
			FovDegrees: 45,
			Near:       0.1,
			Far:        100,
			Position:   [3]float32{0, 0, 10},
			LookAt:     [3]float32{0, 0, 0},
			Up:         [3]float32{0, 1, 0},
		},
	}
}

// Parse decodes a YAML document on top of Default and validates the result.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the document is malformed or holds invalid values
func Parse(data []byte) (Config, error) {
	def := Default()
	cfg := def
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	// explicit zeros on sizes make no sense, fall back
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, def.Window.Title)
	cfg.Window.Width = common.Coalesce(cfg.Window.Width, def.Window.Width)
	cfg.Window.Height = common.Coalesce(cfg.Window.Height, def.Window.Height)
	cfg.Camera.FovDegrees = common.Coalesce(cfg.Camera.FovDegrees, def.Camera.FovDegrees)
	cfg.Camera.Up = common.Coalesce(cfg.Camera.Up, def.Camera.Up)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a YAML configuration file.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the file cannot be read or parsed
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[Config] loaded %s (%dx%d, max fps %d)", path, cfg.Window.Width, cfg.Window.Height, cfg.MaxFps)
	return cfg, nil
}

// Validate checks value ranges.
//
// Returns:
//   - error: every violation joined, or nil
func (c Config) Validate() error {
	var errs []error
	if c.MaxFps < 0 {
		errs = append(errs, fmt.Errorf("max_fps must be >= 0, got %d", c.MaxFps))
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov_degrees must be in (0, 180), got %g", c.Camera.FovDegrees))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes need 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Position == c.Camera.LookAt {
		errs = append(errs, errors.New("camera.position and camera.look_at must differ"))
	}
	return errors.Join(errs...)
}
