// Package config loads the free-look demo configuration from YAML and watches it for changes.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-freelook/common"
	"github.com/Carmen-Shannon/oxy-freelook/engine/camera"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultProfileInterval is how often frame statistics are reported.
const DefaultProfileInterval = time.Second

// WindowConfig describes the demo window.
type WindowConfig struct {
	Title          string `yaml:"title"`
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	CaptureCursor  bool   `yaml:"capture_cursor"`
	ShowStatsTitle bool   `yaml:"show_stats_title"`
}

// Bindings names the keys for each camera action, e.g. "w" or "up".
// Names are resolved through common.KeyNames.
type Bindings struct {
	Forward  string `yaml:"forward"`
	Backward string `yaml:"backward"`
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	Reset    string `yaml:"reset"`
}

// Config is the top-level configuration file.
type Config struct {
	Camera          camera.Config     `yaml:"camera"`
	Projection      camera.Projection `yaml:"projection"`
	Window          WindowConfig      `yaml:"window"`
	Bindings        Bindings          `yaml:"bindings"`
	StartPosition   [3]float32        `yaml:"start_position"`
	ProfileInterval time.Duration     `yaml:"profile_interval"`
}

// Default returns the configuration used when no file is given.
//
// Returns:
//   - *Config: a camera at (0, 0, 3) with the default tuning, WASD/R bindings and an 800x600 window
func Default() *Config {
	return &Config{
		Camera:     camera.DefaultConfig(),
		Projection: camera.DefaultProjection(),
		Window: WindowConfig{
			Title:         "Oxy Free-Look",
			Width:         800,
			Height:        600,
			CaptureCursor: true,
		},
		Bindings: Bindings{
			Forward:  "w",
			Backward: "s",
			Left:     "a",
			Right:    "d",
			Reset:    "r",
		},
		StartPosition:   [3]float32{0, 0, 3},
		ProfileInterval: DefaultProfileInterval,
	}
}

// Load reads a YAML configuration file. Keys missing from the file keep their defaults.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - *Config: the normalized configuration
//   - error: error if the file cannot be read or parsed
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and normalizes the result.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: the normalized configuration
//   - error: error if the document is malformed or names an unknown key binding
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if _, err := cfg.KeyBindings(); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// KeyBindings resolves the named bindings to key codes.
//
// Returns:
//   - camera.KeyBindings: resolved key codes
//   - error: error naming the first unknown key
func (c *Config) KeyBindings() (camera.KeyBindings, error) {
	defaults := Default().Bindings
	resolve := func(action, name, fallback string) (uint32, error) {
		name = strings.ToLower(strings.TrimSpace(common.Coalesce(name, fallback)))
		code, ok := common.KeyNames[name]
		if !ok {
			return 0, errors.Errorf("unknown key %q for %s", name, action)
		}
		return code, nil
	}

	var (
		kb  camera.KeyBindings
		err error
	)
	if kb.Forward, err = resolve("forward", c.Bindings.Forward, defaults.Forward); err != nil {
		return kb, err
	}
	if kb.Backward, err = resolve("backward", c.Bindings.Backward, defaults.Backward); err != nil {
		return kb, err
	}
	if kb.Left, err = resolve("left", c.Bindings.Left, defaults.Left); err != nil {
		return kb, err
	}
	if kb.Right, err = resolve("right", c.Bindings.Right, defaults.Right); err != nil {
		return kb, err
	}
	if kb.Reset, err = resolve("reset", c.Bindings.Reset, defaults.Reset); err != nil {
		return kb, err
	}
	return kb, nil
}

// CameraOptions converts the configuration into camera builder options.
//
// Returns:
//   - []camera.CameraBuilderOption: options for camera.NewCamera
func (c *Config) CameraOptions() []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithConfig(c.Camera),
		camera.WithPosition(c.StartPosition[0], c.StartPosition[1], c.StartPosition[2]),
	}
}

func (c *Config) normalize() {
	c.Camera = c.Camera.Normalize()
	if c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near {
		c.Projection = camera.DefaultProjection()
	}
	def := Default().Window
	c.Window.Title = common.Coalesce(c.Window.Title, def.Title)
	if c.Window.Width <= 0 {
		c.Window.Width = def.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Height
	}
	if c.ProfileInterval <= 0 {
		c.ProfileInterval = DefaultProfileInterval
	}
}
