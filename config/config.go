// Package config holds the tunable settings the windowing system reads:
// window cap, wheel scroll step, snap proximity, zoom behaviour. Settings
// load from and save to a YAML file and are clamped to sane ranges on load.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits on the configurable values.
const (
	WindowLimitMin = 32
	WindowLimitMax = 64
	MaxZoomCeiling = 3
)

// Config is the windowing configuration. The zero value is not usable;
// start from Default.
type Config struct {
	// WindowLimit caps the number of open windows before eviction starts.
	WindowLimit int `yaml:"window_limit"`
	// ScrollPixels is the pixels scrolled per wheel click.
	ScrollPixels int `yaml:"scroll_pixels"`
	// ZoomToCursor keeps the point under the cursor fixed while zooming.
	ZoomToCursor bool `yaml:"zoom_to_cursor"`
	// SnapProximity is the edge-snap distance in pixels; 0 disables
	// snapping.
	SnapProximity int `yaml:"snap_proximity"`
	// ToolbarHeight reserves screen space at the top that windows are
	// kept below.
	ToolbarHeight int `yaml:"toolbar_height"`
	// MaxZoom is the furthest zoom-out level.
	MaxZoom int `yaml:"max_zoom"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		WindowLimit:   WindowLimitMin,
		ScrollPixels:  17,
		ZoomToCursor:  true,
		SnapProximity: 5,
		ToolbarHeight: 27,
		MaxZoom:       MaxZoomCeiling,
	}
}

// Load reads a configuration file. Values outside the supported ranges are
// clamped rather than rejected; a missing file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Clamp()
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Clamp pulls every value back into its supported range.
func (c *Config) Clamp() {
	c.WindowLimit = clampInt(WindowLimitMin, c.WindowLimit, WindowLimitMax)
	if c.ScrollPixels < 1 {
		c.ScrollPixels = 1
	}
	if c.SnapProximity < 0 {
		c.SnapProximity = 0
	}
	if c.ToolbarHeight < 0 {
		c.ToolbarHeight = 0
	}
	c.MaxZoom = clampInt(0, c.MaxZoom, MaxZoomCeiling)
}

func clampInt(lo, v, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
