package gosu

import (
	"github.com/ignite-laboratories/core/std"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

// Config describes the window to construct.
type Config struct {
	// Size is the requested logical size in pixels.
	Size std.XY[int] `yaml:"size"`
	// Fullscreen creates a borderless window covering the desktop. Drawing
	// still uses Size as its logical resolution.
	Fullscreen bool `yaml:"fullscreen"`
	// UpdateInterval is the pacing target of one loop iteration. Zero selects
	// DefaultUpdateInterval; a negative interval makes the loop never sleep.
	UpdateInterval time.Duration `yaml:"updateInterval"`
	Caption        string        `yaml:"caption"`
	// Driver names the native backend for callers that choose one by name.
	Driver string `yaml:"driver"`

	// Graphics creates the drawing surface. Defaults to the OpenGL surface.
	Graphics GraphicsFactory `yaml:"-"`
	// Clock defaults to the system clock.
	Clock Clock `yaml:"-"`
}

// LoadConfig reads a YAML window configuration.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, nil
}

func (c Config) withDefaults() Config {
	if c.Size.X <= 0 || c.Size.Y <= 0 {
		c.Size = DefaultSize
	}
	if c.UpdateInterval == 0 {
		c.UpdateInterval = DefaultUpdateInterval
	}
	if c.Graphics == nil {
		c.Graphics = openGLGraphics
	}
	if c.Clock == nil {
		c.Clock = systemClock{}
	}
	return c
}
