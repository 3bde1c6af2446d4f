// Package config loads the demo renderer's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/mkarlik/go-smallray/pkg/scene"
)

// Config is the top-level configuration for the demo binary
type Config struct {
	Render RenderConfig `yaml:"render"`
	Scene  SceneConfig  `yaml:"scene"`
}

// RenderConfig contains image and sampling settings
type RenderConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	NumWorkers      int `yaml:"num_workers"` // 0 means one worker per CPU
}

// SceneConfig selects the Cornell box contents
type SceneConfig struct {
	Accel             string `yaml:"accel"` // "list" or "bvh"
	CeilingLight      bool   `yaml:"ceiling_light"`
	SunLight          bool   `yaml:"sun_light"`
	PointLight        bool   `yaml:"point_light"`
	BackgroundLight   bool   `yaml:"background_light"`
	LargeMirrorSphere bool   `yaml:"large_mirror_sphere"`
	LargeGlassSphere  bool   `yaml:"large_glass_sphere"`
	SmallMirrorSphere bool   `yaml:"small_mirror_sphere"`
	SmallGlassSphere  bool   `yaml:"small_glass_sphere"`
}

// Default returns the configuration used when no file is given:
// the classic Cornell box at a square resolution
func Default() Config {
	return Config{
		Render: RenderConfig{
			Width:           512,
			Height:          512,
			SamplesPerPixel: 16,
		},
		Scene: SceneConfig{
			Accel:             string(scene.AccelList),
			CeilingLight:      true,
			SmallMirrorSphere: true,
			SmallGlassSphere:  true,
		},
	}
}

// Load reads a YAML configuration file, layered over the defaults
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := config.validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

func (c Config) validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	switch scene.AccelKind(c.Scene.Accel) {
	case scene.AccelList, scene.AccelBVH, "":
	default:
		return fmt.Errorf("unknown accel %q, want %q or %q", c.Scene.Accel, scene.AccelList, scene.AccelBVH)
	}
	return nil
}

// CornellOptions converts the scene section into loader options
func (c Config) CornellOptions() scene.CornellOptions {
	return scene.CornellOptions{
		Accel:             scene.AccelKind(c.Scene.Accel),
		CeilingLight:      c.Scene.CeilingLight,
		SunLight:          c.Scene.SunLight,
		PointLight:        c.Scene.PointLight,
		BackgroundLight:   c.Scene.BackgroundLight,
		LargeMirrorSphere: c.Scene.LargeMirrorSphere,
		LargeGlassSphere:  c.Scene.LargeGlassSphere,
		SmallMirrorSphere: c.Scene.SmallMirrorSphere,
		SmallGlassSphere:  c.Scene.SmallGlassSphere,
	}
}
