package config

import (
	"github.com/alexisbeaulieu97/lumen/internal/animator"
	"github.com/alexisbeaulieu97/lumen/internal/theme"
	"github.com/alexisbeaulieu97/lumen/pkg/shadow"
)

// Config represents the full lumen configuration document.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Theme   ThemeConfig   `yaml:"theme"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig holds the lighting engine initialization parameters. Angle and
// speed are not validated: the engine normalizes and clamps them.
type EngineConfig struct {
	InitialAngle     float64 `yaml:"initial_angle"`
	InitialAnimating bool    `yaml:"initial_animating"`
	InitialSpeed     float64 `yaml:"initial_speed"`
	FrameRate        int     `yaml:"frame_rate" validate:"min=1,max=240"`
}

// ThemeConfig selects the brand tint. Zero hue or saturation keeps the
// brand's preset value.
type ThemeConfig struct {
	Brand      string  `yaml:"brand" validate:"required,brand"`
	Hue        float64 `yaml:"hue,omitempty" validate:"min=0,max=360"`
	Saturation float64 `yaml:"saturation,omitempty" validate:"min=0,max=100"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
	File          string `yaml:"file,omitempty"`
}

// Default returns a Config with the documented defaults.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			InitialAngle:     shadow.DefaultLightAngle,
			InitialAnimating: false,
			InitialSpeed:     animator.DefaultSpeed,
			FrameRate:        animator.DefaultFrameRate,
		},
		Theme: ThemeConfig{
			Brand: theme.Fing,
		},
		Logging: LoggingConfig{
			Level:         "info",
			HumanReadable: true,
		},
	}
}

// Brand resolves the configured brand with its tint overrides applied.
func (c *Config) Brand() (theme.Brand, error) {
	b, err := theme.Lookup(c.Theme.Brand)
	if err != nil {
		return theme.Brand{}, err
	}
	return b.WithTint(c.Theme.Hue, c.Theme.Saturation), nil
}
