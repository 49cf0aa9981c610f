package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/tdewolff/figure"
	"gopkg.in/yaml.v3"
)

// Config holds the editor options and output settings of the figure tool. Values are read from an
// optional YAML file and then overridden by FIGURE_* environment variables.
type Config struct {
	HandleSize         float64 `yaml:"handleSize" envconfig:"HANDLE_SIZE"`
	ClickPrecision     float64 `yaml:"clickPrecision" envconfig:"CLICK_PRECISION"`
	MaxPoints          int     `yaml:"maxPoints" envconfig:"MAX_POINTS"`
	CollinearPrecision float64 `yaml:"collinearPrecision" envconfig:"COLLINEAR_PRECISION"`
	HitFlatness        float64 `yaml:"hitFlatness" envconfig:"HIT_FLATNESS"`
	Scale              float64 `yaml:"scale" envconfig:"SCALE"`
	LogLevel           string  `yaml:"logLevel" envconfig:"LOG_LEVEL"`
}

// Default returns the configuration with the default editor options.
func Default() *Config {
	o := figure.DefaultOptions
	return &Config{
		HandleSize:         o.HandleSize,
		ClickPrecision:     o.ClickPrecision,
		MaxPoints:          o.MaxPoints,
		CollinearPrecision: o.CollinearPrecision,
		HitFlatness:        o.HitFlatness,
		Scale:              1.0,
		LogLevel:           "warn",
	}
}

// Load reads the YAML file at path if given and present, and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		} else if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}
	if err := envconfig.Process("FIGURE", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return cfg, nil
}

// Options returns the editor options.
func (c *Config) Options() figure.Options {
	return figure.Options{
		HandleSize:         c.HandleSize,
		ClickPrecision:     c.ClickPrecision,
		MaxPoints:          c.MaxPoints,
		CollinearPrecision: c.CollinearPrecision,
		HitFlatness:        c.HitFlatness,
	}
}
