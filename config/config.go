// Package config holds the runtime settings for the simulation and its window.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Seeding modes
const (
	SeedRandom = "random"
	SeedPerlin = "perlin"
)

// Config describes the grids to simulate and how to present them.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Grids  int `json:"grids"`

	Seed            int64   `json:"seed"`
	Seeding         string  `json:"seeding"`
	Density         float64 `json:"density"`          // alive probability for random seeding
	PerlinThreshold float64 `json:"perlin_threshold"` // noise level above which a cell is alive
	PerlinScale     float64 `json:"perlin_scale"`     // noise sample spacing per cell
	Pattern         string  `json:"pattern"`          // optional plaintext pattern file, placed centred

	Workers int `json:"workers"`

	Scale    int    `json:"scale"` // screen pixels per cell
	TPS      int    `json:"tps"`
	LogLevel string `json:"log_level"`
}

// Default returns the configuration used when no file or flags override it.
func Default() Config {
	return Config{
		Width:           512,
		Height:          512,
		Grids:           1,
		Seeding:         SeedRandom,
		Density:         0.5,
		PerlinThreshold: 0.1,
		PerlinScale:     0.08,
		Workers:         4,
		Scale:           2,
		TPS:             30,
		LogLevel:        "info",
	}
}

// Load reads a JSON file over the defaults. Fields missing from the file keep
// their default values.
func Load(filename string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", filename, err)
	}
	return cfg, nil
}

// Save writes cfg as indented JSON.
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d is negative", c.Width, c.Height))
	}
	if c.Grids < 1 {
		errs = append(errs, fmt.Errorf("grids must be at least 1, got %d", c.Grids))
	}
	if c.Seeding != SeedRandom && c.Seeding != SeedPerlin {
		errs = append(errs, fmt.Errorf("unknown seeding %q", c.Seeding))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density %v outside [0, 1]", c.Density))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be at least 1, got %d", c.Scale))
	}
	if c.TPS < 1 {
		errs = append(errs, fmt.Errorf("tps must be at least 1, got %d", c.TPS))
	}
	return errors.Join(errs...)
}
