package config

import (
	"github.com/urfave/cli"
)

// Flags returns the command-line flags that override Config fields.
func Flags() []cli.Flag {
	def := Default()
	return []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "JSON config file, applied before flags"},
		cli.IntFlag{Name: "width", Value: def.Width, Usage: "cells per row"},
		cli.IntFlag{Name: "height", Value: def.Height, Usage: "cells per column"},
		cli.IntFlag{Name: "grids", Value: def.Grids, Usage: "number of independent grids"},
		cli.Int64Flag{Name: "seed", Usage: "seed for the initial cells"},
		cli.StringFlag{Name: "seeding", Value: def.Seeding, Usage: "random or perlin"},
		cli.Float64Flag{Name: "density", Value: def.Density, Usage: "alive probability for random seeding"},
		cli.StringFlag{Name: "pattern", Usage: "plaintext pattern file placed at the centre instead of seeding"},
		cli.IntFlag{Name: "workers", Value: def.Workers, Usage: "goroutines per grid step"},
		cli.IntFlag{Name: "scale", Value: def.Scale, Usage: "screen pixels per cell"},
		cli.IntFlag{Name: "tps", Value: def.TPS, Usage: "generations per second"},
		cli.StringFlag{Name: "log-level", Value: def.LogLevel, Usage: "debug, info, warn or error"},
	}
}

// FromContext builds a Config from the defaults, then the --config file,
// then any flag set explicitly on the command line, and validates it.
func FromContext(c *cli.Context) (Config, error) {
	cfg := Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("grids") {
		cfg.Grids = c.Int("grids")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.IsSet("seeding") {
		cfg.Seeding = c.String("seeding")
	}
	if c.IsSet("density") {
		cfg.Density = c.Float64("density")
	}
	if c.IsSet("pattern") {
		cfg.Pattern = c.String("pattern")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("scale") {
		cfg.Scale = c.Int("scale")
	}
	if c.IsSet("tps") {
		cfg.TPS = c.Int("tps")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	return cfg, cfg.Validate()
}
