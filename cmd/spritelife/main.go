package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli"

	"github.com/olivierh59500/sprite-life-go/config"
	"github.com/olivierh59500/sprite-life-go/logging"
	"github.com/olivierh59500/sprite-life-go/ui"
	"github.com/olivierh59500/sprite-life-go/world"
)

func main() {
	app := cli.NewApp()
	app.Name = "spritelife"
	app.Usage = "Conway's Game of Life drawn as a grid of sprites"
	app.Flags = append(config.Flags(),
		cli.BoolFlag{Name: "headless", Usage: "run without a window"},
		cli.IntFlag{Name: "generations", Value: 100, Usage: "generations to run in headless mode"},
	)
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	w, err := world.New(cfg, log.With(logger, "component", "world"))
	if err != nil {
		return err
	}

	if c.Bool("headless") {
		n := c.Int("generations")
		w.Run(n)
		level.Info(logger).Log("msg", "headless run finished", "generations", w.Generation(), "alive", fmt.Sprint(w.AliveCounts()))
		return nil
	}

	game := ui.New(w, cfg.Scale, log.With(logger, "component", "ui"))
	sw, sh := game.ScreenSize()

	ebiten.SetWindowSize(sw, sh)
	ebiten.SetWindowTitle(fmt.Sprintf("spritelife %dx%d", cfg.Width, cfg.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	level.Info(logger).Log("msg", "starting", "width", cfg.Width, "height", cfg.Height, "grids", cfg.Grids, "tps", cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
