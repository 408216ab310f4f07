// Package world owns the grids being simulated and advances them once per tick.
package world

import (
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/olivierh59500/sprite-life-go/config"
	"github.com/olivierh59500/sprite-life-go/grid"
	"github.com/olivierh59500/sprite-life-go/life"
	"github.com/olivierh59500/sprite-life-go/snapshot"
)

// World holds independent grids of the same size, each with its own stepper.
// It is not safe for concurrent use; the host calls Tick and reads grids from
// a single goroutine.
type World struct {
	cfg      config.Config
	logger   log.Logger
	grids    []*grid.Grid[life.CellState]
	steppers []*life.Stepper
	pattern  *grid.Grid[life.CellState]

	generation int
}

// New creates cfg.Grids grids and seeds them from cfg.Seed.
func New(cfg config.Config, logger log.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	w := &World{
		cfg:    cfg,
		logger: logger,
	}
	if cfg.Pattern != "" {
		p, err := loadPattern(cfg.Pattern, cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		w.pattern = p
	}

	for i := 0; i < cfg.Grids; i++ {
		w.grids = append(w.grids, grid.New[life.CellState](cfg.Width, cfg.Height))
		w.steppers = append(w.steppers, life.NewStepper(cfg.Workers))
	}
	w.Reseed(cfg.Seed)
	return w, nil
}

func loadPattern(filename string, width, height int) (*grid.Grid[life.CellState], error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	p, err := life.ParsePattern(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if pw, ph := p.Dimensions(); pw > width || ph > height {
		return nil, fmt.Errorf("pattern %s is %dx%d, larger than the %dx%d grid", filename, pw, ph, width, height)
	}
	return p, nil
}

// Reseed refills every grid and resets the generation counter. Grid i is
// seeded from seed+i so grids differ but the whole world is reproducible.
func (w *World) Reseed(seed int64) {
	for i, g := range w.grids {
		s := seed + int64(i)
		switch {
		case w.pattern != nil:
			g.Fill(life.Dead)
			gw, gh := g.Dimensions()
			pw, ph := w.pattern.Dimensions()
			life.Place(g, w.pattern, (gw-pw)/2, (gh-ph)/2)
		case w.cfg.Seeding == config.SeedPerlin:
			life.PerlinSeed(g, s, w.cfg.PerlinThreshold, w.cfg.PerlinScale)
		default:
			life.Randomize(g, rand.New(rand.NewSource(s)), w.cfg.Density)
		}
		level.Debug(w.logger).Log("msg", "grid seeded", "grid", i, "seed", s, "alive", life.CountAlive(g))
	}
	w.cfg.Seed = seed
	w.generation = 0
	level.Info(w.logger).Log("msg", "world reseeded", "seed", seed, "grids", len(w.grids), "seeding", w.seedingName())
}

func (w *World) seedingName() string {
	if w.pattern != nil {
		return "pattern"
	}
	return w.cfg.Seeding
}

// Tick advances every grid by exactly one generation. Grids share no state, so
// they are stepped concurrently; Tick returns once all of them are done.
func (w *World) Tick() {
	if len(w.grids) == 1 {
		w.steppers[0].Step(w.grids[0])
	} else {
		var wg sync.WaitGroup
		for i := range w.grids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.steppers[i].Step(w.grids[i])
			}()
		}
		wg.Wait()
	}
	w.generation++
	level.Debug(w.logger).Log("msg", "tick", "generation", w.generation, "alive", aliveCounts{w})
}

// Run calls Tick n times.
func (w *World) Run(n int) {
	for i := 0; i < n; i++ {
		w.Tick()
	}
}

// Restore overwrites grid i with the contents of g.
func (w *World) Restore(i int, g *grid.Grid[life.CellState]) error {
	if i < 0 || i >= len(w.grids) {
		return fmt.Errorf("no grid %d", i)
	}
	gw, gh := g.Dimensions()
	if ww, wh := w.grids[i].Dimensions(); gw != ww || gh != wh {
		return fmt.Errorf("grid is %dx%d, world grids are %dx%d", gw, gh, ww, wh)
	}
	w.grids[i].CopyFrom(g)
	level.Info(w.logger).Log("msg", "grid restored", "grid", i, "alive", life.CountAlive(g))
	return nil
}

// RestoreSnapshot overwrites grid i with the cells of s and resumes the
// generation count and seed recorded in it.
func (w *World) RestoreSnapshot(i int, s snapshot.Snapshot) error {
	g, err := s.Grid()
	if err != nil {
		return err
	}
	if err := w.Restore(i, g); err != nil {
		return err
	}
	w.generation = s.Generation
	w.cfg.Seed = s.Seed
	return nil
}

// Grid returns grid i. Callers must not hold on to it across ticks they do
// not control.
func (w *World) Grid(i int) *grid.Grid[life.CellState] { return w.grids[i] }

// Len returns the number of grids.
func (w *World) Len() int { return len(w.grids) }

// Generation returns the number of ticks since the last reseed.
func (w *World) Generation() int { return w.generation }

// Seed returns the seed of the last reseed.
func (w *World) Seed() int64 { return w.cfg.Seed }

// aliveCounts defers counting until a log record is actually encoded.
type aliveCounts struct{ w *World }

func (a aliveCounts) String() string { return fmt.Sprint(a.w.AliveCounts()) }

// AliveCounts returns the alive cell count of each grid.
func (w *World) AliveCounts() []int {
	counts := make([]int, len(w.grids))
	for i, g := range w.grids {
		counts[i] = life.CountAlive(g)
	}
	return counts
}
