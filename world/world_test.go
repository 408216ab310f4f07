package world

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/olivierh59500/sprite-life-go/config"
	"github.com/olivierh59500/sprite-life-go/grid"
	"github.com/olivierh59500/sprite-life-go/life"
	"github.com/olivierh59500/sprite-life-go/snapshot"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Width, cfg.Height = 24, 16
	cfg.Grids = 3
	cfg.Workers = 2
	cfg.Seed = 5
	return cfg
}

func TestTickMatchesIndependentSteppers(t *testing.T) {
	w, err := New(smallConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	refs := make([]*grid.Grid[life.CellState], w.Len())
	for i := range refs {
		refs[i] = w.Grid(i).Clone()
	}

	w.Run(5)
	if w.Generation() != 5 {
		t.Fatalf("Generation() = %d", w.Generation())
	}
	for i, ref := range refs {
		for n := 0; n < 5; n++ {
			life.Step(ref)
		}
		if !grid.Equal(ref, w.Grid(i)) {
			t.Errorf("grid %d diverged from a serial reference", i)
		}
	}
}

func TestGridsSeededIndependently(t *testing.T) {
	w, err := New(smallConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if grid.Equal(w.Grid(0), w.Grid(1)) {
		t.Error("grids 0 and 1 received the same seed")
	}

	again, err := New(smallConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < w.Len(); i++ {
		if !grid.Equal(w.Grid(i), again.Grid(i)) {
			t.Errorf("grid %d not reproducible from the same seed", i)
		}
	}
}

func TestReseedResetsGeneration(t *testing.T) {
	var buf bytes.Buffer
	w, err := New(smallConfig(), log.NewLogfmtLogger(&buf))
	if err != nil {
		t.Fatal(err)
	}
	w.Run(3)
	w.Reseed(11)
	if w.Generation() != 0 || w.Seed() != 11 {
		t.Errorf("generation %d, seed %d", w.Generation(), w.Seed())
	}
	if !strings.Contains(buf.String(), "msg=\"world reseeded\" seed=11") {
		t.Errorf("reseed not logged: %s", buf.String())
	}
}

func TestPerlinSeeding(t *testing.T) {
	cfg := smallConfig()
	cfg.Seeding = config.SeedPerlin
	cfg.PerlinThreshold = 5
	w, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range w.AliveCounts() {
		if n != 0 {
			t.Errorf("alive count %d above unreachable threshold", n)
		}
	}
}

func TestPatternPlacedCentred(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.cells")
	if err := os.WriteFile(path, []byte("!blinker\nOOO\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := smallConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Grids = 1
	cfg.Pattern = path
	w, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	g := w.Grid(0)
	if life.CountAlive(g) != 3 || g.Get(1, 2) != life.Alive || g.Get(3, 2) != life.Alive {
		t.Fatalf("pattern not centred:\n%s", life.Format(g))
	}
	w.Tick()
	if g.Get(2, 1) != life.Alive || g.Get(2, 3) != life.Alive || g.Get(1, 2) != life.Dead {
		t.Fatalf("blinker did not rotate:\n%s", life.Format(g))
	}
}

func TestPatternTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.cells")
	if err := os.WriteFile(path, []byte("OOOOOO\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := smallConfig()
	cfg.Width = 4
	cfg.Pattern = path
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("oversized pattern accepted")
	}
}

func TestRestore(t *testing.T) {
	w, err := New(smallConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	blank := grid.New[life.CellState](24, 16)
	if err := w.Restore(1, blank); err != nil {
		t.Fatal(err)
	}
	if life.CountAlive(w.Grid(1)) != 0 {
		t.Error("grid 1 not overwritten")
	}
	if err := w.Restore(1, grid.New[life.CellState](3, 3)); err == nil {
		t.Error("mismatched dimensions accepted")
	}
	if err := w.Restore(7, blank); err == nil {
		t.Error("out of range grid index accepted")
	}
}

func TestEmptyWorldTicks(t *testing.T) {
	cfg := smallConfig()
	cfg.Width, cfg.Height = 0, 8
	w, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Run(2)
	if w.Generation() != 2 {
		t.Errorf("Generation() = %d", w.Generation())
	}
}

func TestInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Grids = 0
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("invalid config accepted")
	}
}

func TestRestoreSnapshotResumesGenerationAndSeed(t *testing.T) {
	w, err := New(smallConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Run(100)
	want := w.Grid(2).Clone()

	path := filepath.Join(t.TempDir(), "snap.json")
	if err := snapshot.Capture(w.Grid(2), w.Generation(), w.Seed()).Save(path); err != nil {
		t.Fatal(err)
	}

	w.Reseed(77)
	s, err := snapshot.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.RestoreSnapshot(2, s); err != nil {
		t.Fatal(err)
	}
	if w.Generation() != 100 || w.Seed() != 5 {
		t.Errorf("generation %d, seed %d; want 100, 5", w.Generation(), w.Seed())
	}
	if !grid.Equal(w.Grid(2), want) {
		t.Error("restored cells differ from the saved grid")
	}

	bad := snapshot.Snapshot{Width: 3, Height: 3, Generation: 9, Seed: 1, Rows: []string{"...", "...", "..."}}
	if err := w.RestoreSnapshot(0, bad); err == nil {
		t.Fatal("mismatched snapshot accepted")
	}
	if w.Generation() != 100 || w.Seed() != 5 {
		t.Error("failed restore changed generation or seed")
	}
}

func TestTickLogsAliveCountsLazily(t *testing.T) {
	var alive any
	logger := log.LoggerFunc(func(keyvals ...any) error {
		for i := 0; i+1 < len(keyvals); i += 2 {
			if keyvals[i] == "alive" {
				alive = keyvals[i+1]
			}
		}
		return nil
	})
	w, err := New(smallConfig(), logger)
	if err != nil {
		t.Fatal(err)
	}
	w.Tick()

	s, ok := alive.(fmt.Stringer)
	if !ok {
		t.Fatalf("alive logged as %T, want a fmt.Stringer", alive)
	}
	if got, want := s.String(), fmt.Sprint(w.AliveCounts()); got != want {
		t.Errorf("alive = %s, want %s", got, want)
	}

	var buf bytes.Buffer
	w, err = New(smallConfig(), level.NewFilter(log.NewLogfmtLogger(&buf), level.AllowDebug()))
	if err != nil {
		t.Fatal(err)
	}
	w.Tick()
	if want := fmt.Sprintf("alive=%q", fmt.Sprint(w.AliveCounts())); !strings.Contains(buf.String(), want) {
		t.Errorf("tick record missing %s: %s", want, buf.String())
	}
}
