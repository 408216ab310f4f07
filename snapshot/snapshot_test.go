package snapshot

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/olivierh59500/sprite-life-go/grid"
	"github.com/olivierh59500/sprite-life-go/life"
)

func TestCaptureRows(t *testing.T) {
	g := grid.New[life.CellState](3, 2)
	g.Set(0, 0, life.Alive)
	g.Set(2, 1, life.Alive)

	s := Capture(g, 4, 9)
	want := []string{"O..", "..O"}
	if len(s.Rows) != len(want) {
		t.Fatalf("rows = %q", s.Rows)
	}
	for i := range want {
		if s.Rows[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, s.Rows[i], want[i])
		}
	}
	if s.Generation != 4 || s.Seed != 9 {
		t.Errorf("metadata = %+v", s)
	}
}

func TestSaveLoad(t *testing.T) {
	g := grid.New[life.CellState](17, 9)
	life.Randomize(g, rand.New(rand.NewSource(3)), 0.5)

	path := filepath.Join(t.TempDir(), "snap.json")
	if err := Capture(g, 12, 3).Save(path); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if !grid.Equal(g, got) {
		t.Fatal("loaded grid differs")
	}
}

func TestEmptyGrid(t *testing.T) {
	s := Capture(grid.New[life.CellState](0, 4), 0, 0)
	g, err := s.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if w, h := g.Dimensions(); w != 0 || h != 4 {
		t.Errorf("dimensions %dx%d", w, h)
	}
}

func TestGridRejectsMalformed(t *testing.T) {
	cases := map[string]Snapshot{
		"short row":    {Width: 3, Height: 1, Rows: []string{"OO"}},
		"missing rows": {Width: 2, Height: 2, Rows: []string{".."}},
		"bad cell":     {Width: 2, Height: 1, Rows: []string{"Ox"}},
		"negative":     {Width: -1, Height: 1},
	}
	for name, s := range cases {
		if _, err := s.Grid(); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing file loaded")
	}
}
