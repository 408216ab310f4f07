// Package snapshot saves and loads grid contents as JSON.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olivierh59500/sprite-life-go/grid"
	"github.com/olivierh59500/sprite-life-go/life"
)

// Snapshot is the on-disk form of one grid. Rows hold one string per row,
// 'O' for alive and '.' for dead.
type Snapshot struct {
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Generation int      `json:"generation"`
	Seed       int64    `json:"seed"`
	Rows       []string `json:"rows"`
}

// Capture exports g in row-major order.
func Capture(g *grid.Grid[life.CellState], generation int, seed int64) Snapshot {
	w, h := g.Dimensions()
	s := Snapshot{
		Width:      w,
		Height:     h,
		Generation: generation,
		Seed:       seed,
		Rows:       make([]string, 0, h),
	}
	row := make([]byte, 0, w)
	for c := range g.All() {
		if c == life.Alive {
			row = append(row, 'O')
		} else {
			row = append(row, '.')
		}
		if len(row) == w {
			s.Rows = append(s.Rows, string(row))
			row = row[:0]
		}
	}
	return s
}

// Grid rebuilds the grid described by s.
func (s Snapshot) Grid() (*grid.Grid[life.CellState], error) {
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("snapshot: invalid size %dx%d", s.Width, s.Height)
	}
	if s.Width > 0 && len(s.Rows) != s.Height {
		return nil, fmt.Errorf("snapshot: %d rows, want %d", len(s.Rows), s.Height)
	}
	g := grid.New[life.CellState](s.Width, s.Height)
	for y, row := range s.Rows {
		if len(row) != s.Width {
			return nil, fmt.Errorf("snapshot: row %d has %d cells, want %d", y, len(row), s.Width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case 'O':
				g.Set(x, y, life.Alive)
			case '.':
			default:
				return nil, fmt.Errorf("snapshot: unexpected %q at row %d column %d", row[x], y, x)
			}
		}
	}
	return g, nil
}

// Save writes s to filename.
func (s Snapshot) Save(filename string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot written by Save.
func Load(filename string) (Snapshot, error) {
	var s Snapshot
	data, err := os.ReadFile(filename)
	if err != nil {
		return s, fmt.Errorf("read snapshot: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse snapshot %s: %w", filename, err)
	}
	return s, nil
}
