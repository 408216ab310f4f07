package life

import (
	"sync"

	"github.com/olivierh59500/sprite-life-go/grid"
)

// Moore neighbourhood, centre excluded.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Stepper advances grids one generation at a time. It keeps one scratch grid
// and reuses it while the dimensions it is handed stay the same.
//
// A Stepper must not be used by more than one goroutine at a time; give each
// grid its own.
type Stepper struct {
	// Workers is the number of goroutines sharing the per-cell phase.
	// Values below 2 compute the generation on the calling goroutine.
	Workers int

	scratch *grid.Grid[CellState]
}

// NewStepper returns a Stepper that splits each generation across workers.
func NewStepper(workers int) *Stepper {
	return &Stepper{Workers: workers}
}

// Step replaces the contents of g with its next generation.
func (s *Stepper) Step(g *grid.Grid[CellState]) {
	w, h := g.Dimensions()
	if w == 0 || h == 0 {
		return
	}
	if s.scratch == nil {
		s.scratch = grid.New[CellState](w, h)
	} else if sw, sh := s.scratch.Dimensions(); sw != w || sh != h {
		s.scratch = grid.New[CellState](w, h)
	}

	workers := s.Workers
	if workers > h {
		workers = h
	}
	if workers < 2 {
		computeRows(g, s.scratch, 0, h)
	} else {
		var wg sync.WaitGroup
		band := (h + workers - 1) / workers
		for y0 := 0; y0 < h; y0 += band {
			y1 := min(y0+band, h)
			wg.Add(1)
			go func() {
				defer wg.Done()
				computeRows(g, s.scratch, y0, y1)
			}()
		}
		wg.Wait()
	}

	g.CopyFrom(s.scratch)
}

// Step advances g by one generation using a scratch grid allocated for
// this call only.
func Step(g *grid.Grid[CellState]) {
	var s Stepper
	s.Step(g)
}

// computeRows reads rows [y0, y1) of cur and writes the next states into the
// same rows of next.
func computeRows(cur, next *grid.Grid[CellState], y0, y1 int) {
	w, _ := cur.Dimensions()
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			next.Set(x, y, Next(cur.Get(x, y), AliveNeighbours(cur, x, y)))
		}
	}
}

// AliveNeighbours counts alive cells in the Moore neighbourhood of (x, y).
// Coordinates off the grid count as dead.
func AliveNeighbours(g *grid.Grid[CellState], x, y int) int {
	n := 0
	for _, off := range neighbourOffsets {
		if c, ok := g.TryGet(x+off[0], y+off[1]); ok && c == Alive {
			n++
		}
	}
	return n
}

// CountAlive returns the number of alive cells in g.
func CountAlive(g *grid.Grid[CellState]) int {
	n := 0
	for c := range g.All() {
		if c == Alive {
			n++
		}
	}
	return n
}
