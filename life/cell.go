// Package life implements Conway's Game of Life over a grid.Grid with a
// finite, non-wrapping edge.
package life

// CellState is the state of a single cell. The zero value is Dead.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (c CellState) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Next applies the standard B3/S23 rule to a cell with n alive neighbours.
func Next(c CellState, n int) CellState {
	if n == 3 || (c == Alive && n == 2) {
		return Alive
	}
	return Dead
}
