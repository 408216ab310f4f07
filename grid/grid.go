// Package grid provides a fixed-size, row-major dense 2D container.
package grid

import (
	"fmt"
	"iter"
	"slices"
)

// OutOfRangeError is the panic value raised by Get and Set when the
// coordinate lies outside the grid.
type OutOfRangeError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("grid: index (%d, %d) out of range for %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// Grid maps integer (x, y) coordinates to values of T.
// Storage index is y*width + x.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New allocates a width x height grid with every cell zero-valued.
func New[T any](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// Dimensions returns the width and height.
func (g *Grid[T]) Dimensions() (int, int) {
	return g.width, g.height
}

// Len returns width*height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// CoordToIndex converts (x, y) to a storage index and doubles as the bounds check
// for every other accessor.
func (g *Grid[T]) CoordToIndex(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, false
	}
	return y*g.width + x, true
}

// IndexToCoord is the inverse of CoordToIndex.
func (g *Grid[T]) IndexToCoord(i int) (x, y int, ok bool) {
	if i < 0 || i >= g.Len() {
		return 0, 0, false
	}
	return i % g.width, i / g.width, true
}

// TryGet returns the value at (x, y), or false when out of bounds.
func (g *Grid[T]) TryGet(x, y int) (T, bool) {
	i, ok := g.CoordToIndex(x, y)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[i], true
}

// Get returns the value at (x, y). It panics with *OutOfRangeError when
// (x, y) is out of bounds.
func (g *Grid[T]) Get(x, y int) T {
	return g.cells[g.mustIndex(x, y)]
}

// Set stores v at (x, y). It panics with *OutOfRangeError when (x, y) is out
// of bounds.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.mustIndex(x, y)] = v
}

func (g *Grid[T]) mustIndex(x, y int) int {
	i, ok := g.CoordToIndex(x, y)
	if !ok {
		panic(&OutOfRangeError{X: x, Y: y, Width: g.width, Height: g.height})
	}
	return i
}

// All yields every stored value in row-major order. The sequence may be
// ranged over any number of times.
func (g *Grid[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells yields (index, value) pairs in row-major order.
func (g *Grid[T]) Cells() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range g.cells {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Fill overwrites every cell with v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// CopyFrom overwrites every cell with the cell at the same coordinate in src.
// Both grids must have the same dimensions.
func (g *Grid[T]) CopyFrom(src *Grid[T]) {
	if g.width != src.width || g.height != src.height {
		panic(fmt.Sprintf("grid: copy from %dx%d into %dx%d", src.width, src.height, g.width, g.height))
	}
	copy(g.cells, src.cells)
}

// Clone returns a deep copy.
func (g *Grid[T]) Clone() *Grid[T] {
	c := New[T](g.width, g.height)
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether a and b have the same dimensions and contents.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	return slices.Equal(a.cells, b.cells)
}
