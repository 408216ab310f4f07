package life

import (
	"fmt"
	"strings"

	"github.com/olivierh59500/sprite-life-go/grid"
)

// ParsePattern reads a plaintext pattern: one row per line, 'O', '#' or '*'
// for alive and '.' for dead. Lines starting with '!' are comments. Short
// rows are padded with dead cells.
func ParsePattern(text string) (*grid.Grid[CellState], error) {
	var rows []string
	width := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		rows = append(rows, line)
		width = max(width, len(line))
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	g := grid.New[CellState](width, len(rows))
	for y, row := range rows {
		for x, r := range []byte(row) {
			switch r {
			case 'O', '#', '*':
				g.Set(x, y, Alive)
			case '.':
			default:
				return nil, fmt.Errorf("pattern: unexpected %q at line %d column %d", r, y+1, x+1)
			}
		}
	}
	return g, nil
}

// Place writes pattern into dst with its top-left corner at (x, y).
// The whole pattern must fit inside dst.
func Place(dst, pattern *grid.Grid[CellState], x, y int) {
	pw, ph := pattern.Dimensions()
	for py := 0; py < ph; py++ {
		for px := 0; px < pw; px++ {
			dst.Set(x+px, y+py, pattern.Get(px, py))
		}
	}
}

// Format renders g in the same plaintext form ParsePattern reads.
func Format(g *grid.Grid[CellState]) string {
	w, h := g.Dimensions()
	var b strings.Builder
	b.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.Get(x, y) == Alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
