package life

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/olivierh59500/sprite-life-go/grid"
)

// Perlin noise parameters
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// Randomize sets each cell Alive with probability density, Dead otherwise.
func Randomize(g *grid.Grid[CellState], rng *rand.Rand, density float64) {
	w, h := g.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Dead
			if rng.Float64() < density {
				c = Alive
			}
			g.Set(x, y, c)
		}
	}
}

// PerlinSeed sets cells Alive where 2D Perlin noise sampled at
// (x*scale, y*scale) exceeds threshold. Noise values fall roughly in [-1, 1].
func PerlinSeed(g *grid.Grid[CellState], seed int64, threshold, scale float64) {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)
	w, h := g.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Dead
			if p.Noise2D(float64(x)*scale, float64(y)*scale) > threshold {
				c = Alive
			}
			g.Set(x, y, c)
		}
	}
}
