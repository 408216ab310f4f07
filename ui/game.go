// Package ui presents a world.World in an Ebitengine window.
package ui

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/sprite-life-go/life"
	"github.com/olivierh59500/sprite-life-go/snapshot"
	"github.com/olivierh59500/sprite-life-go/world"
)

// Display constants
const (
	GridGap  = 4 // pixels between grids
	MinZoom  = 0.25
	MaxZoom  = 16.0
	ZoomStep = 0.1
)

var deadColor = color.RGBA{0x57, 0x5c, 0x85, 0xff}

// Game implements ebiten.Game. Each tick steps the world once; each frame
// draws every grid cell as a Scale x Scale block.
type Game struct {
	world  *world.World
	logger log.Logger
	scale  int

	sprites []*ebiten.Image // one per grid, one pixel per cell
	pixels  []byte

	Paused  bool
	ShowHUD bool
	Zoom    float64
	CamX    float64
	CamY    float64

	prevMX, prevMY float64
	rng            *rand.Rand
}

// New returns a Game presenting w with scale screen pixels per cell.
func New(w *world.World, scale int, logger log.Logger) *Game {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	g := &Game{
		world:   w,
		logger:  logger,
		scale:   scale,
		ShowHUD: true,
		Zoom:    1,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	gw, gh := w.Grid(0).Dimensions()
	if gw > 0 && gh > 0 {
		for i := 0; i < w.Len(); i++ {
			g.sprites = append(g.sprites, ebiten.NewImage(gw, gh))
		}
		g.pixels = make([]byte, w.Grid(0).Len()*4)
	}
	return g
}

// ScreenSize returns the window size needed to show every grid side by side.
func (g *Game) ScreenSize() (int, int) {
	gw, gh := g.world.Grid(0).Dimensions()
	n := g.world.Len()
	w := n*gw*g.scale + (n-1)*GridGap
	return max(w, 1), max(gh*g.scale, 1)
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleInput()

	if g.Paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.world.Tick()
		}
		return nil
	}
	g.world.Tick()
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	gw, _ := g.world.Grid(0).Dimensions()
	for i, sprite := range g.sprites {
		g.paint(i)
		sprite.WritePixels(g.pixels)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(g.scale), float64(g.scale))
		op.GeoM.Translate(float64(i*(gw*g.scale+GridGap)), 0)
		op.GeoM.Translate(-g.CamX, -g.CamY)
		op.GeoM.Scale(g.Zoom, g.Zoom)
		screen.DrawImage(sprite, op)
	}

	if g.ShowHUD {
		state := "running"
		if g.Paused {
			state = "paused"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  seed %d  alive %v  %s  tps %.0f",
			g.world.Generation(), g.world.Seed(), g.world.AliveCounts(), state, ebiten.ActualTPS()))
	}
}

// paint renders grid i into g.pixels.
func (g *Game) paint(i int) {
	alive := gridColor(i, g.world.Len())
	for j, c := range g.world.Grid(i).Cells() {
		col := deadColor
		if c == life.Alive {
			col = alive
		}
		p := g.pixels[j*4 : j*4+4]
		p[0], p[1], p[2], p[3] = col.R, col.G, col.B, col.A
	}
}

// Layout returns the screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.ShowHUD = !g.ShowHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reseed(g.rng.Int63())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.load()
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		g.Zoom, g.CamX, g.CamY = 1, 0, 0
	}

	// Zoom
	_, wheelY := ebiten.Wheel()
	g.Zoom = math.Min(math.Max(g.Zoom+wheelY*ZoomStep, MinZoom), MaxZoom)

	// Pan (drag)
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.CamX -= (float64(mx) - g.prevMX) / g.Zoom
		g.CamY -= (float64(my) - g.prevMY) / g.Zoom
	}
	g.prevMX = float64(mx)
	g.prevMY = float64(my)
}

func snapshotFile(i int) string {
	return fmt.Sprintf("snapshot-%d.json", i)
}

// save writes one snapshot file per grid
func (g *Game) save() {
	for i := 0; i < g.world.Len(); i++ {
		s := snapshot.Capture(g.world.Grid(i), g.world.Generation(), g.world.Seed())
		if err := s.Save(snapshotFile(i)); err != nil {
			level.Error(g.logger).Log("msg", "save failed", "grid", i, "err", err)
			return
		}
	}
	level.Info(g.logger).Log("msg", "snapshot saved", "grids", g.world.Len(), "generation", g.world.Generation())
}

// load restores every grid that has a snapshot file
func (g *Game) load() {
	for i := 0; i < g.world.Len(); i++ {
		s, err := snapshot.Load(snapshotFile(i))
		if err != nil {
			level.Warn(g.logger).Log("msg", "load failed", "grid", i, "err", err)
			continue
		}
		if err := g.world.RestoreSnapshot(i, s); err != nil {
			level.Error(g.logger).Log("msg", "restore failed", "grid", i, "err", err)
		}
	}
}
