package game

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-chase/internal/chase"
	"github.com/vovakirdan/tui-chase/internal/core"
)

// DefaultTileSize is the PNG tile edge in pixels.
const DefaultTileSize = 16

const pngHUDHeight = 20

// Image draws the current maze as a picture with tile pixels per tile.
func (g *Game) Image(tile int) image.Image {
	if tile <= 0 {
		tile = DefaultTileSize
	}
	view := g.state.Map()
	ts := float64(tile)
	w, h := view.Cols()*tile, view.Rows()*tile+pngHUDHeight

	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	setColor(dc, core.ColorWhite)
	dc.DrawString(fmt.Sprintf("%s  score %d  best %d", g.Title(), g.state.Score(), g.best), 4, 14)

	dc.Translate(0, pngHUDHeight)

	for r := range view.Rows() {
		for c := range view.Cols() {
			x, y := float64(c)*ts, float64(r)*ts
			switch view.At(r, c) {
			case chase.CellWall:
				setColor(dc, core.ColorBlue)
				dc.DrawRectangle(x, y, ts, ts)
				dc.Fill()
			case chase.CellCollectible:
				setColor(dc, core.ColorOrange)
				dc.DrawCircle(x+ts/2, y+ts/2, ts/8)
				dc.Fill()
			}
		}
	}

	for _, e := range g.state.Enemies() {
		drawEnemy(dc, float64(e.Col)*ts, float64(e.Row)*ts, ts, enemyColor(e.Label))
	}

	p := g.state.Player()
	drawPlayer(dc, float64(p.Col)*ts, float64(p.Row)*ts, ts, p)

	return dc.Image()
}

// drawPlayer draws a disc with a wedge cut out in the direction of travel.
func drawPlayer(dc *gg.Context, x, y, ts float64, p chase.Player) {
	cx, cy, radius := x+ts/2, y+ts/2, ts/2-1
	setColor(dc, core.ColorYellow)

	if !MouthOpen(p.Phase) {
		dc.DrawCircle(cx, cy, radius)
		dc.Fill()
		return
	}

	facing := 0.0
	switch p.Dir {
	case chase.DirDown:
		facing = math.Pi / 2
	case chase.DirLeft:
		facing = math.Pi
	case chase.DirUp:
		facing = -math.Pi / 2
	}
	mouth := gg.Radians(30) * math.Abs(math.Sin(p.Phase))
	dc.MoveTo(cx, cy)
	dc.DrawArc(cx, cy, radius, facing+mouth, facing+2*math.Pi-mouth)
	dc.ClosePath()
	dc.Fill()
}

// drawEnemy draws a dome with a flat skirt.
func drawEnemy(dc *gg.Context, x, y, ts float64, c core.Color) {
	radius := ts/2 - 1
	cx, cy := x+ts/2, y+ts/2

	setColor(dc, c)
	dc.DrawArc(cx, cy, radius, math.Pi, 2*math.Pi)
	dc.LineTo(cx+radius, y+ts-1)
	dc.LineTo(cx-radius, y+ts-1)
	dc.ClosePath()
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(cx-radius/3, cy-radius/4, radius/4)
	dc.DrawCircle(cx+radius/3, cy-radius/4, radius/4)
	dc.Fill()
}

func setColor(dc *gg.Context, c core.Color) {
	r, g, b := c.RGB()
	dc.SetRGB255(int(r), int(g), int(b))
}

// EncodePNG writes the current maze as PNG.
func (g *Game) EncodePNG(w io.Writer, tile int) error {
	dc := gg.NewContextForImage(g.Image(tile))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("game: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current maze to path, creating parent directories.
func (g *Game) SavePNG(path string, tile int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("game: create directory: %w", err)
	}
	if err := gg.SavePNG(path, g.Image(tile)); err != nil {
		return fmt.Errorf("game: save png: %w", err)
	}
	return nil
}
