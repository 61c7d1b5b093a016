package game

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-chase/internal/chase"
	"github.com/vovakirdan/tui-chase/internal/core"
)

const (
	hudHeight    = 2
	footerHeight = 1
)

const footerHelp = " arrows/wasd move  p pause  r restart  enter save  q quit"

// Glyphs drawn for the maze.
const (
	glyphWall        = '█'
	glyphCollectible = '·'
	glyphEnemy       = 'M'
	glyphPlayerShut  = 'O'
)

// Render draws the session into dst. The screen is cleared first.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		rows, cols := g.layout.Size()
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", cols+2, rows+hudHeight+footerHeight))
		return
	}

	ox, oy, cw := g.mapOrigin(dst)
	g.renderMap(dst, ox, oy, cw)
	g.renderEntities(dst, ox, oy, cw)
	g.renderFooter(dst)

	switch {
	case g.cleared:
		g.renderOverlay(dst, "Maze cleared!", "Enter to save, R to play again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// mapOrigin centers the maze horizontally and picks the tile width: two
// columns per tile when it fits, one otherwise.
func (g *Game) mapOrigin(dst *core.Screen) (x, y, cellW int) {
	_, cols := g.layout.Size()
	cellW = 2
	if cols*2 > dst.Width() {
		cellW = 1
	}
	return (dst.Width() - cols*cellW) / 2, hudHeight, cellW
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" %s | Score: %d  Best: %d  Left: %d  Caught: %d",
		g.Title(), st.Score, st.Best, st.Remaining, st.Lives)
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if g.message != "" {
		dst.DrawTextColored(0, y, " "+g.message, core.ColorYellow)
		return
	}
	dst.DrawTextColored(0, y, footerHelp, core.ColorGray)
}

func (g *Game) renderMap(dst *core.Screen, ox, oy, cw int) {
	view := g.state.Map()
	for r := range view.Rows() {
		for c := range view.Cols() {
			x, y := ox+c*cw, oy+r
			switch view.At(r, c) {
			case chase.CellWall:
				for i := range cw {
					dst.SetColored(x+i, y, glyphWall, core.ColorBlue)
				}
			case chase.CellCollectible:
				dst.SetColored(x, y, glyphCollectible, core.ColorGray)
			}
		}
	}
}

func (g *Game) renderEntities(dst *core.Screen, ox, oy, cw int) {
	for _, e := range g.state.Enemies() {
		dst.SetColored(ox+e.Col*cw, oy+e.Row, glyphEnemy, enemyColor(e.Label))
	}

	// The player is drawn last so it stays visible on a shared tile.
	p := g.state.Player()
	dst.SetColored(ox+p.Col*cw, oy+p.Row, playerGlyph(p), core.ColorYellow)
}

// enemyColor maps a roster label to a color; unknown labels draw white.
func enemyColor(label string) core.Color {
	if c, ok := core.ColorByName(label); ok {
		return c
	}
	return core.ColorWhite
}

// MouthOpen reports whether the player's mouth is open for the given
// animation phase. It opens and closes twice per phase cycle.
func MouthOpen(phase float64) bool {
	return math.Sin(2*phase) >= 0
}

// playerGlyph picks a mouth shape facing the direction of travel.
func playerGlyph(p chase.Player) rune {
	if !MouthOpen(p.Phase) {
		return glyphPlayerShut
	}
	switch p.Dir {
	case chase.DirLeft:
		return '>'
	case chase.DirUp:
		return 'V'
	case chase.DirDown:
		return '^'
	default:
		return '<'
	}
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	box := dst.Bounds().CenteredIn(w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
