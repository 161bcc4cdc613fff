package tiltmaze

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/games/tiltmaze/core"
)

const hudHeight = 2

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.genErr != nil {
		g.renderOverlay(dst, "Could not build the maze", g.genErr.Error())
		return
	}

	g.renderWalls(dst)
	g.renderHoles(dst)
	g.renderBall(dst)
	g.renderTiltGauge(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "You made it!", fmt.Sprintf("Score: %d — press R to retry", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" %s — Time: %.1fs  Falls: %d", g.Title(), g.elapsedSeconds(), g.deaths)
	if g.mode == ModeDaily {
		hud += fmt.Sprintf("  Puzzle #%d", g.seed)
	}
	dst.DrawText(0, 0, hud)

	if g.message != "" && g.tick < g.messageUntil {
		dst.DrawTextColored(dst.Width()-len(g.message)-1, 0, g.message, platformcore.ColorBrightRed)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWalls draws the maze lattice: posts at every grid intersection,
// runs along closed wall segments. Only north and west walls are drawn per
// cell; symmetry means the south and east edges of the board need one extra
// pass each.
func (g *Game) renderWalls(dst *platformcore.Screen) {
	size := g.maze.Size

	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			dst.SetColored(g.offsetX+x*g.cellW, g.offsetY+y*g.cellH, '·', platformcore.ColorGray)
		}
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := g.maze.At(x, y)
			px := g.offsetX + x*g.cellW
			py := g.offsetY + y*g.cellH
			if c.North {
				for i := 1; i < g.cellW; i++ {
					dst.SetColored(px+i, py, '─', platformcore.ColorBlue)
				}
			}
			if c.West {
				for i := 1; i < g.cellH; i++ {
					dst.SetColored(px, py+i, '│', platformcore.ColorBlue)
				}
			}
			if y == size-1 && c.South {
				for i := 1; i < g.cellW; i++ {
					dst.SetColored(px+i, py+g.cellH, '─', platformcore.ColorBlue)
				}
			}
			if x == size-1 && c.East {
				for i := 1; i < g.cellH; i++ {
					dst.SetColored(px+g.cellW, py+i, '│', platformcore.ColorBlue)
				}
			}
		}
	}
}

// renderHoles draws the hazards and the goal at their world positions.
func (g *Game) renderHoles(dst *platformcore.Screen) {
	for _, h := range g.maze.Holes {
		hx, hy := core.HoleCenter(h, cellSize)
		sx, sy := g.toScreen(hx, hy)
		dst.SetColored(sx, sy, '○', platformcore.ColorRed)
	}

	gx, gy := core.HoleCenter(g.maze.Goal, cellSize)
	sx, sy := g.toScreen(gx, gy)
	dst.SetColored(sx, sy, '◎', platformcore.ColorBrightGreen)
}

// renderBall draws the ball, hidden while it waits to respawn.
func (g *Game) renderBall(dst *platformcore.Screen) {
	if g.resetDelay > 0 {
		return
	}
	sx, sy := g.toScreen(g.ball.X, g.ball.Y)
	dst.SetColored(sx, sy, '●', platformcore.ColorBrightYellow)
}

// renderTiltGauge shows the current board tilt under the maze as a pair of
// arrows whose brightness tracks magnitude.
func (g *Game) renderTiltGauge(dst *platformcore.Screen) {
	y := g.offsetY + g.cfg.Maze.Size*g.cellH + 1
	if y >= dst.Height() {
		return
	}

	gauge := fmt.Sprintf("tilt %s %s", axisGauge(g.tilt.X, '◀', '▶'), axisGauge(g.tilt.Y, '▲', '▼'))
	dst.DrawTextCentered(y, gauge)
}

// axisGauge renders one tilt axis as its dominant direction arrow, or a dot
// when level.
func axisGauge(v float64, neg, pos rune) string {
	switch {
	case v <= -0.05:
		return string(neg)
	case v >= 0.05:
		return string(pos)
	default:
		return "·"
	}
}

// toScreen maps a world position into terminal cells inside the board.
func (g *Game) toScreen(wx, wy float64) (int, int) {
	size := g.cfg.Maze.Size
	sx := g.offsetX + int(math.Round(wx/cellSize*float64(g.cellW)))
	sy := g.offsetY + int(math.Round(wy/cellSize*float64(g.cellH)))
	// Keep glyphs off the lattice border.
	sx = platformcore.Clamp(sx, g.offsetX+1, g.offsetX+size*g.cellW-1)
	sy = platformcore.Clamp(sy, g.offsetY+1, g.offsetY+size*g.cellH-1)
	return sx, sy
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(platformcore.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, ' ')
	dst.DrawBox(platformcore.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
