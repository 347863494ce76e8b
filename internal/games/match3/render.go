package match3

import (
	"fmt"

	"github.com/vovakirdan/tile-crush/internal/core"
)

const (
	cellWidth  = 4 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudLines   = 3
)

// Tile glyphs and colors, indexed by type id.
var tileGlyphs = []rune{'●', '◆', '▲', '■', '★', '✚', '◉', '◈'}

var tileColors = []core.Color{
	core.ColorRed,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorOrange,
}

// boardLayout is the on-screen placement of the board.
type boardLayout struct {
	X, Y int
	W, H int
}

// boardLayout computes the centered board placement for the current screen.
func (g *Game) boardLayout() boardLayout {
	w := g.cfg.Board.Width*cellWidth + 1   // +1 for right border
	h := g.cfg.Board.Height*cellHeight + 1 // +1 for bottom border
	return boardLayout{
		X: (g.screenW - w) / 2,
		Y: hudLines + 1,
		W: w,
		H: h,
	}
}

// cellAtScreen maps a screen position to a board coordinate. Border
// lines between cells map to nothing.
func (g *Game) cellAtScreen(px, py int) (Coord, bool) {
	l := g.boardLayout()
	rx := px - l.X
	ry := py - l.Y
	if rx <= 0 || rx >= l.W-1 || ry <= 0 || ry >= l.H-1 {
		return Coord{}, false
	}
	if rx%cellWidth == 0 || ry%cellHeight == 0 {
		return Coord{}, false
	}
	return C(rx/cellWidth, ry/cellHeight), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.boardLayout()

	g.renderHUD(dst, l)
	g.renderBoard(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score line and mode info.
func (g *Game) renderHUD(dst *core.Screen, l boardLayout) {
	title := g.Title()
	titleX := l.X + (l.W-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(l.X, 1, scoreStr)

	var infoStr string
	if g.mode == ModeMoves {
		infoStr = fmt.Sprintf("Moves: %d/%d", g.movesUsed, g.cfg.Gameplay.Moves)
	} else {
		infoStr = fmt.Sprintf("Best chain: x%d", g.bestChain)
	}
	infoX := l.X + l.W - len(infoStr)
	if infoX < l.X {
		infoX = l.X
	}
	dst.DrawText(infoX, 1, infoStr)

	// Chain indicator while the cascade runs
	if g.engine.Active() && g.engine.Chain() > 1 {
		chainStr := fmt.Sprintf("CHAIN x%d", g.engine.Chain())
		chainX := l.X + (l.W-len(chainStr))/2
		dst.DrawTextColored(chainX, 2, chainStr, core.ColorBrightYellow)
	}
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, l boardLayout) {
	bw := g.cfg.Board.Width
	bh := g.cfg.Board.Height

	// Grid borders
	for y := 0; y <= bh; y++ {
		for x := 0; x <= bw; x++ {
			px := l.X + x*cellWidth
			py := l.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == bw:
				corner = '┐'
			case y == bh && x == 0:
				corner = '└'
			case y == bh && x == bw:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == bh:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == bw:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < bw {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < bh {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	selected, hasSelection := g.selector.Selected()

	// Tiles
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			c := C(x, y)
			t := g.grid.tile(c)

			cx := l.X + x*cellWidth + cellWidth/2
			cy := l.Y + y*cellHeight + cellHeight/2

			if t.Destroyed {
				dst.SetCell(cx, cy, '✸', core.ColorGray)
				continue
			}
			if t.TypeID == EmptyType {
				continue
			}

			glyph := tileGlyphs[t.TypeID%len(tileGlyphs)]
			color := tileColors[t.TypeID%len(tileColors)]
			dst.SetCell(cx, cy, glyph, color)

			// Mark the swapping pair while it animates
			if g.anim != animNone && (c == g.swapA || c == g.swapB) {
				dst.SetCell(cx-1, cy, '‹', core.ColorBrightWhite)
				dst.SetCell(cx+1, cy, '›', core.ColorBrightWhite)
			}
		}
	}

	// Selection marker
	if hasSelection {
		cx := l.X + selected.X*cellWidth + cellWidth/2
		cy := l.Y + selected.Y*cellHeight + cellHeight/2
		dst.SetCell(cx-1, cy, '[', core.ColorBrightCyan)
		dst.SetCell(cx+1, cy, ']', core.ColorBrightCyan)
	}

	// Cursor brackets on the cell border
	if !g.gameOver {
		cx := l.X + g.cursor.X*cellWidth
		cy := l.Y + g.cursor.Y*cellHeight + cellHeight/2
		dst.SetCell(cx, cy, '▸', core.ColorBrightWhite)
		dst.SetCell(cx+cellWidth, cy, '◂', core.ColorBrightWhite)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, l boardLayout) {
	centerX := l.X + l.W/2
	centerY := l.Y + l.H/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		var reason string
		if g.mode == ModeMoves && g.movesUsed >= g.cfg.Gameplay.Moves {
			reason = "Out of moves"
		} else {
			reason = "No valid moves left"
		}
		scoreStr := fmt.Sprintf("Score: %d", g.score)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", reason, scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space/Enter: Pick | Mouse: Pick | P: Pause | R: Restart | Q: Quit"
}
