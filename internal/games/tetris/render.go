package tetris

import (
	"fmt"

	"github.com/vovakirdan/cozy-tetris/internal/core"
	"github.com/vovakirdan/cozy-tetris/internal/games/tetris/engine"
)

// Each board cell is two characters wide so blocks look square.
const (
	cellW      = 2
	panelW     = 14
	panelGap   = 2
	previewMax = engine.MaxShapeSize
)

var (
	blockRunes = [cellW]rune{'█', '█'}
	ghostRunes = [cellW]rune{'░', '░'}
	emptyRunes = [cellW]rune{' ', '·'}
)

func (g *Game) boardW() int { return g.cfg.Grid.Cols*cellW + 2 }
func (g *Game) boardH() int { return g.cfg.Grid.Rows + 2 }

func (g *Game) minWidth() int  { return g.boardW() + panelGap + panelW }
func (g *Game) minHeight() int { return g.boardH() }

// Resize adapts the layout to a new screen size without restarting the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < g.minWidth() || height < g.minHeight()
}

// Render draws the board, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	ox := (dst.Width() - g.minWidth()) / 2
	oy := (dst.Height() - g.minHeight()) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}

	g.renderBoard(dst, ox, oy)
	g.renderPanel(dst, ox+g.boardW()+panelGap, oy)

	if g.paused {
		g.renderOverlay(dst, ox, oy, "PAUSED", "P to resume")
	}
}

func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	dst.DrawBoxColored(core.NewRect(ox, oy, g.boardW(), g.boardH()), core.ColorGray)

	snap := g.snap
	cell := func(x, y int, runes [cellW]rune, c core.Color) {
		sx := ox + 1 + x*cellW
		sy := oy + 1 + y
		for i, r := range runes {
			dst.SetColored(sx+i, sy, r, c)
		}
	}

	for y, row := range snap.Grid {
		for x, v := range row {
			if v == 0 {
				cell(x, y, emptyRunes, core.ColorGray)
				continue
			}
			cell(x, y, blockRunes, core.CustomColor(v))
		}
	}

	color := core.CustomColor(engine.MatrixColor(snap.Active))
	snap.GhostCells(func(x, y int) {
		if y >= 0 && snap.Grid[y][x] == 0 {
			cell(x, y, ghostRunes, color)
		}
	})
	snap.ActiveCells(func(x, y, v int) {
		if y >= 0 {
			cell(x, y, blockRunes, core.CustomColor(v))
		}
	})
}

func (g *Game) renderPanel(dst *core.Screen, px, py int) {
	snap := g.snap
	y := py
	line := func(label string, value int) {
		dst.DrawTextColored(px, y, label, core.ColorGray)
		dst.DrawText(px+6, y, fmt.Sprintf("%d", value))
		y += 2
	}

	dst.DrawTextColored(px, y, g.Title(), core.ColorBrightMagenta)
	y += 2
	line("SCORE", snap.Score)
	line("HIGH", snap.HighScore)
	line("LINES", snap.Lines)
	line("LEVEL", snap.Level)

	if snap.Next != nil {
		dst.DrawTextColored(px, y, "NEXT", core.ColorGray)
		y++
		color := core.CustomColor(engine.MatrixColor(snap.Next))
		for ny, row := range snap.Next {
			for nx, v := range row {
				if v != 0 {
					for i, r := range blockRunes {
						dst.SetColored(px+nx*cellW+i, y+ny, r, color)
					}
				}
			}
		}
		y += previewMax + 1
	}

	if y <= py+g.boardH()-3 {
		dst.DrawTextColored(px, py+g.boardH()-3, "←→ move ↑ rot", core.ColorGray)
		dst.DrawTextColored(px, py+g.boardH()-2, "↓ soft ␣ hard", core.ColorGray)
		dst.DrawTextColored(px, py+g.boardH()-1, "P pause Q quit", core.ColorGray)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, ox, oy int, title, hint string) {
	w := g.boardW() - 4
	if w < len(hint)+2 {
		w = len(hint) + 2
	}
	x := ox + (g.boardW()-w)/2
	y := oy + g.boardH()/2 - 2
	r := core.NewRect(x, y, w, 4)
	dst.DrawRect(r, ' ')
	dst.DrawBoxColored(r, core.ColorBrightWhite)
	dst.DrawTextColored(x+(w-len(title))/2, y+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(x+(w-len(hint))/2, y+2, hint, core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, "Terminal too small")
	dst.DrawTextCentered(cy, fmt.Sprintf("Need %dx%d, have %dx%d", g.minWidth(), g.minHeight(), dst.Width(), dst.Height()))
}
