package hexic

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/Arlandrian/HexicClone/internal/config"
	"github.com/Arlandrian/HexicClone/internal/core"
	hcore "github.com/Arlandrian/HexicClone/internal/games/hexic/core"
)

// Socket layout: each column is cellW characters wide and each row rowH
// lines tall. Odd columns sit half a row (one line) lower.
const (
	cellW   = 4
	rowH    = 2
	hudRows = 2
)

const (
	burstRune = '✶'
	emberRune = '·'
)

// skin is how a tile type is drawn.
type skin struct {
	glyph rune
	color core.Color
}

func buildSkins(cfg config.HexicConfig) map[int]skin {
	skins := make(map[int]skin, len(cfg.Catalog))
	for _, t := range cfg.Catalog {
		r, _ := utf8.DecodeRuneInString(t.Glyph)
		c, _ := core.ParseColor(t.Color)
		skins[t.ID] = skin{glyph: r, color: c}
	}
	return skins
}

// frameSize returns the size of the boxed board for a w x h grid.
func frameSize(w, h int) (fw, fh int) {
	return w*cellW + 3, h*rowH + 1 + 2
}

// minScreen returns the smallest screen that fits board and HUD.
func minScreen(w, h int) (int, int) {
	fw, fh := frameSize(w, h)
	return core.Max(fw, 36), fh + hudRows
}

// columnShift is the downward offset of column x in lines, interpolated for
// tiles moving between columns.
func columnShift(x float32) float32 {
	p := x - 2*float32(math.Floor(float64(x)/2))
	if p > 1 {
		return 2 - p
	}
	return p
}

type layout struct {
	frame core.Rect
	h     int
}

func (g *Game) layout(dst *core.Screen) layout {
	w, h := g.s.board.Grid().Dimensions()
	fw, fh := frameSize(w, h)
	area := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	return layout{frame: area.Centered(fw, fh), h: h}
}

// screenPos maps a grid-space position to a screen cell.
func (l layout) screenPos(x, y float32) (int, int) {
	sx := float32(l.frame.X+2) + x*cellW
	sy := float32(l.frame.Y+1) + (float32(l.h-1)-y)*rowH + columnShift(x)
	return int(math.Round(float64(sx))), int(math.Round(float64(sy)))
}

// insideFrame reports whether a screen row is within the box.
func (l layout) insideFrame(sy int) bool {
	return sy > l.frame.Y && sy < l.frame.Bottom()-1
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		minW, minH := minScreen(g.cfg.Board.Width, g.cfg.Board.Height)
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", minW, minH), core.ColorGray)
		return
	}

	lay := g.layout(dst)
	g.drawHUD(dst, lay)
	dst.DrawBox(lay.frame, core.ColorGray)

	g.drawBursts(dst, lay)
	g.drawTiles(dst, lay)
	if !g.s.over {
		g.drawCursor(dst, lay)
	}

	switch {
	case g.s.over:
		g.drawOverlay(dst, lay, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d", g.s.score), "r: restart  q: quit")
	case g.paused:
		g.drawOverlay(dst, lay, core.ColorBrightYellow, "PAUSED", "p: resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen, lay layout) {
	y := lay.frame.Y - hudRows
	dst.DrawTextColor(lay.frame.X, y, g.Title(), core.ColorBrightCyan)

	stats := fmt.Sprintf("Score %d  Moves %d", g.s.score, g.s.ctrl.Moves())
	if g.s.bombsEnabled() {
		stats += fmt.Sprintf("  Bombs %d", g.s.ctrl.Bombs().Len())
	}
	dst.DrawTextColor(lay.frame.Right()-utf8.RuneCountInString(stats), y, stats, core.ColorWhite)

	if g.lastCombo > 0 {
		combo := fmt.Sprintf("+%d", g.lastCombo*g.cfg.Scoring.PointsPerTile)
		dst.DrawTextColor(lay.frame.Right()-utf8.RuneCountInString(combo), y+1, combo, core.ColorBrightGreen)
	}
}

func (g *Game) drawTiles(dst *core.Screen, lay layout) {
	for _, t := range g.s.board.Grid().Tiles() {
		x, y := g.anim.Position(t)
		sx, sy := lay.screenPos(x, y)
		if !lay.insideFrame(sy) {
			continue
		}

		sk := g.skins[t.Type.ID]
		if t.Bomb != nil {
			dst.SetColor(sx, sy, bombRune(t.Bomb.Remaining), g.bombColor(t.Bomb.Remaining))
			continue
		}
		dst.SetColor(sx, sy, sk.glyph, sk.color)
	}
}

func bombRune(remaining int) rune {
	if remaining > 9 {
		return '+'
	}
	return rune('0' + remaining)
}

// bombColor blinks bombs that are about to go off.
func (g *Game) bombColor(remaining int) core.Color {
	if remaining <= 2 && (g.tick/8)%2 == 0 {
		return core.ColorOrange
	}
	return core.ColorBrightRed
}

func (g *Game) drawBursts(dst *core.Screen, lay layout) {
	for _, b := range g.anim.bursts {
		sx, sy := lay.screenPos(float32(b.at.X), float32(b.at.Y))
		r := emberRune
		if b.level > 0.5 {
			r = burstRune
		}
		dst.SetColor(sx, sy, r, g.skins[b.typeID].color)
	}
}

// drawCursor brackets the three tiles around the selected dot.
func (g *Game) drawCursor(dst *core.Screen, lay layout) {
	color := core.ColorBrightWhite
	if !g.s.ctrl.IsBoardSettled() || g.s.ctrl.State() != hcore.StateIdle {
		color = core.ColorGray
	}
	for _, c := range g.s.board.Grid().TriadOf(g.cursor) {
		sx, sy := lay.screenPos(float32(c.X), float32(c.Y))
		dst.SetColor(sx-1, sy, '(', color)
		dst.SetColor(sx+1, sy, ')', color)
	}
}

func (g *Game) drawOverlay(dst *core.Screen, lay layout, color core.Color, title string, lines ...string) {
	w := utf8.RuneCountInString(title)
	for _, l := range lines {
		w = core.Max(w, utf8.RuneCountInString(l))
	}
	box := lay.frame.Centered(w+4, len(lines)+4)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	dst.DrawTextColor(box.X+(box.W-utf8.RuneCountInString(title))/2, box.Y+1, title, color)
	for i, l := range lines {
		dst.DrawTextColor(box.X+(box.W-utf8.RuneCountInString(l))/2, box.Y+2+i, l, core.ColorWhite)
	}
}
