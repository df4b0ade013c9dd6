package hexic

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Arlandrian/HexicClone/internal/config"
	hcore "github.com/Arlandrian/HexicClone/internal/games/hexic/core"
)

// motion moves one tile from where it was drawn to its socket.
// Positions are in grid space: x is the column, y the row from the bottom.
type motion struct {
	tile   *hcore.Tile
	x, y   *gween.Tween
	cx, cy float32
}

// burst is the flash left behind by an exploded tile.
type burst struct {
	at     hcore.Coord
	typeID int
	fade   *gween.Tween
	level  float32
}

// Animator runs the presentation tweens and reports settlement to the board.
// A tile is settled as soon as its motion finishes, which is what lets the
// cascade controller take its next step.
type Animator struct {
	board      *hcore.Board
	fallSpeed  float32 // cells per second, 0 = instant
	rotateSecs float32
	burstSecs  float32

	motions map[uint64]*motion
	bursts  []*burst
}

// NewAnimator creates an animator for board.
func NewAnimator(cfg config.AnimationConfig, board *hcore.Board) *Animator {
	return &Animator{
		board:      board,
		fallSpeed:  float32(cfg.FallCellsPerSec),
		rotateSecs: float32(cfg.RotateSecs),
		burstSecs:  float32(cfg.ExplodeSecs),
		motions:    make(map[uint64]*motion),
	}
}

// Position returns where t should be drawn.
func (a *Animator) Position(t *hcore.Tile) (x, y float32) {
	if m, ok := a.motions[t.ID]; ok {
		return m.cx, m.cy
	}
	return float32(t.X), float32(t.Y)
}

// Busy reports whether any tween is still running.
func (a *Animator) Busy() bool {
	return len(a.motions) > 0 || len(a.bursts) > 0
}

// slide starts moving t from (fromX, fromY) to its socket over secs.
// A tile already in motion continues from where it is drawn.
func (a *Animator) slide(t *hcore.Tile, fromX, fromY float32, secs float32, fn ease.TweenFunc) {
	if m, ok := a.motions[t.ID]; ok {
		fromX, fromY = m.cx, m.cy
	}
	toX, toY := float32(t.X), float32(t.Y)
	if secs <= 0 || (fromX == toX && fromY == toY) {
		delete(a.motions, t.ID)
		a.board.Settle(t.Coord())
		return
	}
	a.motions[t.ID] = &motion{
		tile: t,
		x:    gween.New(fromX, toX, secs, fn),
		y:    gween.New(fromY, toY, secs, fn),
		cx:   fromX,
		cy:   fromY,
	}
}

// Rotated animates one rotation step applied in order (a, b, c):
// the tile now at a came from b, b from c and c from a.
func (a *Animator) Rotated(order hcore.Triad) {
	g := a.board.Grid()
	for i, to := range order {
		from := order[(i+1)%3]
		if t := g.Get(to); t != nil {
			a.slide(t, float32(from.X), float32(from.Y), a.rotateSecs, ease.OutQuad)
		}
	}
}

// Fell animates a tile dropping from row fromY to its socket.
func (a *Animator) Fell(t *hcore.Tile, fromY float32) {
	var secs float32
	if a.fallSpeed > 0 {
		secs = (fromY - float32(t.Y)) / a.fallSpeed
	}
	a.slide(t, float32(t.X), fromY, secs, ease.InQuad)
}

// Refilled animates new tiles entering from above the board.
//
// A tile's SpawnOffset is its depth below the top slot, so the deepest tile
// of a column enters first, right above the board, and the rest stack on it
// in order.
func (a *Animator) Refilled(tiles []*hcore.Tile) {
	depth := make(map[int]int)
	for _, t := range tiles {
		depth[t.X] = max(depth[t.X], t.SpawnOffset+1)
	}
	for _, t := range tiles {
		above := t.Y + t.SpawnOffset + 1 // first row above the column's top slot
		a.Fell(t, float32(above+depth[t.X]-1-t.SpawnOffset))
	}
}

// Exploded leaves a fading flash where a tile was removed.
func (a *Animator) Exploded(e hcore.Event) {
	if a.burstSecs <= 0 {
		return
	}
	a.bursts = append(a.bursts, &burst{
		at:     e.Coord,
		typeID: e.Type.ID,
		fade:   gween.New(1, 0, a.burstSecs, ease.Linear),
		level:  1,
	})
}

// Update advances every tween by dt seconds and settles tiles whose motion
// finished.
func (a *Animator) Update(dt float32) {
	for id, m := range a.motions {
		cx, doneX := m.x.Update(dt)
		cy, doneY := m.y.Update(dt)
		m.cx, m.cy = cx, cy
		if doneX && doneY {
			a.board.Settle(m.tile.Coord())
			delete(a.motions, id)
		}
	}

	kept := a.bursts[:0]
	for _, b := range a.bursts {
		level, done := b.fade.Update(dt)
		b.level = level
		if !done {
			kept = append(kept, b)
		}
	}
	a.bursts = kept
}

// Finish ends every tween at once and settles the board.
func (a *Animator) Finish() {
	clear(a.motions)
	a.bursts = nil
	a.board.SettleAll()
}
