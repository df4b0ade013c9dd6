package core

import "sort"

// Move records a tile falling from one socket to another.
type Move struct {
	From Coord
	To   Coord
	Tile *Tile
}

// Refill is a request to create a new tile at (X, Y).
// SpawnOffset is the depth of the slot below the topmost empty slot of its
// column: 0 for the top slot, growing by one per slot downward.
type Refill struct {
	X, Y        int
	SpawnOffset int
}

// CollapseColumn drops the tiles of column x onto the floor.
//
// Empty slots are pushed to the top while tiles keep their relative order,
// so a tile never passes another one in its column. The walk writes each
// tile to the lowest free slot, which reaches the fixed point in one pass
// regardless of how many adjacent slots were emptied. Moved tiles are marked
// unsettled.
func CollapseColumn(g *Grid, x int) []Move {
	h := g.Height()
	var moves []Move

	floor := 0
	for y := 0; y < h; y++ {
		from := C(x, y)
		t := g.Get(from)
		if t == nil {
			continue
		}
		if y != floor {
			to := C(x, floor)
			g.Set(from, nil)
			g.Set(to, t)
			t.Settled = false
			moves = append(moves, Move{From: from, To: to, Tile: t})
		}
		floor++
	}

	return moves
}

// Collapse runs CollapseColumn over a worklist of columns.
// Columns are processed in ascending order and duplicates are ignored.
func Collapse(g *Grid, columns []int) []Move {
	cols := append([]int(nil), columns...)
	sort.Ints(cols)

	var moves []Move
	prev := -1
	for _, x := range cols {
		if x == prev {
			continue
		}
		prev = x
		moves = append(moves, CollapseColumn(g, x)...)
	}
	return moves
}

// RefillRequests lists the slots that need a new tile after compaction.
//
// For every column whose top slot is empty, it walks down from the top to the
// first occupied slot (or the floor). Columns are visited left to right.
func RefillRequests(g *Grid) []Refill {
	w, h := g.Dimensions()
	var reqs []Refill

	for x := 0; x < w; x++ {
		top := h - 1
		for y := top; y >= 0; y-- {
			if g.Get(C(x, y)) != nil {
				break
			}
			reqs = append(reqs, Refill{X: x, Y: y, SpawnOffset: top - y})
		}
	}

	return reqs
}

// Refill creates a random tile for every request and places it on the grid.
// New tiles start unsettled and carry their request's SpawnOffset.
func (b *Board) Refill(reqs []Refill) []*Tile {
	tiles := make([]*Tile, 0, len(reqs))
	for _, r := range reqs {
		t := b.newTile(b.RandomType())
		t.Settled = false
		t.SpawnOffset = r.SpawnOffset
		b.grid.Set(C(r.X, r.Y), t)
		tiles = append(tiles, t)
	}
	return tiles
}
