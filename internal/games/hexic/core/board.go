package core

import "math/rand"

// BoardConfig describes a board to build.
type BoardConfig struct {
	Width   int
	Height  int
	Catalog Catalog
}

// Board owns the grid together with everything needed to create tiles:
// the catalog, the RNG and the tile serial counter.
type Board struct {
	grid    *Grid
	catalog Catalog
	rng     *rand.Rand
	nextID  uint64
}

// NewBoard builds and fills a board.
//
// Every cell gets a random tile, then matched tiles are retyped until no
// match is left. Catalogs with fewer than two types are rejected with
// ErrConfiguration because no retype could break a match.
func NewBoard(cfg BoardConfig, rng *rand.Rand) (*Board, error) {
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	b := &Board{
		grid:    grid,
		catalog: append(Catalog(nil), cfg.Catalog...),
		rng:     rng,
	}
	b.fill()
	b.replaceMatches()
	return b, nil
}

// NewBoardWithLayout builds a board with fixed contents.
//
// layout is indexed [x][y] with catalog ids; y=0 is the bottom row. No match
// removal is applied, so the layout may contain matches. rng is used for
// later refills.
func NewBoardWithLayout(cfg BoardConfig, layout [][]int, rng *rand.Rand) (*Board, error) {
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]TileType, len(cfg.Catalog))
	for _, t := range cfg.Catalog {
		byID[t.ID] = t
	}

	b := &Board{
		grid:    grid,
		catalog: append(Catalog(nil), cfg.Catalog...),
		rng:     rng,
	}

	if len(layout) != cfg.Width {
		return nil, configError("layout has %d columns, board has %d", len(layout), cfg.Width)
	}
	for x, col := range layout {
		if len(col) != cfg.Height {
			return nil, configError("layout column %d has %d rows, board has %d", x, len(col), cfg.Height)
		}
		for y, id := range col {
			typ, ok := byID[id]
			if !ok {
				return nil, configError("layout cell (%d,%d) uses unknown type id %d", x, y, id)
			}
			t := b.newTile(typ)
			t.Settled = true
			grid.Set(C(x, y), t)
		}
	}
	return b, nil
}

// fill places a settled random tile in every cell.
func (b *Board) fill() {
	w, h := b.grid.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := b.newTile(b.RandomType())
			t.Settled = true
			b.grid.Set(C(x, y), t)
		}
	}
}

// replaceMatches retypes tiles until the board has no match.
//
// Each pass retypes one tile per matched triad, preferring a type that
// completes no triad at its cell. Small catalogs can keep flipping a
// triad between colours, so after repairPasses the remaining vertical pairs
// are broken up. Every triad holds two tiles of one column, so a board where
// no tile matches the one below it has no match.
func (b *Board) replaceMatches() {
	for pass := 0; pass < repairPasses; pass++ {
		triads := ScanTriads(b.grid)
		if len(triads) == 0 {
			return
		}
		for _, tri := range triads {
			if !sameType(b.grid, tri[0], tri[1]) || !sameType(b.grid, tri[1], tri[2]) {
				continue // an earlier retype broke it
			}
			t := b.grid.Get(tri[2])
			t.Type = b.safeType(tri[2], t.Type)
		}
	}
	b.breakVerticalPairs()
}

const repairPasses = 8

// safeType draws a type other than current that completes no triad at c.
// When every type would complete one, any other type is returned.
func (b *Board) safeType(c Coord, current TileType) TileType {
	t := b.grid.Get(c)
	var safe []TileType
	for _, cand := range b.catalog {
		if cand.ID == current.ID {
			continue
		}
		t.Type = cand
		if !matchesAt(b.grid, c) {
			safe = append(safe, cand)
		}
	}
	t.Type = current
	if len(safe) == 0 {
		return b.otherType(current)
	}
	return safe[b.rng.Intn(len(safe))]
}

// matchesAt reports whether c takes part in a matched triad.
func matchesAt(g *Grid, c Coord) bool {
	for _, tri := range ScanTriads(g) {
		if tri[0] == c || tri[1] == c || tri[2] == c {
			return true
		}
	}
	return false
}

// breakVerticalPairs retypes every tile that shares its type with the tile
// below it, walking each column upward.
func (b *Board) breakVerticalPairs() {
	w, h := b.grid.Dimensions()
	for x := 0; x < w; x++ {
		for y := 1; y < h; y++ {
			below, t := b.grid.Get(C(x, y-1)), b.grid.Get(C(x, y))
			if t.IsSameType(below) {
				t.Type = b.otherType(below.Type)
			}
		}
	}
}

func (b *Board) newTile(typ TileType) *Tile {
	b.nextID++
	return &Tile{ID: b.nextID, Type: typ}
}

// Grid returns the board's grid.
func (b *Board) Grid() *Grid {
	return b.grid
}

// Catalog returns a copy of the board's catalog.
func (b *Board) Catalog() Catalog {
	return append(Catalog(nil), b.catalog...)
}

// RandomType draws a catalog entry.
func (b *Board) RandomType() TileType {
	return b.catalog[b.rng.Intn(len(b.catalog))]
}

// otherType draws a catalog entry whose id differs from current.
func (b *Board) otherType(current TileType) TileType {
	others := make([]TileType, 0, len(b.catalog)-1)
	for _, t := range b.catalog {
		if t.ID != current.ID {
			others = append(others, t)
		}
	}
	return others[b.rng.Intn(len(others))]
}

// IsSettled reports whether no tile has pending movement.
func (b *Board) IsSettled() bool {
	for _, t := range b.grid.cells {
		if t != nil && !t.Settled {
			return false
		}
	}
	return true
}

// Settle marks the tile at c as resting at its coordinate.
// Settling an empty cell is a no-op.
func (b *Board) Settle(c Coord) {
	if t := b.grid.Get(c); t != nil {
		t.Settled = true
		t.SpawnOffset = 0
	}
}

// SettleAll marks every tile as resting.
func (b *Board) SettleAll() {
	for _, t := range b.grid.cells {
		if t != nil {
			t.Settled = true
			t.SpawnOffset = 0
		}
	}
}

// Unsettled returns the tiles that still have pending movement.
func (b *Board) Unsettled() []*Tile {
	var tiles []*Tile
	for _, t := range b.grid.cells {
		if t != nil && !t.Settled {
			tiles = append(tiles, t)
		}
	}
	return tiles
}
