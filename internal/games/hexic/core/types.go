// Package core implements the Hexic board engine: the socket grid, the dot
// (pivot) topology, triangular match detection, triad rotation, column
// gravity with refill, bomb countdowns and the cascade state machine.
//
// The package is UI-agnostic and deterministic for a given RNG seed. It never
// sleeps or waits on animation; presentation reports tile settlement through
// Board.Settle and polls Board.IsSettled.
package core

// TileType is an immutable catalog entry.
type TileType struct {
	ID  int    // Unique catalog id, used for match equality
	Tag string // Display/category tag
}

// Catalog is the set of tile types a board draws from.
type Catalog []TileType

// Validate checks that the catalog can be used to build a board.
// At least two distinct types are needed for the initial dedup pass to end.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return configError("tile catalog is empty")
	}
	seen := make(map[int]bool, len(c))
	for _, t := range c {
		if seen[t.ID] {
			return configError("duplicate tile type id %d", t.ID)
		}
		seen[t.ID] = true
	}
	if len(c) < 2 {
		return configError("tile catalog needs at least 2 types, got %d", len(c))
	}
	return nil
}

// Bomb is a move countdown attached to a tile.
type Bomb struct {
	Remaining int
}

// Tile is a typed piece occupying one grid cell.
type Tile struct {
	ID   uint64 // Serial number, unique within a board
	Type TileType
	X, Y int

	// Settled is false while presentation is still moving the tile to X,Y.
	Settled bool

	// SpawnOffset is a presentation hint for refilled tiles: how many cells
	// deeper than the topmost refilled slot this tile landed. Zero otherwise.
	SpawnOffset int

	Bomb *Bomb // nil unless the tile carries a bomb
}

// Coord returns the tile's current grid coordinate.
func (t *Tile) Coord() Coord {
	return Coord{X: t.X, Y: t.Y}
}

// IsSameType reports whether two tiles share a catalog id.
func (t *Tile) IsSameType(other *Tile) bool {
	return t.Type.ID == other.Type.ID
}

// IsBomb reports whether the tile carries a bomb.
func (t *Tile) IsBomb() bool {
	return t.Bomb != nil
}
