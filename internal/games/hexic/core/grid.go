package core

// Grid is the rectangular array of tile sockets.
// Cells are stored column-major: index = x*H + y, so a column is contiguous.
type Grid struct {
	w     int
	h     int
	cells []*Tile
}

// NewGrid creates an empty grid with the given dimensions.
// Both dimensions must be at least 2 so that at least one dot exists.
func NewGrid(w, h int) (*Grid, error) {
	if w < 2 || h < 2 {
		return nil, configError("board must be at least 2x2, got %dx%d", w, h)
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]*Tile, w*h),
	}, nil
}

// Dimensions returns the grid width and height.
func (g *Grid) Dimensions() (w, h int) {
	return g.w, g.h
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// DotDimensions returns the size of the dot grid: (width-1) x (height-1)*2.
func (g *Grid) DotDimensions() (w, h int) {
	return g.w - 1, (g.h - 1) * 2
}

// InBounds reports whether c addresses a socket of this grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// ValidDot reports whether d addresses a dot of this grid.
func (g *Grid) ValidDot(d Dot) bool {
	dw, dh := g.DotDimensions()
	return d.X >= 0 && d.X < dw && d.Y >= 0 && d.Y < dh
}

func (g *Grid) index(c Coord) int {
	if !g.InBounds(c) {
		panic(outOfBounds("cell", c.X, c.Y, g.w, g.h))
	}
	return c.X*g.h + c.Y
}

// Get returns the tile at c, or nil if the cell is empty.
// Panics with ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) Get(c Coord) *Tile {
	return g.cells[g.index(c)]
}

// Set places t at c, or empties the cell when t is nil.
// The tile's own coordinates are rewritten to c.
func (g *Grid) Set(c Coord, t *Tile) {
	g.cells[g.index(c)] = t
	if t != nil {
		t.X, t.Y = c.X, c.Y
	}
}

// TriadOf returns the three tile coordinates around dot d.
// The order is fixed per dot and defines the rotation cycle.
// Panics with ErrOutOfBounds for dots outside the dot grid.
func (g *Grid) TriadOf(d Dot) Triad {
	if !g.ValidDot(d) {
		dw, dh := g.DotDimensions()
		panic(outOfBounds("dot", d.X, d.Y, dw, dh))
	}
	return triadOf(d)
}

// triadOf is the parity rule behind TriadOf, without bounds checks.
func triadOf(d Dot) Triad {
	x := d.X
	hy := (d.Y + 1) / 2 // ceil(dy/2) for dy >= 0

	if x%2 == 0 {
		if d.Y%2 == 0 {
			return Triad{C(x, hy), C(x+1, hy+1), C(x+1, hy)}
		}
		return Triad{C(x, hy-1), C(x, hy), C(x+1, hy)}
	}
	if d.Y%2 == 0 {
		return Triad{C(x, hy), C(x, hy+1), C(x+1, hy)}
	}
	return Triad{C(x, hy), C(x+1, hy), C(x+1, hy-1)}
}

// Clone returns a deep copy of g. Tiles and their bombs are copied, so the
// clone can be probed without touching the original.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, cells: make([]*Tile, len(g.cells))}
	for i, t := range g.cells {
		if t == nil {
			continue
		}
		cp := *t
		if t.Bomb != nil {
			b := *t.Bomb
			cp.Bomb = &b
		}
		c.cells[i] = &cp
	}
	return c
}

// AllDots returns every dot of the grid ordered by row then column.
func (g *Grid) AllDots() []Dot {
	dw, dh := g.DotDimensions()
	dots := make([]Dot, 0, dw*dh)
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			dots = append(dots, D(x, y))
		}
	}
	return dots
}

// Full reports whether every cell holds a tile.
func (g *Grid) Full() bool {
	for _, t := range g.cells {
		if t == nil {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, t := range g.cells {
		if t == nil {
			n++
		}
	}
	return n
}

// Tiles returns all tiles ordered by column then row.
func (g *Grid) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(g.cells))
	for _, t := range g.cells {
		if t != nil {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Column returns the tiles of column x from bottom to top, nil for empty cells.
func (g *Grid) Column(x int) []*Tile {
	if x < 0 || x >= g.w {
		panic(outOfBounds("column", x, 0, g.w, g.h))
	}
	col := make([]*Tile, g.h)
	copy(col, g.cells[x*g.h:(x+1)*g.h])
	return col
}

// TypeIDs returns the catalog id of every cell, indexed [x][y], -1 for empty.
// Useful for snapshots and comparisons that should not alias tiles.
func (g *Grid) TypeIDs() [][]int {
	ids := make([][]int, g.w)
	for x := 0; x < g.w; x++ {
		ids[x] = make([]int, g.h)
		for y := 0; y < g.h; y++ {
			if t := g.cells[x*g.h+y]; t != nil {
				ids[x][y] = t.Type.ID
			} else {
				ids[x][y] = -1
			}
		}
	}
	return ids
}
