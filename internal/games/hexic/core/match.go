package core

import "fmt"

// sameType compares the tiles at a and b.
// Matching only runs over a full board; an empty cell here is a caller bug.
func sameType(g *Grid, a, b Coord) bool {
	ta, tb := g.Get(a), g.Get(b)
	if ta == nil || tb == nil {
		panic(fmt.Errorf("%w: %v vs %v", ErrEmptyCell, a, b))
	}
	return ta.IsSameType(tb)
}

// ScanTriads returns every matched triad on the grid, in scan order.
// Overlapping triads share coordinates; use FindMatches for a deduplicated set.
//
// The scan never looks at dots. Each triad is two vertically adjacent tiles
// in column x plus one tile in a neighbouring column, and which neighbour
// shares a vertex with the pair depends on the parity of x:
//
//   - even x: the pair (x,y),(x,y+1) touches (x-1,y+1) and (x+1,y+1)
//   - odd x:  the pair (x,y),(x,y+1) touches (x-1,y) and (x+1,y)
//
// The first and last columns only have one neighbour.
func ScanTriads(g *Grid) []Triad {
	w, h := g.Dimensions()
	var triads []Triad

	check := func(x, y, nx, ny int) {
		pair := C(x, y+1)
		if sameType(g, pair, C(nx, ny)) {
			triads = append(triads, Triad{C(x, y), pair, C(nx, ny)})
		}
	}

	// Left edge
	for y := 0; y < h-1; y++ {
		if sameType(g, C(0, y), C(0, y+1)) {
			check(0, y, 1, y+1)
		}
	}

	// Interior columns
	for x := 1; x < w-1; x++ {
		for y := 0; y < h-1; y++ {
			if !sameType(g, C(x, y), C(x, y+1)) {
				continue
			}
			if x%2 == 0 {
				check(x, y, x+1, y+1)
				check(x, y, x-1, y+1)
			} else {
				check(x, y, x+1, y)
				check(x, y, x-1, y)
			}
		}
	}

	// Right edge
	x := w - 1
	for y := 0; y < h-1; y++ {
		if !sameType(g, C(x, y), C(x, y+1)) {
			continue
		}
		if x%2 == 1 {
			check(x, y, x-1, y)
		} else {
			check(x, y, x-1, y+1)
		}
	}

	return triads
}

// FindMatches returns the distinct coordinates of all matched tiles.
// Order is the order of first appearance in the scan, so it is stable for a
// given board.
func FindMatches(g *Grid) []Coord {
	return Dedup(flatten(ScanTriads(g)))
}

func flatten(triads []Triad) []Coord {
	coords := make([]Coord, 0, len(triads)*3)
	for _, t := range triads {
		coords = append(coords, t[0], t[1], t[2])
	}
	return coords
}

// Dedup removes repeated coordinates, keeping first occurrences in order.
func Dedup(coords []Coord) []Coord {
	if len(coords) == 0 {
		return nil
	}
	seen := make(map[Coord]bool, len(coords))
	out := make([]Coord, 0, len(coords))
	for _, c := range coords {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// HasMatch reports whether the grid contains at least one matched triad.
func HasMatch(g *Grid) bool {
	return len(ScanTriads(g)) > 0
}
