package core

import "fmt"

// Coord addresses a tile socket on the board.
// X grows to the right, Y grows upward: row 0 is the bottom of the board.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Above returns the coordinate one row higher.
func (c Coord) Above() Coord {
	return Coord{X: c.X, Y: c.Y + 1}
}

// Dot addresses a pivot vertex shared by three tiles.
// Dots live in their own (width-1) x (height-1)*2 grid and are never stored;
// the three tiles around a dot are computed by Grid.TriadOf.
type Dot struct {
	X int
	Y int
}

// D is a convenience constructor for Dot.
func D(x, y int) Dot {
	return Dot{X: x, Y: y}
}

// String returns a string representation of the dot.
func (d Dot) String() string {
	return fmt.Sprintf("dot(%d,%d)", d.X, d.Y)
}

// Triad is the ordered set of three tile coordinates around a dot.
type Triad [3]Coord

// Contains reports whether c is one of the triad's coordinates.
func (t Triad) Contains(c Coord) bool {
	return t[0] == c || t[1] == c || t[2] == c
}

// Reversed returns the triad in reverse enumeration order.
func (t Triad) Reversed() Triad {
	return Triad{t[2], t[1], t[0]}
}
