package core

// Rotator performs triad rotations and remembers which dots are still
// spinning on screen.
//
// A dot counts as mid-rotation from the moment it is rotated until every
// tile of its triad reports settled again.
type Rotator struct {
	spinning map[Dot]bool
}

// NewRotator creates a rotator with no dots in flight.
func NewRotator() *Rotator {
	return &Rotator{spinning: make(map[Dot]bool)}
}

// IsRotating reports whether d is still mid-rotation on g.
func (r *Rotator) IsRotating(g *Grid, d Dot) bool {
	if !r.spinning[d] {
		return false
	}
	for _, c := range g.TriadOf(d) {
		if t := g.Get(c); t != nil && !t.Settled {
			return true
		}
	}
	delete(r.spinning, d)
	return false
}

// AnyRotating reports whether any dot is still mid-rotation on g.
func (r *Rotator) AnyRotating(g *Grid) bool {
	for d := range r.spinning {
		if r.IsRotating(g, d) {
			return true
		}
	}
	return false
}

// Rotate turns the triad of d by one step (120 degrees).
//
// Clockwise consumes the triad in reverse enumeration order, counter-clockwise
// in forward order; with that order (a, b, c) the tiles move a<-b, b<-c, c<-a.
// The returned triad is the order that was applied. Moved tiles are marked
// unsettled.
//
// Rotating a dot that is already mid-rotation is rejected with
// ErrInvalidCommand and leaves the grid untouched.
func (r *Rotator) Rotate(g *Grid, d Dot, clockwise bool) (Triad, error) {
	triad := g.TriadOf(d)
	if r.IsRotating(g, d) {
		return Triad{}, invalidCommand("%v is mid-rotation", d)
	}

	order := RotateTriad(g, triad, clockwise)
	for _, c := range order {
		if t := g.Get(c); t != nil {
			t.Settled = false
		}
	}
	r.spinning[d] = true
	return order, nil
}

// Reset forgets all dots in flight.
func (r *Rotator) Reset() {
	clear(r.spinning)
}

// RotateTriad applies one 3-cycle to the cells of triad and returns the
// order used. It does not touch settle state.
func RotateTriad(g *Grid, triad Triad, clockwise bool) Triad {
	order := triad
	if clockwise {
		order = triad.Reversed()
	}
	a, b, c := order[0], order[1], order[2]
	ta, tb, tc := g.Get(a), g.Get(b), g.Get(c)
	g.Set(a, tb)
	g.Set(b, tc)
	g.Set(c, ta)
	return order
}
