package hexic

import (
	"math/rand"

	hcore "github.com/Arlandrian/HexicClone/internal/games/hexic/core"
)

// SuggestMove returns a dot and direction whose rotate command will explode
// something, chosen at random among all such dots. ok is false when no
// rotation on the board makes a match.
//
// g is not modified; the rotations are tried on a clone.
func SuggestMove(g *hcore.Grid, rng *rand.Rand) (d hcore.Dot, clockwise bool, ok bool) {
	type candidate struct {
		dot       hcore.Dot
		clockwise bool
	}
	var found []candidate

	probe := g.Clone()
	for _, dot := range probe.AllDots() {
		tri := probe.TriadOf(dot)

		// One clockwise step, then a second one (same as one counter-clockwise).
		// The third step restores the triad.
		hcore.RotateTriad(probe, tri, true)
		one := hcore.HasMatch(probe)
		hcore.RotateTriad(probe, tri, true)
		two := hcore.HasMatch(probe)
		hcore.RotateTriad(probe, tri, true)

		switch {
		case one:
			found = append(found, candidate{dot, true})
		case two:
			found = append(found, candidate{dot, false})
		}
	}

	if len(found) == 0 {
		return hcore.Dot{}, false, false
	}
	c := found[rng.Intn(len(found))]
	return c.dot, c.clockwise, true
}

// RandomMove picks any dot and direction.
func RandomMove(g *hcore.Grid, rng *rand.Rand) (hcore.Dot, bool) {
	dw, dh := g.DotDimensions()
	return hcore.D(rng.Intn(dw), rng.Intn(dh)), rng.Intn(2) == 0
}
