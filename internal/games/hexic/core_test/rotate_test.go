package core_test

import (
	"errors"
	"testing"

	"github.com/Arlandrian/HexicClone/internal/games/hexic/core"
)

func tileAt(g *core.Grid) map[core.Coord]uint64 {
	ids := map[core.Coord]uint64{}
	for _, t := range g.Tiles() {
		ids[t.Coord()] = t.ID
	}
	return ids
}

func sameTiles(a, b map[core.Coord]uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for c, id := range a {
		if b[c] != id {
			return false
		}
	}
	return true
}

func TestRotateTriadDirection(t *testing.T) {
	b := newBoard(t, 5, 5, 5, 3)
	g := b.Grid()
	tri := g.TriadOf(core.D(1, 2))
	before := tileAt(g)

	core.RotateTriad(g, tri, false)
	// counter-clockwise: a<-b, b<-c, c<-a
	after := tileAt(g)
	if after[tri[0]] != before[tri[1]] || after[tri[1]] != before[tri[2]] || after[tri[2]] != before[tri[0]] {
		t.Errorf("counter-clockwise step moved tiles wrong: before %v after %v", before, after)
	}

	core.RotateTriad(g, tri, false)
	core.RotateTriad(g, tri, false)
	if !sameTiles(before, tileAt(g)) {
		t.Error("three counter-clockwise steps are not the identity")
	}

	core.RotateTriad(g, tri, true)
	// clockwise: c<-b, b<-a, a<-c
	after = tileAt(g)
	if after[tri[2]] != before[tri[1]] || after[tri[1]] != before[tri[0]] || after[tri[0]] != before[tri[2]] {
		t.Errorf("clockwise step moved tiles wrong: before %v after %v", before, after)
	}
}

func TestRotateIdentities(t *testing.T) {
	b := newBoard(t, 8, 7, 5, 11)
	g := b.Grid()

	for _, d := range g.AllDots() {
		tri := g.TriadOf(d)
		before := tileAt(g)

		for i := 0; i < 3; i++ {
			core.RotateTriad(g, tri, true)
		}
		if !sameTiles(before, tileAt(g)) {
			t.Fatalf("%v: three clockwise steps are not the identity", d)
		}

		core.RotateTriad(g, tri, true)
		core.RotateTriad(g, tri, false)
		if !sameTiles(before, tileAt(g)) {
			t.Fatalf("%v: clockwise then counter-clockwise is not the identity", d)
		}
	}
}

func TestRotatorRejectsDotMidRotation(t *testing.T) {
	b := newBoard(t, 5, 5, 5, 5)
	g := b.Grid()
	r := core.NewRotator()
	d := core.D(2, 3)

	if _, err := r.Rotate(g, d, true); err != nil {
		t.Fatalf("first rotate failed: %v", err)
	}
	for _, c := range g.TriadOf(d) {
		if g.Get(c).Settled {
			t.Errorf("tile at %v should be unsettled after rotation", c)
		}
	}
	if !r.IsRotating(g, d) {
		t.Fatal("dot should be mid-rotation")
	}

	before := tileAt(g)
	if _, err := r.Rotate(g, d, false); !errors.Is(err, core.ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
	if !sameTiles(before, tileAt(g)) {
		t.Error("rejected rotation changed the grid")
	}

	b.SettleAll()
	if r.IsRotating(g, d) {
		t.Error("dot should stop rotating once its tiles settle")
	}
	if _, err := r.Rotate(g, d, false); err != nil {
		t.Errorf("rotate after settle failed: %v", err)
	}
}
