package core_test

import (
	"reflect"
	"testing"

	"github.com/Arlandrian/HexicClone/internal/games/hexic/core"
)

func columnIDs(g *core.Grid, x int) []uint64 {
	var ids []uint64
	for _, t := range g.Column(x) {
		if t == nil {
			ids = append(ids, 0)
			continue
		}
		ids = append(ids, t.ID)
	}
	return ids
}

func TestCollapsePreservesOrder(t *testing.T) {
	b := layoutBoard(t, 3, [][]int{{0, 1, 2, 0, 1}, {1, 2, 0, 1, 2}})
	g := b.Grid()
	col := g.Column(0)
	g.Set(core.C(0, 1), nil)
	g.Set(core.C(0, 3), nil)

	moves := core.Collapse(g, []int{0, 0})

	want := []uint64{col[0].ID, col[2].ID, col[4].ID, 0, 0}
	if got := columnIDs(g, 0); !reflect.DeepEqual(got, want) {
		t.Errorf("column after collapse = %v, want %v", got, want)
	}
	if len(moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(moves))
	}
	if moves[0].From != core.C(0, 2) || moves[0].To != core.C(0, 1) {
		t.Errorf("first move = %v -> %v", moves[0].From, moves[0].To)
	}
	if moves[1].From != core.C(0, 4) || moves[1].To != core.C(0, 2) {
		t.Errorf("second move = %v -> %v", moves[1].From, moves[1].To)
	}
	if !col[0].Settled {
		t.Error("tile that did not move should stay settled")
	}
	if col[2].Settled || col[4].Settled {
		t.Error("fallen tiles should be unsettled")
	}
	if b.IsSettled() {
		t.Error("board should report unsettled after a collapse")
	}
}

func TestCollapseCompactColumnNoMoves(t *testing.T) {
	b := layoutBoard(t, 3, [][]int{{0, 1, 2}, {1, 2, 0}})
	g := b.Grid()
	g.Set(core.C(1, 2), nil)

	if moves := core.CollapseColumn(g, 1); len(moves) != 0 {
		t.Errorf("expected no moves, got %v", moves)
	}
}

func TestRefillFillsColumn(t *testing.T) {
	b := layoutBoard(t, 3, [][]int{{0, 1, 2, 0, 1}, {1, 2, 0, 1, 2}})
	g := b.Grid()
	g.Set(core.C(0, 1), nil)
	g.Set(core.C(0, 3), nil)
	core.Collapse(g, []int{0})

	reqs := core.RefillRequests(g)
	want := []core.Refill{{X: 0, Y: 4, SpawnOffset: 0}, {X: 0, Y: 3, SpawnOffset: 1}}
	if !reflect.DeepEqual(reqs, want) {
		t.Fatalf("RefillRequests = %v, want %v", reqs, want)
	}

	spawned := b.Refill(reqs)
	if len(spawned) != 2 {
		t.Fatalf("expected 2 spawned tiles, got %d", len(spawned))
	}
	if !g.Full() {
		t.Error("grid should be full after refill")
	}
	for i, tile := range spawned {
		if tile.Settled {
			t.Errorf("spawned tile %d should start unsettled", i)
		}
		if tile.SpawnOffset != want[i].SpawnOffset {
			t.Errorf("spawned tile %d offset = %d, want %d", i, tile.SpawnOffset, want[i].SpawnOffset)
		}
	}

	b.Settle(core.C(0, 4))
	if g.Get(core.C(0, 4)).SpawnOffset != 0 || !g.Get(core.C(0, 4)).Settled {
		t.Error("Settle should clear the spawn offset")
	}
}

func TestRefillEmptyColumn(t *testing.T) {
	b := layoutBoard(t, 3, [][]int{{0, 1, 2, 0}, {1, 2, 0, 1}})
	g := b.Grid()
	for y := 0; y < 4; y++ {
		g.Set(core.C(1, y), nil)
	}

	reqs := core.RefillRequests(g)
	if len(reqs) != 4 {
		t.Fatalf("expected 4 requests, got %d", len(reqs))
	}
	for i, r := range reqs {
		if r.X != 1 || r.Y != 3-i || r.SpawnOffset != i {
			t.Errorf("request %d = %+v", i, r)
		}
	}
}
