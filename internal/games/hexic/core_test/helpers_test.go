package core_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/Arlandrian/HexicClone/internal/games/hexic/core"
)

func catalog(n int) core.Catalog {
	c := make(core.Catalog, n)
	for i := range c {
		c[i] = core.TileType{ID: i, Tag: fmt.Sprintf("t%d", i)}
	}
	return c
}

func newBoard(t *testing.T, w, h, types int, seed int64) *core.Board {
	t.Helper()
	b, err := core.NewBoard(core.BoardConfig{Width: w, Height: h, Catalog: catalog(types)}, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewBoard(%dx%d) failed: %v", w, h, err)
	}
	return b
}

// layoutBoard builds a board from ids indexed [x][y].
func layoutBoard(t *testing.T, types int, layout [][]int) *core.Board {
	t.Helper()
	cfg := core.BoardConfig{Width: len(layout), Height: len(layout[0]), Catalog: catalog(types)}
	b, err := core.NewBoardWithLayout(cfg, layout, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBoardWithLayout failed: %v", err)
	}
	return b
}

// expectPanic runs fn and checks that it panics with an error wrapping target.
func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %v does not wrap %v", err, target)
		}
	}()
	fn()
}

func equalIDs(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for x := range a {
		if len(a[x]) != len(b[x]) {
			return false
		}
		for y := range a[x] {
			if a[x][y] != b[x][y] {
				return false
			}
		}
	}
	return true
}
