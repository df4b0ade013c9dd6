package core_test

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/Arlandrian/HexicClone/internal/games/hexic/core"
)

func TestFindMatchesScenarios(t *testing.T) {
	testCases := []struct {
		name   string
		types  int
		layout [][]int
		want   []core.Coord
	}{
		{
			name:   "left edge 3x2",
			types:  3,
			layout: [][]int{{0, 0}, {1, 0}, {1, 2}},
			want:   []core.Coord{core.C(0, 0), core.C(0, 1), core.C(1, 1)},
		},
		{
			name:   "left edge 3x2 with two types",
			types:  2,
			layout: [][]int{{0, 0}, {1, 0}, {1, 1}},
			want:   []core.Coord{core.C(0, 0), core.C(0, 1), core.C(1, 1)},
		},
		{
			name:   "odd interior column",
			types:  3,
			layout: [][]int{{1, 2, 1}, {0, 0, 2}, {0, 1, 2}},
			want:   []core.Coord{core.C(1, 0), core.C(1, 1), core.C(2, 0)},
		},
		{
			name:   "odd right edge",
			types:  3,
			layout: [][]int{{1, 2}, {2, 1}, {0, 1}, {0, 0}},
			want:   []core.Coord{core.C(3, 0), core.C(3, 1), core.C(2, 0)},
		},
		{
			name:   "overlapping triads share tiles",
			types:  2,
			layout: [][]int{{0, 0}, {0, 0}},
			want:   []core.Coord{core.C(0, 0), core.C(0, 1), core.C(1, 1), core.C(1, 0)},
		},
		{
			name:   "no match",
			types:  3,
			layout: [][]int{{0, 1}, {2, 0}, {1, 2}},
			want:   nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := layoutBoard(t, tc.types, tc.layout)
			got := core.FindMatches(b.Grid())
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("FindMatches = %v, want %v", got, tc.want)
			}
			if core.HasMatch(b.Grid()) != (len(tc.want) > 0) {
				t.Errorf("HasMatch disagrees with FindMatches")
			}
		})
	}
}

func TestFindMatchesDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		b := layoutBoard(t, 2, randomLayout(rng, 7, 6, 2))
		seen := map[core.Coord]bool{}
		for _, c := range core.FindMatches(b.Grid()) {
			if seen[c] {
				t.Fatalf("coordinate %v reported twice", c)
			}
			seen[c] = true
		}
	}
}

func TestScannedTriadsAreDotTriads(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sizes := [][2]int{{2, 2}, {3, 4}, {6, 5}, {7, 7}}

	for _, size := range sizes {
		w, h := size[0], size[1]
		g, _ := core.NewGrid(w, h)
		dotTriads := map[[3]core.Coord]bool{}
		for _, d := range g.AllDots() {
			dotTriads[sortedTriad(g.TriadOf(d))] = true
		}

		for i := 0; i < 30; i++ {
			b := layoutBoard(t, 2, randomLayout(rng, w, h, 2))
			for _, tri := range core.ScanTriads(b.Grid()) {
				if !dotTriads[sortedTriad(tri)] {
					t.Errorf("%dx%d: matched triad %v is not the triad of any dot", w, h, tri)
				}
			}
		}
	}
}

func TestFindMatchesEmptyCellPanics(t *testing.T) {
	b := layoutBoard(t, 3, [][]int{{0, 1}, {2, 0}, {1, 2}})
	b.Grid().Set(core.C(0, 0), nil)

	expectPanic(t, core.ErrEmptyCell, func() { core.FindMatches(b.Grid()) })
}

func TestDedupKeepsFirstOccurrence(t *testing.T) {
	in := []core.Coord{core.C(1, 1), core.C(0, 0), core.C(1, 1), core.C(2, 0), core.C(0, 0)}
	want := []core.Coord{core.C(1, 1), core.C(0, 0), core.C(2, 0)}

	if got := core.Dedup(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Dedup = %v, want %v", got, want)
	}
	if got := core.Dedup(nil); got != nil {
		t.Errorf("Dedup(nil) = %v, want nil", got)
	}
}

func randomLayout(rng *rand.Rand, w, h, types int) [][]int {
	layout := make([][]int, w)
	for x := range layout {
		layout[x] = make([]int, h)
		for y := range layout[x] {
			layout[x][y] = rng.Intn(types)
		}
	}
	return layout
}

func sortedTriad(tri core.Triad) [3]core.Coord {
	out := [3]core.Coord(tri)
	sort.Slice(out[:], func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
