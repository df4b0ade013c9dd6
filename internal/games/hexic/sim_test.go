package hexic

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/Arlandrian/HexicClone/internal/config"
	hcore "github.com/Arlandrian/HexicClone/internal/games/hexic/core"
)

func TestSimulateDeterminism(t *testing.T) {
	opts := SimOptions{Mode: ModeClassic, Config: config.DefaultHexicConfig(), Seed: 99, MaxMoves: 40, Greedy: true}

	var reports1, reports2 []MoveReport
	r1, err := Simulate(opts, func(r MoveReport) { reports1 = append(reports1, r) })
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	r2, err := Simulate(opts, func(r MoveReport) { reports2 = append(reports2, r) })
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if r1 != r2 {
		t.Errorf("results differ: %+v vs %+v", r1, r2)
	}
	if !reflect.DeepEqual(reports1, reports2) {
		t.Error("move reports differ between runs")
	}
	if len(reports1) != r1.Moves {
		t.Errorf("got %d reports for %d moves", len(reports1), r1.Moves)
	}
}

func TestSimulateZenRunsToLimit(t *testing.T) {
	res, err := Simulate(SimOptions{Mode: ModeZen, Config: config.DefaultHexicConfig(), Seed: 3, MaxMoves: 25}, nil)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if res.Moves != 25 {
		t.Errorf("Moves = %d, expected 25", res.Moves)
	}
	if res.EndReason != EndLimit {
		t.Errorf("EndReason = %q, expected %q", res.EndReason, EndLimit)
	}
	if res.BombsSpawned != 0 {
		t.Errorf("zen run spawned %d bombs", res.BombsSpawned)
	}
	if res.Score != res.Exploded*config.DefaultHexicConfig().Scoring.PointsPerTile {
		t.Errorf("Score %d does not match %d exploded tiles", res.Score, res.Exploded)
	}
}

func TestSimulateBombEndsRun(t *testing.T) {
	cfg := config.DefaultHexicConfig()
	cfg.Bomb.ScoreInterval = cfg.Scoring.PointsPerTile
	cfg.Bomb.MoveLimit = 1
	cfg.Bomb.MinMoveLimit = 1

	res, err := Simulate(SimOptions{Mode: ModeClassic, Config: cfg, Seed: 8, MaxMoves: 500, Greedy: true}, nil)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if res.EndReason != EndBomb {
		t.Fatalf("EndReason = %q after %d moves, expected %q", res.EndReason, res.Moves, EndBomb)
	}
	if res.BombsSpawned == 0 {
		t.Error("expected bombs to spawn")
	}
}

func TestSimulateRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultHexicConfig()
	cfg.Board.Width = 1

	if _, err := Simulate(SimOptions{Mode: ModeZen, Config: cfg, MaxMoves: 1}, nil); err == nil {
		t.Error("expected an error for a 1-column board")
	}
}

func TestSuggestMove(t *testing.T) {
	cfg := config.DefaultHexicConfig()
	rng := rand.New(rand.NewSource(4))

	for seed := int64(1); seed <= 10; seed++ {
		s, err := newSession(ModeZen, cfg, seed)
		if err != nil {
			t.Fatalf("newSession failed: %v", err)
		}
		g := s.board.Grid()
		before := g.TypeIDs()

		dot, cw, ok := SuggestMove(g, rng)
		if !reflect.DeepEqual(g.TypeIDs(), before) {
			t.Fatalf("seed %d: SuggestMove changed the board", seed)
		}
		if !ok {
			continue
		}

		if err := s.ctrl.Rotate(dot, cw); err != nil {
			t.Fatalf("seed %d: Rotate(%v) failed: %v", seed, dot, err)
		}
		res := s.ctrl.ResolveCascade()
		if res.Count(hcore.EventTileExploded) == 0 {
			t.Errorf("seed %d: suggested %v cw=%v exploded nothing", seed, dot, cw)
		}
	}
}

func TestSessionTwoTypeBoard(t *testing.T) {
	cfg := config.DefaultHexicConfig()
	cfg.Board.Types = 2
	s, err := newSession(ModeZen, cfg, 4)
	if err != nil {
		t.Fatalf("newSession failed: %v", err)
	}
	if m := s.ctrl.FindMatches(); len(m) != 0 {
		t.Errorf("fresh two-type board has matches %v", m)
	}
}
