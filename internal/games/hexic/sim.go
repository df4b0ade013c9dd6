package hexic

import (
	"math/rand"

	"github.com/Arlandrian/HexicClone/internal/config"
	hcore "github.com/Arlandrian/HexicClone/internal/games/hexic/core"
)

// End reasons reported by Simulate.
const (
	EndBomb  = "bomb"  // A bomb expired
	EndLimit = "limit" // The move budget ran out
)

// SimOptions configures a headless run.
type SimOptions struct {
	Mode     Mode
	Config   config.HexicConfig
	Seed     int64
	MaxMoves int
	Greedy   bool // Prefer rotations that match over random ones
}

// MoveReport describes one command of a headless run.
type MoveReport struct {
	Move      int
	Dot       hcore.Dot
	Clockwise bool
	Exploded  int
	Score     int
	Bombs     int
}

// SimResult summarises a headless run.
type SimResult struct {
	Mode         Mode
	Seed         int64
	Moves        int
	Score        int
	Exploded     int
	BombsSpawned int
	EndReason    string
}

// Simulate plays a game without presentation, settling every tile instantly.
// onMove, if set, is called after each command resolves.
func Simulate(opts SimOptions, onMove func(MoveReport)) (SimResult, error) {
	s, err := newSession(opts.Mode, opts.Config, opts.Seed)
	if err != nil {
		return SimResult{}, err
	}
	// The player draws from a separate stream so board generation stays
	// identical to an interactive game with the same seed.
	player := rand.New(rand.NewSource(opts.Seed + 1))

	res := SimResult{Mode: opts.Mode, Seed: opts.Seed, EndReason: EndLimit}
	for s.ctrl.Moves() < opts.MaxMoves && !s.over {
		g := s.board.Grid()

		dot, cw := RandomMove(g, player)
		if opts.Greedy {
			if d, c, ok := SuggestMove(g, player); ok {
				dot, cw = d, c
			}
		}

		if err := s.ctrl.Rotate(dot, cw); err != nil {
			return res, err
		}
		step := s.ctrl.ResolveCascade()
		s.apply(step)

		if onMove != nil {
			onMove(MoveReport{
				Move:      s.ctrl.Moves(),
				Dot:       dot,
				Clockwise: cw,
				Exploded:  step.Count(hcore.EventTileExploded),
				Score:     s.score,
				Bombs:     s.ctrl.Bombs().Len(),
			})
		}
	}

	if s.over {
		res.EndReason = EndBomb
	}
	res.Moves = s.ctrl.Moves()
	res.Score = s.score
	res.Exploded = s.exploded
	res.BombsSpawned = s.bombsSpawned
	return res, nil
}
