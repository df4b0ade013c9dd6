package hexic

import (
	"fmt"
	"math/rand"

	"github.com/Arlandrian/HexicClone/internal/config"
	hcore "github.com/Arlandrian/HexicClone/internal/games/hexic/core"
)

// session is one game of Hexic without presentation: the engine plus the
// scoring and bomb rules layered on top of it. Game and Simulate share it.
type session struct {
	mode       Mode
	cfg        config.HexicConfig
	board      *hcore.Board
	ctrl       *hcore.Controller
	difficulty *config.DifficultyManager

	score        int
	exploded     int
	bombsSpawned int
	over         bool
}

// engineCatalog converts the dealt config entries to engine tile types.
func engineCatalog(cfg config.HexicConfig) hcore.Catalog {
	entries := cfg.ActiveCatalog()
	cat := make(hcore.Catalog, 0, len(entries))
	for _, t := range entries {
		cat = append(cat, hcore.TileType{ID: t.ID, Tag: t.Tag})
	}
	return cat
}

func newSession(mode Mode, cfg config.HexicConfig, seed int64) (*session, error) {
	rng := rand.New(rand.NewSource(seed))
	board, err := hcore.NewBoard(hcore.BoardConfig{
		Width:   cfg.Board.Width,
		Height:  cfg.Board.Height,
		Catalog: engineCatalog(cfg),
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("hexic: cannot build board: %w", err)
	}
	return newSessionWithBoard(mode, cfg, board), nil
}

func newSessionWithBoard(mode Mode, cfg config.HexicConfig, board *hcore.Board) *session {
	dm := config.NewDifficultyManager(cfg.Difficulty, cfg.Bomb)
	ctrl := hcore.NewController(board, hcore.Options{
		AttemptLimit: cfg.Rotation.AttemptLimit,
		BombLimit:    dm.BombMoveLimit(0, 0),
	})
	return &session{
		mode:       mode,
		cfg:        cfg,
		board:      board,
		ctrl:       ctrl,
		difficulty: dm,
	}
}

func (s *session) bombsEnabled() bool {
	return s.mode == ModeClassic && s.cfg.Bomb.Enabled
}

// apply folds one controller result into score and bomb state.
// An expired bomb ends the game and tears the board down.
func (s *session) apply(res hcore.StepResult) {
	for _, e := range res.Events {
		switch e.Kind {
		case hcore.EventTileExploded:
			s.score += s.cfg.Scoring.PointsPerTile
			s.exploded++
		case hcore.EventBombExpired:
			s.over = true
		}
	}

	if s.over {
		s.ctrl.Teardown()
		return
	}
	s.spawnBombs()
}

// spawnBombs arms one bomb for every score_interval crossed so far.
// Bombs only appear between commands, never mid-cascade.
func (s *session) spawnBombs() {
	if !s.bombsEnabled() || s.ctrl.State() != hcore.StateIdle {
		return
	}
	for s.score >= s.difficulty.NextBombAt(s.bombsSpawned) {
		s.ctrl.Bombs().SetLimit(s.difficulty.BombMoveLimit(s.score, s.ctrl.Moves()))
		if _, err := s.ctrl.SpawnBomb(); err != nil {
			return
		}
		s.bombsSpawned++
	}
}
