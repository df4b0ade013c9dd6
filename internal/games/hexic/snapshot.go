package hexic

import hcore "github.com/Arlandrian/HexicClone/internal/games/hexic/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateGameOver    GameStateType = "game_over"
)

// BombSnapshot is a live bomb.
type BombSnapshot struct {
	X, Y      int
	Remaining int
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Score    int
	Moves    int
	Exploded int
	Cursor   hcore.Dot
	Board    [][]int // Type ids indexed [x][y], -1 for empty
	Bombs    []BombSnapshot
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.s.over:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.s.ctrl.State() != hcore.StateIdle:
		state = StateResolving
	}

	var bombs []BombSnapshot
	for _, t := range g.s.ctrl.Bombs().Live() {
		bombs = append(bombs, BombSnapshot{X: t.X, Y: t.Y, Remaining: t.Bomb.Remaining})
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Score:    g.s.score,
		Moves:    g.s.ctrl.Moves(),
		Exploded: g.s.exploded,
		Cursor:   g.cursor,
		Board:    g.s.board.Grid().TypeIDs(),
		Bombs:    bombs,
		State:    state,
	}
}
