package config

import "math"

// DifficultyManager derives dynamic game parameters from score and moves.
type DifficultyManager struct {
	cfg          DifficultyConfig
	bomb         BombConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, bomb BombConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		bomb:         bomb,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score, moves int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "moves":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// BombMoveLimit returns the countdown for a bomb spawned now.
// It falls from move_limit at level 0 to min_move_limit at level 1.
func (d *DifficultyManager) BombMoveLimit(score, moves int) int {
	level := d.Level(score, moves)
	span := float64(d.bomb.MoveLimit - d.bomb.MinMoveLimit)
	limit := d.bomb.MoveLimit - int(math.Round(level*span))
	if limit < d.bomb.MinMoveLimit {
		limit = d.bomb.MinMoveLimit
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}

// NextBombAt returns the score at which the next bomb spawns, given the
// number of bombs already spawned.
func (d *DifficultyManager) NextBombAt(spawned int) int {
	return (spawned + 1) * d.bomb.ScoreInterval
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
