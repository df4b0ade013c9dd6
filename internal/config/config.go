// Package config provides YAML-based game configuration loading and
// difficulty management for Hexic.
package config

// HexicConfig contains all configuration for a Hexic session.
type HexicConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Catalog    []TileConfig     `yaml:"catalog"`
	Bomb       BombConfig       `yaml:"bomb"`
	Rotation   RotationConfig   `yaml:"rotation"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the socket grid.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Types  int `yaml:"types"` // How many catalog entries are dealt; 0 = all
}

// TileConfig is one catalog entry with its presentation.
type TileConfig struct {
	ID    int    `yaml:"id"`
	Tag   string `yaml:"tag"`
	Glyph string `yaml:"glyph"` // Single character drawn in the socket
	Color string `yaml:"color"` // Palette name, see core.ParseColor
}

// BombConfig defines bomb spawning.
type BombConfig struct {
	Enabled       bool `yaml:"enabled"`
	MoveLimit     int  `yaml:"move_limit"`     // Moves a bomb survives at level 0
	MinMoveLimit  int  `yaml:"min_move_limit"` // Moves a bomb survives at level 1
	ScoreInterval int  `yaml:"score_interval"` // A bomb spawns every this many points
}

// RotationConfig defines rotate command behaviour.
type RotationConfig struct {
	AttemptLimit int `yaml:"attempt_limit"` // 120 degree steps tried per command
}

// ScoringConfig defines points.
type ScoringConfig struct {
	PointsPerTile int `yaml:"points_per_tile"`
}

// AnimationConfig defines tween speeds. Zero durations settle instantly.
type AnimationConfig struct {
	FallCellsPerSec float64 `yaml:"fall_cells_per_sec"`
	RotateSecs      float64 `yaml:"rotate_secs"`
	ExplodeSecs     float64 `yaml:"explode_secs"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ActiveCatalog returns the catalog entries dealt on the board.
func (c HexicConfig) ActiveCatalog() []TileConfig {
	if c.Board.Types <= 0 || c.Board.Types >= len(c.Catalog) {
		return c.Catalog
	}
	return c.Catalog[:c.Board.Types]
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// TypesForPreset returns how many tile types a preset deals.
// Fewer types make matches more frequent.
func TypesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 6
	default:
		return 5
	}
}
