package config

import (
	_ "embed"
)

//go:embed defaults/hexic.yaml
var defaultHexicYAML []byte

// DefaultHexicConfig returns the built-in Hexic configuration.
func DefaultHexicConfig() HexicConfig {
	return HexicConfig{
		Board: BoardConfig{
			Width:  8,
			Height: 9,
			Types:  5,
		},
		Catalog: []TileConfig{
			{ID: 0, Tag: "ruby", Glyph: "⬢", Color: "bright_red"},
			{ID: 1, Tag: "emerald", Glyph: "⬢", Color: "bright_green"},
			{ID: 2, Tag: "sapphire", Glyph: "⬢", Color: "bright_blue"},
			{ID: 3, Tag: "topaz", Glyph: "⬢", Color: "bright_yellow"},
			{ID: 4, Tag: "amethyst", Glyph: "⬢", Color: "bright_magenta"},
			{ID: 5, Tag: "pearl", Glyph: "⬢", Color: "bright_white"},
		},
		Bomb: BombConfig{
			Enabled:       true,
			MoveLimit:     7,
			MinMoveLimit:  4,
			ScoreInterval: 1000,
		},
		Rotation: RotationConfig{
			AttemptLimit: 3,
		},
		Scoring: ScoringConfig{
			PointsPerTile: 15,
		},
		Animation: AnimationConfig{
			FallCellsPerSec: 12,
			RotateSecs:      0.12,
			ExplodeSecs:     0.15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
		},
	}
}
