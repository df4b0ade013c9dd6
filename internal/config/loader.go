package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/Arlandrian/HexicClone/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

const hexicFile = "hexic.yaml"

// LoadHexic loads the Hexic configuration and validates it.
// Search order: customPath -> ~/.hexic/configs/hexic.yaml -> ./configs/hexic.yaml -> embedded default
//
// A custom path must exist and parse. The other locations are skipped when
// missing or malformed.
func LoadHexic(customPath string) (HexicConfig, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{userConfigPath(hexicFile), filepath.Join("configs", hexicFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg := DefaultHexicConfig()
	if err := yaml.Unmarshal(defaultHexicYAML, &cfg); err != nil {
		return DefaultHexicConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// readFile parses path on top of the built-in defaults, so a partial file
// only overrides the keys it sets.
func readFile(path string) (HexicConfig, error) {
	cfg := DefaultHexicConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexic", "configs", filename)
}

// ApplyHexicPreset modifies the config based on a difficulty preset.
func ApplyHexicPreset(cfg *HexicConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
	cfg.Board.Types = TypesForPreset(preset)
}

// Validate checks the constraints the engine and the game rely on.
// All problems are reported together.
func (c HexicConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	if c.Board.Width < 2 || c.Board.Height < 2 {
		bad("board must be at least 2x2, got %dx%d", c.Board.Width, c.Board.Height)
	}

	ids := make(map[int]bool, len(c.Catalog))
	for i, t := range c.Catalog {
		if ids[t.ID] {
			bad("catalog[%d]: duplicate id %d", i, t.ID)
		}
		ids[t.ID] = true
		if utf8.RuneCountInString(t.Glyph) != 1 {
			bad("catalog[%d]: glyph %q must be a single character", i, t.Glyph)
		}
		if _, ok := core.ParseColor(t.Color); !ok {
			bad("catalog[%d]: unknown color %q", i, t.Color)
		}
	}
	if n := len(c.ActiveCatalog()); n < 2 {
		bad("at least 2 tile types are needed, got %d", n)
	}

	if c.Bomb.Enabled {
		if c.Bomb.MoveLimit < 1 {
			bad("bomb.move_limit must be positive, got %d", c.Bomb.MoveLimit)
		}
		if c.Bomb.MinMoveLimit < 1 || c.Bomb.MinMoveLimit > c.Bomb.MoveLimit {
			bad("bomb.min_move_limit must be in [1, %d], got %d", c.Bomb.MoveLimit, c.Bomb.MinMoveLimit)
		}
		if c.Bomb.ScoreInterval < 1 {
			bad("bomb.score_interval must be positive, got %d", c.Bomb.ScoreInterval)
		}
	}

	if c.Rotation.AttemptLimit < 1 {
		bad("rotation.attempt_limit must be positive, got %d", c.Rotation.AttemptLimit)
	}
	if c.Scoring.PointsPerTile < 0 {
		bad("scoring.points_per_tile must not be negative, got %d", c.Scoring.PointsPerTile)
	}
	if c.Animation.FallCellsPerSec < 0 || c.Animation.RotateSecs < 0 || c.Animation.ExplodeSecs < 0 {
		bad("animation values must not be negative")
	}

	switch c.Difficulty.Progression.Type {
	case "score", "moves", "none", "":
	default:
		bad("difficulty.progression.type %q is not one of score, moves, none", c.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}
