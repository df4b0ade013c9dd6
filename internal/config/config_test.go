package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var cfg HexicConfig
	if err := yaml.Unmarshal(defaultHexicYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultHexicConfig()) {
		t.Errorf("embedded defaults drifted from DefaultHexicConfig:\n%+v\n%+v", cfg, DefaultHexicConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadHexicCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexic.yaml")
	data := []byte("board:\n  width: 6\n  height: 5\nbomb:\n  move_limit: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadHexic(path)
	if err != nil {
		t.Fatalf("LoadHexic() error = %v", err)
	}
	if cfg.Board.Width != 6 || cfg.Board.Height != 5 {
		t.Errorf("board = %dx%d, expected 6x5", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Bomb.MoveLimit != 9 {
		t.Errorf("bomb.move_limit = %d, expected 9", cfg.Bomb.MoveLimit)
	}
	// Keys missing from the file keep their defaults
	if cfg.Scoring.PointsPerTile != 15 || len(cfg.Catalog) != 6 {
		t.Errorf("defaults not kept: %+v", cfg.Scoring)
	}
}

func TestLoadHexicErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadHexic(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHexic(broken); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHexic(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*HexicConfig)
	}{
		{"small board", func(c *HexicConfig) { c.Board.Height = 1 }},
		{"single type", func(c *HexicConfig) { c.Board.Types = 1 }},
		{"duplicate id", func(c *HexicConfig) { c.Catalog[1].ID = c.Catalog[0].ID }},
		{"long glyph", func(c *HexicConfig) { c.Catalog[0].Glyph = "ab" }},
		{"unknown color", func(c *HexicConfig) { c.Catalog[2].Color = "plaid" }},
		{"zero bomb limit", func(c *HexicConfig) { c.Bomb.MoveLimit = 0 }},
		{"min above max", func(c *HexicConfig) { c.Bomb.MinMoveLimit = 20 }},
		{"zero interval", func(c *HexicConfig) { c.Bomb.ScoreInterval = 0 }},
		{"zero attempts", func(c *HexicConfig) { c.Rotation.AttemptLimit = 0 }},
		{"negative points", func(c *HexicConfig) { c.Scoring.PointsPerTile = -1 }},
		{"bad progression", func(c *HexicConfig) { c.Difficulty.Progression.Type = "time" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHexicConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	cfg := DefaultHexicConfig()
	cfg.Bomb = BombConfig{Enabled: false}
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled bombs need no limits, got %v", err)
	}
}

func TestApplyHexicPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		types   int
	}{
		{DifficultyEasy, true, 0.0, 4},
		{DifficultyNormal, true, 0.3, 5},
		{DifficultyHard, true, 0.7, 6},
		{DifficultyFixed, false, 0.0, 5},
	}

	for _, tc := range tests {
		cfg := DefaultHexicConfig()
		ApplyHexicPreset(&cfg, tc.preset)
		if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.InitialLevel != tc.level {
			t.Errorf("%s: difficulty = %+v", tc.preset, cfg.Difficulty)
		}
		if got := len(cfg.ActiveCatalog()); got != tc.types {
			t.Errorf("%s: %d active types, expected %d", tc.preset, got, tc.types)
		}
	}

	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset accepted an unknown preset")
	}
}

func TestDifficultyBombMoveLimit(t *testing.T) {
	bomb := BombConfig{Enabled: true, MoveLimit: 7, MinMoveLimit: 4, ScoreInterval: 1000}
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10000},
	}, bomb)

	tests := []struct {
		score    int
		expected int
	}{
		{0, 7},
		{5000, 5},
		{10000, 4},
		{50000, 4},
	}
	for _, tc := range tests {
		if got := dm.BombMoveLimit(tc.score, 0); got != tc.expected {
			t.Errorf("BombMoveLimit(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}

	if dm.NextBombAt(0) != 1000 || dm.NextBombAt(2) != 3000 {
		t.Error("NextBombAt should step by score_interval")
	}
}

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	}, BombConfig{MoveLimit: 7, MinMoveLimit: 4})

	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := dm.Level(0, 0); got != 1.0 {
		t.Errorf("Level() = %v, expected 1.0", got)
	}
	if got := dm.BombMoveLimit(0, 0); got != 4 {
		t.Errorf("BombMoveLimit() = %d, expected 4", got)
	}
}
