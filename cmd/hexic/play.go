package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Arlandrian/HexicClone/internal/config"
	"github.com/Arlandrian/HexicClone/internal/core"
	"github.com/Arlandrian/HexicClone/internal/games/hexic"
	"github.com/Arlandrian/HexicClone/internal/platform/tui"
	"github.com/Arlandrian/HexicClone/internal/registry"
	"github.com/Arlandrian/HexicClone/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: hexic).

Controls:
  Arrows/WASD  - Move the dot cursor
  X/E          - Rotate clockwise
  Z/Space      - Rotate counter-clockwise
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Four tile colors, slow bomb countdown
  normal - Five tile colors
  hard   - Six tile colors, bombs start short
  fixed  - No progression, stays at config's initial level

Examples:
  hexic play
  hexic play hexic_zen
  hexic play --difficulty hard
  hexic play --config ./my-hexic.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameConfigFlags(playCmd)
}

// addGameConfigFlags registers the flags that select the game config.
func addGameConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameConfigFlags hands the config flags to the game package and
// reports config problems before the terminal is taken over.
func applyGameConfigFlags() error {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	hexic.SetConfigPath(flagConfig)
	hexic.SetDifficultyPreset(flagDifficulty)

	if _, err := hexic.LoadConfig(); err != nil {
		logger.Warn("using default config", "error", err)
	}
	return nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(hexic.ModeClassic)
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'hexic list' to see available modes", gameID)
	}
	if err := applyGameConfigFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if g, ok := game.(interface{ Err() error }); ok && g.Err() != nil {
		logger.Warn("game ran with the default config", "error", g.Err())
	}
	return nil
}
