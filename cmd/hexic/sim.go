package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Arlandrian/HexicClone/internal/games/hexic"
	"github.com/Arlandrian/HexicClone/internal/registry"
	"github.com/Arlandrian/HexicClone/internal/storage"
)

var (
	flagSimMode   string
	flagSimMoves  int
	flagSimGreedy bool
	flagSimSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Autoplay a headless game",
	Long: `Play a game without a terminal UI. Each move is logged at debug level
and a summary at info level. The same seed always produces the same run.

Examples:
  hexic sim --seed 42
  hexic sim --moves 500 --greedy --log-level debug
  hexic sim --mode hexic_zen --save`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimMode, "mode", string(hexic.ModeClassic), "Mode to simulate")
	simCmd.Flags().IntVar(&flagSimMoves, "moves", 100, "Maximum number of rotate commands")
	simCmd.Flags().BoolVar(&flagSimGreedy, "greedy", false, "Prefer rotations that make a match")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
	addGameConfigFlags(simCmd)
}

func runSim(_ *cobra.Command, _ []string) error {
	if !registry.Exists(flagSimMode) {
		return fmt.Errorf("unknown mode %q, run 'hexic list' to see available modes", flagSimMode)
	}
	if flagSimMoves <= 0 {
		return fmt.Errorf("--moves must be positive, got %d", flagSimMoves)
	}
	if err := applyGameConfigFlags(); err != nil {
		return err
	}

	cfg, err := hexic.LoadConfig()
	if err != nil {
		logger.Warn("using default config", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	res, err := hexic.Simulate(hexic.SimOptions{
		Mode:     hexic.Mode(flagSimMode),
		Config:   cfg,
		Seed:     seed,
		MaxMoves: flagSimMoves,
		Greedy:   flagSimGreedy,
	}, func(r hexic.MoveReport) {
		logger.Debug("move",
			"n", r.Move,
			"dot", r.Dot,
			"cw", r.Clockwise,
			"exploded", r.Exploded,
			"score", r.Score,
			"bombs", r.Bombs,
		)
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	logger.Info("simulation finished",
		"mode", res.Mode,
		"seed", res.Seed,
		"moves", res.Moves,
		"score", res.Score,
		"exploded", res.Exploded,
		"bombs", res.BombsSpawned,
		"end", res.EndReason,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if !flagSimSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunRecord{
		GameID:    string(res.Mode),
		Seed:      res.Seed,
		Moves:     res.Moves,
		Score:     res.Score,
		Exploded:  res.Exploded,
		EndReason: res.EndReason,
	})
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id, "db", flagDBPath)
	return nil
}
