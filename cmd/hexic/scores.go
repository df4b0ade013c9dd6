package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Arlandrian/HexicClone/internal/registry"
	"github.com/Arlandrian/HexicClone/internal/storage"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the given mode, the best score and
totals. With --runs, also list the most recent saved sim runs.

Examples:
  hexic scores hexic
  hexic scores hexic_zen --runs 5`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 0, "Also show this many recent sim runs")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'hexic list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hexic play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Moves", "Date")
		fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Moves, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		fmt.Println()
		if best, err := store.HighScore(gameID); err == nil {
			fmt.Printf("Best: %d\n", best)
		}
		if stats, err := store.GameStats(gameID); err == nil {
			fmt.Printf("Games: %d  Average: %.0f  Moves played: %d\n", stats.GamesCount, stats.AvgScore, stats.TotalMoves)
		}
	}

	if flagRuns > 0 {
		return printRuns(store, gameID, flagRuns)
	}
	return nil
}

func printRuns(store *storage.Store, gameID string, limit int) error {
	runs, err := store.RecentRuns(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Recent sim runs:")
	if len(runs) == 0 {
		fmt.Println("  none")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("  %s  seed=%d  moves=%d  score=%d  exploded=%d  end=%s\n",
			r.ID[:8], r.Seed, r.Moves, r.Score, r.Exploded, r.EndReason)
	}
	return nil
}
