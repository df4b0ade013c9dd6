// hexic is a hexagonal match-3 puzzle for the terminal.
//
// Usage:
//
//	hexic list              - List available modes
//	hexic play [mode]       - Play a mode (default: hexic)
//	hexic menu              - Start menu to pick modes interactively
//	hexic scores <mode>     - Show high scores for a mode
//	hexic sim               - Autoplay a headless game
//	hexic serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.hexic/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/Arlandrian/HexicClone/internal/games/hexic"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hexic",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexic",
	Short: "Hexic - rotate hexagons, match three",
	Long: `Hexic is a match-3 puzzle on a hexagonal grid. Pick a dot between three
tiles and rotate them; three of a kind explode, tiles fall and new ones
drop in. In the classic mode bombs appear as your score grows and end the
game when their countdown runs out.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores
  sim      - Autoplay a headless game
  serve    - Start SSH server for remote play

Examples:
  hexic play
  hexic play hexic_zen
  hexic menu
  hexic sim --moves 200 --greedy --seed 7
  hexic serve --ssh :2222
  hexic scores hexic`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexic/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
}
