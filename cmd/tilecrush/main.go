// tilecrush is a TUI match-3 puzzle platform for the terminal.
//
// Usage:
//
//	tilecrush list              - List available game modes
//	tilecrush play <game>       - Play a game
//	tilecrush menu              - Start menu to pick games interactively
//	tilecrush serve             - Start SSH server for remote play
//	tilecrush scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tilecrush/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tile-crush/internal/games/match3"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilecrush",
	Short: "Tile Crush - Match-3 puzzles in your terminal",
	Long: `Tile Crush is a terminal-based match-3 puzzle platform. Swap adjacent
tiles to line up three or more of a kind, chain cascades for bonus
points, and race the move budget.

Available commands:
  list     - Show all available game modes
  play     - Play a specific mode directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tilecrush list
  tilecrush play crush
  tilecrush menu
  tilecrush serve --ssh :2222
  tilecrush scores crush`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilecrush/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
