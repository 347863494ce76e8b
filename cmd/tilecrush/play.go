package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-crush/internal/config"
	"github.com/vovakirdan/tile-crush/internal/core"
	"github.com/vovakirdan/tile-crush/internal/games/match3"
	"github.com/vovakirdan/tile-crush/internal/platform/tui"
	"github.com/vovakirdan/tile-crush/internal/registry"
	"github.com/vovakirdan/tile-crush/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game mode.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Pick tile / swap with selection
  Mouse        - Pick tile directly
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 tile types, 30 moves
  normal - 6 tile types, 20 moves
  hard   - 7 tile types, 15 moves

Examples:
  tilecrush play crush
  tilecrush play crush --difficulty easy
  tilecrush play crush_moves --difficulty hard
  tilecrush play crush --config ./my-board.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilecrush list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	match3.SetConfigPath(flagConfig)
	match3.SetDifficultyPreset(config.DifficultyPreset(flagDifficulty))

	// Playing via the base ID goes through the mode/difficulty selector;
	// crush_moves skips it (the mode is already explicit)
	if gameID == "crush" && flagDifficulty == "" {
		selection, updatedCfg, selErr := tui.RunCrushModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		// Apply selection
		if selection.Mode == tui.CrushModeMoves {
			gameID = "crush_moves"
		}
		match3.SetDifficultyPreset(selection.Difficulty)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
