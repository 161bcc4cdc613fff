package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/games/tiltmaze"
	"github.com/vovakirdan/tilt-maze/internal/platform/tui"
	"github.com/vovakirdan/tilt-maze/internal/registry"
	"github.com/vovakirdan/tilt-maze/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagFree       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the daily puzzle",
	Long: `Start today's daily maze, or a random one with --free.

Controls:
  Arrows/WASD/HJKL - Tilt the board
  P/Esc            - Pause
  R                - Restart (after winning)
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - 6x6 board, 3 holes
  normal - 8x8 board, 6 holes
  hard   - 10x10 board, 10 holes

Examples:
  tiltmaze play
  tiltmaze play --free
  tiltmaze play --free --seed 77
  tiltmaze play --difficulty hard
  tiltmaze play --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagFree, "free", false, "Play a random maze instead of the daily puzzle")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tiltmaze"
	if flagFree {
		gameID = "tiltmaze_free"
	}

	// Get terminal size
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
	tiltmaze.SetConfigPath(flagConfig)
	tiltmaze.SetDifficultyPreset(flagDifficulty)

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
