// tiltmaze is a terminal game: tilt the board and roll a ball through a
// maze to the goal without falling into a hole. One shared puzzle per day.
//
// Usage:
//
//	tiltmaze play            - Play today's daily puzzle
//	tiltmaze play --free     - Play a random maze
//	tiltmaze menu            - Interactive mode picker
//	tiltmaze gen             - Print a maze to stdout
//	tiltmaze serve           - Start SSH server for remote play
//	tiltmaze scores          - Show high scores and the daily log
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tiltmaze/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register both modes
	_ "github.com/vovakirdan/tilt-maze/internal/games/tiltmaze"
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
	Use:   "tiltmaze",
	Short: "Tilt Maze - roll a ball through a daily maze in your terminal",
	Long: `Tilt Maze is a terminal game. Tilt the board with the arrow keys
and roll the ball from the top-left corner to the goal. Holes swallow the
ball and send it back to the start. Everyone gets the same maze on the
same day.

Available commands:
  play     - Play the daily puzzle (or --free for a random maze)
  menu     - Interactive mode picker
  gen      - Print a maze to stdout
  serve    - Start SSH server for remote play
  scores   - View high scores and the daily log
  list     - Show the registered game modes

Examples:
  tiltmaze play
  tiltmaze play --free --seed 77
  tiltmaze gen --date 2026-08-23
  tiltmaze serve --ssh :2222
  tiltmaze scores --daily`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tiltmaze/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
