package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-maze/internal/storage"
)

var flagScoresDaily bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game-id]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a mode (default: the daily puzzle),
or the recent daily log with --daily.

Examples:
  tiltmaze scores
  tiltmaze scores tiltmaze_free
  tiltmaze scores --daily`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresDaily, "daily", false, "Show the recent daily puzzle log instead")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresDaily {
		showDailyLog(store)
		return
	}

	gameID := "tiltmaze"
	if len(args) > 0 {
		gameID = args[0]
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n\n", gameID)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tiltmaze play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	high, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("\nBest: %d\n", high)
	}
}

// showDailyLog prints the recent daily puzzle attempts and the streak.
func showDailyLog(store *storage.Store) {
	runs, err := store.RecentDailyRuns(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving daily log: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Daily Puzzle Log")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No daily runs yet. Play 'tiltmaze play' to start a streak!")
		return
	}

	fmt.Printf("  %-12s  %-8s  %-6s  %-6s  %s\n", "Date", "Result", "Score", "Falls", "Time")
	fmt.Printf("  %-12s  %-8s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "----")
	for _, run := range runs {
		result := "lost"
		if run.Won {
			result = "solved"
		}
		secs := float64(run.Ticks) / 60.0
		fmt.Printf("  %-12s  %-8s  %-6d  %-6d  %.1fs\n", run.Date, result, run.Score, run.Deaths, secs)
	}

	today := time.Now().UTC().Format("2006-01-02")
	streak, err := store.SolvedStreak(today)
	if err == nil {
		fmt.Printf("\nCurrent streak: %d\n", streak)
	}
}
