package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DonaM86/Classic-games/internal/registry"
	"github.com/DonaM86/Classic-games/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game, plus the
round win/loss record for round-based games.

Scores only persist across runs when --db points at a file.

Examples:
  classic scores snake --db ~/.classic-games/scores.db
  classic scores wordguess --db ./scores.db`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'classic list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if high, err := store.HighScore(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", high)
		}
	}

	// Round-based games also keep a per-round record
	tally, err := store.RoundTally(gameID)
	if err == nil && len(tally) > 0 {
		fmt.Println()
		fmt.Printf("Rounds: won %d, lost %d, draw %d\n", tally["won"], tally["lost"], tally["draw"])
	}
}
