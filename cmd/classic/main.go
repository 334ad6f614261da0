// classic is a terminal platform for playing a small suite of classic games:
// snake on a wrapping grid, a maze chase, word guessing, and tic-tac-toe.
//
// Usage:
//
//	classic list              - List available games
//	classic play <game>       - Play a game
//	classic menu              - Start menu to pick games interactively
//	classic serve             - Start SSH server for remote play
//	classic scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <dsn>      - Scores database (default: in-memory, gone on exit)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DonaM86/Classic-games/internal/storage"

	// Import games to register them
	_ "github.com/DonaM86/Classic-games/internal/games/chase"
	_ "github.com/DonaM86/Classic-games/internal/games/snake"
	_ "github.com/DonaM86/Classic-games/internal/games/tictactoe"
	_ "github.com/DonaM86/Classic-games/internal/games/wordguess"
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
	Use:   "classic",
	Short: "Classic Games - play snake, maze chase, word guess and tic-tac-toe in your terminal",
	Long: `Classic Games is a terminal platform with four built-in games.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  classic list
  classic play snake
  classic menu
  classic serve --ssh :2222
  classic scores snake`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryDSN,
		"Scores database DSN (a file path, or :memory: for session-only scores)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
