package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DonaM86/Classic-games/internal/core"
	"github.com/DonaM86/Classic-games/internal/games/chase"
	"github.com/DonaM86/Classic-games/internal/games/snake"
	"github.com/DonaM86/Classic-games/internal/games/tictactoe"
	"github.com/DonaM86/Classic-games/internal/games/wordguess"
	"github.com/DonaM86/Classic-games/internal/platform/tui"
	"github.com/DonaM86/Classic-games/internal/registry"
	"github.com/DonaM86/Classic-games/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Enter        - Confirm / place mark / next word
  Letters      - Guess letters (word guess)
  1-9          - Place mark (tic-tac-toe)
  P            - Pause
  R            - Restart (after game over)
  Esc          - Back to menu
  Ctrl+C       - Quit

Examples:
  classic play snake
  classic play chase --seed 42
  classic play wordguess
  classic play tictactoe --config ./my-board.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// applyConfigPath routes the --config flag to the selected game's package.
func applyConfigPath(gameID string) {
	switch gameID {
	case "snake":
		snake.SetConfigPath(flagConfig)
	case "chase":
		chase.SetConfigPath(flagConfig)
	case "wordguess":
		wordguess.SetConfigPath(flagConfig)
	case "tictactoe":
		tictactoe.SetConfigPath(flagConfig)
	}
}

// terminalSize returns the current terminal dimensions, with fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'classic list' to see available games.")
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyConfigPath(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
