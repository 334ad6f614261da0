// Package wordguess implements the word guessing game: pick a category,
// guess letters against a tries budget, score by word length, difficulty
// tier and tries left, and keep a win streak going.
package wordguess

import (
	"fmt"
	"math"
	"strings"

	"github.com/DonaM86/Classic-games/internal/config"
	"github.com/DonaM86/Classic-games/internal/core"
	"github.com/DonaM86/Classic-games/internal/registry"
)

// Package-level configuration hook, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

// Status represents the current round status.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Game implements the word guessing game.
type Game struct {
	cfg  config.WordGuessConfig
	rng  core.Rand
	tick uint64

	category       string
	word           Word
	guessed        map[rune]bool
	remainingTries int
	status         Status

	// Session stats: survive round resets, cleared only by ResetStats.
	score     int
	highScore int
	streak    int

	// Finished rounds not yet drained by the platform.
	pending []core.RoundResult

	screenW int
	screenH int
}

// New creates a new word guessing game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("wordguess", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "wordguess"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Word Guess"
}

// Reset initializes the game: fresh stats, first category, random word.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadWordGuess(configPath)
	if err != nil {
		loaded = config.DefaultWordGuessConfig()
	}
	g.cfg = loaded

	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.score = 0
	g.highScore = 0
	g.streak = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	names := CategoryNames()
	g.category = names[0]
	g.newRound()
}

// SelectCategory switches to the named category and starts a fresh round
// with a random word from it. Unknown categories are ignored.
func (g *Game) SelectCategory(name string) {
	if WordsIn(name) == nil {
		return
	}
	g.category = name
	g.newRound()
}

// NewRound starts a fresh round in the current category, preserving
// score, high score and streak.
func (g *Game) NewRound() {
	g.newRound()
}

// ResetStats zeroes score, high score and streak, leaving the round alone.
func (g *Game) ResetStats() {
	g.score = 0
	g.highScore = 0
	g.streak = 0
}

// newRound draws a uniform-random word and resets the round state.
func (g *Game) newRound() {
	words := WordsIn(g.category)
	g.word = words[g.rng.Intn(len(words))]
	g.guessed = make(map[rune]bool)
	g.remainingTries = g.cfg.MaxTries
	g.status = StatusPlaying
}

// GuessLetter processes a single letter guess. Guesses outside A-Z,
// repeats, and guesses after the round ended are no-ops.
func (g *Game) GuessLetter(ch rune) {
	if g.status != StatusPlaying {
		return
	}
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if ch < 'A' || ch > 'Z' {
		return
	}
	if g.guessed[ch] {
		return
	}

	g.guessed[ch] = true

	if !strings.ContainsRune(g.word.Text, ch) {
		g.remainingTries--
		if g.remainingTries <= 0 {
			g.remainingTries = 0
			g.status = StatusLost
			g.streak = 0
			g.pending = append(g.pending, core.RoundResult{
				Outcome: "lost",
				Detail:  g.word.Text,
			})
		}
		return
	}

	if g.wordCovered() {
		g.status = StatusWon
		award := g.wordScore()
		g.score += award
		if g.score > g.highScore {
			g.highScore = g.score
		}
		g.streak++
		g.pending = append(g.pending, core.RoundResult{
			Outcome: "won",
			Detail:  g.word.Text,
			Points:  award,
		})
	}
}

// TakeRoundResults returns finished rounds accumulated since the last call
// and clears the queue.
func (g *Game) TakeRoundResults() []core.RoundResult {
	out := g.pending
	g.pending = nil
	return out
}

// wordCovered reports whether every letter of the word has been guessed.
func (g *Game) wordCovered() bool {
	for _, ch := range g.word.Text {
		if !g.guessed[ch] {
			return false
		}
	}
	return true
}

// wordScore computes the award for solving the current word:
// round(len * 10 * difficultyMultiplier * remainingTries / maxTries).
func (g *Game) wordScore() int {
	raw := float64(len(g.word.Text)) * 10 * g.word.Difficulty.Multiplier() *
		float64(g.remainingTries) / float64(g.cfg.MaxTries)
	return int(math.Round(raw))
}

// Step consumes one frame of input. The game is purely command-driven; the
// platform tick only advances the frame counter. Letters are checked before
// actions so that typing a letter the key mapper also binds to a movement
// action still counts as a guess.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	switch {
	case isLetter(input.Rune):
		g.GuessLetter(input.Rune)
	case input.Rune == '0':
		g.ResetStats()
	case input.Has(core.ActionRestart), input.Has(core.ActionConfirm):
		g.NewRound()
	case input.Has(core.ActionLeft):
		g.cycleCategory(-1)
	case input.Has(core.ActionRight):
		g.cycleCategory(1)
	}

	return core.StepResult{State: g.State()}
}

// isLetter reports whether r is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// cycleCategory moves to the previous/next category in sorted order.
func (g *Game) cycleCategory(delta int) {
	names := CategoryNames()
	idx := 0
	for i, name := range names {
		if name == g.category {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(names)) % len(names)
	g.SelectCategory(names[idx])
}

// maskedWord renders the word with unguessed letters hidden.
func (g *Game) maskedWord() string {
	var b strings.Builder
	for i, ch := range g.word.Text {
		if i > 0 {
			b.WriteRune(' ')
		}
		if g.guessed[ch] || g.status == StatusLost {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// guessedLetters renders the set of guessed letters in alphabet order.
func (g *Game) guessedLetters() string {
	var b strings.Builder
	for ch := 'A'; ch <= 'Z'; ch++ {
		if g.guessed[ch] {
			if b.Len() > 0 {
				b.WriteRune(' ')
			}
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Word Guess — Score: %d  Best: %d  Streak: %d", g.score, g.highScore, g.streak)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	dst.DrawText(2, 3, fmt.Sprintf("Category: %s  (←/→ to switch)", g.category))
	dst.DrawText(2, 4, fmt.Sprintf("Hint: %s", g.word.Hint))
	dst.DrawText(2, 5, fmt.Sprintf("Difficulty: %s", g.word.Difficulty))

	dst.DrawTextColored(2, 7, g.maskedWord(), core.ColorBrightCyan)

	tries := fmt.Sprintf("Tries left: %d/%d", g.remainingTries, g.cfg.MaxTries)
	dst.DrawText(2, 9, tries)
	if guessed := g.guessedLetters(); guessed != "" {
		dst.DrawText(2, 10, "Guessed: "+guessed)
	}

	switch g.status {
	case StatusWon:
		dst.DrawTextColored(2, 12, "Solved! Press Enter for the next word", core.ColorBrightGreen)
	case StatusLost:
		dst.DrawTextColored(2, 12, fmt.Sprintf("Out of tries — it was %s. Press Enter to try another", g.word.Text), core.ColorBrightRed)
	default:
		dst.DrawText(2, 12, "Type a letter to guess. 0 resets stats")
	}
}

// State returns the current game state. A finished round does not count as
// game over for the platform: the player keeps playing rounds and only the
// session stats carry over.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: false,
		Paused:   false,
	}
}
