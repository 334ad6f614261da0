// Package tictactoe implements the 3×3 board game against a second local
// player or a computer opponent. The hard opponent searches the full game
// tree, so the best a human can do against it is a draw.
package tictactoe

import (
	"fmt"

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

// Mark is the content of a board cell.
type Mark int8

const (
	Empty Mark = iota
	X          // Human seat in AI mode, always moves first
	O          // Computer seat in AI mode
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Mode selects the opponent: a second local player or the computer.
type Mode string

const (
	ModeHuman Mode = "human"
	ModeAI    Mode = "ai"
)

// Difficulty selects the computer strategy.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Status represents the current round status.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

// Stats is the session win/loss/draw record, attributed from X's
// perspective (the human seat in AI mode).
type Stats struct {
	Wins   int
	Losses int
	Draws  int
}

// Game implements the board game.
type Game struct {
	cfg  config.BoardConfig
	rng  core.Rand
	tick uint64

	cells       [9]Mark
	currentMark Mark
	status      Status
	winner      Mark
	winningLine [3]int
	hasLine     bool

	mode       Mode
	difficulty Difficulty
	stats      Stats

	// Finished rounds not yet drained by the platform.
	pending []core.RoundResult

	cursor int // TUI cell cursor, 0-8

	screenW int
	screenH int
}

// New creates a new board game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Reset initializes the game: empty board, AI mode on hard, zeroed stats.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadBoard(configPath)
	if err != nil {
		loaded = config.DefaultBoardConfig()
	}
	g.cfg = loaded

	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.mode = ModeAI
	g.difficulty = DifficultyHard
	g.stats = Stats{}
	g.cursor = 4
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.resetBoard()
}

// resetBoard clears the round state; session stats survive.
func (g *Game) resetBoard() {
	g.cells = [9]Mark{}
	g.currentMark = X
	g.status = StatusPlaying
	g.winner = Empty
	g.winningLine = [3]int{}
	g.hasLine = false
}

// ResetBoard starts a new round, keeping the session stats.
func (g *Game) ResetBoard() {
	g.resetBoard()
}

// ResetStats zeroes the win/loss/draw record only.
func (g *Game) ResetStats() {
	g.stats = Stats{}
}

// SetMode switches the opponent type. A change implicitly starts a new
// round; setting the current mode again does nothing.
func (g *Game) SetMode(m Mode) {
	if m != ModeHuman && m != ModeAI {
		return
	}
	if m == g.mode {
		return
	}
	g.mode = m
	g.resetBoard()
}

// SetDifficulty switches the computer strategy. A change implicitly starts
// a new round; setting the current difficulty again does nothing.
func (g *Game) SetDifficulty(d Difficulty) {
	if d != DifficultyEasy && d != DifficultyMedium && d != DifficultyHard {
		return
	}
	if d == g.difficulty {
		return
	}
	g.difficulty = d
	g.resetBoard()
}

// Play places the current mark at the given cell. Out-of-range indices,
// occupied cells and finished rounds are no-ops. In AI mode, a human move
// that leaves the round open is answered by the computer within the same
// transition.
func (g *Game) Play(cell int) {
	if cell < 0 || cell > 8 {
		return
	}
	if g.status != StatusPlaying || g.cells[cell] != Empty {
		return
	}

	g.place(cell)

	if g.mode == ModeAI && g.status == StatusPlaying && g.currentMark == O {
		g.place(g.chooseAIMove())
	}
}

// place applies one move for the current mark and evaluates the outcome.
func (g *Game) place(cell int) {
	g.cells[cell] = g.currentMark

	if line, ok := findWin(g.cells); ok {
		g.status = StatusWon
		g.winner = g.currentMark
		g.winningLine = line
		g.hasLine = true
		g.recordOutcome()
		return
	}
	if boardFull(g.cells) {
		g.status = StatusDraw
		g.recordOutcome()
		return
	}

	g.currentMark = other(g.currentMark)
}

// recordOutcome updates the session stats from X's perspective and queues
// the round for persistence.
func (g *Game) recordOutcome() {
	outcome := "draw"
	switch {
	case g.status == StatusDraw:
		g.stats.Draws++
	case g.winner == X:
		g.stats.Wins++
		outcome = "won"
	default:
		g.stats.Losses++
		outcome = "lost"
	}

	detail := string(ModeHuman)
	if g.mode == ModeAI {
		detail = string(g.difficulty)
	}
	g.pending = append(g.pending, core.RoundResult{Outcome: outcome, Detail: detail})
}

// TakeRoundResults returns finished rounds accumulated since the last call
// and clears the queue.
func (g *Game) TakeRoundResults() []core.RoundResult {
	out := g.pending
	g.pending = nil
	return out
}

// chooseAIMove picks the computer's cell according to the difficulty.
func (g *Game) chooseAIMove() int {
	switch g.difficulty {
	case DifficultyEasy:
		return g.randomMove()
	case DifficultyMedium:
		if g.rng.Float64() < g.cfg.MediumRandomChance {
			return g.randomMove()
		}
		return bestMove(g.cells, O, X)
	default:
		return bestMove(g.cells, O, X)
	}
}

// randomMove returns a uniform-random empty cell.
func (g *Game) randomMove() int {
	var empty []int
	for i, c := range g.cells {
		if c == Empty {
			empty = append(empty, i)
		}
	}
	return empty[g.rng.Intn(len(empty))]
}

// Step consumes one frame of input. The board is purely command-driven;
// the platform tick only advances the frame counter.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	switch {
	case input.Rune >= '1' && input.Rune <= '9':
		g.Play(int(input.Rune - '1'))
	case input.Rune == 'm':
		g.toggleMode()
	case input.Rune == 'f':
		g.cycleDifficulty()
	case input.Rune == '0':
		g.ResetStats()
	case input.Has(core.ActionRestart):
		g.ResetBoard()
	case input.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case input.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case input.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case input.Has(core.ActionRight):
		g.moveCursor(1, 0)
	case input.Has(core.ActionConfirm):
		g.Play(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

// moveCursor shifts the TUI cursor within the 3×3 grid.
func (g *Game) moveCursor(dx, dy int) {
	x := core.Clamp(g.cursor%3+dx, 0, 2)
	y := core.Clamp(g.cursor/3+dy, 0, 2)
	g.cursor = y*3 + x
}

func (g *Game) toggleMode() {
	if g.mode == ModeAI {
		g.SetMode(ModeHuman)
	} else {
		g.SetMode(ModeAI)
	}
}

func (g *Game) cycleDifficulty() {
	switch g.difficulty {
	case DifficultyEasy:
		g.SetDifficulty(DifficultyMedium)
	case DifficultyMedium:
		g.SetDifficulty(DifficultyHard)
	default:
		g.SetDifficulty(DifficultyEasy)
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Tic-Tac-Toe — W:%d L:%d D:%d  Mode: %s  Difficulty: %s",
		g.stats.Wins, g.stats.Losses, g.stats.Draws, g.mode, g.difficulty)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	offX := (dst.Width() - 11) / 2
	offY := 3

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			x := offX + col*4
			y := offY + row*2

			c := core.ColorDefault
			if g.hasLine && onLine(g.winningLine, idx) {
				c = core.ColorBrightGreen
			}
			dst.SetColored(x+1, y, rune(g.cells[idx].String()[0]), c)

			if idx == g.cursor && g.status == StatusPlaying {
				dst.SetColored(x, y, '[', core.ColorBrightYellow)
				dst.SetColored(x+2, y, ']', core.ColorBrightYellow)
			}
		}
		if row < 2 {
			dst.DrawText(offX, offY+row*2+1, "───┼───┼───")
		}
	}
	for row := 0; row < 3; row++ {
		dst.Set(offX+3, offY+row*2, '│')
		dst.Set(offX+7, offY+row*2, '│')
	}

	msgY := offY + 6
	switch {
	case g.status == StatusWon:
		dst.DrawTextColored(2, msgY, fmt.Sprintf("%s wins! Press R for a new round", g.winner), core.ColorBrightGreen)
	case g.status == StatusDraw:
		dst.DrawText(2, msgY, "Draw. Press R for a new round")
	default:
		dst.DrawText(2, msgY, fmt.Sprintf("%s to move — arrows + Enter or 1-9", g.currentMark))
	}
	dst.DrawText(2, msgY+1, "M: mode  F: difficulty  0: reset stats")
}

// onLine reports whether idx is part of the winning line.
func onLine(line [3]int, idx int) bool {
	return line[0] == idx || line[1] == idx || line[2] == idx
}

// State returns the current game state. Rounds cycle inside the session,
// so the platform never sees a game over; the score is the win count.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Wins,
		GameOver: false,
		Paused:   false,
	}
}
