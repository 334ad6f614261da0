package tictactoe

import (
	"strings"
	"testing"

	"github.com/DonaM86/Classic-games/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
	})
	return g
}

func newHumanGame() *Game {
	g := newTestGame(1)
	g.SetMode(ModeHuman)
	return g
}

func TestResetDefaults(t *testing.T) {
	g := newTestGame(1)

	if g.mode != ModeAI || g.difficulty != DifficultyHard {
		t.Errorf("Expected ai/hard defaults, got %s/%s", g.mode, g.difficulty)
	}
	if g.currentMark != X {
		t.Error("X must move first")
	}
	if g.cells != ([9]Mark{}) {
		t.Error("Board must start empty")
	}
}

func TestHumanModeAlternatesMarks(t *testing.T) {
	g := newHumanGame()

	g.Play(0)
	g.Play(4)
	if g.cells[0] != X || g.cells[4] != O {
		t.Errorf("Marks should alternate X then O: %v", g.cells)
	}
	if g.currentMark != X {
		t.Errorf("Turn should be back to X, got %s", g.currentMark)
	}
}

func TestWinEndsRound(t *testing.T) {
	g := newHumanGame()

	for _, cell := range []int{0, 3, 1, 4, 2} {
		g.Play(cell)
	}

	if g.status != StatusWon || g.winner != X {
		t.Fatalf("Expected X win, got %s winner=%s", g.status, g.winner)
	}
	if !g.hasLine || g.winningLine != [3]int{0, 1, 2} {
		t.Errorf("Expected winning line [0 1 2], got %v", g.winningLine)
	}
	if g.stats.Wins != 1 || g.stats.Losses != 0 || g.stats.Draws != 0 {
		t.Errorf("Expected 1/0/0 stats, got %+v", g.stats)
	}
}

func TestOWinRecordsLoss(t *testing.T) {
	g := newHumanGame()

	for _, cell := range []int{0, 3, 1, 4, 8, 5} {
		g.Play(cell)
	}

	if g.status != StatusWon || g.winner != O {
		t.Fatalf("Expected O win, got %s winner=%s", g.status, g.winner)
	}
	if g.stats.Losses != 1 {
		t.Errorf("An O win counts as a loss for X, got %+v", g.stats)
	}
}

func TestDrawDetected(t *testing.T) {
	g := newHumanGame()

	for _, cell := range []int{0, 4, 8, 1, 7, 6, 2, 5, 3} {
		g.Play(cell)
	}

	if g.status != StatusDraw {
		t.Fatalf("Expected draw, got %s", g.status)
	}
	if g.stats.Draws != 1 {
		t.Errorf("Expected 1 draw recorded, got %+v", g.stats)
	}
}

func TestInvalidMovesAreNoOps(t *testing.T) {
	g := newHumanGame()
	g.Play(4)
	snap := g.Snapshot()

	g.Play(4)  // occupied
	g.Play(-1) // out of range
	g.Play(9)  // out of range
	if got := g.Snapshot(); got != snap {
		t.Errorf("Invalid moves must change nothing: %+v vs %+v", got, snap)
	}
}

func TestPlayAfterTerminalIsNoOp(t *testing.T) {
	g := newHumanGame()
	for _, cell := range []int{0, 3, 1, 4, 2} {
		g.Play(cell)
	}

	snap := g.Snapshot()
	g.Play(5)
	if got := g.Snapshot(); got != snap {
		t.Error("Moves after the round ended must change nothing")
	}
}

func TestAIRepliesWithinSameMove(t *testing.T) {
	g := newTestGame(1)

	g.Play(0)

	filled := 0
	for _, c := range g.cells {
		if c != Empty {
			filled++
		}
	}
	if filled != 2 {
		t.Fatalf("Expected exactly 2 marks after one human move in AI mode, got %d", filled)
	}
	if g.currentMark != X {
		t.Errorf("Turn should return to the human, got %s", g.currentMark)
	}
}

func TestHardAINeverLosesToRandomPlay(t *testing.T) {
	rng := core.NewRand(99)

	for game := 0; game < 30; game++ {
		g := newTestGame(1)
		for g.status == StatusPlaying {
			var empty []int
			for i, c := range g.cells {
				if c == Empty {
					empty = append(empty, i)
				}
			}
			g.Play(empty[rng.Intn(len(empty))])
		}
		if g.winner == X {
			t.Fatalf("Random play beat the hard opponent in game %d: %v", game, g.cells)
		}
	}
}

func TestEasyAIPlaysLegalMoves(t *testing.T) {
	g := newTestGame(7)
	g.SetDifficulty(DifficultyEasy)

	for g.status == StatusPlaying {
		var empty []int
		for i, c := range g.cells {
			if c == Empty {
				empty = append(empty, i)
			}
		}
		before := g.cells
		g.Play(empty[0])
		for i := range g.cells {
			if before[i] != Empty && g.cells[i] != before[i] {
				t.Fatalf("An occupied cell was overwritten at %d", i)
			}
		}
	}
}

func TestMediumWithZeroChanceMatchesHard(t *testing.T) {
	g := newTestGame(1)
	g.SetDifficulty(DifficultyMedium)
	g.cfg.MediumRandomChance = 0
	g.cells = [9]Mark{X, X, Empty, Empty, O, Empty, Empty, Empty, Empty}
	g.currentMark = O

	if got := g.chooseAIMove(); got != bestMove(g.cells, O, X) {
		t.Errorf("Medium at zero random chance should play the minimax move, got %d", got)
	}
}

func TestStatsSurviveRoundReset(t *testing.T) {
	g := newHumanGame()
	for _, cell := range []int{0, 3, 1, 4, 2} {
		g.Play(cell)
	}

	g.ResetBoard()
	if g.stats.Wins != 1 {
		t.Error("ResetBoard must keep the session stats")
	}
	if g.status != StatusPlaying || g.cells != ([9]Mark{}) || g.currentMark != X {
		t.Error("ResetBoard must fully clear the round")
	}

	g.ResetStats()
	if g.stats != (Stats{}) {
		t.Errorf("ResetStats must zero the record, got %+v", g.stats)
	}
}

func TestModeChangeResetsBoard(t *testing.T) {
	g := newHumanGame()
	g.Play(0)

	g.SetMode(ModeAI)
	if g.cells != ([9]Mark{}) {
		t.Error("Switching mode must start a new round")
	}

	g.Play(0)
	marked := g.cells
	g.SetMode(ModeAI) // already ai
	if g.cells != marked {
		t.Error("Setting the current mode again must not reset")
	}
}

func TestDifficultyChangeResetsBoard(t *testing.T) {
	g := newHumanGame()
	g.Play(0)

	g.SetDifficulty(DifficultyEasy)
	if g.cells != ([9]Mark{}) {
		t.Error("Switching difficulty must start a new round")
	}

	g.SetDifficulty("nightmare")
	if g.difficulty != DifficultyEasy {
		t.Error("Unknown difficulty must be ignored")
	}
}

func TestDeterminism(t *testing.T) {
	script := []int{4, 0, 8, 2, 6}

	run := func() Snapshot {
		g := newTestGame(12345)
		g.SetDifficulty(DifficultyMedium)
		for _, cell := range script {
			g.Play(cell)
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Same seed and moves must give identical snapshots:\n%+v\n%+v", a, b)
	}
}

func TestStepRoutesInput(t *testing.T) {
	g := newHumanGame()

	input := core.NewInputFrame()
	input.SetRune('5')
	g.Step(input)
	if g.cells[4] != X {
		t.Errorf("Rune '5' should play cell 4, got %v", g.cells)
	}

	input.Clear()
	input.SetRune('m')
	g.Step(input)
	if g.mode != ModeAI {
		t.Errorf("Rune 'm' should toggle the mode, got %s", g.mode)
	}

	input.Clear()
	input.Set(core.ActionConfirm)
	g.Step(input)
	if g.cells[g.cursor] == Empty {
		t.Error("Confirm should play the cursor cell")
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := newHumanGame()

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	for i := 0; i < 5; i++ {
		g.Step(input)
	}
	if g.cursor < 0 || g.cursor > 8 {
		t.Fatalf("Cursor left the board: %d", g.cursor)
	}
	if g.cursor/3 != 0 {
		t.Errorf("Cursor should clamp to the top row, got %d", g.cursor)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Tic-Tac-Toe") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(out, "Difficulty: hard") {
		t.Error("HUD should show the difficulty")
	}
}
