package snake

import (
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

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i == 20 {
			input.Set(core.ActionDown)
		}
		if i == 40 {
			input.Set(core.ActionLeft)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch: %+v vs %+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(42)

	if g.direction != core.DirRight {
		t.Fatalf("Expected initial direction right, got %v", g.direction)
	}

	// Left is the exact opposite of right - must be ignored
	g.SetDirection(core.DirLeft)
	if g.nextDir == core.DirLeft {
		t.Error("Should not allow immediate reversal from right to left")
	}

	// Perpendicular turns are fine
	g.SetDirection(core.DirDown)
	if g.nextDir != core.DirDown {
		t.Errorf("Expected nextDir down, got %v", g.nextDir)
	}
}

func TestHeadAlwaysInBounds(t *testing.T) {
	g := newTestGame(999)

	// Drive the snake far past every edge; the torus must keep the head in bounds.
	dirs := []core.Direction{core.DirRight, core.DirDown, core.DirRight, core.DirUp}
	for _, d := range dirs {
		g.SetDirection(d)
		for i := 0; i < 3*g.gridSize; i++ {
			g.advance()
			if g.gameOver {
				return // Ran into itself chasing food spawns, still a valid run
			}
			head := g.segments[0]
			if !head.In(g.gridSize) {
				t.Fatalf("Head out of bounds at %v (grid %d)", head, g.gridSize)
			}
		}
	}
}

func TestToroidalWrap(t *testing.T) {
	g := newTestGame(7)

	g.segments = []core.Position{{X: g.gridSize - 1, Y: 5}}
	g.direction = core.DirRight
	g.nextDir = core.DirRight
	g.food = core.Position{X: -1, Y: -1} // Out of the way

	g.advance()

	if g.gameOver {
		t.Fatal("Crossing the edge must not end the game: there are no walls")
	}
	if g.segments[0] != (core.Position{X: 0, Y: 5}) {
		t.Errorf("Expected head to wrap to (0,5), got %v", g.segments[0])
	}
}

func TestGrowthExactlyOnePerFood(t *testing.T) {
	g := newTestGame(222)

	head := g.segments[0]
	g.food = core.Position{X: head.X + 1, Y: head.Y}
	lenBefore := len(g.segments)

	g.advance()

	if len(g.segments) != lenBefore+1 {
		t.Errorf("Snake should grow by exactly 1 after food, got %d vs %d",
			len(g.segments), lenBefore+1)
	}
	if g.score != g.cfg.PointsPerFood {
		t.Errorf("Score should be %d after one food, got %d", g.cfg.PointsPerFood, g.score)
	}

	// A non-growth move keeps the length constant
	g.food = core.Position{X: -1, Y: -1}
	lenBefore = len(g.segments)
	g.advance()
	if len(g.segments) != lenBefore {
		t.Errorf("Length changed on a non-growth move: %d vs %d", len(g.segments), lenBefore)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(111)

	// Hook shape: moving right puts the head onto an occupied cell
	g.segments = []core.Position{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.direction = core.DirRight
	g.nextDir = core.DirRight

	before := make([]core.Position, len(g.segments))
	copy(before, g.segments)
	scoreBefore := g.score

	g.advance()

	if !g.gameOver {
		t.Fatal("Game should be over after self collision")
	}
	// State other than status must be unchanged by the fatal move
	if g.score != scoreBefore {
		t.Errorf("Score changed on fatal move: %d vs %d", g.score, scoreBefore)
	}
	for i, seg := range g.segments {
		if seg != before[i] {
			t.Errorf("Segment %d changed on fatal move: %v vs %v", i, seg, before[i])
		}
	}
}

func TestNoMovementAfterGameOver(t *testing.T) {
	g := newTestGame(333)
	g.gameOver = true

	snap := g.Snapshot()
	input := core.NewInputFrame()
	for i := 0; i < 50; i++ {
		g.Step(input)
	}

	after := g.Snapshot()
	after.Tick = snap.Tick // Tick counter still runs; everything else must not
	if snap != after {
		t.Errorf("State changed after game over: %+v vs %+v", snap, after)
	}
}

// TestFoodMayLandOnSnake pins a quirk of the original rules: the food
// respawn does not avoid cells occupied by the snake. It only asserts the
// spawn stays in bounds, so a spawn under the snake is accepted.
func TestFoodMayLandOnSnake(t *testing.T) {
	g := newTestGame(555)

	for i := 0; i < 500; i++ {
		g.spawnFood()
		if !g.food.In(g.gridSize) {
			t.Fatalf("Food out of bounds at %v", g.food)
		}
	}
}

func TestResetIdempotent(t *testing.T) {
	g := newTestGame(777)

	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		g.Step(input)
	}

	cfg := core.RuntimeConfig{Seed: 99, ScreenW: 80, ScreenH: 24}
	g.Reset(cfg)
	first := g.Snapshot()
	g.Reset(cfg)
	second := g.Snapshot()

	if first != second {
		t.Errorf("Double reset should yield identical state: %+v vs %+v", first, second)
	}
	if first.SnakeLen != 1 {
		t.Errorf("Reset snake should have a single segment, got %d", first.SnakeLen)
	}
	if first.Score != 0 || first.Status != StatusPlaying {
		t.Errorf("Reset state wrong: %+v", first)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(444)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if len(screen.String()) == 0 {
		t.Error("Rendered screen should not be empty")
	}
}
