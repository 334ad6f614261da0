package snake

import "github.com/DonaM86/Classic-games/internal/core"

// Status represents the current game status.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     core.Position
	Dir      core.Direction
	Food     core.Position
	Status   Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	if g.gameOver {
		status = StatusGameOver
	}

	var head core.Position
	if len(g.segments) > 0 {
		head = g.segments[0]
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.segments),
		Head:     head,
		Dir:      g.direction,
		Food:     g.food,
		Status:   status,
	}
}
