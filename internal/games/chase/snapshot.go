package chase

import "github.com/DonaM86/Classic-games/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Score       int
	Player      core.Position
	Dir         core.Direction
	Adversaries []core.Position
	PickupsLeft int
	Status      Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	adversaries := make([]core.Position, len(g.adversaries))
	copy(adversaries, g.adversaries)

	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		Player:      g.playerPos,
		Dir:         g.direction,
		Adversaries: adversaries,
		PickupsLeft: len(g.pickups),
		Status:      g.status,
	}
}
