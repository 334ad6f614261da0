package tictactoe

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Cells       [9]Mark
	CurrentMark Mark
	Status      Status
	Winner      Mark
	WinningLine [3]int
	HasLine     bool
	Mode        Mode
	Difficulty  Difficulty
	Stats       Stats
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Cells:       g.cells,
		CurrentMark: g.currentMark,
		Status:      g.status,
		Winner:      g.winner,
		WinningLine: g.winningLine,
		HasLine:     g.hasLine,
		Mode:        g.mode,
		Difficulty:  g.difficulty,
		Stats:       g.stats,
	}
}
