package wordguess

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Category       string
	Word           string
	GuessedCount   int
	RemainingTries int
	Status         Status
	Score          int
	HighScore      int
	Streak         int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		Category:       g.category,
		Word:           g.word.Text,
		GuessedCount:   len(g.guessed),
		RemainingTries: g.remainingTries,
		Status:         g.status,
		Score:          g.score,
		HighScore:      g.highScore,
		Streak:         g.streak,
	}
}
