package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreDefaultsToMemory(t *testing.T) {
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("snake", 10); err != nil {
		t.Errorf("SaveScore() on the in-memory store failed: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openMemory(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("snake", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("chase", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 snake scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	chaseScores, err := store.TopScores("chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(chaseScores) != 1 {
		t.Errorf("Expected 1 chase score, got %d", len(chaseScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openMemory(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("snake", (i+1)*100)
	}

	scores, err := store.TopScores("snake", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openMemory(t)

	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for an empty game, got %d", high)
	}

	store.SaveScore("snake", 100)
	store.SaveScore("snake", 300)
	store.SaveScore("snake", 200)

	high, err = store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openMemory(t)

	store.SaveScore("snake", 100)
	store.SaveScore("snake", 200)
	store.SaveScore("chase", 300)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	snakeScores, _ := store.TopScores("snake", 10)
	if len(snakeScores) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(snakeScores))
	}
	chaseScores, _ := store.TopScores("chase", 10)
	if len(chaseScores) != 1 {
		t.Error("Chase scores should not be affected by clearing snake")
	}
}

func TestStoreRoundResults(t *testing.T) {
	store := openMemory(t)

	rounds := []RoundResult{
		{GameID: "wordguess", Outcome: "won", Detail: "SNAKE", Points: 50},
		{GameID: "wordguess", Outcome: "lost", Detail: "PLATYPUS"},
		{GameID: "wordguess", Outcome: "won", Detail: "PIZZA", Points: 50},
		{GameID: "tictactoe", Outcome: "draw", Detail: "hard"},
	}
	for _, r := range rounds {
		if _, err := store.SaveRoundResult(r); err != nil {
			t.Fatalf("SaveRoundResult() failed: %v", err)
		}
	}

	recent, err := store.RecentRounds("wordguess", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 wordguess rounds, got %d", len(recent))
	}
	if recent[0].Detail != "PIZZA" {
		t.Errorf("Expected most recent round first, got %q", recent[0].Detail)
	}

	tally, err := store.RoundTally("wordguess")
	if err != nil {
		t.Fatalf("RoundTally() failed: %v", err)
	}
	if tally["won"] != 2 || tally["lost"] != 1 {
		t.Errorf("Unexpected tally: %v", tally)
	}
}
