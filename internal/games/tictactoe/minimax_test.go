package tictactoe

import "testing"

func TestFindWinAllLines(t *testing.T) {
	for _, line := range winningLines {
		var cells [9]Mark
		for _, i := range line {
			cells[i] = X
		}
		got, ok := findWin(cells)
		if !ok {
			t.Errorf("Line %v should be detected as a win", line)
		}
		if got != line {
			t.Errorf("Expected winning line %v, got %v", line, got)
		}
	}

	var empty [9]Mark
	if _, ok := findWin(empty); ok {
		t.Error("Empty board should have no winner")
	}
}

func TestBoardFull(t *testing.T) {
	cells := [9]Mark{X, O, X, X, O, O, O, X, X}
	if !boardFull(cells) {
		t.Error("Fully marked board should be full")
	}
	cells[4] = Empty
	if boardFull(cells) {
		t.Error("Board with an empty cell should not be full")
	}
}

func TestBestMoveBlocksImmediateThreat(t *testing.T) {
	// X threatens the top row; the only non-losing reply is cell 2.
	cells := [9]Mark{
		X, X, Empty,
		Empty, O, Empty,
		Empty, Empty, Empty,
	}
	if got := bestMove(cells, O, X); got != 2 {
		t.Errorf("Expected the blocking move 2, got %d", got)
	}
}

func TestBestMoveTakesImmediateWin(t *testing.T) {
	// O can win at 2 right now; blocking X at 5 would be a losing delay.
	cells := [9]Mark{
		O, O, Empty,
		X, X, Empty,
		Empty, Empty, Empty,
	}
	if got := bestMove(cells, O, X); got != 2 {
		t.Errorf("Expected the winning move 2, got %d", got)
	}
}

func TestBestMovePrefersFasterWin(t *testing.T) {
	// Two winning lines are open; the immediate win at 2 must beat any
	// route that wins a move later.
	cells := [9]Mark{
		O, O, Empty,
		Empty, Empty, Empty,
		X, X, Empty,
	}
	if got := bestMove(cells, O, X); got != 2 {
		t.Errorf("Expected the immediate win 2, got %d", got)
	}
}

func TestBestMoveTieBreakIsLowestIndex(t *testing.T) {
	// From an empty board every opening is a draw under optimal play, so
	// the tie must resolve to cell 0 every time.
	var cells [9]Mark
	for i := 0; i < 3; i++ {
		if got := bestMove(cells, O, X); got != 0 {
			t.Fatalf("Expected deterministic tie-break to cell 0, got %d", got)
		}
	}
}

func TestBestMoveLeavesBoardUntouched(t *testing.T) {
	cells := [9]Mark{X, Empty, Empty, Empty, O, Empty, Empty, Empty, Empty}
	before := cells
	bestMove(cells, O, X)
	if cells != before {
		t.Error("Search must not mutate the caller's board")
	}
}
