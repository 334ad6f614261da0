package tictactoe

// winningLines enumerates the rows, columns and diagonals of the board.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// findWin returns the first completed line on the board, if any.
func findWin(cells [9]Mark) ([3]int, bool) {
	for _, line := range winningLines {
		m := cells[line[0]]
		if m != Empty && m == cells[line[1]] && m == cells[line[2]] {
			return line, true
		}
	}
	return [3]int{}, false
}

// boardFull reports whether no empty cell remains.
func boardFull(cells [9]Mark) bool {
	for _, c := range cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// other returns the opposing mark.
func other(m Mark) Mark {
	if m == X {
		return O
	}
	return X
}

// bestMove returns the minimax-optimal cell for ai on the given board.
// Wins are preferred sooner and losses later via the depth term; ties
// resolve to the lowest cell index, so the choice is fully deterministic.
// The board array is a value, so the search mutates its own copy.
func bestMove(cells [9]Mark, ai, opponent Mark) int {
	best := -1
	bestScore := -1 << 30
	for i := 0; i < 9; i++ {
		if cells[i] != Empty {
			continue
		}
		cells[i] = ai
		score := minimax(cells, ai, opponent, 1, false)
		cells[i] = Empty
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// minimax scores a position for ai. Terminal positions score 10-depth for
// an ai win, depth-10 for an opponent win, and 0 for a draw. ai maximizes
// on its turns; the opponent is assumed to minimize on theirs.
func minimax(cells [9]Mark, ai, opponent Mark, depth int, maximizing bool) int {
	if _, ok := findWin(cells); ok {
		// The mark that just moved made the line.
		if maximizing {
			// Opponent moved last.
			return depth - 10
		}
		return 10 - depth
	}
	if boardFull(cells) {
		return 0
	}

	if maximizing {
		best := -1 << 30
		for i := 0; i < 9; i++ {
			if cells[i] != Empty {
				continue
			}
			cells[i] = ai
			if score := minimax(cells, ai, opponent, depth+1, false); score > best {
				best = score
			}
			cells[i] = Empty
		}
		return best
	}

	best := 1 << 30
	for i := 0; i < 9; i++ {
		if cells[i] != Empty {
			continue
		}
		cells[i] = opponent
		if score := minimax(cells, ai, opponent, depth+1, true); score < best {
			best = score
		}
		cells[i] = Empty
	}
	return best
}
