package engine

// MoveOutcome is the result of sliding a board in one direction.
type MoveOutcome struct {
	Board      Board // Board after the move, before any spawn
	ScoreDelta int   // Sum of merged tile values
	Changed    bool  // False iff Board equals the input cell-for-cell
}

// compactAndMerge slides a single line toward its front and merges.
// Returns the updated line and the score gained from merges.
func compactAndMerge(line []int) ([]int, int) {
	tiles := compact(line)
	gained := 0

	for i := 0; i+1 < len(tiles); i++ {
		if tiles[i] != 0 && tiles[i] == tiles[i+1] {
			tiles[i] *= 2
			gained += tiles[i]
			tiles[i+1] = 0
			// Partner slot is consumed; the doubled tile never merges again this move.
			i++
		}
	}

	result := make([]int, len(line))
	copy(result, compact(tiles))
	return result, gained
}

// compact removes zeros, keeping the relative order of the remaining tiles.
func compact(line []int) []int {
	out := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}

// reverseLine returns a reversed copy of a line.
func reverseLine(line []int) []int {
	n := len(line)
	result := make([]int, n)
	for i := range n {
		result[i] = line[n-1-i]
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(board Board) Board {
	size := len(board)
	result := NewBoard(size)
	for y := range size {
		for x := range size {
			result[y][x] = board[x][y]
		}
	}
	return result
}

// toCanonical extracts the lines of a board in the reading order that makes
// every direction a slide toward the front of the line.
func toCanonical(board Board, dir Direction) [][]int {
	var lines Board
	switch dir {
	case DirLeft, DirRight:
		lines = board.Clone()
	case DirUp, DirDown:
		lines = transpose(board)
	}

	if dir == DirRight || dir == DirDown {
		for i := range lines {
			lines[i] = reverseLine(lines[i])
		}
	}
	return lines
}

// fromCanonical is the inverse of toCanonical.
func fromCanonical(lines [][]int, dir Direction) Board {
	board := make(Board, len(lines))
	for i, line := range lines {
		if dir == DirRight || dir == DirDown {
			board[i] = reverseLine(line)
		} else {
			board[i] = append([]int(nil), line...)
		}
	}

	if dir == DirUp || dir == DirDown {
		return transpose(board)
	}
	return board
}

// Slide performs a move in the given direction without spawning.
// The input board is not modified. An invalid direction leaves the board unchanged.
func Slide(board Board, dir Direction) MoveOutcome {
	if !dir.Valid() {
		return MoveOutcome{Board: board.Clone()}
	}

	lines := toCanonical(board, dir)
	total := 0
	for i, line := range lines {
		newLine, gained := compactAndMerge(line)
		lines[i] = newLine
		total += gained
	}

	result := fromCanonical(lines, dir)
	return MoveOutcome{
		Board:      result,
		ScoreDelta: total,
		Changed:    !result.Equal(board),
	}
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// pair holds equal non-zero values. Every pair in both axes is checked.
func HasPossibleMerge(board Board) bool {
	size := len(board)
	for i := range size {
		for j := 0; j < size-1; j++ {
			if board[i][j] != 0 && board[i][j] == board[i][j+1] {
				return true
			}
			if board[j][i] != 0 && board[j][i] == board[j+1][i] {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return board.HasEmptyCell() || HasPossibleMerge(board)
}
