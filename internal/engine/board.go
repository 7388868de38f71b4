// Package engine implements the 2048 board-state transition engine: sliding,
// merging, scoring, weighted tile spawning and terminal-state detection.
// It performs no I/O and never logs.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSize is the default board dimension.
const DefaultSize = 4

// MinSize is the smallest board that still has a merge axis.
const MinSize = 2

// Board is a square grid of tile values indexed as board[y][x].
// Zero marks an empty cell; every other value is a power of two >= 2.
type Board [][]int

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) Board {
	b := make(Board, size)
	for y := range b {
		b[y] = make([]int, size)
	}
	return b
}

// BoardFromRows builds a board from literal rows, copying them.
// Rows must form a square of at least MinSize and hold only 0 or powers of two >= 2.
func BoardFromRows(rows [][]int) (Board, error) {
	size := len(rows)
	if size < MinSize {
		return nil, fmt.Errorf("engine: board size %d: %w", size, ErrInvalidConfiguration)
	}

	b := NewBoard(size)
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("engine: row %d has %d cells, want %d: %w", y, len(row), size, ErrInvalidConfiguration)
		}
		for x, v := range row {
			if !validTile(v) {
				return nil, fmt.Errorf("engine: value %d at (%d,%d): %w", v, x, y, ErrInvalidTile)
			}
			b[y][x] = v
		}
	}
	return b, nil
}

// validTile reports whether v is 0 or a power of two >= 2.
func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for y := range b {
		c[y] = append([]int(nil), b[y]...)
	}
	return c
}

// Equal reports whether two boards are identical cell-for-cell.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for y := range b {
		if len(b[y]) != len(other[y]) {
			return false
		}
		for x := range b[y] {
			if b[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for y := range b {
		for x := range b[y] {
			if b[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (b Board) HasEmptyCell() bool {
	for y := range b {
		for x := range b[y] {
			if b[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x] > maxVal {
				maxVal = b[y][x]
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for y := range b {
		for x := range b[y] {
			total += b[y][x]
		}
	}
	return total
}

// String renders the board as right-aligned rows, "." for empty cells.
func (b Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for y, row := range b {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
