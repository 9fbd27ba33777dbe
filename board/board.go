package board

import (
	"fmt"
	"strings"
)

// Board is a padded N×N grid of move-state cells. The zero value is not
// usable; construct with New. Methods address cells in padded
// coordinates (see Position); the interior spans
// [Padding, Padding+Size) on both axes.
type Board struct {
	size  int     // playable side length N
	cells [][]int // (N+2·Padding)² grid of sentinels / move numbers
}

// New allocates a board of playable size N. The outer two rows and
// columns on every side are marked OutOfBounds and never change; the
// interior starts Unvisited. Returns ErrBoardSize if size < 1.
// Complexity: O(N²) time and memory.
func New(size int) (*Board, error) {
	if size < 1 {
		return nil, ErrBoardSize
	}
	side := size + 2*Padding
	cells := make([][]int, side)
	for r := 0; r < side; r++ {
		row := make([]int, side)
		for c := 0; c < side; c++ {
			if r < Padding || r >= side-Padding || c < Padding || c >= side-Padding {
				row[c] = OutOfBounds
			} else {
				row[c] = Unvisited
			}
		}
		cells[r] = row
	}

	return &Board{size: size, cells: cells}, nil
}

// Size returns the playable side length N.
// Complexity: O(1).
func (b *Board) Size() int { return b.size }

// TotalCells returns N², the number of squares a complete tour visits.
// Complexity: O(1).
func (b *Board) TotalCells() int { return b.size * b.size }

// At returns the cell value at p: Unvisited, OutOfBounds, or a 1-based
// move number. p must lie within the padded grid.
// Complexity: O(1).
func (b *Board) At(p Position) int { return b.cells[p.Row][p.Col] }

// IsLegal reports whether the knight may land on p. Frame cells and
// already-visited cells are rejected by the same single comparison.
// Complexity: O(1).
func (b *Board) IsLegal(p Position) bool { return b.cells[p.Row][p.Col] == Unvisited }

// Mark sets the cell at p to v. Callers own the isolation discipline:
// the search marks a square before descending and restores Unvisited
// when the branch fails. p must lie within the padded grid.
// Complexity: O(1).
func (b *Board) Mark(p Position, v int) { b.cells[p.Row][p.Col] = v }

// Clone returns a deep copy sharing no storage with b.
// Complexity: O(N²).
func (b *Board) Clone() *Board {
	cells := make([][]int, len(b.cells))
	for r, row := range b.cells {
		dup := make([]int, len(row))
		copy(dup, row)
		cells[r] = dup
	}

	return &Board{size: b.size, cells: cells}
}

// String renders the interior as left-aligned move numbers, one board
// row per line. Unvisited squares print as ".".
// Complexity: O(N²).
func (b *Board) String() string {
	var sb, line strings.Builder
	for r := 0; r < b.size; r++ {
		line.Reset()
		for c := 0; c < b.size; c++ {
			v := b.cells[r+Padding][c+Padding]
			if v == Unvisited {
				line.WriteString(fmt.Sprintf("%-4s", "."))
			} else {
				line.WriteString(fmt.Sprintf("%-4d", v))
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}
