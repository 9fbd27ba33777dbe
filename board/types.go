// Package board defines the cell sentinels, coordinate types, and
// sentinel errors for the board subpackage of
// github.com/katalvlaran/knightstour.
package board

import "errors"

// Cell sentinels. Any positive value in a cell is the 1-based order in
// which the knight visited that square.
const (
	// Unvisited marks an interior square the knight has not reached yet.
	Unvisited = -1
	// OutOfBounds marks a padding square outside the playable board.
	// Padding cells never change after construction.
	OutOfBounds = -2
)

// Padding is the width of the OutOfBounds frame on each side of the
// playable area. Two cells (not one) because the move-ordering
// heuristic probes one extra knight move past a candidate square, and
// a knight move reaches at most two cells beyond its origin. With a
// two-cell frame every probe lands inside the allocated grid, so
// legality is always a single sentinel comparison.
const Padding = 2

// Sentinel errors for board operations.
var (
	// ErrBoardSize indicates a non-positive board size.
	ErrBoardSize = errors.New("board: size must be at least 1")
)

// Position is a (row, col) cell address. Board methods interpret it in
// padded coordinates, where the playable region is the interior
// [Padding, Padding+Size) square on both axes; FromLogical / Logical
// convert to and from 0-based board coordinates, which the tour-facing
// API uses.
type Position struct {
	Row, Col int
}

// Offset is a relative jump applied to a Position.
type Offset struct {
	DRow, DCol int
}

// Add returns the position reached by applying o to p.
// Complexity: O(1).
func (p Position) Add(o Offset) Position {
	return Position{Row: p.Row + o.DRow, Col: p.Col + o.DCol}
}

// FromLogical converts 0-based board coordinates to a padded Position.
// Complexity: O(1).
func FromLogical(row, col int) Position {
	return Position{Row: row + Padding, Col: col + Padding}
}

// Logical converts a padded Position back to 0-based board coordinates.
// Complexity: O(1).
func (p Position) Logical() (row, col int) {
	return p.Row - Padding, p.Col - Padding
}
