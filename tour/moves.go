package tour

import "github.com/katalvlaran/knightstour/board"

// KnightMoves is the fixed, order-significant set of the eight knight
// offsets. The enumeration order is part of the search contract: when
// two candidate moves carry equal heuristic weight, the one appearing
// earlier here is tried first, which keeps every run reproducible.
var KnightMoves = [8]board.Offset{
	{DRow: -2, DCol: -1},
	{DRow: -2, DCol: 1},
	{DRow: 2, DCol: -1},
	{DRow: 2, DCol: 1},
	{DRow: -1, DCol: -2},
	{DRow: -1, DCol: 2},
	{DRow: 1, DCol: -2},
	{DRow: 1, DCol: 2},
}

// isKnightJump reports whether b is reachable from a by exactly one
// knight move. Complexity: O(8).
func isKnightJump(a, b board.Position) bool {
	for _, off := range KnightMoves {
		if a.Add(off) == b {
			return true
		}
	}

	return false
}
