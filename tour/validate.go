// Package tour — validation of visit sequences.
//
// ValidateSequence is the contract check applied to every successful
// search result before it leaves Solve, and is exported so callers can
// verify sequences they obtained or stored elsewhere. It is
// deterministic, side-effect free, and reports only sentinel errors
// from types.go.
package tour

import "github.com/katalvlaran/knightstour/board"

// ValidateSequence verifies that visits is a complete Knight's Tour of
// a size×size board in 0-based coordinates:
//
//   - len(visits) == size² (ErrSeqLength)
//   - every visit lies inside the board (ErrSeqRange)
//   - no square appears twice (ErrSeqDuplicate)
//   - consecutive visits differ by exactly one knight offset (ErrSeqJump)
//
// Complexity: O(size²) time, O(size²) memory for the seen set.
func ValidateSequence(visits []board.Position, size int) error {
	if size < 1 {
		return board.ErrBoardSize
	}
	if len(visits) != size*size {
		return ErrSeqLength
	}

	seen := make(map[board.Position]struct{}, len(visits))
	for i, p := range visits {
		if p.Row < 0 || p.Row >= size || p.Col < 0 || p.Col >= size {
			return ErrSeqRange
		}
		if _, dup := seen[p]; dup {
			return ErrSeqDuplicate
		}
		seen[p] = struct{}{}

		if i > 0 && !isKnightJump(visits[i-1], p) {
			return ErrSeqJump
		}
	}

	return nil
}
