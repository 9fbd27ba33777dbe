// Package tour defines options, result types, and sentinel errors for
// the tour subpackage of github.com/katalvlaran/knightstour.
package tour

import (
	"errors"
	"time"

	"github.com/katalvlaran/knightstour/board"
)

// Sentinel errors for tour operations.
var (
	// ErrNoSolution indicates the search exhausted every branch from the
	// given start square without completing a tour. This is a legitimate
	// outcome for some squares and board sizes, reported as a normal
	// error value, never as a panic.
	ErrNoSolution = errors.New("tour: no complete tour from the given start square")

	// ErrStartOutOfRange indicates a start square outside the board.
	ErrStartOutOfRange = errors.New("tour: start square out of range")

	// ErrTimeLimit indicates the optional time budget elapsed before the
	// search concluded either way.
	ErrTimeLimit = errors.New("tour: time limit exceeded")

	// ErrNodeBudget indicates the optional node budget was exhausted
	// before the search concluded either way.
	ErrNodeBudget = errors.New("tour: node budget exhausted")

	// ErrSeqLength indicates a visit sequence of the wrong length.
	ErrSeqLength = errors.New("tour: visit sequence length mismatch")

	// ErrSeqRange indicates a visit outside the board.
	ErrSeqRange = errors.New("tour: visit outside the board")

	// ErrSeqDuplicate indicates a square visited more than once.
	ErrSeqDuplicate = errors.New("tour: square visited twice")

	// ErrSeqJump indicates consecutive visits not a knight move apart.
	ErrSeqJump = errors.New("tour: consecutive visits are not a knight move")
)

// Options holds configurable parameters for the backtracking search.
// The zero value (via DefaultOptions) preserves the base contract: an
// unbounded exhaustive search with no deadline and no node cap.
type Options struct {
	// TimeLimit, when positive, aborts the search with ErrTimeLimit once
	// the wall clock passes the deadline. Checks are sparse (every 1024
	// nodes) to keep hot-path overhead negligible.
	TimeLimit time.Duration

	// NodeBudget, when positive, aborts the search with ErrNodeBudget
	// after that many search nodes have been expanded.
	NodeBudget uint64
}

// Option configures optional behavior of Solve.
type Option func(*Options)

// DefaultOptions returns an Options struct with:
//   - No time limit (TimeLimit = 0)
//   - No node budget (NodeBudget = 0)
func DefaultOptions() Options {
	return Options{
		TimeLimit:  0,
		NodeBudget: 0,
	}
}

// WithTimeLimit returns an Option that installs a soft deadline.
// Non-positive durations leave the search unbounded.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithNodeBudget returns an Option that caps the number of expanded
// search nodes. Zero leaves the search unbounded.
func WithNodeBudget(n uint64) Option {
	return func(o *Options) {
		o.NodeBudget = n
	}
}

// Result holds the outcome of a successful tour search.
type Result struct {
	// Visits lists the squares in visit order, in 0-based board
	// coordinates: Visits[k] is the square of move k+1, and
	// len(Visits) == N². Consecutive entries differ by a knight offset.
	Visits []board.Position

	// Board is the finished padded board: each interior cell holds the
	// move number at which the knight landed there. Callers own it; the
	// search keeps no reference after returning.
	Board *board.Board
}
