// Package tour — the backtracking search engine.
//
// Solve runs a depth-first exhaustive search over a sentinel-padded
// board. Each node marks a destination square, recurses, and restores
// the Unvisited sentinel when the subtree fails; a single board
// instance carries the whole search, so sibling branches never observe
// each other's marks and no per-node allocation occurs.
//
// step returns a tagged status (solved / exhausted / aborted) that each
// caller inspects, so success propagates up the call tree without any
// shared flag and no work runs after the first full tour is found.
//
// Budgets (time limit, node cap) are optional and off by default: the
// base contract is an unbounded search that terminates only by finding
// a tour or exhausting the tree. Deadline checks are sparse (every 1024
// nodes) so the hot path stays branch-cheap.
package tour

import (
	"time"

	"github.com/katalvlaran/knightstour/board"
)

// status tags the outcome of one search subtree.
type status uint8

const (
	// statusExhausted: every candidate below this node failed.
	statusExhausted status = iota
	// statusSolved: a complete tour was committed on the board.
	statusSolved
	// statusAborted: a budget expired; abortErr names which one.
	statusAborted
)

// engine holds all search data and policies. A dedicated struct (not
// closures) keeps hot-path state predictable and the search testable.
type engine struct {
	n     int          // playable side length
	total int          // n², the final move number
	b     *board.Board // the single board the search mutates in place

	// Optional budgets.
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline check counter
	useBudget   bool
	budget      uint64

	nodes    uint64 // expanded nodes, for budget enforcement
	abortErr error  // ErrTimeLimit or ErrNodeBudget once aborted
}

// deadlineCheck performs a rare deadline test (every 1024 node events).
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&1023) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// step explores the subtree rooted at pos, where moveNumber is the
// next placement to make. The square at pos already carries
// moveNumber-1.
func (e *engine) step(pos board.Position, moveNumber int) status {
	// Accept: all total cells carry 1..total; this branch is a tour.
	if moveNumber > e.total {
		return statusSolved
	}

	// Budget enforcement, cheapest checks first.
	e.nodes++
	if e.useBudget && e.nodes > e.budget {
		e.abortErr = ErrNodeBudget

		return statusAborted
	}
	if e.deadlineCheck() {
		e.abortErr = ErrTimeLimit

		return statusAborted
	}

	// Branch: lowest-weight candidates first, ties in move-set order.
	for _, c := range e.rankMoves(pos, moveNumber) {
		dst := pos.Add(c.off)
		e.b.Mark(dst, moveNumber)
		switch st := e.step(dst, moveNumber+1); st {
		case statusSolved, statusAborted:
			// Propagate immediately; the winning marks stay on the board.
			return st
		}
		// Subtree exhausted: undo and try the next candidate.
		e.b.Mark(dst, board.Unvisited)
	}

	// Zero candidates is simply the zero-iteration case of the loop.
	return statusExhausted
}

// Solve searches for a complete Knight's Tour on a size×size board
// starting from start, given in 0-based board coordinates.
//
// On success the returned Result holds the visit-ordered squares and
// the finished board. ErrNoSolution reports legitimate exhaustion;
// board.ErrBoardSize and ErrStartOutOfRange reject bad configuration
// before any search runs. With WithTimeLimit / WithNodeBudget the
// search may also stop early with ErrTimeLimit / ErrNodeBudget.
//
// The search is single-threaded, deterministic for a given start
// square, and allocates one board regardless of depth.
//
// Complexity: worst case exponential in size²; the Warnsdorf ordering
// typically keeps it near-linear in size². Memory: O(size²).
func Solve(size int, start board.Position, opts ...Option) (Result, error) {
	b, err := board.New(size)
	if err != nil {
		return Result{}, err
	}
	if start.Row < 0 || start.Row >= size || start.Col < 0 || start.Col >= size {
		return Result{}, ErrStartOutOfRange
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	e := engine{n: size, total: size * size, b: b}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}
	if o.NodeBudget > 0 {
		e.useBudget = true
		e.budget = o.NodeBudget
	}

	// Move 1 is the start square itself; the recursion places move 2.
	origin := board.FromLogical(start.Row, start.Col)
	e.b.Mark(origin, 1)

	switch e.step(origin, 2) {
	case statusSolved:
		res := Result{Visits: visitSequence(e.b), Board: e.b}
		if verr := ValidateSequence(res.Visits, size); verr != nil {
			return Result{}, verr
		}

		return res, nil
	case statusAborted:
		return Result{}, e.abortErr
	}

	return Result{}, ErrNoSolution
}

// visitSequence converts a finished board into the ordered list of
// visited squares in 0-based board coordinates.
// Complexity: O(size²).
func visitSequence(b *board.Board) []board.Position {
	seq := make([]board.Position, b.TotalCells())
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := b.At(board.FromLogical(r, c))
			if v >= 1 && v <= len(seq) {
				seq[v-1] = board.Position{Row: r, Col: c}
			}
		}
	}

	return seq
}
