// Package tour computes Knight's Tours: sequences of knight moves that
// visit every square of an N×N board exactly once.
//
// What:
//
//   - Solve runs an exhaustive depth-first backtracking search from a
//     chosen start square over a sentinel-padded board.
//   - Candidate moves are ordered by Warnsdorf's Rule extended with one
//     look-ahead ply: each legal destination is weighted by its own
//     count of onward legal moves, and the search tries the lowest
//     weight first. Equal weights keep the fixed move-set order, so
//     runs are fully deterministic for a given start square.
//   - The finished board is exposed both as a visit-ordered sequence of
//     squares and as the board itself.
//
// Why:
//
//   - Naive backtracking is hopeless beyond tiny boards; preferring the
//     destination with the fewest onward options avoids stranding
//     hard-to-reach squares and typically drives the search to
//     near-linear behavior in N².
//   - The search stays exhaustive underneath the heuristic, so a start
//     square with no tour is answered with ErrNoSolution rather than a
//     wrong or partial result.
//
// Complexity:
//
//   - Worst case exponential in N² (exact search); the heuristic makes
//     common cases near-linear. Per node: O(8·8) weighing + O(8 log 8)
//     ordering. Memory: O(N²) for the single board plus O(N²)
//     recursion depth.
//
// Options:
//
//   - WithTimeLimit(d): soft deadline surfaced as ErrTimeLimit.
//   - WithNodeBudget(n): cap on explored nodes surfaced as
//     ErrNodeBudget.
//     Both are off by default; the base contract is an unbounded search.
//
// Errors:
//
//   - ErrNoSolution: every branch from the start square was exhausted.
//     An expected outcome for some squares, not a failure of the search.
//   - ErrStartOutOfRange: start square outside [0,size)².
//   - board.ErrBoardSize: non-positive board size.
//   - ErrTimeLimit, ErrNodeBudget: optional budgets exceeded.
package tour
