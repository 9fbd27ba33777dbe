// Package board models the knight's playing field as a square integer
// grid wrapped in a sentinel frame.
//
// What:
//
//   - Board holds an (N+4)×(N+4) grid: a two-cell OutOfBounds frame
//     around an N×N interior of Unvisited cells.
//   - A visited interior cell stores the 1-based move number at which
//     the knight landed on it.
//   - IsLegal answers "may the knight land here?" with one comparison:
//     frame cells and visited cells fail the same Unvisited test, so no
//     range check ever runs on the hot path.
//
// Why:
//
//   - Knight moves from any interior square reach at most two cells
//     past the interior; the double frame absorbs every such jump, and
//     the one extra look-ahead ply probed by the search heuristic.
//   - The finished board doubles as the solution: reading the interior
//     in visit order reproduces the tour.
//
// Complexity:
//
//   - New:     O(N²) time and memory.
//   - IsLegal, Mark, At: O(1).
//   - Clone:   O(N²).
//
// Errors:
//
//   - ErrBoardSize: requested size is not positive.
package board
