package tour_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightstour/board"
	"github.com/katalvlaran/knightstour/tour"
)

// requireCompleteTour asserts that res is a full, connected tour of a
// size×size board starting at start, checking both the sequence and
// the finished board agree.
func requireCompleteTour(t *testing.T, res tour.Result, size int, start board.Position) {
	t.Helper()
	require.NoError(t, tour.ValidateSequence(res.Visits, size))
	require.Equal(t, start, res.Visits[0], "tour must begin on the start square")
	for k, p := range res.Visits {
		got := res.Board.At(board.FromLogical(p.Row, p.Col))
		require.Equal(t, k+1, got, "board cell %v disagrees with sequence", p)
	}
}

//----------------------------------------------------------------------------//
// Configuration errors
//----------------------------------------------------------------------------//

// TestSolve_InvalidConfiguration verifies rejection before any search.
func TestSolve_InvalidConfiguration(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		start board.Position
		err   error
	}{
		{"ZeroSize", 0, board.Position{}, board.ErrBoardSize},
		{"NegativeSize", -2, board.Position{}, board.ErrBoardSize},
		{"RowBelow", 5, board.Position{Row: -1, Col: 0}, tour.ErrStartOutOfRange},
		{"ColBelow", 5, board.Position{Row: 0, Col: -1}, tour.ErrStartOutOfRange},
		{"RowAbove", 5, board.Position{Row: 5, Col: 0}, tour.ErrStartOutOfRange},
		{"ColAbove", 5, board.Position{Row: 4, Col: 5}, tour.ErrStartOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tour.Solve(tc.size, tc.start)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Boundary boards
//----------------------------------------------------------------------------//

// TestSolve_TrivialBoard checks the 1×1 board: the start square is the
// whole tour and the terminal condition must fire immediately.
func TestSolve_TrivialBoard(t *testing.T) {
	res, err := tour.Solve(1, board.Position{Row: 0, Col: 0})
	require.NoError(t, err)
	require.Equal(t, []board.Position{{Row: 0, Col: 0}}, res.Visits)
	require.Equal(t, 1, res.Board.At(board.FromLogical(0, 0)))
}

// TestSolve_NoTourOnTinyBoards checks that 2×2 and 3×3 boards, which
// provably admit no tour, report ErrNoSolution from every start square.
func TestSolve_NoTourOnTinyBoards(t *testing.T) {
	for _, size := range []int{2, 3} {
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				_, err := tour.Solve(size, board.Position{Row: r, Col: c})
				require.ErrorIs(t, err, tour.ErrNoSolution,
					"size=%d start=(%d,%d)", size, r, c)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// 5×5: solvable and unsolvable start squares
//----------------------------------------------------------------------------//

// TestSolve_FiveByFive exercises the known start-square status on 5×5:
// a 25-square knight path alternates colors, so it must start on the
// 13-square majority color. Corner (0,0) and (1,1) lie on it and must
// solve; (0,1) lies on the minority color and must exhaust.
func TestSolve_FiveByFive(t *testing.T) {
	solvable := []board.Position{
		{Row: 0, Col: 0},
		{Row: 1, Col: 1},
	}
	for _, start := range solvable {
		res, err := tour.Solve(5, start)
		require.NoError(t, err, "start=%v", start)
		requireCompleteTour(t, res, 5, start)
	}

	_, err := tour.Solve(5, board.Position{Row: 0, Col: 1})
	require.ErrorIs(t, err, tour.ErrNoSolution)
}

//----------------------------------------------------------------------------//
// 8×8
//----------------------------------------------------------------------------//

// TestSolve_EightByEight checks a corner start and a seeded random
// start; tours exist from every square on 8×8.
func TestSolve_EightByEight(t *testing.T) {
	res, err := tour.Solve(8, board.Position{Row: 0, Col: 0})
	require.NoError(t, err)
	requireCompleteTour(t, res, 8, board.Position{Row: 0, Col: 0})

	start, err := tour.RandomStart(8, tour.RNGFromSeed(42))
	require.NoError(t, err)
	res, err = tour.Solve(8, start)
	require.NoError(t, err)
	requireCompleteTour(t, res, 8, start)
}

// TestSolve_Deterministic verifies that the same start square yields
// the identical tour on repeated runs.
func TestSolve_Deterministic(t *testing.T) {
	first, err := tour.Solve(6, board.Position{Row: 2, Col: 3})
	require.NoError(t, err)
	second, err := tour.Solve(6, board.Position{Row: 2, Col: 3})
	require.NoError(t, err)
	require.Equal(t, first.Visits, second.Visits)
}

//----------------------------------------------------------------------------//
// Budgets
//----------------------------------------------------------------------------//

// TestSolve_NodeBudget verifies that an absurdly small node cap aborts
// with ErrNodeBudget, and that a generous cap leaves the result intact.
func TestSolve_NodeBudget(t *testing.T) {
	_, err := tour.Solve(8, board.Position{Row: 0, Col: 0}, tour.WithNodeBudget(1))
	require.ErrorIs(t, err, tour.ErrNodeBudget)

	res, err := tour.Solve(5, board.Position{Row: 0, Col: 0}, tour.WithNodeBudget(1<<30))
	require.NoError(t, err)
	requireCompleteTour(t, res, 5, board.Position{Row: 0, Col: 0})
}

// TestSolve_TimeLimit verifies that an already-expired deadline aborts
// a search too large to finish within the sparse-check interval.
func TestSolve_TimeLimit(t *testing.T) {
	_, err := tour.Solve(40, board.Position{Row: 0, Col: 0}, tour.WithTimeLimit(time.Nanosecond))
	require.ErrorIs(t, err, tour.ErrTimeLimit)
}

//----------------------------------------------------------------------------//
// Sequence validation
//----------------------------------------------------------------------------//

// knownTour5 is a hand-verified 5×5 tour from the corner (the one shown
// in the module documentation).
var knownTour5 = []board.Position{
	{Row: 0, Col: 0}, {Row: 2, Col: 1}, {Row: 4, Col: 2}, {Row: 3, Col: 4}, {Row: 1, Col: 3},
	{Row: 0, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 3},
	{Row: 2, Col: 4}, {Row: 4, Col: 3}, {Row: 3, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 2},
	{Row: 1, Col: 4}, {Row: 3, Col: 3}, {Row: 4, Col: 1}, {Row: 2, Col: 0}, {Row: 1, Col: 2},
	{Row: 0, Col: 4}, {Row: 2, Col: 3}, {Row: 4, Col: 4}, {Row: 3, Col: 2}, {Row: 4, Col: 0},
}

// TestValidateSequence covers the accept case and each sentinel.
func TestValidateSequence(t *testing.T) {
	require.NoError(t, tour.ValidateSequence(knownTour5, 5))
	require.NoError(t, tour.ValidateSequence([]board.Position{{Row: 0, Col: 0}}, 1))

	cases := []struct {
		name   string
		visits []board.Position
		size   int
		err    error
	}{
		{"BadSize", nil, 0, board.ErrBoardSize},
		{"Length", []board.Position{{Row: 0, Col: 0}}, 2, tour.ErrSeqLength},
		{"Range", []board.Position{{Row: 0, Col: 1}}, 1, tour.ErrSeqRange},
		{"Jump", []board.Position{
			{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 0},
		}, 2, tour.ErrSeqJump},
		{"Duplicate", []board.Position{
			{Row: 0, Col: 0}, {Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0},
		}, 2, tour.ErrSeqDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tour.ValidateSequence(tc.visits, tc.size), tc.err)
		})
	}
}

// TestValidateSequence_Mutation corrupts a known-good tour one way at a
// time and expects the matching sentinel.
func TestValidateSequence_Mutation(t *testing.T) {
	mutate := func(fn func(v []board.Position)) []board.Position {
		v := make([]board.Position, len(knownTour5))
		copy(v, knownTour5)
		fn(v)

		return v
	}

	short := mutate(func(v []board.Position) {})[:24]
	require.ErrorIs(t, tour.ValidateSequence(short, 5), tour.ErrSeqLength)

	dup := mutate(func(v []board.Position) { v[24] = v[0] })
	require.ErrorIs(t, tour.ValidateSequence(dup, 5), tour.ErrSeqDuplicate)

	jump := mutate(func(v []board.Position) { v[10], v[11] = v[11], v[10] })
	require.ErrorIs(t, tour.ValidateSequence(jump, 5), tour.ErrSeqJump)
}
