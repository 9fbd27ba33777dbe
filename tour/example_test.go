// File: tour/example_test.go
package tour_test

import (
	"fmt"

	"github.com/katalvlaran/knightstour/board"
	"github.com/katalvlaran/knightstour/tour"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve computes a full 5×5 tour from the top-left corner.
// Scenario:
//
//   - A tour is known to exist from every majority-color square on 5×5,
//     corners included.
//   - The search is deterministic, so the same start always yields the
//     same 25-move sequence.
//
// Complexity: near-linear in the number of squares for this start.
func ExampleSolve() {
	res, err := tour.Solve(5, board.Position{Row: 0, Col: 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("squares visited:", len(res.Visits))
	fmt.Println("first square:", res.Visits[0].Row, res.Visits[0].Col)
	fmt.Println("valid:", tour.ValidateSequence(res.Visits, 5) == nil)

	// Output:
	// squares visited: 25
	// first square: 0 0
	// valid: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: no solution
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve_noSolution shows exhaustion reported as a normal error
// value: a 25-square path must start on the majority color, and (0,1)
// does not.
func ExampleSolve_noSolution() {
	_, err := tour.Solve(5, board.Position{Row: 0, Col: 1})
	fmt.Println(err)

	// Output:
	// tour: no complete tour from the given start square
}

////////////////////////////////////////////////////////////////////////////////
// Example: RandomStart
////////////////////////////////////////////////////////////////////////////////

// ExampleRandomStart demonstrates reproducible start-square selection:
// the same seed always picks the same square.
func ExampleRandomStart() {
	a, _ := tour.RandomStart(8, tour.RNGFromSeed(7))
	b, _ := tour.RandomStart(8, tour.RNGFromSeed(7))
	fmt.Println(a == b)

	// Output:
	// true
}
