// Package tour — candidate generation and Warnsdorf ordering.
//
// rankMoves implements the move-ordering heuristic: every legal
// destination is weighted by its own onward mobility, measured one
// hypothetical ply past the candidate. Candidates are returned in
// ascending weight; the move that leaves the fewest onward options is
// tried first, since high-mobility squares remain easy to reach later.
//
// Two details matter for correctness:
//
//  1. A candidate whose onward mobility is zero is a dead end for every
//     move except the last one, so it is pruned — unless moveNumber is
//     the final placement, where zero onward moves is exactly what a
//     finished tour looks like and the candidate is kept with a forced
//     weight of 0.
//  2. Equal-weight candidates are all retained and keep the KnightMoves
//     enumeration order (stable sort). Keying an ordered map by weight
//     would silently drop same-weight moves.
package tour

import (
	"sort"

	"github.com/katalvlaran/knightstour/board"
)

// candidate pairs a knight offset with its look-ahead weight. The
// weight orders candidates and carries no other meaning.
type candidate struct {
	weight int
	off    board.Offset
}

// rankMoves returns the legal moves from pos for placement moveNumber,
// sorted ascending by onward mobility with ties in KnightMoves order.
// An empty slice means the branch is exhausted.
//
// Complexity: O(8·8) weighing + O(8 log 8) sort per call.
func (e *engine) rankMoves(pos board.Position, moveNumber int) []candidate {
	cands := make([]candidate, 0, len(KnightMoves))
	for _, off := range KnightMoves {
		dst := pos.Add(off)
		if !e.b.IsLegal(dst) {
			continue
		}

		// The final placement needs no onward moves; force weight 0 so
		// the mobility filter below can never starve it.
		if moveNumber == e.total {
			cands = append(cands, candidate{weight: 0, off: off})
			continue
		}

		// One extra ply: count legal second-order destinations from dst.
		// The current square is already marked with its move number, so
		// probes landing back on it are correctly rejected; dst itself
		// is never a probe target (no knight offset is zero).
		weight := 0
		for _, onward := range KnightMoves {
			if e.b.IsLegal(dst.Add(onward)) {
				weight++
			}
		}
		if weight > 0 {
			cands = append(cands, candidate{weight: weight, off: off})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].weight < cands[j].weight
	})

	return cands
}
