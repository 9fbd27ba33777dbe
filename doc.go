// Package knightstour computes Knight's Tours: sequences of knight
// moves visiting every square of an N×N board exactly once.
//
// 🚀 What is knightstour?
//
//	A small, deterministic library built around one search engine:
//		• Padded board: sentinel frame, O(1) legality checks, no bounds tests
//		• Warnsdorf ordering with one extra look-ahead ply
//		• Exhaustive backtracking with in-place mark/undo
//		• Optional time and node budgets for long hunts
//		• Reproducible start-square selection from explicit seeds
//
// ✨ Why choose knightstour?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same start square, same tour, every run
//   - Pure Go core – no cgo, no hidden deps
//   - Honest failures – squares with no tour answer with a sentinel
//     error, never a wrong result
//
// Under the hood, everything is organized under two subpackages:
//
//	board/ — the padded N×N grid, cell sentinels, coordinate helpers
//	tour/  — move set, heuristic ordering, the backtracking search
//
// Quick ASCII example (a 5×5 tour from the top-left corner; each cell
// shows the move number at which the knight landed there):
//
//	1   6   15  10  21
//	14  9   20  5   16
//	19  2   7   22  11
//	8   13  24  17  4
//	25  18  3   12  23
//
// The cmd/knightstour binary wraps the search in a CLI: pick a size,
// a start square or a seed, and print the solved board.
//
//	go get github.com/katalvlaran/knightstour
package knightstour
