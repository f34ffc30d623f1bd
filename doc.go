// Package algx is an exact-cover toolkit: Knuth's Algorithm X running on a
// dancing-links sparse matrix.
//
// 🚀 What is algx?
//
//	A small, deterministic library for problems of the form "pick rows so
//	that every constraint is hit exactly once":
//		• Sudoku and latin squares
//		• Polyomino and pentomino tiling
//		• N-queens and rook placements
//		• Set partitioning and scheduling cores
//
// ✨ Why choose algx?
//
//   - Lazy – solutions stream one at a time; stop whenever you have enough
//   - Reversible – every search leaves the matrix exactly as it found it
//   - Deterministic – same matrix, same option set, same solution order
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	dlx/    — the dancing‑links Matrix: columns, rows, Cover/Uncover
//	solver/ — Algorithm X search: lazy sequences, budgets, cancellation
//
// Quick sketch:
//
//	m := dlx.NewMatrix()
//	for i := 0; i < 4; i++ {
//		m.AddColumn(dlx.Primary)
//	}
//	m.AddRow(0, 1)
//	m.AddRow(2, 3)
//	m.AddRow(0, 2)
//	m.AddRow(1, 3)
//
//	for sol, err := range solver.Solve(m) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(sol) // [0 1], then [2 3]
//	}
//
// Modeling a domain (what a Sudoku cell is, which tile shapes exist) is the
// caller's job: build columns for your constraints, rows for your candidate
// moves, and read the emitted row ids back. See examples/ for a complete
// Sudoku modeling walk-through.
package algx
