// Package solver runs Knuth's Algorithm X over a dlx.Matrix and yields
// exact covers as a lazy, restartable sequence.
//
// 🚀 What is Algorithm X?
//
//	A recursive, depth-first, backtracking enumeration of exact covers:
//	pick the active column with the fewest remaining rows, try each row
//	that covers it, recurse on the reduced matrix, undo, repeat.  With the
//	dancing-links structure every trial and every undo costs only the
//	region it touches.
//
// ✨ Key features:
//   - Solve(m, opts...): lazy iter.Seq2 of solutions; nothing beyond the
//     requested prefix is ever computed
//   - Deterministic: min-size column selection with first-encountered
//     tie-break, rows in vertical ring order: same matrix, same sequence
//   - Early termination safe: breaking out of the range unwinds every
//     in-flight Cover, leaving the Matrix in its pre-search state
//   - Budgets: node-visit and depth limits surfaced as distinct terminal
//     errors, never confused with plain exhaustion
//   - Cancellation via context.Context
//   - Pre-covered columns for partially solved instances (e.g. Sudoku givens)
//   - Convenience wrappers: All, First, Count
//
// ⚙️ Usage:
//
//	m := dlx.NewMatrix()
//	// ... AddColumn / AddRow ...
//
//	for sol, err := range solver.Solve(m) {
//	    if err != nil {
//	        return err // budget exhausted or context cancelled
//	    }
//	    use(sol) // []dlx.RowID covering every primary column exactly once
//	}
//
// A Matrix with zero columns yields exactly one empty solution. A Matrix
// whose primary columns cannot all be covered yields zero solutions; that
// is exhaustion, not an error.
//
// The Matrix is exclusively borrowed for the duration of an iteration:
// the partially-covered mid-search state is not a valid snapshot, so no
// other code may read or mutate the Matrix while the sequence is suspended.
//
// Errors:
//
//   - ErrMatrixNil    Solve was given a nil Matrix
//   - ErrVisitLimit   node-visit budget exhausted (WithMaxVisits)
//   - ErrDepthLimit   recursion-depth budget exhausted (WithMaxDepth)
//   - ErrNoSolution   First found no solution at all
//
// Complexity: exponential in the worst case (exact search); per node one
// scan of the active ring plus O(region) cover/uncover work.
package solver
