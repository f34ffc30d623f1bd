// Package dlx implements the "dancing links" sparse boolean matrix that
// underlies Knuth's Algorithm X for the exact cover problem.
//
// 🚀 What is dancing links?
//
//	A circular doubly-linked representation of a 0/1 incidence matrix in
//	which removing a column together with every row that intersects it,
//	and later restoring all of it bit for bit, costs only the size of
//	the removed region.  It is the classic engine behind exact-cover
//	search: Sudoku, polyomino tiling, N-queens variants, set partitioning.
//
// ✨ Key features:
//   - Incremental construction: AddColumn / AddRow in any interleaving
//   - Primary (exactly-once) and Secondary (at-most-once) constraint columns
//   - Cover / Uncover in O(region), Uncover a perfect inverse of Cover
//   - Arena-backed nodes addressed by integer indices: no pointer cycles,
//     cache-friendly, trivially copyable links
//   - Deterministic ring order: insertion order is traversal order
//
// ⚙️ Usage:
//
//	m := dlx.NewMatrix()
//	a := m.AddColumn(dlx.Primary)
//	b := m.AddColumn(dlx.Primary)
//	r, err := m.AddRow(a, b) // row covering both constraints
//
//	m.Cover(a)   // branch on a row under column a
//	m.Uncover(a) // backtrack: matrix is exactly as before
//
// The Matrix is a single-owner, single-goroutine structure: while a search
// (or any cover/uncover pair) is in flight the partially-covered state is
// not a valid standalone snapshot, so no other code may touch the Matrix.
// Exclusive use is the caller's contract; there is no internal locking.
//
// Errors:
//
//   - ErrColumnOutOfRange  row references a column that was never declared
//   - ErrDuplicateColumn   row lists the same column twice
//   - ErrUnsortedRow       row columns are not in ascending order
//
// Misuse of Cover/Uncover (covering a covered column, out-of-range ids) is a
// programming-contract violation and panics; it is never silently recovered.
//
// Complexity:
//
//   - AddColumn: O(1).  AddRow: O(len(columns)).
//   - Cover/Uncover: O(total nodes in the removed/restored region).
//   - Memory: one node per row×column intersection, one header per column.
package dlx
