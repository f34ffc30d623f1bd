// Package dlx: identifiers, column kinds, and the arena node layout.
package dlx

// ColumnID identifies a constraint column. IDs are dense 0-based indices
// assigned by AddColumn in call order and remain stable for the lifetime
// of the Matrix.
type ColumnID int

// RowID identifies a candidate row. IDs are dense 0-based indices assigned
// by AddRow in call order and remain stable for the lifetime of the Matrix.
type RowID int

// ColumnKind distinguishes mandatory constraints from optional ones.
type ColumnKind uint8

const (
	// Primary columns must be covered exactly once in any valid solution.
	Primary ColumnKind = iota

	// Secondary columns may be covered zero or one times: they forbid double
	// coverage but are never required. A Matrix with no Secondary columns is
	// the classical exact-cover problem.
	Secondary
)

// String returns "primary" or "secondary".
func (k ColumnKind) String() string {
	if k == Secondary {
		return "secondary"
	}

	return "primary"
}

// none marks an absent arena link (empty rows have no first node).
const none = -1

// node is one row×column intersection, addressed by its arena index.
// Links are arena indices rather than pointers: splice and restore stay
// O(1) while the ownership graph stays acyclic.
type node struct {
	left, right int // horizontal ring (row order / header ring)
	up, down    int // vertical ring (column order)
	col         ColumnID
	row         RowID // rowNone for header nodes and the root
}

// rowNone tags header nodes and the root, which belong to no row.
const rowNone RowID = -1

// column holds per-column metadata beside the node arena.
type column struct {
	head    int // arena index of the column's header node
	size    int // active rows currently intersecting this column
	kind    ColumnKind
	label   string
	covered bool
}

// Panic messages for programming-contract violations (never user errors).
const (
	panicColumnRange   = "dlx: column id out of range"
	panicRowRange      = "dlx: row id out of range"
	panicCoverCovered  = "dlx: cover of an already covered column"
	panicUncoverActive = "dlx: uncover of a column that is not covered"
	panicKindInvalid   = "dlx: invalid column kind"
)
