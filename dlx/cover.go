// Package dlx: the cover/uncover pair and active-ring traversal.
package dlx

// Cover removes column c from the active ring, then unlinks every row
// intersecting c from the vertical rings of every *other* column that row
// touches, decrementing those columns' sizes. Column c's own vertical ring
// is left intact so Uncover can walk it back.
//
// Covering an already covered column is a contract violation and panics.
// Cost: O(total nodes in the removed region).
func (m *Matrix) Cover(c ColumnID) {
	col := &m.columns[m.checkColumn(c)]
	if col.covered {
		panic(panicCoverCovered)
	}
	col.covered = true
	h := col.head

	// 1. Unlink the header from its horizontal ring. For a Secondary column
	//    the header is self-linked and this is a no-op.
	m.nodes[m.nodes[h].left].right = m.nodes[h].right
	m.nodes[m.nodes[h].right].left = m.nodes[h].left

	// 2. Top-to-bottom, left-to-right: hide every intersecting row from the
	//    other columns it touches.
	var i, j int
	for i = m.nodes[h].down; i != h; i = m.nodes[i].down {
		for j = m.nodes[i].right; j != i; j = m.nodes[j].right {
			m.nodes[m.nodes[j].up].down = m.nodes[j].down
			m.nodes[m.nodes[j].down].up = m.nodes[j].up
			m.columns[m.nodes[j].col].size--
		}
	}
}

// Uncover is the exact inverse of Cover: it walks the same rows and nodes in
// reverse order (bottom-to-top, right-to-left) and re-splices them, then
// relinks the header. After Uncover(c) following Cover(c), every ring link
// and every size is bit-identical to the pre-Cover state.
//
// Uncovering a column that is not covered is a contract violation and panics.
func (m *Matrix) Uncover(c ColumnID) {
	col := &m.columns[m.checkColumn(c)]
	if !col.covered {
		panic(panicUncoverActive)
	}
	h := col.head

	// 1. Reverse of Cover step 2. A hidden node still holds its own up/down
	//    links, so re-splicing is pointer restoration, not re-insertion.
	var i, j int
	for i = m.nodes[h].up; i != h; i = m.nodes[i].up {
		for j = m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.columns[m.nodes[j].col].size++
			m.nodes[m.nodes[j].up].down = j
			m.nodes[m.nodes[j].down].up = j
		}
	}

	// 2. Relink the header into its horizontal ring.
	m.nodes[m.nodes[h].left].right = h
	m.nodes[m.nodes[h].right].left = h
	col.covered = false
}

// ActiveColumns returns the ids of the currently active Primary columns in
// live ring order, left to right from the root. Secondary columns are never
// part of the root ring and never appear here. An empty result means every
// Primary constraint is covered: the exact-cover completion condition.
func (m *Matrix) ActiveColumns() []ColumnID {
	cols := make([]ColumnID, 0, len(m.columns))
	for i := m.nodes[0].right; i != 0; i = m.nodes[i].right {
		cols = append(cols, m.nodes[i].col)
	}

	return cols
}
