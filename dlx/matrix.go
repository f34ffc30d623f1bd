// Package dlx: Matrix construction (columns, rows) and read accessors.
package dlx

// Matrix is the sparse boolean incidence structure: columns are constraints,
// rows are candidates, and every row×column intersection is one arena node
// spliced into that row's horizontal ring and that column's vertical ring.
// The arena index 0 is the root: a column-like anchor whose horizontal ring
// links all currently active Primary columns.
//
// A Matrix is built once (AddColumn/AddRow) and then searched any number of
// times; Cover/Uncover mutate only ring links and sizes, never the arena.
type Matrix struct {
	nodes   []node
	columns []column
	rows    []int // per row: arena index of its first node, or none
}

// NewMatrix returns an empty Matrix containing only the root anchor.
func NewMatrix() *Matrix {
	m := &Matrix{nodes: make([]node, 1)}
	m.nodes[0] = node{left: 0, right: 0, up: 0, down: 0, col: -1, row: rowNone}

	return m
}

// AddColumn appends a new constraint column of the given kind and returns
// its id. Primary columns join the root's active ring at the right end;
// Secondary columns stay self-linked and never appear in ActiveColumns.
// Columns may be added before or after rows: a later column simply starts
// with no intersections.
func (m *Matrix) AddColumn(kind ColumnKind) ColumnID {
	return m.AddLabeledColumn(kind, "")
}

// AddLabeledColumn is AddColumn with a caller-supplied label, retrievable
// via Label. The label carries no structural meaning.
func (m *Matrix) AddLabeledColumn(kind ColumnKind, label string) ColumnID {
	if kind != Primary && kind != Secondary {
		panic(panicKindInvalid)
	}

	// 1. Allocate the header node, initially self-linked in both rings.
	id := ColumnID(len(m.columns))
	h := len(m.nodes)
	m.nodes = append(m.nodes, node{left: h, right: h, up: h, down: h, col: id, row: rowNone})
	m.columns = append(m.columns, column{head: h, kind: kind, label: label})

	// 2. Splice Primary headers into the root ring, left of the root
	//    (i.e. at the right end of left-to-right traversal order).
	if kind == Primary {
		last := m.nodes[0].left
		m.nodes[h].left = last
		m.nodes[h].right = 0
		m.nodes[last].right = h
		m.nodes[0].left = h
	}

	return id
}

// AddRow appends a candidate row intersecting the given columns and returns
// its id. Columns must be declared, strictly ascending, and duplicate-free;
// a violation is reported immediately and leaves the Matrix untouched.
// An empty column list is legal: such a row can never enter any solution.
func (m *Matrix) AddRow(cols ...ColumnID) (RowID, error) {
	// 1. Validate everything before splicing anything.
	for i, c := range cols {
		if c < 0 || int(c) >= len(m.columns) {
			return 0, ErrColumnOutOfRange
		}
		if i > 0 {
			switch {
			case c == cols[i-1]:
				return 0, ErrDuplicateColumn
			case c < cols[i-1]:
				return 0, ErrUnsortedRow
			}
		}
	}

	// 2. Create one node per intersection.
	id := RowID(len(m.rows))
	first := none
	prev := none
	for _, c := range cols {
		head := m.columns[c].head
		n := len(m.nodes)

		// 2a. Vertical splice at the bottom of the column's ring.
		up := m.nodes[head].up
		m.nodes = append(m.nodes, node{up: up, down: head, col: c, row: id})
		m.nodes[up].down = n
		m.nodes[head].up = n
		m.columns[c].size++

		// 2b. Horizontal splice at the end of the row's ring.
		if first == none {
			first = n
			m.nodes[n].left = n
			m.nodes[n].right = n
		} else {
			m.nodes[n].left = prev
			m.nodes[n].right = first
			m.nodes[prev].right = n
			m.nodes[first].left = n
		}
		prev = n
	}
	m.rows = append(m.rows, first)

	return id, nil
}

// Columns reports the number of declared columns (active or not).
func (m *Matrix) Columns() int { return len(m.columns) }

// Rows reports the number of declared rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// ColumnSize reports how many active rows currently intersect column c.
func (m *Matrix) ColumnSize(c ColumnID) int {
	return m.columns[m.checkColumn(c)].size
}

// ColumnKindOf reports whether column c is Primary or Secondary.
func (m *Matrix) ColumnKindOf(c ColumnID) ColumnKind {
	return m.columns[m.checkColumn(c)].kind
}

// Label returns the label given to AddLabeledColumn, or "".
func (m *Matrix) Label(c ColumnID) string {
	return m.columns[m.checkColumn(c)].label
}

// RowColumns returns the columns row r intersects, in creation order.
// Row rings are never vertically spliced apart, so this is valid at any
// point of a search.
func (m *Matrix) RowColumns(r RowID) []ColumnID {
	if r < 0 || int(r) >= len(m.rows) {
		panic(panicRowRange)
	}
	first := m.rows[r]
	if first == none {
		return nil
	}

	cols := make([]ColumnID, 0, 4)
	i := first
	for {
		cols = append(cols, m.nodes[i].col)
		i = m.nodes[i].right
		if i == first {
			break
		}
	}

	return cols
}

// ColumnRows returns the rows currently linked under column c, in vertical
// ring (top-to-bottom insertion) order. The result reflects the live state:
// rows hidden by an in-flight Cover of another column are absent.
func (m *Matrix) ColumnRows(c ColumnID) []RowID {
	col := m.columns[m.checkColumn(c)]

	rows := make([]RowID, 0, col.size)
	for i := m.nodes[col.head].down; i != col.head; i = m.nodes[i].down {
		rows = append(rows, m.nodes[i].row)
	}

	return rows
}

func (m *Matrix) checkColumn(c ColumnID) ColumnID {
	if c < 0 || int(c) >= len(m.columns) {
		panic(panicColumnRange)
	}

	return c
}
