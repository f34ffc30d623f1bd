package dlx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algx/dlx"
)

// buildSquare4 declares 4 primary columns and the rows
// {0,1}, {2,3}, {0,2}, {1,3} — the canonical 4-column instance with
// exactly two exact covers ({0,1}+{2,3} and {0,2}+{1,3}).
func buildSquare4(t *testing.T) *dlx.Matrix {
	t.Helper()
	m := dlx.NewMatrix()
	for i := 0; i < 4; i++ {
		m.AddColumn(dlx.Primary)
	}
	for _, cols := range [][]dlx.ColumnID{{0, 1}, {2, 3}, {0, 2}, {1, 3}} {
		_, err := m.AddRow(cols...)
		require.NoError(t, err)
	}

	return m
}

func TestNewMatrix_Empty(t *testing.T) {
	m := dlx.NewMatrix()
	assert.Equal(t, 0, m.Columns())
	assert.Equal(t, 0, m.Rows())
	assert.Empty(t, m.ActiveColumns())
}

func TestAddColumn_SequentialIDs(t *testing.T) {
	m := dlx.NewMatrix()
	assert.Equal(t, dlx.ColumnID(0), m.AddColumn(dlx.Primary))
	assert.Equal(t, dlx.ColumnID(1), m.AddColumn(dlx.Secondary))
	assert.Equal(t, dlx.ColumnID(2), m.AddColumn(dlx.Primary))
	assert.Equal(t, 3, m.Columns())

	assert.Equal(t, dlx.Primary, m.ColumnKindOf(0))
	assert.Equal(t, dlx.Secondary, m.ColumnKindOf(1))
}

func TestAddLabeledColumn_Label(t *testing.T) {
	m := dlx.NewMatrix()
	c := m.AddLabeledColumn(dlx.Primary, "cell(0,0)")
	assert.Equal(t, "cell(0,0)", m.Label(c))

	plain := m.AddColumn(dlx.Primary)
	assert.Equal(t, "", m.Label(plain))
}

func TestActiveColumns_RingOrderSkipsSecondary(t *testing.T) {
	m := dlx.NewMatrix()
	p0 := m.AddColumn(dlx.Primary)
	s := m.AddColumn(dlx.Secondary)
	p1 := m.AddColumn(dlx.Primary)

	// Secondary columns never enter the root ring.
	assert.Equal(t, []dlx.ColumnID{p0, p1}, m.ActiveColumns())
	assert.NotContains(t, m.ActiveColumns(), s)
}

func TestAddRow_SplicesAndCounts(t *testing.T) {
	m := buildSquare4(t)

	assert.Equal(t, 4, m.Rows())
	for c := dlx.ColumnID(0); c < 4; c++ {
		assert.Equal(t, 2, m.ColumnSize(c), "each column meets two rows")
	}

	assert.Equal(t, []dlx.ColumnID{0, 1}, m.RowColumns(0))
	assert.Equal(t, []dlx.ColumnID{1, 3}, m.RowColumns(3))

	// Vertical ring order is insertion order.
	assert.Equal(t, []dlx.RowID{0, 2}, m.ColumnRows(0))
	assert.Equal(t, []dlx.RowID{0, 3}, m.ColumnRows(1))
}

func TestAddRow_EmptyRow(t *testing.T) {
	m := dlx.NewMatrix()
	m.AddColumn(dlx.Primary)

	r, err := m.AddRow()
	require.NoError(t, err)
	assert.Equal(t, dlx.RowID(0), r)
	assert.Nil(t, m.RowColumns(r))
	assert.Equal(t, 0, m.ColumnSize(0))
}

func TestAddRow_ConstructionErrors(t *testing.T) {
	m := dlx.NewMatrix()
	m.AddColumn(dlx.Primary)
	m.AddColumn(dlx.Primary)

	_, err := m.AddRow(0, 2)
	assert.ErrorIs(t, err, dlx.ErrColumnOutOfRange)

	_, err = m.AddRow(-1)
	assert.ErrorIs(t, err, dlx.ErrColumnOutOfRange)

	_, err = m.AddRow(1, 1)
	assert.ErrorIs(t, err, dlx.ErrDuplicateColumn)

	_, err = m.AddRow(1, 0)
	assert.ErrorIs(t, err, dlx.ErrUnsortedRow)

	// A rejected row must leave the Matrix untouched and usable.
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.ColumnSize(0))
	assert.Equal(t, 0, m.ColumnSize(1))

	r, err := m.AddRow(0, 1)
	require.NoError(t, err)
	assert.Equal(t, dlx.RowID(0), r)
	assert.Equal(t, 1, m.ColumnSize(0))
}

func TestAddColumn_AfterRows(t *testing.T) {
	m := dlx.NewMatrix()
	a := m.AddColumn(dlx.Primary)
	_, err := m.AddRow(a)
	require.NoError(t, err)

	// A column declared after rows exist relinks correctly: it joins the
	// ring at the right end and starts with no intersections.
	b := m.AddColumn(dlx.Primary)
	assert.Equal(t, []dlx.ColumnID{a, b}, m.ActiveColumns())
	assert.Equal(t, 0, m.ColumnSize(b))

	_, err = m.AddRow(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, m.ColumnSize(b))
	assert.Equal(t, []dlx.RowID{0, 1}, m.ColumnRows(a))
}

func TestColumnKind_String(t *testing.T) {
	assert.Equal(t, "primary", dlx.Primary.String())
	assert.Equal(t, "secondary", dlx.Secondary.String())
}

func TestAccessors_PanicOnBadIDs(t *testing.T) {
	m := dlx.NewMatrix()
	m.AddColumn(dlx.Primary)

	assert.Panics(t, func() { m.ColumnSize(1) })
	assert.Panics(t, func() { m.ColumnSize(-1) })
	assert.Panics(t, func() { m.RowColumns(0) })
	assert.Panics(t, func() { m.AddColumn(dlx.ColumnKind(7)) })
}
