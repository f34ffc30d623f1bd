package dlx_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algx/dlx"
)

// ExampleMatrix_Cover builds a 3-constraint incidence structure, covers one
// column, and shows that Uncover restores the exact pre-cover view.
//
// Incidence (rows × columns A,B,C):
//
//	r0: A B .
//	r1: . B C
//	r2: A . C
func ExampleMatrix_Cover() {
	m := dlx.NewMatrix()
	a := m.AddLabeledColumn(dlx.Primary, "A")
	b := m.AddLabeledColumn(dlx.Primary, "B")
	c := m.AddLabeledColumn(dlx.Primary, "C")

	_, _ = m.AddRow(a, b)
	_, _ = m.AddRow(b, c)
	_, _ = m.AddRow(a, c)

	active := func() string {
		labels := make([]string, 0, m.Columns())
		for _, id := range m.ActiveColumns() {
			labels = append(labels, fmt.Sprintf("%s:%d", m.Label(id), m.ColumnSize(id)))
		}

		return strings.Join(labels, " ")
	}

	fmt.Println("before:", active())

	// Covering A hides rows r0 and r2 from the other columns.
	m.Cover(a)
	fmt.Println("covered:", active())

	m.Uncover(a)
	fmt.Println("after:", active())

	// Output:
	// before: A:2 B:2 C:2
	// covered: B:1 C:1
	// after: A:2 B:2 C:2
}
