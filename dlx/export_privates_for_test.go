package dlx

// Test-bridge (white-box) exposing the raw ring state to dlx_test ONLY.
// "Uncover after Cover is a no-op on structure" is a bit-for-bit property
// of the arena links; black-box accessors can observe equivalent traversal
// order but not link identity, so tests snapshot the links through this
// file. The file ends in _test.go and never ships.

// LinkState is one node's four ring links, flat and comparable so testify
// can diff whole snapshots.
type LinkState struct {
	Left, Right, Up, Down int
}

// LinkSnapshot_TestOnly copies every arena node's ring links.
func LinkSnapshot_TestOnly(m *Matrix) []LinkState {
	out := make([]LinkState, len(m.nodes))
	for i, n := range m.nodes {
		out[i] = LinkState{Left: n.left, Right: n.right, Up: n.up, Down: n.down}
	}

	return out
}

// SizeSnapshot_TestOnly copies every column's current size.
func SizeSnapshot_TestOnly(m *Matrix) []int {
	out := make([]int, len(m.columns))
	for i, c := range m.columns {
		out[i] = c.size
	}

	return out
}
