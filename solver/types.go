// Package solver defines the solution type, search options, diagnostics,
// and the sentinel error set for Algorithm X search.
package solver

import (
	"context"
	"errors"

	"github.com/katalvlaran/algx/dlx"
)

// Solution is one exact cover: the selected rows in selection order.
// Every Primary column of the searched Matrix is covered by exactly one
// listed row; Secondary columns by at most one.
type Solution []dlx.RowID

var (
	// ErrMatrixNil is returned when a nil *dlx.Matrix is passed to Solve,
	// All, First, or Count.
	ErrMatrixNil = errors.New("solver: matrix is nil")

	// ErrVisitLimit indicates the node-visit budget set by WithMaxVisits was
	// exhausted before the search space was. It is a terminal signal on the
	// solution sequence, distinct from plain exhaustion.
	ErrVisitLimit = errors.New("solver: node-visit limit exceeded")

	// ErrDepthLimit indicates the recursion-depth budget set by WithMaxDepth
	// was exceeded. Terminal, like ErrVisitLimit.
	ErrDepthLimit = errors.New("solver: recursion depth limit exceeded")

	// ErrNoSolution is returned by First when the search space is exhausted
	// without a single solution.
	ErrNoSolution = errors.New("solver: no solution")
)

// Stats carries search diagnostics, filled in when WithStats is used.
type Stats struct {
	// Visits counts search-tree nodes entered (one per recursive step).
	Visits int

	// MaxDepthSeen is the deepest selection depth reached.
	MaxDepthSeen int

	// Emitted counts solutions handed to the consumer.
	Emitted int
}

// Option configures optional behavior of Solve.
// Use with Solve(m, opts...).
type Option func(*Options)

// Options holds configurable parameters for Algorithm X search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancellation surfaces as a terminal (nil, ctx.Err()) on the sequence
	// after the matrix has been fully restored.
	Ctx context.Context

	// MaxVisits, if non-negative, bounds the number of search-tree nodes
	// visited; exhaustion surfaces as ErrVisitLimit. Default -1 (unlimited).
	MaxVisits int

	// MaxDepth, if non-negative, bounds the selection depth; exceeding it
	// surfaces as ErrDepthLimit. Default -1 (unlimited).
	MaxDepth int

	// PreCovered columns are covered before the walk starts and uncovered,
	// in reverse order, when the sequence ends, even on early termination.
	// Use for constraints already satisfied outside the search (givens).
	PreCovered []dlx.ColumnID

	// Stats, if non-nil, receives diagnostics when the sequence ends.
	Stats *Stats
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No visit limit (MaxVisits = -1)
//   - No depth limit (MaxDepth = -1)
//   - No pre-covered columns
//   - No stats sink
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxVisits:  -1,
		MaxDepth:   -1,
		PreCovered: nil,
		Stats:      nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxVisits returns an Option that bounds visited search-tree nodes.
// A negative n means unlimited.
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		o.MaxVisits = n
	}
}

// WithMaxDepth returns an Option that bounds the selection depth.
// A negative d means unlimited; d = 0 admits only the empty solution.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		o.MaxDepth = d
	}
}

// WithPreCovered returns an Option that covers cols before searching and
// restores them afterwards. Ids must be valid, uncovered columns of the
// searched Matrix; a bad id is a programming error and panics in Cover.
func WithPreCovered(cols ...dlx.ColumnID) Option {
	return func(o *Options) {
		o.PreCovered = append(o.PreCovered, cols...)
	}
}

// WithStats returns an Option that installs st as the diagnostics sink.
// st is overwritten, not accumulated, when the sequence ends.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}
