// Package solver implements Algorithm X over a dlx.Matrix: deterministic
// min-size column selection, dancing-links cover/uncover around every trial,
// and lazy solution emission through a range-over-func iterator.
package solver

import (
	"iter"

	"github.com/katalvlaran/algx/dlx"
)

// walker encapsulates one search over one Matrix.
type walker struct {
	m     *dlx.Matrix // exclusively borrowed matrix
	opts  Options     // resolved search options
	sel   Solution    // current partial selection
	stats Stats       // diagnostics
	err   error       // terminal budget/cancel signal, if any
}

// Solve returns a lazy sequence of exact covers of m. Solutions are yielded
// with a nil error; a budget or cancellation signal is yielded once as
// (nil, err) and ends the sequence. Plain exhaustion just ends it.
//
// Breaking out of the range early, like any terminal signal, unwinds every
// in-flight Cover before the sequence function returns, so the Matrix is
// always left in its pre-search, fully-uncovered state. Re-invoking Solve
// on that state reproduces the identical sequence.
func Solve(m *dlx.Matrix, opts ...Option) iter.Seq2[Solution, error] {
	return func(yield func(Solution, error) bool) {
		// 1. Resolve options.
		o := DefaultOptions()
		var fn Option
		for _, fn = range opts {
			fn(&o)
		}

		// 2. Validate input matrix.
		if m == nil {
			yield(nil, ErrMatrixNil)
			return
		}

		// 3. Cover pre-satisfied constraints.
		var i int
		for i = 0; i < len(o.PreCovered); i++ {
			m.Cover(o.PreCovered[i])
		}

		// 4. Run the walk. A false return means either the consumer broke
		//    out (err == nil) or a terminal signal fired (err != nil); in
		//    both cases every search-path Cover has already been unwound.
		w := &walker{m: m, opts: o}
		w.walk(0, yield)

		// 5. Restore pre-covered columns in reverse order.
		for i = len(o.PreCovered) - 1; i >= 0; i-- {
			m.Uncover(o.PreCovered[i])
		}

		// 6. Surface the terminal signal. Never reached when the consumer
		//    broke out, so yield is not called after returning false.
		if w.err != nil {
			yield(nil, w.err)
		}

		// 7. Expose diagnostics.
		if o.Stats != nil {
			*o.Stats = w.stats
		}
	}
}

// walk explores the subtree below the current partial selection at the given
// depth. It returns false when iteration must stop (consumer break or
// terminal signal) after restoring its own cover operations.
func (w *walker) walk(depth int, yield func(Solution, error) bool) bool {
	// 1. Cooperative cancellation.
	select {
	case <-w.opts.Ctx.Done():
		w.err = w.opts.Ctx.Err()
		return false
	default:
	}

	// 2. Budgets.
	if w.opts.MaxVisits >= 0 && w.stats.Visits >= w.opts.MaxVisits {
		w.err = ErrVisitLimit
		return false
	}
	w.stats.Visits++
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		w.err = ErrDepthLimit
		return false
	}
	if depth > w.stats.MaxDepthSeen {
		w.stats.MaxDepthSeen = depth
	}

	// 3. Completion: every primary column is covered.
	active := w.m.ActiveColumns()
	if len(active) == 0 {
		out := make(Solution, len(w.sel))
		copy(out, w.sel)
		w.stats.Emitted++

		return yield(out, nil)
	}

	// 4. Select the min-size column; the first minimal one encountered in
	//    left-to-right ring order wins, keeping the sequence deterministic.
	best := active[0]
	size := w.m.ColumnSize(best)
	var c dlx.ColumnID
	for _, c = range active[1:] {
		if s := w.m.ColumnSize(c); s < size {
			best, size = c, s
		}
	}

	// 5. A zero-size column can never be covered: fail this branch.
	if size == 0 {
		return true
	}

	// 6. Branch on every row under the selected column, in vertical ring
	//    order. Rows hidden by the nested covers reappear before the next
	//    iteration, so the snapshot matches the live ring throughout.
	w.m.Cover(best)
	covered := make([]dlx.ColumnID, 0, 4)
	var (
		ok bool
		i  int
	)
	for _, r := range w.m.ColumnRows(best) {
		w.sel = append(w.sel, r)
		covered = covered[:0]
		for _, c = range w.m.RowColumns(r) {
			if c != best {
				w.m.Cover(c)
				covered = append(covered, c)
			}
		}

		ok = w.walk(depth+1, yield)

		// Undo in exact reverse order; Uncover is Cover's perfect inverse.
		for i = len(covered) - 1; i >= 0; i-- {
			w.m.Uncover(covered[i])
		}
		w.sel = w.sel[:len(w.sel)-1]

		if !ok {
			w.m.Uncover(best)
			return false
		}
	}
	w.m.Uncover(best)

	return true
}
