// Package solver: eager convenience wrappers over the lazy Solve sequence.
package solver

import "github.com/katalvlaran/algx/dlx"

// All drains the solution sequence and returns every exact cover of m.
// On a terminal signal (budget, cancellation) it returns the solutions
// found so far together with that error.
func All(m *dlx.Matrix, opts ...Option) ([]Solution, error) {
	var out []Solution
	for sol, err := range Solve(m, opts...) {
		if err != nil {
			return out, err
		}
		out = append(out, sol)
	}

	return out, nil
}

// First returns the first solution and stops the search, restoring the
// Matrix. It returns ErrNoSolution when the space is exhausted empty-handed.
func First(m *dlx.Matrix, opts ...Option) (Solution, error) {
	for sol, err := range Solve(m, opts...) {
		if err != nil {
			return nil, err
		}

		return sol, nil
	}

	return nil, ErrNoSolution
}

// Count counts solutions, stopping early once limit is reached (limit <= 0
// counts them all). Counting up to 2 is the usual uniqueness check.
func Count(m *dlx.Matrix, limit int, opts ...Option) (int, error) {
	n := 0
	for _, err := range Solve(m, opts...) {
		if err != nil {
			return n, err
		}
		n++
		if limit > 0 && n >= limit {
			break
		}
	}

	return n, nil
}
