package dlx

import "errors"

var (
	// ErrColumnOutOfRange indicates a row referenced a column id that was
	// never declared with AddColumn. Reported at AddRow time, never deferred
	// to search time; the Matrix remains usable after the error.
	ErrColumnOutOfRange = errors.New("dlx: column id out of range")

	// ErrDuplicateColumn indicates a row listed the same column twice.
	ErrDuplicateColumn = errors.New("dlx: duplicate column in row")

	// ErrUnsortedRow indicates a row's columns were not in strictly
	// ascending order. Ascending order keeps ring traversal deterministic.
	ErrUnsortedRow = errors.New("dlx: row columns must be ascending")
)
