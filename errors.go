package riskstat

import "errors"

// Error kinds returned by the package. They are always wrapped with some
// context, use errors.Is to test for them.
var (
	// ErrMalformedInput reports unparsable or duplicate data at construction.
	ErrMalformedInput = errors.New("malformed input")
	// ErrDuplicateColumn reports a column name collision.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrMisalignedSeries reports series that do not share the same date index.
	ErrMisalignedSeries = errors.New("misaligned series")
	// ErrInvalidParameter reports an out of range window, half-life or period.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDimensionMismatch reports a weight vector that does not match the columns.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInsufficientData reports too few observations for a statistic.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrUnsortedIndex reports a window operation on a table not sorted by date.
	ErrUnsortedIndex = errors.New("unsorted date index")
)
