package searchpool

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a query yields no result.
	ErrNotFound = errors.New("not found")

	// ErrInvalidLimit is returned when a search limit is not positive.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrInvalidDocument marks a malformed record during ingestion
	// (missing vector, wrong dimension, non-finite component). The record
	// is skipped and the rest of the batch proceeds; per-record errors
	// wrap this sentinel.
	ErrInvalidDocument = errors.New("invalid document")
)

// ErrDimensionMismatch indicates a vector whose length differs from the
// pool's configured vector size.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured vector size.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
