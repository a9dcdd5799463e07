package layout

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrSizeMismatch        = errors.New("size mismatch")
	ErrAllocationFailure   = errors.New("allocation failure")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrNonPositiveStride   = errors.New("non-positive stride")
	ErrInvalidStorageOrder = errors.New("invalid storage order")
	ErrInvalidSlice        = errors.New("invalid slice expression")
	ErrReleased            = errors.New("array has been released")
)

// IndexError describes an index that falls outside the valid window of a dimension.
type IndexError struct {
	Dim   int // Violating dimension
	Index int // Offending logical index
	Low   int // Index base of the dimension
	High  int // One past the last valid index
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for dimension %d (valid [%d, %d))", e.Index, e.Dim, e.Low, e.High)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func dimensionMismatch(what string, want, got int) error {
	return fmt.Errorf("%w: %s has %d entries, want %d", ErrDimensionMismatch, what, got, want)
}
