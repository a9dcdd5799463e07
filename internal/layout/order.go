package layout

import (
	"fmt"
	"slices"
)

// StorageOrder maps logical dimensions to physical ranks and records the
// direction each dimension is stored in.
//
// ordering[n] is the logical dimension stored at physical rank n; rank 0
// varies fastest in memory. ascending[d] is indexed by logical dimension.
// A malformed permutation is a caller error and is only detected by Validate.
type StorageOrder struct {
	ordering  []int
	ascending []bool
}

// Canonical names one of the two standard storage orders.
type Canonical int

// Canonical storage orders.
const (
	// CStorageOrder is row-major: the last dimension varies fastest.
	CStorageOrder Canonical = iota
	// FortranStorageOrder is column-major: the first dimension varies fastest.
	FortranStorageOrder
)

// String returns the conventional name of the order.
func (c Canonical) String() string {
	switch c {
	case CStorageOrder:
		return "c"
	case FortranStorageOrder:
		return "fortran"
	default:
		return "unknown"
	}
}

// Order expands the tag into a general n-dimensional storage order.
func (c Canonical) Order(n int) StorageOrder {
	if c == FortranStorageOrder {
		return ColumnMajor(n)
	}
	return RowMajor(n)
}

// NewStorageOrder builds a general storage order. Both slices are copied.
func NewStorageOrder(ordering []int, ascending []bool) StorageOrder {
	return StorageOrder{
		ordering:  slices.Clone(ordering),
		ascending: slices.Clone(ascending),
	}
}

// RowMajor returns the C storage order for n dimensions.
func RowMajor(n int) StorageOrder {
	o := StorageOrder{ordering: make([]int, n), ascending: make([]bool, n)}
	for i := range n {
		o.ordering[i] = n - 1 - i
		o.ascending[i] = true
	}
	return o
}

// ColumnMajor returns the Fortran storage order for n dimensions.
func ColumnMajor(n int) StorageOrder {
	o := StorageOrder{ordering: make([]int, n), ascending: make([]bool, n)}
	for i := range n {
		o.ordering[i] = i
		o.ascending[i] = true
	}
	return o
}

// NumDims returns the number of dimensions the order describes.
func (o StorageOrder) NumDims() int {
	return len(o.ordering)
}

// Ordering returns the logical dimension stored at physical rank n.
func (o StorageOrder) Ordering(n int) int {
	return o.ordering[n]
}

// Ascending reports whether logical dimension d is stored in ascending order.
func (o StorageOrder) Ascending(d int) bool {
	return o.ascending[d]
}

// Descending returns a copy with the listed logical dimensions reversed.
func (o StorageOrder) Descending(dims ...int) StorageOrder {
	c := NewStorageOrder(o.ordering, o.ascending)
	for _, d := range dims {
		c.ascending[d] = false
	}
	return c
}

// Equal compares permutation and directions element-wise.
func (o StorageOrder) Equal(other StorageOrder) bool {
	return slices.Equal(o.ordering, other.ordering) && slices.Equal(o.ascending, other.ascending)
}

// Canonical reports which standard order o is, if any.
// Descending dimensions never match a canonical order.
func (o StorageOrder) Canonical() (Canonical, bool) {
	n := o.NumDims()
	switch {
	case o.Equal(RowMajor(n)):
		return CStorageOrder, true
	case o.Equal(ColumnMajor(n)):
		return FortranStorageOrder, true
	default:
		return 0, false
	}
}

// Validate checks that the ordering is a permutation of 0..n-1 with one
// direction flag per dimension.
func (o StorageOrder) Validate() error {
	if len(o.ascending) != len(o.ordering) {
		return fmt.Errorf("%w: %d ranks but %d direction flags", ErrInvalidStorageOrder, len(o.ordering), len(o.ascending))
	}
	seen := make([]bool, len(o.ordering))
	for rank, d := range o.ordering {
		if d < 0 || d >= len(o.ordering) {
			return fmt.Errorf("%w: rank %d names dimension %d", ErrInvalidStorageOrder, rank, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: dimension %d appears twice", ErrInvalidStorageOrder, d)
		}
		seen[d] = true
	}
	return nil
}

// String formats the order as its canonical name or as rank list plus directions.
func (o StorageOrder) String() string {
	if c, ok := o.Canonical(); ok {
		return c.String()
	}
	return fmt.Sprintf("ordering=%v ascending=%v", o.ordering, o.ascending)
}
