// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package multiarray

import (
	"github.com/born-ml/multiarray/internal/layout"
)

// Shape lists the extent of each dimension, with all index bases at zero.
// Example: Shape{2, 3, 4} is a 2×3×4 array.
type Shape = layout.Shape

// Ranges gives each dimension an index range [start, finish); the start
// becomes the index base.
type Ranges = layout.Ranges

// ShapeSpec is implemented by Shape and Ranges.
type ShapeSpec = layout.ShapeSpec

// Range selects indices of one dimension for a view.
type Range = layout.Range

// IndexSpec is one Range per dimension of the source array.
type IndexSpec = layout.IndexSpec

// StorageOrder maps logical dimensions to memory ranks and directions.
type StorageOrder = layout.StorageOrder

// Canonical names the C or Fortran storage order.
type Canonical = layout.Canonical

// Canonical storage orders.
const (
	CStorageOrder       Canonical = layout.CStorageOrder
	FortranStorageOrder Canonical = layout.FortranStorageOrder
)

// IndexError reports an index outside the valid window of a dimension.
type IndexError = layout.IndexError

// Errors returned by checked operations.
var (
	ErrDimensionMismatch   = layout.ErrDimensionMismatch
	ErrSizeMismatch        = layout.ErrSizeMismatch
	ErrAllocationFailure   = layout.ErrAllocationFailure
	ErrIndexOutOfRange     = layout.ErrIndexOutOfRange
	ErrNonPositiveStride   = layout.ErrNonPositiveStride
	ErrInvalidStorageOrder = layout.ErrInvalidStorageOrder
	ErrInvalidSlice        = layout.ErrInvalidSlice
	ErrReleased            = layout.ErrReleased
)

// All selects every index of a dimension.
func All() Range { return layout.All() }

// Span selects [start, finish) with stride 1.
func Span(start, finish int) Range { return layout.Span(start, finish) }

// Strided selects [start, finish) with the given stride, which may be negative.
func Strided(start, finish, stride int) Range { return layout.Strided(start, finish, stride) }

// Idx selects a single index and drops the dimension from the view.
func Idx(i int) Range { return layout.Idx(i) }

// Indices builds an IndexSpec.
func Indices(r ...Range) IndexSpec { return layout.Indices(r...) }

// Full selects every index of an n-dimensional array.
func Full(n int) IndexSpec { return layout.Full(n) }

// Point selects a single element.
func Point(indices ...int) IndexSpec { return layout.Point(indices...) }

// NewStorageOrder builds a general storage order: ordering[n] is the
// dimension stored at memory rank n, with rank 0 varying fastest.
func NewStorageOrder(ordering []int, ascending []bool) StorageOrder {
	return layout.NewStorageOrder(ordering, ascending)
}

// RowMajor returns the C storage order for n dimensions.
func RowMajor(n int) StorageOrder { return layout.RowMajor(n) }

// ColumnMajor returns the Fortran storage order for n dimensions.
func ColumnMajor(n int) StorageOrder { return layout.ColumnMajor(n) }

// ParseSlice parses one slice expression such as "1:", "::2" or "-1"
// against a dimension of the given extent.
func ParseSlice(expr string, extent int) (Range, error) {
	return layout.ParseSlice(expr, extent)
}

// ParseIndexSpec parses comma-separated slice expressions, one per
// dimension, against an array's shape and index bases.
func ParseIndexSpec(expr string, shape, bases []int) (IndexSpec, error) {
	return layout.ParseIndexSpec(expr, shape, bases)
}
