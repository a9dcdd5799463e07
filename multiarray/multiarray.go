// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package multiarray

import (
	"cmp"
	"log/slog"

	"github.com/born-ml/multiarray/internal/multiarray"
)

// Type aliases for public API

// ArrayLike is implemented by every array variant.
type ArrayLike[T any] = multiarray.ArrayLike[T]

// Array is an N-dimensional array that owns its storage.
//
// Example:
//
//	a, err := multiarray.New[int](multiarray.Shape{2, 3})
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
//	a.Set(7, 1, 2)
type Array[T any] = multiarray.Array[T]

// Ref is an N-dimensional array over a caller-provided buffer.
type Ref[T any] = multiarray.Ref[T]

// SubArray is the array obtained by fixing the leading index.
type SubArray[T any] = multiarray.SubArray[T]

// View is a selection of another array's elements.
type View[T any] = multiarray.View[T]

// Iterator is a random-access cursor over dimension 0 of an array.
type Iterator[T any] = multiarray.Iterator[T]

// Allocator supplies and reclaims element storage for an Array.
type Allocator[T any] = multiarray.Allocator[T]

// HeapAllocator allocates from the Go heap and constructs zero values.
type HeapAllocator[T any] = multiarray.HeapAllocator[T]

// FillAllocator constructs every element as a fixed value.
type FillAllocator[T comparable] = multiarray.FillAllocator[T]

// LimitAllocator refuses requests larger than its limit.
type LimitAllocator[T any] = multiarray.LimitAllocator[T]

// Option configures an Array or Ref at construction.
type Option = multiarray.Option

// New allocates an array with the extents and index bases of spec.
func New[T any](spec ShapeSpec, opts ...Option) (*Array[T], error) {
	return multiarray.New[T](spec, opts...)
}

// NewRef lays data out as an array with the extents and index bases of spec.
func NewRef[T any](data []T, spec ShapeSpec, opts ...Option) (*Ref[T], error) {
	return multiarray.NewRef(data, spec, opts...)
}

// FromArrayLike builds an owning copy of src.
func FromArrayLike[T any](src ArrayLike[T], opts ...Option) (*Array[T], error) {
	return multiarray.FromArrayLike(src, opts...)
}

// WithStorageOrder sets a general storage order.
func WithStorageOrder(o StorageOrder) Option {
	return multiarray.WithStorageOrder(o)
}

// WithCanonicalOrder selects the C or Fortran storage order.
func WithCanonicalOrder(c Canonical) Option {
	return multiarray.WithCanonicalOrder(c)
}

// WithIndexBases overrides the index bases given by the shape spec.
func WithIndexBases(bases ...int) Option {
	return multiarray.WithIndexBases(bases...)
}

// WithAllocator sets the allocator of an owning Array.
func WithAllocator[T any](a Allocator[T]) Option {
	return multiarray.WithAllocator(a)
}

// WithLogger sets the logger for lifecycle events of an owning Array.
func WithLogger(l *slog.Logger) Option {
	return multiarray.WithLogger(l)
}

// Rebind returns an allocator of the same kind for element type U.
func Rebind[U, T any](a Allocator[T]) (Allocator[U], bool) {
	return multiarray.Rebind[U](a)
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T comparable](a, b ArrayLike[T]) bool {
	return multiarray.Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a ArrayLike[T], b ArrayLike[U], eq func(T, U) bool) bool {
	return multiarray.EqualFunc(a, b, eq)
}

// Compare orders a and b lexicographically.
func Compare[T cmp.Ordered](a, b ArrayLike[T]) int {
	return multiarray.Compare(a, b)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b ArrayLike[T]) bool {
	return multiarray.Less(a, b)
}
