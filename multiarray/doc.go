// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package multiarray provides generic N-dimensional arrays for Go.
//
// # Overview
//
// An array is a dense block of elements addressed by N indices. This package
// provides:
//   - Owning arrays (Array[T]) with pluggable allocators
//   - Arrays over caller-provided buffers (Ref[T])
//   - Sub-arrays and strided, reversed or lower-dimensional views
//   - C, Fortran and general storage orders, including descending dimensions
//   - Arbitrary index bases per dimension
//
// # Basic Usage
//
//	import "github.com/born-ml/multiarray/multiarray"
//
//	func main() {
//	    a, err := multiarray.New[float64](multiarray.Shape{3, 4})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer a.Release()
//
//	    a.Set(1.5, 2, 3)
//	    row := a.Index(2)                                         // shape [4]
//	    col := a.View(multiarray.All(), multiarray.Idx(3))        // shape [3]
//	    odd := a.View(multiarray.All(), multiarray.Strided(1, 4, 2)) // shape [3 2]
//	}
//
// # Views
//
// A view is described by one Range per dimension. Span and Strided select an
// interval, Idx fixes a single index and drops the dimension, and All keeps
// the whole dimension:
//
//	v := a.View(multiarray.Span(0, 2), multiarray.Idx(1), multiarray.Strided(0, 4, 2))
//	// v.At(i, j) == a.At(i, 1, 2*j)
//
// ParseIndexSpec accepts the same selections written as slice expressions:
//
//	spec, _ := multiarray.ParseIndexSpec("1:, ::2", a.Shape(), a.IndexBases())
//
// # Checked and Unchecked Access
//
// At, Set, Ptr, Index and View do no validation. Get, Put, Child and Slice
// check their arguments and return errors that match ErrIndexOutOfRange,
// ErrDimensionMismatch or ErrNonPositiveStride with errors.Is.
//
// # Memory Management
//
// Only Array owns storage. Views, sub-arrays and iterators borrow it and are
// invalidated by Release and Resize.
package multiarray
