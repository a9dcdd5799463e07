// Package multiarray provides dense N-dimensional arrays over owned or
// borrowed storage, and the views, sub-arrays and iterators derived from them.
//
// Four variants share one implementation of the array contract:
//   - Array: owns its storage, obtained from an Allocator.
//   - Ref: addresses a caller-provided buffer.
//   - SubArray: drops leading dimensions through integer indexing.
//   - View: any index/range selection, possibly strided, reversed or lower-dimensional.
//
// # Access paths
//
// At, Set, Ptr, Index and View never check their arguments. Out-of-range
// indices, specs of the wrong length or zero strides give unspecified results
// or a runtime panic. Get, Put, Child and Slice validate their arguments and
// return an error wrapping one of the layout sentinels instead.
//
// # Lifetimes
//
// Only Array owns storage. Refs, views, sub-arrays and iterators borrow it
// and must not be used after the owning array is released or resized;
// Resize swaps buffers and metadata and invalidates everything previously
// derived from the array. Reshape and Reindex rewrite metadata in place, so
// sub-arrays and iterators taken before them see inconsistent geometry.
// None of this is detected at run time.
//
// # Concurrency
//
// Concurrent reads are safe. Any write, including element writes through a
// view, Resize, Reshape, Reindex and Release, needs external synchronization.
package multiarray
