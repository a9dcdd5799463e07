// Package layout implements the indexing and storage-order arithmetic behind
// multi-dimensional arrays: index ranges, storage orders, stride and origin
// offset computation, and view generation from mixed index/range specs.
//
// Nothing here touches element storage. Every function works on shape,
// stride and index-base slices of length N, the array's dimensionality, and
// runs in O(N) without allocating on the access path.
package layout
