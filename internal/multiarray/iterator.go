package multiarray

import (
	"slices"
	"unsafe"
)

// Iterator is a random-access cursor over dimension 0 of an array. It
// borrows the array's storage and geometry and holds only the current
// logical index, so every move is O(1). Dereferencing yields the element
// for one-dimensional arrays and a sub-array otherwise, built on demand.
type Iterator[T any] struct {
	data    []T
	origin  int
	idx     int
	shape   []int
	strides []int
	bases   []int
}

// Next moves to the following index.
func (it *Iterator[T]) Next() {
	it.idx++
}

// Prev moves to the preceding index.
func (it *Iterator[T]) Prev() {
	it.idx--
}

// Advance moves by n indices; n may be negative.
func (it *Iterator[T]) Advance(n int) {
	it.idx += n
}

// Seek moves to logical index i.
func (it *Iterator[T]) Seek(i int) {
	it.idx = i
}

// Pos returns the current logical index.
func (it Iterator[T]) Pos() int {
	return it.idx
}

// Distance returns the number of steps from it to other.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return other.idx - it.idx
}

// Less reports whether it is before other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.idx < other.idx
}

// Valid reports whether the current index can be dereferenced.
func (it Iterator[T]) Valid() bool {
	return it.idx >= it.bases[0] && it.idx < it.bases[0]+it.shape[0]
}

// Equal reports whether both iterators point at the same index of the same
// storage with identical geometry.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.idx == other.idx &&
		it.origin == other.origin &&
		unsafe.SliceData(it.data) == unsafe.SliceData(other.data) &&
		slices.Equal(it.shape, other.shape) &&
		slices.Equal(it.strides, other.strides) &&
		slices.Equal(it.bases, other.bases)
}

// Sub returns the sub-array at the current index.
func (it Iterator[T]) Sub() SubArray[T] {
	return SubArray[T]{base: base[T]{
		data:    it.data,
		origin:  it.origin + it.idx*it.strides[0],
		shape:   it.shape[1:],
		strides: it.strides[1:],
		bases:   it.bases[1:],
	}}
}

// Value returns the current element of a one-dimensional array.
func (it Iterator[T]) Value() T {
	return it.data[it.origin+it.idx*it.strides[0]]
}

// Ptr returns a pointer to the current element of a one-dimensional array.
func (it Iterator[T]) Ptr() *T {
	return &it.data[it.origin+it.idx*it.strides[0]]
}
