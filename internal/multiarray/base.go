package multiarray

import (
	"fmt"
	"iter"

	"github.com/born-ml/multiarray/internal/layout"
)

// ArrayLike is the contract every array variant satisfies. Values yields
// elements in iteration order: dimension 0 outermost, the last dimension
// innermost, regardless of storage order.
type ArrayLike[T any] interface {
	NumDims() int
	Shape() []int
	Strides() []int
	IndexBases() []int
	Size() int
	NumElements() int
	Empty() bool
	At(indices ...int) T
	Values() iter.Seq[T]
}

// base is the array contract shared by all variants: borrowed storage plus
// the geometry needed to address it. Element (i0, ..., iN-1) lives at
// data[origin + sum(i[d]*strides[d])]; origin already folds in the index
// bases and any descending dimensions.
type base[T any] struct {
	data    []T
	origin  int
	shape   []int
	strides []int
	bases   []int
}

// NumDims returns the number of dimensions.
func (b base[T]) NumDims() int {
	return len(b.shape)
}

// Shape returns the extents. The slice is shared and must not be modified.
func (b base[T]) Shape() []int {
	return b.shape
}

// Strides returns the storage offset step of each dimension. The slice is
// shared and must not be modified.
func (b base[T]) Strides() []int {
	return b.strides
}

// IndexBases returns the lowest valid index of each dimension. The slice is
// shared and must not be modified.
func (b base[T]) IndexBases() []int {
	return b.bases
}

// Size returns the extent of dimension 0. A zero-dimensional array has size 1.
func (b base[T]) Size() int {
	if len(b.shape) == 0 {
		return 1
	}
	return b.shape[0]
}

// NumElements returns the product of all extents.
func (b base[T]) NumElements() int {
	return layout.Shape(b.shape).NumElements()
}

// Empty reports whether dimension 0 has no indices.
func (b base[T]) Empty() bool {
	return b.Size() == 0
}

// Origin returns the storage offset of the element whose indices are all zero.
// It may lie outside the buffer when index bases are non-zero.
func (b base[T]) Origin() int {
	return b.origin
}

// Offset returns the storage offset of the element at indices.
func (b base[T]) Offset(indices ...int) int {
	return layout.Offset(b.origin, indices, b.strides)
}

// At returns the element at indices. Indices are not checked.
func (b base[T]) At(indices ...int) T {
	return b.data[layout.Offset(b.origin, indices, b.strides)]
}

// Set stores v at indices. Indices are not checked.
func (b base[T]) Set(v T, indices ...int) {
	b.data[layout.Offset(b.origin, indices, b.strides)] = v
}

// Ptr returns a pointer to the element at indices. Indices are not checked.
func (b base[T]) Ptr(indices ...int) *T {
	return &b.data[layout.Offset(b.origin, indices, b.strides)]
}

// Value returns the element of a zero-dimensional array.
func (b base[T]) Value() T {
	return b.data[b.origin]
}

// SetValue stores the element of a zero-dimensional array.
func (b base[T]) SetValue(v T) {
	b.data[b.origin] = v
}

// Index returns the sub-array at logical index i of dimension 0, sharing
// storage and geometry. Indexing a one-dimensional array yields a
// zero-dimensional sub-array holding the element. i is not checked.
func (b base[T]) Index(i int) SubArray[T] {
	return SubArray[T]{base: b.sub(i)}
}

func (b base[T]) sub(i int) base[T] {
	return base[T]{
		data:    b.data,
		origin:  b.origin + i*b.strides[0],
		shape:   b.shape[1:],
		strides: b.strides[1:],
		bases:   b.bases[1:],
	}
}

// View returns the view selected by spec, one range per dimension.
// Degenerate ranges drop their dimension. The view's index bases are zero.
// spec is not checked.
func (b base[T]) View(spec ...layout.Range) View[T] {
	return b.newView(layout.GenerateView(b.shape, b.strides, b.bases, spec))
}

func (b base[T]) newView(g layout.Geometry) View[T] {
	first := b.origin + g.Offset
	return View[T]{
		base: base[T]{
			data:    b.data,
			origin:  first,
			shape:   g.Extents,
			strides: g.Strides,
			bases:   make([]int, len(g.Extents)),
		},
		first: first,
	}
}

// Get returns the element at indices, or an error if the index tuple has
// the wrong length or leaves the valid window.
func (b base[T]) Get(indices ...int) (T, error) {
	if err := layout.CheckIndex(indices, b.shape, b.bases); err != nil {
		var zero T
		return zero, err
	}
	return b.At(indices...), nil
}

// Put stores v at indices after the same checks as Get.
func (b base[T]) Put(v T, indices ...int) error {
	if err := layout.CheckIndex(indices, b.shape, b.bases); err != nil {
		return err
	}
	b.Set(v, indices...)
	return nil
}

// Child is Index with i checked against dimension 0.
func (b base[T]) Child(i int) (SubArray[T], error) {
	if len(b.shape) == 0 {
		return SubArray[T]{}, fmt.Errorf("%w: cannot index a zero-dimensional array", layout.ErrDimensionMismatch)
	}
	if err := layout.CheckIndex([]int{i}, b.shape[:1], b.bases[:1]); err != nil {
		return SubArray[T]{}, err
	}
	return b.Index(i), nil
}

// Slice is View with spec checked: one entry per dimension, non-zero
// strides and every selected index inside its window.
func (b base[T]) Slice(spec ...layout.Range) (View[T], error) {
	g, err := layout.GenerateViewChecked(b.shape, b.strides, b.bases, spec)
	if err != nil {
		return View[T]{}, err
	}
	return b.newView(g), nil
}

// walk calls yield with the storage offset of every element in iteration order.
func (b base[T]) walk(yield func(off int) bool) {
	n := len(b.shape)
	off := b.origin
	for d := range n {
		if b.shape[d] == 0 {
			return
		}
		off += b.bases[d] * b.strides[d]
	}

	count := make([]int, n)
	for {
		if !yield(off) {
			return
		}
		d := n - 1
		for ; d >= 0; d-- {
			count[d]++
			off += b.strides[d]
			if count[d] < b.shape[d] {
				break
			}
			off -= b.shape[d] * b.strides[d]
			count[d] = 0
		}
		if d < 0 {
			return
		}
	}
}

// Values yields every element in iteration order.
func (b base[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		b.walk(func(off int) bool {
			return yield(b.data[off])
		})
	}
}

// Flatten returns a copy of all elements in iteration order.
func (b base[T]) Flatten() []T {
	out := make([]T, 0, b.NumElements())
	b.walk(func(off int) bool {
		out = append(out, b.data[off])
		return true
	})
	return out
}

// SetFlat overwrites every element, in iteration order, from values.
// Nothing is written unless len(values) equals NumElements.
func (b base[T]) SetFlat(values []T) error {
	if n := b.NumElements(); len(values) != n {
		return fmt.Errorf("%w: %d values for %d elements", layout.ErrSizeMismatch, len(values), n)
	}
	i := 0
	b.walk(func(off int) bool {
		b.data[off] = values[i]
		i++
		return true
	})
	return nil
}

// Fill stores v in every element.
func (b base[T]) Fill(v T) {
	b.walk(func(off int) bool {
		b.data[off] = v
		return true
	})
}

// Assign copies src element-wise in iteration order. The shapes must
// match exactly; index bases may differ. Overlapping source and
// destination storage gives an unspecified result.
func (b base[T]) Assign(src ArrayLike[T]) error {
	if err := sameShape(b.shape, src.Shape()); err != nil {
		return err
	}
	next, stop := iter.Pull(src.Values())
	defer stop()
	b.walk(func(off int) bool {
		v, ok := next()
		if !ok {
			return false
		}
		b.data[off] = v
		return true
	})
	return nil
}

func sameShape(dst, src []int) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d-dimensional source for %d-dimensional destination", layout.ErrDimensionMismatch, len(src), len(dst))
	}
	for d := range dst {
		if dst[d] != src[d] {
			return fmt.Errorf("%w: source shape %v, destination shape %v", layout.ErrDimensionMismatch, src, dst)
		}
	}
	return nil
}

// Begin returns an iterator at the first index of dimension 0.
func (b base[T]) Begin() Iterator[T] {
	return b.iterator(b.bases[0])
}

// End returns an iterator one past the last index of dimension 0.
func (b base[T]) End() Iterator[T] {
	return b.iterator(b.bases[0] + b.shape[0])
}

func (b base[T]) iterator(idx int) Iterator[T] {
	return Iterator[T]{
		data:    b.data,
		origin:  b.origin,
		idx:     idx,
		shape:   b.shape,
		strides: b.strides,
		bases:   b.bases,
	}
}

// Rows yields each logical index of dimension 0 with its sub-array.
func (b base[T]) Rows() iter.Seq2[int, SubArray[T]] {
	return func(yield func(int, SubArray[T]) bool) {
		for it, end := b.Begin(), b.End(); it.Less(end); it.Next() {
			if !yield(it.Pos(), it.Sub()) {
				return
			}
		}
	}
}

// Backward is Rows in reverse order.
func (b base[T]) Backward() iter.Seq2[int, SubArray[T]] {
	return func(yield func(int, SubArray[T]) bool) {
		for it, begin := b.End(), b.Begin(); begin.Less(it); {
			it.Prev()
			if !yield(it.Pos(), it.Sub()) {
				return
			}
		}
	}
}
