package multiarray

import (
	"fmt"

	"github.com/born-ml/multiarray/internal/layout"
)

// Ref addresses an externally owned buffer as an N-dimensional array.
// The buffer must outlive the Ref and hold at least NumElements elements.
type Ref[T any] struct {
	base[T]
	order       layout.StorageOrder
	directional int // offset from data[0] to index 0 of every descending dimension
	numElements int
}

// NewRef lays data out with the extents and index bases of spec.
//
// Example:
//
//	buf := make([]float64, 24)
//	r, err := NewRef(buf, layout.Shape{2, 3, 4}, WithCanonicalOrder(layout.FortranStorageOrder))
func NewRef[T any](data []T, spec layout.ShapeSpec, opts ...Option) (*Ref[T], error) {
	o := newOptions(opts)
	order, bases, err := o.geometry(spec)
	if err != nil {
		return nil, err
	}
	r := &Ref[T]{}
	r.init(data, clampExtents(spec.Extents()), bases, order)
	if len(data) < r.numElements {
		return nil, fmt.Errorf("%w: buffer holds %d elements, shape %v needs %d", layout.ErrSizeMismatch, len(data), r.shape, r.numElements)
	}
	return r, nil
}

// clampExtents copies extents, treating negative extents as empty.
func clampExtents(extents []int) []int {
	out := make([]int, len(extents))
	for i, e := range extents {
		out[i] = max(e, 0)
	}
	return out
}

func (r *Ref[T]) init(data []T, extents, bases []int, order layout.StorageOrder) {
	r.data = data
	r.order = order
	r.shape = extents
	r.bases = bases
	r.strides = layout.ComputeStrides(nil, extents, order)
	r.numElements = layout.Shape(extents).NumElements()
	r.origin = layout.OriginOffset(r.strides, r.shape, order, r.bases)
	r.directional = layout.DescendingOffset(r.strides, r.shape, order)
}

// StorageOrder returns the storage order.
func (r *Ref[T]) StorageOrder() layout.StorageOrder {
	return r.order
}

// DirectionalOffset returns the storage offset of index 0 of every
// descending dimension, with all other indices at zero.
func (r *Ref[T]) DirectionalOffset() int {
	return r.directional
}

// NumElements returns the number of elements.
func (r *Ref[T]) NumElements() int {
	return r.numElements
}

// Data returns the addressed storage in storage order.
func (r *Ref[T]) Data() []T {
	return r.data[:r.numElements]
}

// AssignData copies values into storage order and returns how many were
// copied: the smaller of len(values) and NumElements.
func (r *Ref[T]) AssignData(values []T) int {
	return copy(r.data[:r.numElements], values)
}

// Reshape reinterprets the storage with new extents under the same storage
// order and index bases. The element count must not change.
func (r *Ref[T]) Reshape(extents ...int) error {
	if len(extents) != len(r.shape) {
		return fmt.Errorf("%w: %d extents for %d dimensions", layout.ErrDimensionMismatch, len(extents), len(r.shape))
	}
	if n := layout.Shape(extents).NumElements(); n != r.numElements || layout.Shape(extents).Validate() != nil {
		return fmt.Errorf("%w: cannot reshape %v (%d elements) to %v", layout.ErrSizeMismatch, r.shape, r.numElements, extents)
	}
	copy(r.shape, extents)
	layout.ComputeStrides(r.strides, r.shape, r.order)
	r.origin = layout.OriginOffset(r.strides, r.shape, r.order, r.bases)
	r.directional = layout.DescendingOffset(r.strides, r.shape, r.order)
	return nil
}

// Reindex sets the index bases. No data moves.
func (r *Ref[T]) Reindex(bases ...int) error {
	if len(bases) != len(r.shape) {
		return fmt.Errorf("%w: %d index bases for %d dimensions", layout.ErrDimensionMismatch, len(bases), len(r.shape))
	}
	copy(r.bases, bases)
	r.origin = layout.OriginOffset(r.strides, r.shape, r.order, r.bases)
	return nil
}

// ReindexAll sets every index base to b.
func (r *Ref[T]) ReindexAll(b int) {
	for i := range r.bases {
		r.bases[i] = b
	}
	r.origin = layout.OriginOffset(r.strides, r.shape, r.order, r.bases)
}
