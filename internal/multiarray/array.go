package multiarray

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/born-ml/multiarray/internal/layout"
)

// Array is an N-dimensional array that owns its storage.
//
// Storage comes from the Allocator given at construction and is returned
// by Release. Views, sub-arrays, refs and iterators derived from an Array
// borrow its storage and are invalidated by Release and Resize.
//
// Example:
//
//	a, err := New[float64](layout.Shape{3, 4})
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
//	a.Set(1.5, 2, 3)
//	row := a.Index(2)             // SubArray of shape [4]
//	col := a.View(layout.All(), layout.Idx(3)) // View of shape [3]
type Array[T any] struct {
	Ref[T]
	alloc     Allocator[T]
	allocated int
	released  bool
	logger    *slog.Logger
}

// New allocates an array with the extents and index bases of spec and
// constructs every element through the allocator.
//
// If allocation fails the error wraps ErrAllocationFailure. If an element
// fails to construct, the elements before it are destroyed, the buffer is
// deallocated and the error is returned; no array is produced.
func New[T any](spec layout.ShapeSpec, opts ...Option) (*Array[T], error) {
	o := newOptions(opts)
	order, bases, err := o.geometry(spec)
	if err != nil {
		return nil, err
	}
	alloc, err := allocatorFor[T](o)
	if err != nil {
		return nil, err
	}

	a := &Array[T]{alloc: alloc, logger: o.logger}
	a.init(nil, clampExtents(spec.Extents()), bases, order)
	if err := a.allocateSpace(); err != nil {
		return nil, err
	}
	return a, nil
}

// FromArrayLike builds an owning copy of src with src's shape and index
// bases. Options may override the index bases and choose the storage order
// and allocator of the copy.
func FromArrayLike[T any](src ArrayLike[T], opts ...Option) (*Array[T], error) {
	opts = append([]Option{WithIndexBases(src.IndexBases()...)}, opts...)
	a, err := New[T](layout.Shape(slices.Clone(src.Shape())), opts...)
	if err != nil {
		return nil, err
	}
	if err := a.Assign(src); err != nil {
		a.Release()
		return nil, err
	}
	return a, nil
}

func (a *Array[T]) allocateSpace() error {
	n := a.numElements
	buf, err := a.alloc.Allocate(n)
	if err != nil {
		if !errors.Is(err, layout.ErrAllocationFailure) {
			err = fmt.Errorf("%w: %w", layout.ErrAllocationFailure, err)
		}
		return err
	}
	if len(buf) < n {
		a.alloc.Deallocate(buf)
		return fmt.Errorf("%w: allocator returned %d of %d elements", layout.ErrAllocationFailure, len(buf), n)
	}
	if err := constructAll(a.alloc, buf[:n]); err != nil {
		a.alloc.Deallocate(buf)
		return err
	}
	a.data = buf
	a.allocated = n
	return nil
}

// Allocator returns the allocator that owns the storage.
func (a *Array[T]) Allocator() Allocator[T] {
	return a.alloc
}

// Released reports whether Release has been called.
func (a *Array[T]) Released() bool {
	return a.released
}

// Release destroys every element in storage order and returns the buffer
// to the allocator. Calling Release again does nothing.
func (a *Array[T]) Release() {
	if a.released {
		return
	}
	destroyAll(a.alloc, a.data[:a.allocated])
	a.alloc.Deallocate(a.data)
	a.logger.Debug("released array", "shape", a.shape, "elements", a.allocated)
	a.data = nil
	a.allocated = 0
	a.released = true
}

// Clone returns a deep copy with the same shape, index bases, storage
// order and allocator.
func (a *Array[T]) Clone() (*Array[T], error) {
	return FromArrayLike[T](a,
		WithStorageOrder(a.order),
		WithAllocator(a.alloc),
		WithLogger(a.logger),
	)
}

// AssignArray copies the elements of src, whose shape must equal a's.
// When the allocators differ, a takes over src's allocator: the elements
// are copied into fresh storage from it and the old storage is released.
func (a *Array[T]) AssignArray(src *Array[T]) error {
	if a.released {
		return layout.ErrReleased
	}
	if err := sameShape(a.shape, src.shape); err != nil {
		return err
	}
	if a.alloc.Equal(src.alloc) {
		return a.Assign(src)
	}

	tmp, err := New[T](layout.Shape(slices.Clone(a.shape)),
		WithIndexBases(a.bases...),
		WithStorageOrder(a.order),
		WithAllocator(src.alloc),
		WithLogger(a.logger),
	)
	if err != nil {
		return err
	}
	if err := tmp.Assign(src); err != nil {
		tmp.Release()
		return err
	}
	a.swap(tmp)
	tmp.Release()
	a.logger.Debug("replaced allocator on assignment", "shape", a.shape)
	return nil
}

// Resize reallocates the array with the extents and index bases of spec,
// keeping the storage order and allocator. Elements whose positions (counted
// from the index bases) exist in both shapes are copied; new positions hold
// freshly constructed elements. All derived views and iterators become invalid.
func (a *Array[T]) Resize(spec layout.ShapeSpec) error {
	if a.released {
		return layout.ErrReleased
	}
	if spec.Dims() != len(a.shape) {
		return fmt.Errorf("%w: %d extents for %d dimensions", layout.ErrDimensionMismatch, spec.Dims(), len(a.shape))
	}

	tmp, err := New[T](spec,
		WithStorageOrder(a.order),
		WithAllocator(a.alloc),
		WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	overlap := layout.MinShape(tmp.shape, a.shape)
	oldSpec := make(layout.IndexSpec, len(overlap))
	newSpec := make(layout.IndexSpec, len(overlap))
	for d, n := range overlap {
		oldSpec[d] = layout.Span(a.bases[d], a.bases[d]+n)
		newSpec[d] = layout.Span(tmp.bases[d], tmp.bases[d]+n)
	}
	if err := tmp.View(newSpec...).Assign(a.View(oldSpec...)); err != nil {
		tmp.Release()
		return err
	}

	from := slices.Clone(a.shape)
	a.swap(tmp)
	tmp.Release()
	a.logger.Debug("resized array", "from", from, "to", a.shape)
	return nil
}

// Reshape reinterprets the storage with new extents; see Ref.Reshape.
func (a *Array[T]) Reshape(extents ...int) error {
	from := slices.Clone(a.shape)
	if err := a.Ref.Reshape(extents...); err != nil {
		return err
	}
	a.logger.Debug("reshaped array", "from", from, "to", a.shape)
	return nil
}

// Reindex sets the index bases; see Ref.Reindex.
func (a *Array[T]) Reindex(bases ...int) error {
	if err := a.Ref.Reindex(bases...); err != nil {
		return err
	}
	a.logger.Debug("reindexed array", "bases", a.bases)
	return nil
}

// swap exchanges storage, geometry and allocator with other.
func (a *Array[T]) swap(other *Array[T]) {
	a.Ref, other.Ref = other.Ref, a.Ref
	a.alloc, other.alloc = other.alloc, a.alloc
	a.allocated, other.allocated = other.allocated, a.allocated
}
