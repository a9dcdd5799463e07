package multiarray

import (
	"fmt"

	"github.com/born-ml/multiarray/internal/layout"
)

// Allocator supplies and reclaims element storage for an owning Array.
//
// Allocate must return a slice of at least n elements. Construct is called
// once per element, in order, before the array is usable; Destroy is called
// once per constructed element before Deallocate. Two allocators are
// interchangeable iff Equal reports true.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
	Construct(p *T) error
	Destroy(p *T)
	Equal(other Allocator[T]) bool
}

// HeapAllocator allocates from the Go heap and constructs zero values.
type HeapAllocator[T any] struct{}

// Allocate returns a new slice of n elements.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", layout.ErrAllocationFailure, n)
	}
	return make([]T, n), nil
}

// Deallocate leaves the buffer to the garbage collector.
func (HeapAllocator[T]) Deallocate([]T) {}

// Construct stores the zero value.
func (HeapAllocator[T]) Construct(p *T) error {
	var zero T
	*p = zero
	return nil
}

// Destroy clears the element so it no longer retains references.
func (HeapAllocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// Equal reports whether other is also a HeapAllocator.
func (HeapAllocator[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(HeapAllocator[T])
	return ok
}

// FillAllocator is a HeapAllocator that constructs every element as Value.
type FillAllocator[T comparable] struct {
	Value T
}

// Allocate returns a new slice of n elements.
func (FillAllocator[T]) Allocate(n int) ([]T, error) {
	return HeapAllocator[T]{}.Allocate(n)
}

// Deallocate leaves the buffer to the garbage collector.
func (FillAllocator[T]) Deallocate([]T) {}

// Construct stores the fill value.
func (a FillAllocator[T]) Construct(p *T) error {
	*p = a.Value
	return nil
}

// Destroy clears the element.
func (FillAllocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// Equal reports whether other fills with the same value.
func (a FillAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(FillAllocator[T])
	return ok && o.Value == a.Value
}

// LimitAllocator is a stateful heap allocator that refuses requests larger
// than Limit elements.
type LimitAllocator[T any] struct {
	Limit int
}

// Allocate returns a new slice of n elements, or ErrAllocationFailure when
// n exceeds the limit.
func (a LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if n > a.Limit {
		return nil, fmt.Errorf("%w: %d elements requested, limit %d", layout.ErrAllocationFailure, n, a.Limit)
	}
	return HeapAllocator[T]{}.Allocate(n)
}

// Deallocate leaves the buffer to the garbage collector.
func (LimitAllocator[T]) Deallocate([]T) {}

// Construct stores the zero value.
func (LimitAllocator[T]) Construct(p *T) error {
	return HeapAllocator[T]{}.Construct(p)
}

// Destroy clears the element.
func (LimitAllocator[T]) Destroy(p *T) {
	HeapAllocator[T]{}.Destroy(p)
}

// Equal reports whether other has the same limit.
func (a LimitAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(LimitAllocator[T])
	return ok && o.Limit == a.Limit
}

// Rebind returns an allocator of the same kind and state for element type U.
// It reports false for allocators whose state depends on T, such as FillAllocator.
func Rebind[U, T any](a Allocator[T]) (Allocator[U], bool) {
	switch a := a.(type) {
	case HeapAllocator[T]:
		return HeapAllocator[U]{}, true
	case LimitAllocator[T]:
		return LimitAllocator[U]{Limit: a.Limit}, true
	default:
		return nil, false
	}
}

// constructAll runs Construct over buf in order. If an element fails, the
// ones already constructed are destroyed in order and the error is returned.
func constructAll[T any](alloc Allocator[T], buf []T) error {
	for i := range buf {
		if err := alloc.Construct(&buf[i]); err != nil {
			for j := range i {
				alloc.Destroy(&buf[j])
			}
			return fmt.Errorf("constructing element %d: %w", i, err)
		}
	}
	return nil
}

// destroyAll runs Destroy over buf in order.
func destroyAll[T any](alloc Allocator[T], buf []T) {
	for i := range buf {
		alloc.Destroy(&buf[i])
	}
}
