package multiarray

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/multiarray/internal/layout"
)

// Option configures a Ref or an Array at construction.
type Option func(*options)

type options struct {
	order     *layout.StorageOrder
	canonical layout.Canonical
	bases     []int
	alloc     any
	logger    *slog.Logger
}

// WithStorageOrder sets a general storage order. Its dimensionality must
// match the array's.
func WithStorageOrder(o layout.StorageOrder) Option {
	return func(opts *options) {
		opts.order = &o
	}
}

// WithCanonicalOrder selects the C or Fortran storage order.
func WithCanonicalOrder(c layout.Canonical) Option {
	return func(opts *options) {
		opts.order = nil
		opts.canonical = c
	}
}

// WithIndexBases overrides the index bases given by the shape spec.
func WithIndexBases(bases ...int) Option {
	return func(opts *options) {
		opts.bases = append([]int(nil), bases...)
	}
}

// WithAllocator sets the allocator of an owning Array. Refs ignore it.
func WithAllocator[T any](a Allocator[T]) Option {
	return func(opts *options) {
		opts.alloc = a
	}
}

// WithLogger sets the logger for lifecycle events of an owning Array.
func WithLogger(l *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = l
	}
}

func newOptions(opts []Option) *options {
	o := &options{canonical: layout.CStorageOrder}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// geometry resolves the storage order and index bases for an array built
// from spec.
func (o *options) geometry(spec layout.ShapeSpec) (layout.StorageOrder, []int, error) {
	n := spec.Dims()

	order := o.canonical.Order(n)
	if o.order != nil {
		order = *o.order
		if order.NumDims() != n {
			return layout.StorageOrder{}, nil, fmt.Errorf("%w: storage order has %d dimensions, shape has %d", layout.ErrDimensionMismatch, order.NumDims(), n)
		}
		if err := order.Validate(); err != nil {
			return layout.StorageOrder{}, nil, err
		}
	}

	bases := spec.IndexBases()
	if o.bases != nil {
		if len(o.bases) != n {
			return layout.StorageOrder{}, nil, fmt.Errorf("%w: %d index bases for %d dimensions", layout.ErrDimensionMismatch, len(o.bases), n)
		}
		bases = append([]int(nil), o.bases...)
	}
	return order, bases, nil
}

func allocatorFor[T any](o *options) (Allocator[T], error) {
	if o.alloc == nil {
		return HeapAllocator[T]{}, nil
	}
	a, ok := o.alloc.(Allocator[T])
	if !ok {
		var zero T
		return nil, fmt.Errorf("allocator %T cannot allocate %T", o.alloc, zero)
	}
	return a, nil
}
