package layout

import "fmt"

// ShapeSpec describes the extents and index bases an array is built with.
type ShapeSpec interface {
	// Dims returns the number of dimensions.
	Dims() int
	// Extents returns one extent per dimension.
	Extents() []int
	// IndexBases returns the lowest valid index per dimension.
	IndexBases() []int
}

// Shape is an extent list: the dimensions of an array, outermost first.
// Index bases of a Shape are all zero.
type Shape []int

// Dims returns the number of dimensions.
func (s Shape) Dims() int {
	return len(s)
}

// Extents returns the shape itself.
func (s Shape) Extents() []int {
	return s
}

// IndexBases returns zero for every dimension.
func (s Shape) IndexBases() []int {
	return make([]int, len(s))
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1 // A zero-dimensional shape holds one element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no extent is negative. Zero extents are valid.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: extent %d at dimension %d is negative", ErrSizeMismatch, dim, i)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Ranges is a range list: each range gives a dimension's index base (its
// start) and extent (finish - start). Strides are ignored.
//
// Example:
//
//	Ranges{Span(1, 4), Span(-2, 2)} // extents [3 4], index bases [1 -2]
type Ranges []Range

// Dims returns the number of dimensions.
func (r Ranges) Dims() int {
	return len(r)
}

// Extents returns finish - start for every range, clamped at zero.
func (r Ranges) Extents() []int {
	extents := make([]int, len(r))
	for i, rg := range r {
		extents[i] = max(rg.FinishOr(rg.StartOr(0))-rg.StartOr(0), 0)
	}
	return extents
}

// IndexBases returns the start of every range; unbounded starts become 0.
func (r Ranges) IndexBases() []int {
	bases := make([]int, len(r))
	for i, rg := range r {
		bases[i] = rg.StartOr(0)
	}
	return bases
}

// MinShape returns the element-wise minimum of two equal-length extent lists.
func MinShape(a, b []int) Shape {
	out := make(Shape, len(a))
	for i := range a {
		out[i] = min(a[i], b[i])
	}
	return out
}
