package layout

import "fmt"

// ComputeStrides fills dst with the strides of shape laid out in the given
// storage order and returns it; dst is allocated when nil.
//
// Physical ranks are walked fastest first with a running product starting
// at 1. A descending dimension gets the negated stride.
//
// Example:
//
//	ComputeStrides(nil, []int{3, 3, 3}, RowMajor(3))    // [9 3 1]
//	ComputeStrides(nil, []int{3, 3, 3}, ColumnMajor(3)) // [1 3 9]
func ComputeStrides(dst, shape []int, order StorageOrder) []int {
	if dst == nil {
		dst = make([]int, len(shape))
	}
	acc := 1
	for rank := range len(shape) {
		d := order.Ordering(rank)
		if order.Ascending(d) {
			dst[d] = acc
		} else {
			dst[d] = -acc
		}
		acc *= shape[d]
	}
	return dst
}

// IndexingOffset folds the index bases into a single offset so element
// access can use raw logical indices.
func IndexingOffset(strides, bases []int) int {
	offset := 0
	for d := range strides {
		offset -= strides[d] * bases[d]
	}
	return offset
}

// DescendingOffset is the offset from the start of storage to index 0 of
// every descending dimension, i.e. the sum of (extent-1)*|stride| over them.
func DescendingOffset(strides, shape []int, order StorageOrder) int {
	offset := 0
	for d := range strides {
		if !order.Ascending(d) && shape[d] > 0 {
			offset -= (shape[d] - 1) * strides[d]
		}
	}
	return offset
}

// OriginOffset returns the storage offset that element access adds to
// sum(index[d]*stride[d]).
func OriginOffset(strides, shape []int, order StorageOrder, bases []int) int {
	return DescendingOffset(strides, shape, order) + IndexingOffset(strides, bases)
}

// Offset returns origin + sum(indices[d]*strides[d]). It performs no bounds
// checking; indices outside the valid window give an unspecified offset.
func Offset(origin int, indices, strides []int) int {
	for d, i := range indices {
		origin += i * strides[d]
	}
	return origin
}

// CheckIndex verifies that indices addresses an element of an array with
// the given shape and index bases.
func CheckIndex(indices, shape, bases []int) error {
	if len(indices) != len(shape) {
		return dimensionMismatch("index tuple", len(shape), len(indices))
	}
	for d, i := range indices {
		if err := checkDim(d, i, shape, bases); err != nil {
			return err
		}
	}
	return nil
}

func checkDim(d, i int, shape, bases []int) error {
	if i < bases[d] || i >= bases[d]+shape[d] {
		return &IndexError{Dim: d, Index: i, Low: bases[d], High: bases[d] + shape[d]}
	}
	return nil
}

// Geometry is the layout of a generated view relative to its source.
type Geometry struct {
	Offset  int   // Added to the source origin to get the view's first element
	Extents []int // One entry per kept dimension
	Strides []int // One entry per kept dimension
}

// Dims returns the dimensionality of the view.
func (g Geometry) Dims() int {
	return len(g.Extents)
}

// GenerateView derives the geometry of the view selected by spec from a
// source with the given shape, strides and index bases.
//
// Unbounded range ends resolve against [bases[d], bases[d]+shape[d]).
// Degenerate entries only move the offset; other entries keep their
// dimension with the range's length and stride[d]*range.stride. Output
// dimensions follow spec order. No validation is done: spec must have one
// entry per dimension, no zero strides and only in-window indices.
func GenerateView(shape, strides, bases []int, spec IndexSpec) Geometry {
	dims := spec.Dims()
	g := Geometry{
		Extents: make([]int, 0, dims),
		Strides: make([]int, 0, dims),
	}
	for d, r := range spec {
		start := r.StartOr(bases[d])
		g.Offset += start * strides[d]
		if r.degenerate {
			continue
		}
		finish := r.FinishOr(bases[d] + shape[d])
		g.Extents = append(g.Extents, span(start, finish, r.stride))
		g.Strides = append(g.Strides, strides[d]*r.stride)
	}
	return g
}

// GenerateViewChecked is GenerateView with the contract checked: spec
// length, non-zero strides and every visited index inside its window.
// An interval running against its stride is an empty view, not an error.
func GenerateViewChecked(shape, strides, bases []int, spec IndexSpec) (Geometry, error) {
	if len(spec) != len(shape) {
		return Geometry{}, dimensionMismatch("index spec", len(shape), len(spec))
	}
	for d, r := range spec {
		if r.degenerate {
			if err := checkDim(d, r.start, shape, bases); err != nil {
				return Geometry{}, err
			}
			continue
		}
		if r.stride == 0 {
			return Geometry{}, fmt.Errorf("%w: zero stride in range for dimension %d", ErrNonPositiveStride, d)
		}
		start := r.StartOr(bases[d])
		finish := r.FinishOr(bases[d] + shape[d])
		n := span(start, finish, r.stride)
		if n == 0 {
			continue
		}
		if err := checkDim(d, start, shape, bases); err != nil {
			return Geometry{}, err
		}
		if err := checkDim(d, start+(n-1)*r.stride, shape, bases); err != nil {
			return Geometry{}, err
		}
	}
	return GenerateView(shape, strides, bases, spec), nil
}
