package multiarray

import (
	"cmp"
	"iter"
	"slices"
)

// Equal reports whether a and b have the same shape and the same elements
// in iteration order. Index bases and storage order are not compared.
func Equal[T comparable](a, b ArrayLike[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a ArrayLike[T], b ArrayLike[U], eq func(T, U) bool) bool {
	if !slices.Equal(a.Shape(), b.Shape()) {
		return false
	}
	next, stop := iter.Pull(b.Values())
	defer stop()
	for x := range a.Values() {
		y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically along dimension 0, comparing
// sub-arrays recursively and elements at the innermost dimension. A proper
// prefix orders first. Arrays of different dimensionality order by
// dimensionality. For equal shapes this is iteration-order comparison.
func Compare[T cmp.Ordered](a, b ArrayLike[T]) int {
	if a.NumDims() != b.NumDims() {
		return cmp.Compare(a.NumDims(), b.NumDims())
	}
	if a.NumDims() == 0 {
		return cmp.Compare(a.At(), b.At())
	}
	ia := make([]int, a.NumDims())
	ib := make([]int, b.NumDims())
	return compareDim(a, b, 0, ia, ib)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b ArrayLike[T]) bool {
	return Compare(a, b) < 0
}

func compareDim[T cmp.Ordered](a, b ArrayLike[T], d int, ia, ib []int) int {
	na, nb := a.Shape()[d], b.Shape()[d]
	last := d == len(ia)-1
	for k := range min(na, nb) {
		ia[d] = a.IndexBases()[d] + k
		ib[d] = b.IndexBases()[d] + k
		var c int
		if last {
			c = cmp.Compare(a.At(ia...), b.At(ib...))
		} else {
			c = compareDim(a, b, d+1, ia, ib)
		}
		if c != 0 {
			return c
		}
	}
	return cmp.Compare(na, nb)
}
