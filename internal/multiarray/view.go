package multiarray

import (
	"fmt"

	"github.com/born-ml/multiarray/internal/layout"
)

// SubArray is the array obtained by fixing the leading index of another
// array. It shares the parent's storage and geometry slices.
type SubArray[T any] struct {
	base[T]
}

// View is a non-owning selection of another array's elements, possibly
// strided, reversed or of lower dimensionality. Its index bases start at
// zero and can be changed with Reindex.
type View[T any] struct {
	base[T]
	first int // storage offset of the element at the view's index bases
}

// Reindex sets the index bases of the view.
func (v *View[T]) Reindex(bases ...int) error {
	if len(bases) != len(v.shape) {
		return fmt.Errorf("%w: %d index bases for %d dimensions", layout.ErrDimensionMismatch, len(bases), len(v.shape))
	}
	v.bases = append([]int(nil), bases...)
	v.origin = v.first + layout.IndexingOffset(v.strides, v.bases)
	return nil
}

// ReindexAll sets every index base of the view to b.
func (v *View[T]) ReindexAll(b int) {
	bases := make([]int, len(v.shape))
	for i := range bases {
		bases[i] = b
	}
	v.bases = bases
	v.origin = v.first + layout.IndexingOffset(v.strides, v.bases)
}
