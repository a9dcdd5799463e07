package multiarray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/multiarray/internal/layout"
)

func TestGetPut(t *testing.T) {
	a := sequential(t, layout.Shape{2, 3}, WithIndexBases(1, 1))

	v, err := a.Get(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	require.NoError(t, a.Put(-1, 1, 1))
	assert.Equal(t, -1, a.At(1, 1))

	tests := []struct {
		name    string
		indices []int
		want    *layout.IndexError
	}{
		{"below base", []int{0, 1}, &layout.IndexError{Dim: 0, Index: 0, Low: 1, High: 3}},
		{"past end", []int{1, 4}, &layout.IndexError{Dim: 1, Index: 4, Low: 1, High: 4}},
		{"first bad dimension wins", []int{5, 5}, &layout.IndexError{Dim: 0, Index: 5, Low: 1, High: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Get(tt.indices...)
			require.ErrorIs(t, err, layout.ErrIndexOutOfRange)
			var ie *layout.IndexError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.want, ie)

			before := a.Flatten()
			assert.ErrorIs(t, a.Put(99, tt.indices...), layout.ErrIndexOutOfRange)
			assert.Equal(t, before, a.Flatten())
		})
	}

	_, err = a.Get(1)
	assert.ErrorIs(t, err, layout.ErrDimensionMismatch)
	assert.ErrorIs(t, a.Put(0, 1, 1, 1), layout.ErrDimensionMismatch)
}

func TestChild(t *testing.T) {
	a := sequential(t, layout.Shape{2, 3})

	row, err := a.Child(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, row.Flatten())

	_, err = a.Child(2)
	assert.ErrorIs(t, err, layout.ErrIndexOutOfRange)
	_, err = a.Child(-1)
	assert.ErrorIs(t, err, layout.ErrIndexOutOfRange)

	_, err = row.Child(3)
	assert.ErrorIs(t, err, layout.ErrIndexOutOfRange)

	scalar, err := row.Child(2)
	require.NoError(t, err)
	assert.Equal(t, 5, scalar.Value())

	_, err = scalar.Child(0)
	assert.ErrorIs(t, err, layout.ErrDimensionMismatch)
}

func TestSliceMatchesView(t *testing.T) {
	a := sequential(t, layout.Shape{2, 3, 4})
	spec := layout.Indices(layout.Span(0, 2), layout.Idx(1), layout.Strided(0, 4, 2))

	s, err := a.Slice(spec...)
	require.NoError(t, err)
	v := a.View(spec...)
	assert.Equal(t, v.Shape(), s.Shape())
	assert.Equal(t, v.Strides(), s.Strides())
	assert.True(t, Equal[int](v, s))

	rev, err := a.Index(0).Index(0).Slice(layout.Strided(3, -1, -1))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, rev.Flatten())

	empty, err := a.Slice(layout.Span(1, 1), layout.All(), layout.All())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4}, empty.Shape())

	against, err := a.Slice(layout.All(), layout.Span(2, 0), layout.All())
	require.NoError(t, err, "an interval running against its stride is empty")
	assert.Equal(t, 0, against.Shape()[1])
}

func TestSliceErrors(t *testing.T) {
	a := sequential(t, layout.Shape{2, 3, 4}, WithIndexBases(0, 1, 0))

	tests := []struct {
		name string
		spec []layout.Range
		err  error
		dim  int
	}{
		{"too few ranges", []layout.Range{layout.All(), layout.All()}, layout.ErrDimensionMismatch, -1},
		{"too many ranges", []layout.Range{layout.All(), layout.All(), layout.All(), layout.All()}, layout.ErrDimensionMismatch, -1},
		{"zero stride", []layout.Range{layout.All(), layout.All(), layout.Strided(0, 4, 0)}, layout.ErrNonPositiveStride, -1},
		{"index below base", []layout.Range{layout.All(), layout.Idx(0), layout.All()}, layout.ErrIndexOutOfRange, 1},
		{"index past end", []layout.Range{layout.Idx(2), layout.All(), layout.All()}, layout.ErrIndexOutOfRange, 0},
		{"range past end", []layout.Range{layout.All(), layout.All(), layout.Span(0, 5)}, layout.ErrIndexOutOfRange, 2},
		{"range below base", []layout.Range{layout.All(), layout.Span(0, 2), layout.All()}, layout.ErrIndexOutOfRange, 1},
		{"reversed past end", []layout.Range{layout.All(), layout.All(), layout.Strided(4, -1, -1)}, layout.ErrIndexOutOfRange, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Slice(tt.spec...)
			require.ErrorIs(t, err, tt.err)
			if tt.dim >= 0 {
				var ie *layout.IndexError
				require.True(t, errors.As(err, &ie))
				assert.Equal(t, tt.dim, ie.Dim)
			}
		})
	}
}

func TestSetFlatSizeMismatch(t *testing.T) {
	a := sequential(t, layout.Shape{2, 2})

	err := a.SetFlat([]int{9, 9, 9})
	require.ErrorIs(t, err, layout.ErrSizeMismatch)
	assert.Equal(t, []int{0, 1, 2, 3}, a.Flatten(), "nothing written on mismatch")
}

func TestAssignShapeMismatch(t *testing.T) {
	a := sequential(t, layout.Shape{2, 3})

	assert.ErrorIs(t, a.Assign(sequential(t, layout.Shape{3, 2})), layout.ErrDimensionMismatch)
	assert.ErrorIs(t, a.Assign(sequential(t, layout.Shape{6})), layout.ErrDimensionMismatch)
	assert.ErrorIs(t, a.Index(0).Assign(sequential(t, layout.Shape{2})), layout.ErrDimensionMismatch)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, a.Flatten())

	based := sequential(t, layout.Shape{2, 3}, WithIndexBases(7, 7))
	based.Fill(1)
	require.NoError(t, a.Assign(based), "index bases may differ")
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, a.Flatten())
}

func TestReshapeErrors(t *testing.T) {
	a := sequential(t, layout.Shape{2, 3})

	assert.ErrorIs(t, a.Reshape(5, 5), layout.ErrSizeMismatch)
	assert.ErrorIs(t, a.Reshape(-2, -3), layout.ErrSizeMismatch)
	assert.ErrorIs(t, a.Reshape(6), layout.ErrDimensionMismatch)
	assert.Equal(t, []int{2, 3}, a.Shape())

	assert.ErrorIs(t, a.Reindex(1), layout.ErrDimensionMismatch)
	v := a.View(layout.All(), layout.All())
	assert.ErrorIs(t, v.Reindex(1, 2, 3), layout.ErrDimensionMismatch)
}

func TestConstructionErrors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		err  error
	}{
		{"order dimensionality", []Option{WithStorageOrder(layout.RowMajor(3))}, layout.ErrDimensionMismatch},
		{"order not a permutation", []Option{WithStorageOrder(layout.NewStorageOrder([]int{0, 0}, []bool{true, true}))}, layout.ErrInvalidStorageOrder},
		{"index base count", []Option{WithIndexBases(1)}, layout.ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[int](layout.Shape{2, 2}, tt.opts...)
			assert.ErrorIs(t, err, tt.err)

			_, err = NewRef(make([]int, 4), layout.Shape{2, 2}, tt.opts...)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := New[int](layout.Shape{2}, WithAllocator[float64](HeapAllocator[float64]{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot allocate")

	_, err = NewRef(make([]int, 5), layout.Shape{2, 3})
	assert.ErrorIs(t, err, layout.ErrSizeMismatch)
}

func TestReleasedArray(t *testing.T) {
	a := sequential(t, layout.Shape{2, 2})
	b := sequential(t, layout.Shape{2, 2})
	a.Release()

	assert.ErrorIs(t, a.Resize(layout.Shape{3, 3}), layout.ErrReleased)
	assert.ErrorIs(t, a.AssignArray(b), layout.ErrReleased)
	assert.True(t, a.Released())
}
