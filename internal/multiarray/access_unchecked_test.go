package multiarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/multiarray/internal/layout"
)

func TestAtSetPtr(t *testing.T) {
	a := sequential(t, layout.Shape{2, 3, 4})

	assert.Equal(t, 0, a.At(0, 0, 0))
	assert.Equal(t, 23, a.At(1, 2, 3))
	assert.Equal(t, 13, a.At(1, 0, 1))

	a.Set(-5, 1, 0, 1)
	assert.Equal(t, -5, a.At(1, 0, 1))

	*a.Ptr(0, 2, 2) = 77
	assert.Equal(t, 77, a.Data()[10])
	assert.Equal(t, 10, a.Offset(0, 2, 2))
}

func TestIndexSharesStorage(t *testing.T) {
	a := sequential(t, layout.Shape{3, 4})

	row := a.Index(1)
	assert.Equal(t, []int{4}, row.Shape())
	assert.Equal(t, []int{4, 5, 6, 7}, row.Flatten())
	assert.Equal(t, 6, row.Index(2).Value())

	row.Set(40, 0)
	a.Index(2).Index(3).SetValue(110)
	assert.Equal(t, 40, a.At(1, 0))
	assert.Equal(t, 110, a.At(2, 3))
}

func TestIndexHonoursIndexBases(t *testing.T) {
	a := sequential(t, layout.Shape{2, 3}, WithIndexBases(1, -1))

	assert.Equal(t, 0, a.At(1, -1))
	assert.Equal(t, 5, a.At(2, 1))
	assert.Equal(t, []int{3, 4, 5}, a.Index(2).Flatten())
	assert.Equal(t, []int{-1}, a.Index(2).IndexBases())
	assert.Equal(t, 4, a.Index(2).At(0))
}

func TestViewDropsDegenerateDimensions(t *testing.T) {
	a := sequential(t, layout.Shape{2, 3, 4})
	v := a.View(layout.Span(0, 2), layout.Idx(1), layout.Strided(0, 4, 2))

	require.Equal(t, []int{2, 2}, v.Shape())
	assert.Equal(t, []int{12, 2}, v.Strides())
	assert.Equal(t, []int{0, 0}, v.IndexBases())
	for i := range 2 {
		for j := range 2 {
			assert.Equal(t, a.At(i, 1, j*2), v.At(i, j))
			assert.Equal(t, a.Index(i).Index(1).Index(j*2).Value(), v.Index(i).Index(j).Value())
		}
	}
	assert.Equal(t, []int{4, 6, 16, 18}, v.Flatten())
}

func TestViewWritesReachSource(t *testing.T) {
	a := sequential(t, layout.Shape{3, 4})

	col := a.View(layout.All(), layout.Idx(0))
	col.Fill(-1)
	assert.Equal(t, []int{-1, 1, 2, 3, -1, 5, 6, 7, -1, 9, 10, 11}, a.Flatten())

	a.View(layout.Idx(1), layout.Span(1, 3)).Set(42, 1)
	assert.Equal(t, 42, a.At(1, 2))
}

func TestReversedView(t *testing.T) {
	buf := make([]int, 4)
	r, err := NewRef(buf, layout.Shape{4})
	require.NoError(t, err)
	assert.Equal(t, 4, r.AssignData([]int{1, 2, 3, 4}))

	rev := r.View(layout.Strided(3, -1, -1))
	assert.Equal(t, []int{4}, rev.Shape())
	assert.Equal(t, []int{-1}, rev.Strides())
	assert.Equal(t, []int{4, 3, 2, 1}, rev.Flatten())

	every := r.View(layout.Strided(3, -1, -2))
	assert.Equal(t, 2, every.Size())
	assert.Equal(t, []int{4, 2}, every.Flatten())
}

func TestViewOfView(t *testing.T) {
	a := sequential(t, layout.Shape{4, 4})
	even := a.View(layout.Strided(0, 4, 2), layout.All())
	require.Equal(t, []int{2, 4}, even.Shape())

	w := even.View(layout.All(), layout.Strided(3, -1, -1))
	assert.Equal(t, []int{2, 4}, w.Shape())
	assert.Equal(t, []int{3, 2, 1, 0, 11, 10, 9, 8}, w.Flatten())
	assert.Equal(t, 11, w.At(1, 0))
}

func TestViewOverIndexBases(t *testing.T) {
	a := sequential(t, layout.Shape{3, 3}, WithIndexBases(1, 1))

	v := a.View(layout.Span(2, 4), layout.All())
	assert.Equal(t, []int{2, 3}, v.Shape())
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8}, v.Flatten())

	unbounded := a.View(layout.All().From(2), layout.Idx(3))
	assert.Equal(t, []int{5, 8}, unbounded.Flatten())
}

func TestViewReindex(t *testing.T) {
	a := sequential(t, layout.Shape{3, 3})
	v := a.View(layout.Span(1, 3), layout.Span(1, 3))

	require.NoError(t, v.Reindex(1, 1))
	assert.Equal(t, []int{1, 1}, v.IndexBases())
	assert.Equal(t, 4, v.At(1, 1))
	assert.Equal(t, 8, v.At(2, 2))
	assert.Equal(t, []int{4, 5, 7, 8}, v.Flatten())

	v.ReindexAll(-1)
	assert.Equal(t, 4, v.At(-1, -1))
}

func TestEmptyView(t *testing.T) {
	a := sequential(t, layout.Shape{3, 4})

	v := a.View(layout.Span(2, 2), layout.All())
	assert.Equal(t, []int{0, 4}, v.Shape())
	assert.Equal(t, 0, v.NumElements())
	assert.True(t, v.Empty())
	assert.Empty(t, v.Flatten())

	backwards := a.View(layout.Span(3, 1), layout.All())
	assert.Equal(t, 0, backwards.Size())
}

func TestSliceExpressionView(t *testing.T) {
	a := sequential(t, layout.Shape{8, 8})

	spec, err := layout.ParseIndexSpec("2:-2,2:-2", a.Shape(), a.IndexBases())
	require.NoError(t, err)

	v := a.View(spec...)
	assert.Equal(t, []int{4, 4}, v.Shape())
	assert.Equal(t, []int{18, 19, 20, 21}, v.Index(0).Flatten())
	assert.Equal(t, []int{42, 43, 44, 45}, v.Index(3).Flatten())
}

func TestPointViewMatchesElement(t *testing.T) {
	orders := map[string][]Option{
		"c":          nil,
		"fortran":    {WithCanonicalOrder(layout.FortranStorageOrder)},
		"based":      {WithIndexBases(1, -1, 2)},
		"descending": {WithStorageOrder(layout.RowMajor(3).Descending(1))},
	}

	for name, opts := range orders {
		t.Run(name, func(t *testing.T) {
			a := sequential(t, layout.Shape{2, 3, 4}, opts...)
			lo := a.IndexBases()
			for i := lo[0]; i < lo[0]+2; i++ {
				for j := lo[1]; j < lo[1]+3; j++ {
					for k := lo[2]; k < lo[2]+4; k++ {
						p := a.View(layout.Point(i, j, k)...)
						assert.Equal(t, 0, p.NumDims())
						assert.Same(t, a.Ptr(i, j, k), p.Ptr())
					}
				}
			}
		})
	}
}

func TestStorageOrders(t *testing.T) {
	buf := []int{0, 1, 2, 3, 4, 5}

	c, err := NewRef(buf, layout.Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, c.Flatten())

	f, err := NewRef(buf, layout.Shape{2, 3}, WithCanonicalOrder(layout.FortranStorageOrder))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, f.Strides())
	assert.Equal(t, 1, f.At(1, 0))
	assert.Equal(t, 2, f.At(0, 1))
	assert.Equal(t, 5, f.At(1, 2))
	assert.Equal(t, []int{0, 2, 4, 1, 3, 5}, f.Flatten())

	d, err := NewRef(buf, layout.Shape{2, 3}, WithStorageOrder(layout.RowMajor(2).Descending(0)))
	require.NoError(t, err)
	assert.Equal(t, []int{-3, 1}, d.Strides())
	assert.Equal(t, 3, d.DirectionalOffset())
	assert.Equal(t, 3, d.At(0, 0))
	assert.Equal(t, 0, d.At(1, 0))
	assert.Equal(t, []int{3, 4, 5, 0, 1, 2}, d.Flatten())
}

func TestDescendingStaysInsideBuffer(t *testing.T) {
	order := layout.ColumnMajor(3).Descending(0, 2)
	a := sequential(t, layout.Shape{2, 3, 4}, WithStorageOrder(order), WithIndexBases(1, 0, -1))

	seen := make(map[int]bool)
	for off := range a.NumElements() {
		seen[off] = false
	}
	for i := 1; i < 3; i++ {
		for j := range 3 {
			for k := -1; k < 3; k++ {
				off := a.Offset(i, j, k)
				require.Contains(t, seen, off)
				assert.False(t, seen[off], "offset %d visited twice", off)
				seen[off] = true
			}
		}
	}
}

func TestSameValuesAcrossOrders(t *testing.T) {
	c := sequential(t, layout.Shape{2, 3})
	f := sequential(t, layout.Shape{2, 3}, WithCanonicalOrder(layout.FortranStorageOrder))

	assert.True(t, Equal[int](c, f))
	assert.NotEqual(t, c.Data(), f.Data())
	for i := range 2 {
		for j := range 3 {
			assert.Equal(t, c.At(i, j), f.At(i, j))
		}
	}
}

func TestRefOverExternalBuffer(t *testing.T) {
	buf := make([]int, 8)
	r, err := NewRef(buf, layout.Shape{2, 3})
	require.NoError(t, err)

	assert.Len(t, r.Data(), 6)
	r.Set(9, 1, 2)
	assert.Equal(t, 9, buf[5])

	assert.Equal(t, 6, r.AssignData([]int{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.Equal(t, 0, buf[6], "AssignData never writes past NumElements")

	require.NoError(t, r.Reshape(3, 2))
	assert.Equal(t, 6, r.At(2, 1))
	assert.Equal(t, []int{2, 1}, r.Strides())
}

func TestAssign(t *testing.T) {
	src := sequential(t, layout.Shape{2, 2})
	dst := sequential(t, layout.Shape{4, 4})

	require.NoError(t, dst.View(layout.Span(1, 3), layout.Span(2, 4)).Assign(src))
	assert.Equal(t, 0, dst.At(1, 2))
	assert.Equal(t, 1, dst.At(1, 3))
	assert.Equal(t, 2, dst.At(2, 2))
	assert.Equal(t, 3, dst.At(2, 3))
	assert.Equal(t, 0, dst.At(0, 0))

	require.NoError(t, dst.Index(0).Assign(dst.Index(3)))
	assert.Equal(t, []int{12, 13, 14, 15}, dst.Index(0).Flatten())
}

func TestSetFlatAndFlatten(t *testing.T) {
	a, err := New[string](layout.Shape{2, 2}, WithCanonicalOrder(layout.FortranStorageOrder))
	require.NoError(t, err)

	require.NoError(t, a.SetFlat([]string{"a", "b", "c", "d"}))
	assert.Equal(t, []string{"a", "b", "c", "d"}, a.Flatten())
	assert.Equal(t, []string{"a", "c", "b", "d"}, a.Data())

	var got []string
	for v := range a.Values() {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
