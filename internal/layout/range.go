package layout

import (
	"fmt"
	"math"
)

// Sentinels for unbounded endpoints. They are resolved against the
// containing dimension only when a view is generated.
const (
	fromStart = math.MinInt
	toEnd     = math.MaxInt
)

// Range is a half-open strided interval [start, finish) over one dimension.
//
// A degenerate range selects a single index and makes view generation drop
// the dimension instead of keeping it with extent 1. Ranges never validate
// their bounds; that happens when a view is generated from them.
//
// Example:
//
//	All()                  // every index of the dimension
//	Span(1, 4)             // 1, 2, 3
//	Strided(3, -1, -1)     // 3, 2, 1, 0
//	All().From(2).Below(6) // 2 <= i < 6
//	Idx(5)                 // index 5, dimension dropped
type Range struct {
	start      int
	finish     int
	stride     int
	degenerate bool
}

// All returns the unbounded range covering a whole dimension.
func All() Range {
	return Range{start: fromStart, finish: toEnd, stride: 1}
}

// Span returns [start, finish) with stride 1.
func Span(start, finish int) Range {
	return Range{start: start, finish: finish, stride: 1}
}

// Strided returns [start, finish) walked with the given stride.
// A negative stride walks from start downwards, exclusive of finish.
func Strided(start, finish, stride int) Range {
	return Range{start: start, finish: finish, stride: stride}
}

// Idx returns the degenerate range selecting index i.
func Idx(i int) Range {
	return Range{start: i, finish: i + 1, stride: 1, degenerate: true}
}

// WithStart returns a copy starting at s. The copy is never degenerate.
func (r Range) WithStart(s int) Range {
	r.start = s
	r.degenerate = false
	return r
}

// WithFinish returns a copy finishing (exclusive) at f. The copy is never degenerate.
func (r Range) WithFinish(f int) Range {
	r.finish = f
	r.degenerate = false
	return r
}

// WithStride returns a copy with stride s.
func (r Range) WithStride(s int) Range {
	r.stride = s
	return r
}

// From closes the lower end: s <= i.
func (r Range) From(s int) Range {
	return Strided(s, r.finish, r.stride)
}

// After opens the lower end: s < i.
func (r Range) After(s int) Range {
	return Strided(s+1, r.finish, r.stride)
}

// Below opens the upper end: i < f.
func (r Range) Below(f int) Range {
	return Strided(r.start, f, r.stride)
}

// Through closes the upper end: i <= f.
func (r Range) Through(f int) Range {
	return Strided(r.start, f+1, r.stride)
}

// Start returns the raw start, which may be the unbounded sentinel.
func (r Range) Start() int { return r.start }

// Finish returns the raw finish, which may be the unbounded sentinel.
func (r Range) Finish() int { return r.finish }

// Stride returns the stride.
func (r Range) Stride() int { return r.stride }

// IsDegenerate reports whether the range selects a single index and drops its dimension.
func (r Range) IsDegenerate() bool { return r.degenerate }

// Unbounded reports whether either endpoint still has to be resolved.
func (r Range) Unbounded() bool {
	return r.start == fromStart || r.finish == toEnd
}

// StartOr returns the start, or low if the start is unbounded.
func (r Range) StartOr(low int) int {
	if r.start == fromStart {
		return low
	}
	return r.start
}

// FinishOr returns the finish, or high if the finish is unbounded.
func (r Range) FinishOr(high int) int {
	if r.finish == toEnd {
		return high
	}
	return r.finish
}

// Size returns (finish-start)/stride, or extent when either end is unbounded.
func (r Range) Size(extent int) int {
	if r.Unbounded() {
		return extent
	}
	return (r.finish - r.start) / r.stride
}

// Nth returns the i-th index visited by the range.
func (r Range) Nth(i int) int {
	return r.start + i*r.stride
}

// Add shifts both endpoints up by n. The result is not degenerate.
func (r Range) Add(n int) Range {
	return Strided(r.start+n, r.finish+n, r.stride)
}

// Sub shifts both endpoints down by n. The result is not degenerate.
func (r Range) Sub(n int) Range {
	return Strided(r.start-n, r.finish-n, r.stride)
}

// String formats the range like a slice expression.
func (r Range) String() string {
	if r.degenerate {
		return fmt.Sprintf("%d", r.start)
	}
	s, f := "", ""
	if r.start != fromStart {
		s = fmt.Sprintf("%d", r.start)
	}
	if r.finish != toEnd {
		f = fmt.Sprintf("%d", r.finish)
	}
	if r.stride == 1 {
		return s + ":" + f
	}
	return fmt.Sprintf("%s:%s:%d", s, f, r.stride)
}

// span returns the number of indices the resolved interval [start, finish)
// visits with the given stride. Intervals running against the stride are empty.
func span(start, finish, stride int) int {
	if (finish-start)/stride < 0 {
		return 0
	}
	shrinkage := 1
	if stride < 0 {
		shrinkage = -1
	}
	return (finish - start + stride - shrinkage) / stride
}

// IndexSpec is an ordered mixed index/range specification, one entry per
// source dimension. Degenerate entries drop their dimension.
type IndexSpec []Range

// Indices builds an IndexSpec.
func Indices(r ...Range) IndexSpec {
	return IndexSpec(r)
}

// Dims returns the dimensionality of the view the spec produces.
func (s IndexSpec) Dims() int {
	n := 0
	for _, r := range s {
		if !r.degenerate {
			n++
		}
	}
	return n
}

// Full returns a spec that selects every index of an n-dimensional array.
func Full(n int) IndexSpec {
	spec := make(IndexSpec, n)
	for i := range spec {
		spec[i] = All()
	}
	return spec
}

// Point returns the all-degenerate spec selecting a single element.
func Point(indices ...int) IndexSpec {
	spec := make(IndexSpec, len(indices))
	for i, idx := range indices {
		spec[i] = Idx(idx)
	}
	return spec
}
