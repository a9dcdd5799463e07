package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/multiarray/multiarray"
)

func printLayout(w io.Writer, a *multiarray.Array[int]) {
	field := func(label string, v any) {
		fmt.Fprintf(w, "%-13s%v\n", label+":", v)
	}
	field("shape", a.Shape())
	field("order", a.StorageOrder())
	field("strides", a.Strides())
	field("index bases", a.IndexBases())
	field("origin", a.Origin())
	field("directional", a.DirectionalOffset())
	field("elements", a.NumElements())
}

// block is what printView needs from a view or sub-array.
type block interface {
	NumDims() int
	Shape() []int
	IndexBases() []int
	At(indices ...int) int
	Flatten() []int
	Index(i int) multiarray.SubArray[int]
}

// printView writes v as a single line for 1-D, a matrix for 2-D and
// a sequence of labelled matrices otherwise.
func printView(w io.Writer, v multiarray.View[int]) {
	fmt.Fprintf(w, "shape: %v\n", v.Shape())
	width := 1
	for _, x := range v.Flatten() {
		width = max(width, len(strconv.Itoa(x)))
	}
	writeBlock(w, v, nil, width)
}

func writeBlock(w io.Writer, b block, path []int, width int) {
	switch b.NumDims() {
	case 0:
		fmt.Fprintf(w, "%*d\n", width, b.At())
	case 1:
		writeRow(w, b.Flatten(), width)
	case 2:
		for i := range b.Shape()[0] {
			writeRow(w, b.Index(b.IndexBases()[0]+i).Flatten(), width)
		}
	default:
		for i := range b.Shape()[0] {
			sub := append(path[:len(path):len(path)], i)
			fmt.Fprintln(w, blockHeader(sub, b.NumDims()-1))
			writeBlock(w, b.Index(b.IndexBases()[0]+i), sub, width)
		}
	}
}

func writeRow(w io.Writer, row []int, width int) {
	cells := make([]string, len(row))
	for i, x := range row {
		cells[i] = fmt.Sprintf("%*d", width, x)
	}
	fmt.Fprintln(w, strings.Join(cells, " "))
}

// blockHeader formats a prefix of indices followed by rest full slices,
// e.g. "[1, 0, :, :]".
func blockHeader(prefix []int, rest int) string {
	parts := make([]string, 0, len(prefix)+rest)
	for _, i := range prefix {
		parts = append(parts, strconv.Itoa(i))
	}
	for range rest {
		parts = append(parts, ":")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
