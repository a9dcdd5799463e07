package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSlice translates a Python-style slice expression for a dimension of
// the given extent into a Range relative to index base 0.
//
// Accepted forms are "i", "start:stop" and "start:stop:step", with any part
// optional and negative positions counted from the end. A bare index yields
// a degenerate range. Steps must be positive, and an empty selection is an
// error rather than an empty range.
//
// Example:
//
//	ParseSlice("2:-2", 8) // Span(2, 6)
//	ParseSlice("-1", 8)   // Idx(7)
//	ParseSlice("::2", 8)  // Strided(0, 8, 2)
func ParseSlice(expr string, extent int) (Range, error) {
	expr = strings.TrimSpace(expr)
	parts := strings.Split(expr, ":")
	if len(parts) > 3 {
		return Range{}, fmt.Errorf("%w: %q has too many ':'", ErrInvalidSlice, expr)
	}

	if len(parts) == 1 {
		i, err := parseInt(parts[0], expr)
		if err != nil {
			return Range{}, err
		}
		i, err = wrapIndex(i, extent)
		if err != nil {
			return Range{}, err
		}
		return Idx(i), nil
	}

	start, stop, step := 0, extent, 1
	var err error
	if s := strings.TrimSpace(parts[0]); s != "" {
		if start, err = parseInt(s, expr); err != nil {
			return Range{}, err
		}
	}
	if s := strings.TrimSpace(parts[1]); s != "" {
		if stop, err = parseInt(s, expr); err != nil {
			return Range{}, err
		}
	}
	if len(parts) == 3 {
		if s := strings.TrimSpace(parts[2]); s != "" {
			if step, err = parseInt(s, expr); err != nil {
				return Range{}, err
			}
		}
	}

	if step < 1 {
		return Range{}, fmt.Errorf("%w: step %d in %q", ErrNonPositiveStride, step, expr)
	}
	if start, err = wrapIndex(start, extent); err != nil {
		return Range{}, err
	}
	if stop < 0 {
		stop += extent
	}
	if stop < 0 || stop > extent {
		return Range{}, fmt.Errorf("%w: stop %d for extent %d", ErrIndexOutOfRange, stop, extent)
	}
	if stop <= start {
		return Range{}, fmt.Errorf("%w: %q selects nothing", ErrInvalidSlice, expr)
	}
	return Strided(start, stop, step), nil
}

// ParseIndexSpec parses comma-separated slice expressions, one per leading
// dimension, into an IndexSpec in logical indices (index bases applied).
// Dimensions without an expression, including empty fields, are selected whole.
func ParseIndexSpec(expr string, shape, bases []int) (IndexSpec, error) {
	if strings.TrimSpace(expr) == "" {
		return Full(len(shape)), nil
	}
	fields := strings.Split(expr, ",")
	if len(fields) > len(shape) {
		return nil, dimensionMismatch("slice expression", len(shape), len(fields))
	}

	spec := Full(len(shape))
	for d, field := range fields {
		if strings.TrimSpace(field) == "" {
			continue
		}
		r, err := ParseSlice(field, shape[d])
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", d, err)
		}
		if r.degenerate {
			spec[d] = Idx(r.start + bases[d])
		} else {
			spec[d] = r.Add(bases[d])
		}
	}
	return spec, nil
}

func parseInt(s, expr string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidSlice, expr, err)
	}
	return v, nil
}

func wrapIndex(i, extent int) (int, error) {
	if i < 0 {
		i += extent
	}
	if i < 0 || i >= extent {
		return 0, fmt.Errorf("%w: %d for extent %d", ErrIndexOutOfRange, i, extent)
	}
	return i, nil
}
