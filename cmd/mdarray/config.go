package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/multiarray/multiarray"
)

// layoutConfig is the YAML form of the layout flags:
//
//	shape: [3, 4]
//	order: fortran
//	descending: [1]
//	bases: [1, 1]
//	slice: "1:, ::2"
type layoutConfig struct {
	Shape      []int  `yaml:"shape"`
	Order      string `yaml:"order"`
	Descending []int  `yaml:"descending"`
	Bases      []int  `yaml:"bases"`
	Slice      string `yaml:"slice"`
}

func loadConfig(path string) (layoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layoutConfig{}, fmt.Errorf("failed to read layout config: %w", err)
	}
	var cfg layoutConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return layoutConfig{}, fmt.Errorf("failed to parse layout config %s: %w", path, err)
	}
	return cfg, nil
}

// description is a validated layout ready to build.
type description struct {
	shape multiarray.Shape
	order multiarray.StorageOrder
	bases []int
	slice string
}

func (c layoutConfig) describe() (description, error) {
	if len(c.Shape) == 0 {
		return description{}, errors.New("a shape is required (--shape or 'shape' in --config)")
	}
	shape := multiarray.Shape(c.Shape)
	if err := shape.Validate(); err != nil {
		return description{}, err
	}

	order, err := parseOrder(c.Order, len(shape))
	if err != nil {
		return description{}, err
	}
	for _, d := range c.Descending {
		if d < 0 || d >= len(shape) {
			return description{}, fmt.Errorf("%w: descending dimension %d for %d dimensions", multiarray.ErrDimensionMismatch, d, len(shape))
		}
	}
	order = order.Descending(c.Descending...)

	return description{shape: shape, order: order, bases: c.Bases, slice: c.Slice}, nil
}

func (d description) build(logger *slog.Logger) (*multiarray.Array[int], error) {
	opts := []multiarray.Option{
		multiarray.WithStorageOrder(d.order),
		multiarray.WithLogger(logger),
	}
	if d.bases != nil {
		opts = append(opts, multiarray.WithIndexBases(d.bases...))
	}
	return multiarray.New[int](d.shape, opts...)
}

// parseOrder accepts "c", "fortran" or a comma-separated rank permutation
// in which the first entry is the dimension that varies fastest.
func parseOrder(s string, n int) (multiarray.StorageOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "c":
		return multiarray.RowMajor(n), nil
	case "fortran", "f":
		return multiarray.ColumnMajor(n), nil
	}

	ordering, err := parseInts(s)
	if err != nil {
		return multiarray.StorageOrder{}, fmt.Errorf("--order: %w", err)
	}
	if len(ordering) != n {
		return multiarray.StorageOrder{}, fmt.Errorf("%w: order %q for %d dimensions", multiarray.ErrDimensionMismatch, s, n)
	}
	ascending := make([]bool, n)
	for i := range ascending {
		ascending[i] = true
	}
	order := multiarray.NewStorageOrder(ordering, ascending)
	if err := order.Validate(); err != nil {
		return multiarray.StorageOrder{}, err
	}
	return order, nil
}

func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid integer list %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
