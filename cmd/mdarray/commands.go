package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/multiarray/multiarray"
)

// layoutFlags holds the flags shared by layout and view.
type layoutFlags struct {
	shape      string
	order      string
	descending string
	bases      string
	config     string
	slice      string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.shape, "shape", "", "Comma-separated extents, e.g. 3,3,3")
	cmd.Flags().StringVar(&f.order, "order", "", "Storage order: 'c', 'fortran' or a rank permutation such as 2,0,1")
	cmd.Flags().StringVar(&f.descending, "descending", "", "Comma-separated dimensions stored in descending order")
	cmd.Flags().StringVar(&f.bases, "bases", "", "Comma-separated index bases, one per dimension")
	cmd.Flags().StringVar(&f.config, "config", "", "YAML file describing the layout; flags override its fields")
}

// resolve merges the config file, if any, with the flags set on cmd.
func (f *layoutFlags) resolve(cmd *cobra.Command, logger *slog.Logger) (description, error) {
	var cfg layoutConfig
	if f.config != "" {
		c, err := loadConfig(f.config)
		if err != nil {
			return description{}, err
		}
		logger.Debug("loaded layout config", "path", f.config)
		cfg = c
	}

	var err error
	flags := cmd.Flags()
	if flags.Changed("shape") {
		if cfg.Shape, err = parseInts(f.shape); err != nil {
			return description{}, fmt.Errorf("--shape: %w", err)
		}
	}
	if flags.Changed("order") {
		cfg.Order = f.order
	}
	if flags.Changed("descending") {
		if cfg.Descending, err = parseInts(f.descending); err != nil {
			return description{}, fmt.Errorf("--descending: %w", err)
		}
	}
	if flags.Changed("bases") {
		if cfg.Bases, err = parseInts(f.bases); err != nil {
			return description{}, fmt.Errorf("--bases: %w", err)
		}
	}
	if flags.Changed("slice") {
		cfg.Slice = f.slice
	}
	return cfg.describe()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "mdarray",
		Short:        "Inspect N-dimensional array layouts and views",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log array lifecycle events to stderr")

	root.AddCommand(newLayoutCmd(&verbose))
	root.AddCommand(newViewCmd(&verbose))
	root.AddCommand(newVersionCmd())
	return root
}

func newLayoutCmd(verbose *bool) *cobra.Command {
	var f layoutFlags
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the strides and offsets of an array layout",
		Example: `  mdarray layout --shape 3,3,3
  mdarray layout --shape 3,4 --order fortran --bases 1,1
  mdarray layout --shape 2,3,4 --order 2,0,1 --descending 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), *verbose)
			d, err := f.resolve(cmd, logger)
			if err != nil {
				return err
			}
			a, err := d.build(logger)
			if err != nil {
				return err
			}
			defer a.Release()

			printLayout(cmd.OutOrStdout(), a)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newViewCmd(verbose *bool) *cobra.Command {
	var f layoutFlags
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Fill an array with 0..n-1 and print a slice of it",
		Example: `  mdarray view --shape 8,8 --slice 2:-2,2:-2
  mdarray view --shape 4,4,4 --slice 1,::2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), *verbose)
			d, err := f.resolve(cmd, logger)
			if err != nil {
				return err
			}
			a, err := d.build(logger)
			if err != nil {
				return err
			}
			defer a.Release()

			values := make([]int, a.NumElements())
			for i := range values {
				values[i] = i
			}
			if err := a.SetFlat(values); err != nil {
				return err
			}

			spec, err := multiarray.ParseIndexSpec(d.slice, a.Shape(), a.IndexBases())
			if err != nil {
				return fmt.Errorf("--slice %q: %w", d.slice, err)
			}
			v, err := a.Slice(spec...)
			if err != nil {
				return fmt.Errorf("--slice %q: %w", d.slice, err)
			}
			logger.Debug("generated view", "slice", d.slice, "shape", v.Shape(), "strides", v.Strides())

			printView(cmd.OutOrStdout(), v)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.slice, "slice", "", "Comma-separated slice expressions, e.g. 1:,::2,-1")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mdarray %s\n", version)
		},
	}
}
