// Package main provides the arrgo command line interface.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arrgo-ml/arrgo/array"
	"github.com/arrgo-ml/arrgo/backend"
	"github.com/arrgo-ml/arrgo/internal/config"
	"github.com/arrgo-ml/arrgo/internal/persist"
)

var version = "v0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "arrgo",
		Short:        "ArrGo - N-dimensional arrays for Go",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")

	rootCmd.AddCommand(
		versionCmd(),
		infoCmd(),
		statsCmd(),
		saveCmd(),
		inspectCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("arrgo %s\n", version)
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show resolved configuration and selected backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := resolve(cmd)
			if err != nil {
				return err
			}
			fmt.Printf("backend:  %s\n", b.Name())
			fmt.Printf("dtypes:   %s, %s, %s\n", array.Float64, array.Int64, array.Bool)
			fmt.Printf("verbose:  %v\n", cfg.Verbose)
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [values...]",
		Short: "Compute the reduction suite over the given numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := resolve(cmd)
			if err != nil {
				return err
			}

			vals := make([]float64, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				vals[i] = v
			}

			a, err := array.FromSlice(vals, array.Shape{len(vals)}, b)
			if err != nil {
				return err
			}

			ddof, _ := cmd.Flags().GetInt("ddof")
			q, _ := cmd.Flags().GetFloat64("percentile")

			fmt.Printf("size:    %d\n", a.Size())
			fmt.Printf("sum:     %g\n", a.Sum())
			printReduction("mean", a.Mean)
			printReduction("min", a.Min)
			printReduction("max", a.Max)
			printReduction("median", a.Median)
			printReduction("std", func() (float64, error) { return a.Std(ddof) })
			printReduction("var", func() (float64, error) { return a.Var(ddof) })
			printReduction(fmt.Sprintf("p%g", q), func() (float64, error) { return a.Percentile(q) })
			return nil
		},
	}

	cmd.Flags().Int("ddof", 0, "delta degrees of freedom for std/var")
	cmd.Flags().Float64("percentile", 50, "percentile to report")

	return cmd
}

func saveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <file.argo> [values...]",
		Short: "Save the given numbers as a named array in an .argo file",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := resolve(cmd)
			if err != nil {
				return err
			}

			vals := make([]float64, len(args)-1)
			for i, arg := range args[1:] {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				vals[i] = v
			}

			name, _ := cmd.Flags().GetString("name")
			a, err := array.FromSlice(vals, array.Shape{len(vals)}, b)
			if err != nil {
				return err
			}

			arrays := map[string]*array.RawArray{name: a.Raw()}
			meta := map[string]string{"tool": "arrgo " + version}
			if err := persist.Save(args[0], arrays, meta); err != nil {
				return err
			}
			fmt.Printf("saved %q (%d elements) to %s\n", name, a.Size(), args[0])
			return nil
		},
	}

	cmd.Flags().String("name", "data", "array name inside the file")

	return cmd
}

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file.argo>",
		Short: "List the arrays stored in an .argo file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			skip, _ := cmd.Flags().GetBool("skip-checksum")
			r, err := persist.NewReaderWithOptions(args[0], persist.ReaderOptions{
				SkipChecksumValidation: skip,
			})
			if err != nil {
				return err
			}
			defer r.Close()

			h := r.Header()
			fmt.Printf("format:  v%d (arrgo %s)\n", h.FormatVersion, h.ArrgoVersion)
			fmt.Printf("created: %s\n", h.CreatedAt.Format("2006-01-02 15:04:05 UTC"))
			for k, v := range h.Metadata {
				fmt.Printf("meta:    %s = %s\n", k, v)
			}
			for _, meta := range h.Arrays {
				fmt.Printf("array:   %-16s %-8s shape %v  %d bytes\n",
					meta.Name, meta.DType, array.Shape(meta.Shape), meta.Size)
			}
			return nil
		},
	}

	cmd.Flags().Bool("skip-checksum", false, "skip data checksum validation")

	return cmd
}

func printReduction(name string, f func() (float64, error)) {
	v, err := f()
	if err != nil {
		fmt.Printf("%-7s %v\n", name+":", err)
		return
	}
	fmt.Printf("%-7s %g\n", name+":", v)
}

// resolve loads the configuration and selects the backend.
func resolve(cmd *cobra.Command) (*config.Config, array.Backend, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	b, err := backend.FromName(cfg.Backend)
	if err != nil {
		return nil, nil, err
	}
	return cfg, b, nil
}
