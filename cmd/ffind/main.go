package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/logandonley/font-finder/internal/platform"
	"github.com/logandonley/font-finder/pkg/fontfind"
	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("no matching font")

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ffind",
	Short: "ffind resolves a font family and style to a font file",
	Long: `Resolve a font family and an optional style to a font file on disk.

fontconfig is asked through fc-match when it is installed. Otherwise the
well-known font directories are scanned for a .ttf or .otf file whose name
starts with the family and contains the style.

Examples:
  # Find a font by family
  ffind find DejaVuSans

  # Find a specific style
  ffind find DejaVuSans --style Bold

  # Skip fontconfig and scan the font directories
  ffind find DejaVuSans --backend fallback`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var findCmd = &cobra.Command{
	Use:   "find FAMILY",
	Short: "Print the path of the font file for a family",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, _ := cmd.Flags().GetString("style")
		backend, _ := cmd.Flags().GetString("backend")

		resolver, err := newResolver(backend, newLogger())
		if err != nil {
			return err
		}

		path, ok := resolver.Find(args[0], style)
		if !ok {
			return fmt.Errorf("%w for %q (backend %s)", errNoMatch, args[0], resolver.Backend())
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "List the font directories scanned without fontconfig",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, dir := range platform.New().FontDirs() {
			fmt.Fprintln(cmd.OutOrStdout(), dir)
		}
		return nil
	},
}

// newResolver builds the resolver for the --backend flag. "auto" prefers
// fontconfig and falls back to the directory scan if it cannot start.
func newResolver(backend string, logger logr.Logger) (*fontfind.Resolver, error) {
	if backend == "auto" {
		resolver, err := fontfind.New(fontfind.WithLogger(logger))
		if err == nil {
			return resolver, nil
		}
		if !errors.Is(err, fontfind.ErrInit) {
			return nil, err
		}
		logger.V(1).Info("fontconfig unavailable, scanning font directories", "reason", err.Error())
		return fontfind.New(fontfind.WithBackend(fontfind.Fallback), fontfind.WithLogger(logger))
	}

	b, err := fontfind.ParseBackend(backend)
	if err != nil {
		return nil, err
	}
	resolver, err := fontfind.New(fontfind.WithBackend(b), fontfind.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("creating %s resolver: %w", b, err)
	}
	return resolver, nil
}

func newLogger() logr.Logger {
	if !verbose {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: 1})
}

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(dirsCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log backend decisions and skipped entries")
	findCmd.Flags().StringP("style", "s", "", "Style that must appear in the file name, e.g. Bold")
	findCmd.Flags().StringP("backend", "b", "auto", "Backend to use: auto, native or fallback")
}
