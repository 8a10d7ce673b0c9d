// Command rips loads a point file and either hands off to the
// interactive viewer collaborator or runs a batch barcode computation to
// CSV.
//
// Usage:
//
//	rips <points-file>                              interactive mode
//	rips <points-file> barcode <eps-max> <out.csv>   batch barcode mode
//
// The points-file leads both forms, so "barcode" is dispatched as a
// literal second argument rather than as a cobra subcommand — cobra is
// still used for flag parsing, logging setup, and error-to-exit-code
// plumbing.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// orDiscard returns l, or a logger that throws everything away if l is
// nil, so callers (tests, mainly) can pass nil without every log call
// needing a guard.
func orDiscard(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRootCmd() *cobra.Command {
	var separator string
	var dimBar int
	var logLevel string
	var showProgress bool

	var logger *slog.Logger

	root := &cobra.Command{
		Use:          "rips <points-file> [barcode <eps-max> <output.csv>]",
		Short:        "Persistent homology of a Vietoris-Rips filtration",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("bad --log-level: %w", err)
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pointsFile := args[0]
			rest := args[1:]

			switch {
			case len(rest) == 0:
				return runInteractive(pointsFile, separator, showProgress, logger)
			case len(rest) == 3 && rest[0] == "barcode":
				return runBarcode(pointsFile, separator, rest[1], rest[2], dimBar, logger)
			default:
				return fmt.Errorf("usage: %s", cmd.Use)
			}
		},
	}
	root.PersistentFlags().StringVar(&separator, "sep", "", "point-file field separator (default \",\")")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.Flags().IntVar(&dimBar, "dim-bar", 1, "highest homology dimension to report in barcode mode")
	root.Flags().BoolVar(&showProgress, "progress", false, "print the simplex-consumption counter while interactive mode builds its caches")

	return root
}
