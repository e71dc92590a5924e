// pegsolve - classifies every position of 15-hole triangular peg solitaire
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourusername/pegsolve/internal/board"
	"github.com/yourusername/pegsolve/pkg/engine"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	workers  int
	symmetry bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pegsolve",
		Short: "Count winning peg solitaire positions",
		Long: `Classify every position of the 15-hole triangular peg solitaire board as a
win (reducible to one peg) or a loss, then print how many positions win for
each peg count.

Examples:
  pegsolve
  pegsolve --workers 8
  pegsolve --symmetry --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 1, "Goroutines used to fill each tier")
	cmd.Flags().BoolVar(&opts.symmetry, "symmetry", false, "Search one position per symmetry class")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log tier timings to stderr")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runSolve(cmd *cobra.Command, opts *rootOptions) error {
	if opts.workers < 1 {
		return fmt.Errorf("invalid --workers %d: must be at least 1", opts.workers)
	}

	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	var writeErr error
	solver := engine.NewSolver(board.Standard(), engine.Options{
		Workers:  opts.workers,
		Symmetry: opts.symmetry,
		Logger:   logger,
		OnTier: func(pegs int) {
			if _, err := fmt.Fprintf(out, "size %d\n", pegs); err != nil && writeErr == nil {
				writeErr = err
			}
		},
	})

	table, err := solver.Solve(cmd.Context())
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write progress: %w", writeErr)
	}

	return engine.WriteReport(out, engine.Report(table))
}
