// Command golambda is the demonstration driver for the lambda calculus
// engine. It prints sample reductions — boolean truth tables, Church
// arithmetic, and pair projections — the way a library walkthrough
// would, and is the only place in the repository that logs or touches
// a terminal. The engine itself stays pure.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golambda",
	Short: "Untyped lambda calculus playground",
	Long: `golambda demonstrates the lambda calculus engine: term construction,
capture-avoiding substitution, normal-order reduction to normal form,
and the Church encodings built on top.`,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
