// Command blossom-match reads a DIMACS-style graph file and writes its
// maximum-cardinality matching to standard output.
package main

import (
	"fmt"
	"os"

	"github.com/froseb/blossom-match/blossom"
	"github.com/froseb/blossom-match/dimacs"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "blossom-match <graph-file>",
		Short:         "Compute a maximum-cardinality matching of a DIMACS-style graph",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}
	return cmd
}

func run(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	g, err := dimacs.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	m := blossom.Solve(g)

	return dimacs.Write(cmd.OutOrStdout(), g.NumNodes(), m)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blossom-match:", err)
		os.Exit(1)
	}
}
