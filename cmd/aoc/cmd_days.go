package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"aoc-2023/internal/puzzle"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List days and whether their input is present",
	Args:  cobra.NoArgs,
	RunE:  runDays,
}

func runDays(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	for _, d := range puzzle.All() {
		input := "missing"
		if puzzle.HasInput(cfg.InputDir, d) {
			input = puzzle.InputPath(cfg.InputDir, d)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", d, d.Title(), input)
	}

	return w.Flush()
}
