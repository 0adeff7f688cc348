package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc-2023/internal/match"
	"aoc-2023/internal/puzzle"
)

// maxSuggestDistance bounds how far a mistyped day name may be from a real one.
const maxSuggestDistance = 2

var (
	solveInput string
	solvePart  int
)

var solveCmd = &cobra.Command{
	Use:   "solve <day>... | solve all",
	Short: "Solve one or more days",
	Long: `Solves the named days and prints their answers.

Days may be written as "5" or "day5". "all" solves every day that has an
input file. --input reads a specific file and needs exactly one day.

Example:
  aoc solve 5
  aoc solve day1 day2 --part 2
  aoc solve 8 --input testdata/ghosts.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "Read input from this file instead of the input directory")
	solveCmd.Flags().IntVarP(&solvePart, "part", "p", 0, "Print only this part (1 or 2)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solvePart != 0 && solvePart != 1 && solvePart != 2 {
		return fmt.Errorf("invalid --part %d: want 1 or 2", solvePart)
	}

	days, err := resolveDays(args)
	if err != nil {
		return err
	}

	if solveInput != "" && len(days) != 1 {
		return fmt.Errorf("--input needs exactly one day, got %d", len(days))
	}

	if len(days) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No inputs found under %s\n", cfg.InputDir)
		return nil
	}

	for _, d := range days {
		if err := solveDay(cmd, d); err != nil {
			return err
		}
	}

	return nil
}

// resolveDays turns arguments into days. "all" expands to every day with an
// input file under the configured directory.
func resolveDays(args []string) ([]puzzle.Day, error) {
	if len(args) == 1 && strings.EqualFold(args[0], "all") {
		var days []puzzle.Day

		for _, d := range puzzle.All() {
			if puzzle.HasInput(cfg.InputDir, d) {
				days = append(days, d)
			} else {
				logger.Debug("skipping day without input", zap.Stringer("day", d))
			}
		}

		return days, nil
	}

	days := make([]puzzle.Day, 0, len(args))

	for _, arg := range args {
		d, err := puzzle.ParseDay(arg)
		if errors.Is(err, puzzle.ErrUnknownDay) {
			if hint := match.Suggest(arg, puzzle.Names(), maxSuggestDistance); len(hint) > 0 {
				return nil, fmt.Errorf("%w (did you mean %s?)", err, strings.Join(hint, " or "))
			}
		}

		if err != nil {
			return nil, err
		}

		days = append(days, d)
	}

	return days, nil
}

func solveDay(cmd *cobra.Command, d puzzle.Day) error {
	path := solveInput
	if path == "" {
		path = puzzle.InputPath(cfg.InputDir, d)
	}

	input, err := puzzle.ReadFile(path)
	if err != nil {
		return err
	}

	solve, ok := solvers[d]
	if !ok {
		return fmt.Errorf("%s: no solver", d)
	}

	start := time.Now()

	answer, err := solve(input)
	if err != nil {
		return fmt.Errorf("%s: %w", d, err)
	}

	logger.Info("solved",
		zap.Stringer("day", d),
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)),
	)

	parts := []int{1, 2}
	if solvePart != 0 {
		parts = []int{solvePart}
	}

	out := cmd.OutOrStdout()

	for _, part := range parts {
		v, err := answer.Part(part)
		if err != nil {
			if solvePart != 0 {
				return fmt.Errorf("%s: %w", d, err)
			}

			logger.Warn("part not available", zap.Stringer("day", d), zap.Int("part", part), zap.Error(err))

			continue
		}

		fmt.Fprintf(out, "%s Part %d: %d\n", d, part, v)
	}

	return nil
}
