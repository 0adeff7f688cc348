// Package main provides the aoc command.
//
// aoc solves Advent of Code 2023 days 1 to 9 from input files and offers
// tooling around the day 5 almanac: validation, YAML export, per-stage
// tracing and raw dumps.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc-2023/internal/config"
	"aoc-2023/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	inputDir   string

	// Loaded in PersistentPreRunE
	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2023 solutions",
	Long: `aoc solves Advent of Code 2023 puzzles.

Inputs are read from <input-dir>/dayN/input.txt. The input directory comes
from --input-dir, then AOC_INPUT_DIR, then the config file, then "data".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// setup loads configuration and builds the logger. Flags beat environment
// variables, which beat the config file.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := loaded.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	if cmd.Flags().Changed("input-dir") {
		loaded.InputDir = inputDir
	}

	l, err := logging.New(loaded.Logging, verbose)
	if err != nil {
		return err
	}

	cfg, logger = loaded, l

	logger.Debug("configuration loaded",
		zap.String("path", configPath),
		zap.String("input_dir", cfg.InputDir),
		zap.Bool("strict", cfg.Almanac.Strict),
	)

	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&inputDir, "input-dir", config.DefaultInputDir, "Directory holding dayN/input.txt files")

	rootCmd.AddCommand(solveCmd, daysCmd, almanacCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
