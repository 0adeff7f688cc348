package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc-2023/internal/almanac"
	"aoc-2023/internal/common"
)

var (
	checkStrict bool
	exportOut   string
	traceSeeds  []string
)

// almanacCmd groups the day 5 tooling.
var almanacCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Inspect day 5 almanac files",
	Long: `Tools for almanac files in puzzle text or YAML form.

Files ending in .yaml or .yml are read as YAML, anything else as puzzle text.`,
}

var almanacCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate an almanac and print diagnostics",
	Long: `Checks seeds, stage names, stage chaining and rule domains.

Overlapping rule domains are warnings unless --strict is given or
almanac.strict is set in the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runAlmanacCheck,
}

var almanacExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Convert an almanac to YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlmanacExport,
}

var almanacTraceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Show each seed's value after every stage",
	Long: `Prints the value of each seed after every stage.

Without --seed every seed from the file is traced.

Example:
  aoc almanac trace data/day5/input.txt --seed 79 --seed 14`,
	Args: cobra.ExactArgs(1),
	RunE: runAlmanacTrace,
}

var almanacDumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Dump the parsed almanac structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlmanacDump,
}

func init() {
	almanacCheckCmd.Flags().BoolVar(&checkStrict, "strict", false, "Report overlapping rule domains as errors")
	almanacExportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write YAML to this file instead of stdout")
	almanacTraceCmd.Flags().StringSliceVar(&traceSeeds, "seed", nil, "Seed to trace (repeatable)")

	almanacCmd.AddCommand(almanacCheckCmd, almanacExportCmd, almanacTraceCmd, almanacDumpCmd)
}

func loadAlmanac(path string) (*almanac.Almanac, error) {
	a, err := almanac.LoadFile(path)
	if err != nil {
		return nil, err
	}

	logger.Debug("almanac loaded",
		zap.String("path", path),
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("stages", len(a.Pipeline.Stages)),
	)

	return a, nil
}

func runAlmanacCheck(cmd *cobra.Command, args []string) error {
	a, err := loadAlmanac(args[0])
	if err != nil {
		return err
	}

	strict := cfg.Almanac.Strict
	if cmd.Flags().Changed("strict") {
		strict = checkStrict
	}

	res := almanac.Validate(a, strict)
	out := cmd.OutOrStdout()

	for _, d := range res.All() {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	if res.HasErrors() {
		return fmt.Errorf("%s: %d error(s)", args[0], len(res.Errors))
	}

	fmt.Fprintf(out, "%s: ok (%d stages, %d seeds)\n", args[0], len(a.Pipeline.Stages), len(a.Seeds))

	return nil
}

func runAlmanacExport(cmd *cobra.Command, args []string) error {
	a, err := loadAlmanac(args[0])
	if err != nil {
		return err
	}

	if exportOut != "" {
		if err := almanac.WriteYAML(a, exportOut); err != nil {
			return err
		}

		logger.Info("almanac exported", zap.String("path", exportOut))

		return nil
	}

	data, err := almanac.MarshalYAML(a)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}

func runAlmanacTrace(cmd *cobra.Command, args []string) error {
	a, err := loadAlmanac(args[0])
	if err != nil {
		return err
	}

	seeds := a.Seeds
	if len(traceSeeds) > 0 {
		seeds = make([]uint64, 0, len(traceSeeds))

		for _, raw := range traceSeeds {
			v, err := common.ParseInt[uint64](strings.TrimSpace(raw))
			if err != nil {
				return fmt.Errorf("--seed: %w", err)
			}

			seeds = append(seeds, v)
		}
	}

	names := a.StageNames()
	out := cmd.OutOrStdout()

	for _, seed := range seeds {
		values := a.Pipeline.Trace(seed)

		var b strings.Builder
		fmt.Fprintf(&b, "%d", values[0])

		for i, v := range values[1:] {
			fmt.Fprintf(&b, " -[%s]-> %d", names[i], v)
		}

		fmt.Fprintln(out, b.String())
	}

	return nil
}

// dumpConfig keeps dumps stable between runs.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

func runAlmanacDump(cmd *cobra.Command, args []string) error {
	a, err := loadAlmanac(args[0])
	if err != nil {
		return err
	}

	dumpConfig.Fdump(cmd.OutOrStdout(), a)

	return nil
}
