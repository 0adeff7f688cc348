package almanac

import (
	"fmt"
	"strings"

	"aoc-2023/internal/diagnostic"
)

// Validate checks an almanac for problems parsing cannot catch. In strict
// mode overlapping rule domains are errors rather than warnings.
func Validate(a *Almanac, strict bool) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if a == nil {
		res.AddError("almanac_is_nil", "almanac is nil", "", diagnostic.NoRule)
		return res
	}

	res.Merge(validateSeeds(a.Seeds))

	if len(a.Pipeline.Stages) == 0 {
		res.AddError("no_stages", "almanac has no stages", "", diagnostic.NoRule)
	}

	for i, stage := range a.Pipeline.Stages {
		label := stage.Name
		if label == "" {
			label = fmt.Sprintf("stage %d", i)
			res.AddInfo("unnamed_stage", "stage has no name", label, diagnostic.NoRule)
		}

		if len(stage.Rules) == 0 {
			res.AddWarning("empty_stage", "stage has no rules and maps every value to itself", label, diagnostic.NoRule)
		}

		for j, r := range stage.Rules {
			if r.Len == 0 {
				res.AddError("zero_length_rule", fmt.Sprintf("rule %q has zero length", r.String()), label, j)
			}
		}

		for _, c := range stage.Conflicts() {
			msg := fmt.Sprintf("source domain overlaps rule %d on %v; rule %d wins there", c.A, c.Shared, c.A)
			if strict {
				res.AddError("overlapping_rules", msg, label, c.B)
			} else {
				res.AddWarning("overlapping_rules", msg, label, c.B)
			}
		}

		if i > 0 {
			validateChain(res, a.Pipeline.Stages[i-1].Name, stage.Name)
		}
	}

	return res
}

func validateSeeds(seeds []uint64) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	if len(seeds) == 0 {
		res.AddError("no_seeds", "almanac has no seeds", "", diagnostic.NoRule)
		return res
	}

	if len(seeds)%2 != 0 {
		res.AddWarning("odd_seed_count",
			fmt.Sprintf("%d seeds cannot be read as (start, length) pairs; part 2 is unavailable", len(seeds)),
			"", diagnostic.NoRule)

		return res
	}

	for i := 1; i < len(seeds); i += 2 {
		if seeds[i] == 0 {
			res.AddWarning("empty_seed_range",
				fmt.Sprintf("seed range starting at %d has zero length", seeds[i-1]),
				"", diagnostic.NoRule)
		}
	}

	return res
}

// validateChain warns when "a-to-b" is followed by a stage not starting at b.
func validateChain(res *diagnostic.Diagnostics, prev, next string) {
	_, prevTo, ok := splitStageName(prev)
	if !ok {
		return
	}

	nextFrom, _, ok := splitStageName(next)
	if !ok {
		return
	}

	if prevTo != nextFrom {
		res.AddWarning("broken_chain",
			fmt.Sprintf("previous stage %q produces %q but this stage reads %q", prev, prevTo, nextFrom),
			next, diagnostic.NoRule)
	}
}

// splitStageName splits "seed-to-soil" into "seed" and "soil".
func splitStageName(name string) (from, to string, ok bool) {
	from, to, ok = strings.Cut(name, "-to-")
	if !ok || from == "" || to == "" {
		return "", "", false
	}

	return from, to, true
}
