// Package almanac solves the seed almanac puzzle on top of package rangemap.
//
// An almanac lists seed numbers followed by named stages, each a block of
// "dest source length" rules:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// The same content can be kept as YAML, which is handy for editing or
// generating test fixtures:
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - name: seed-to-soil
//	    rules:
//	      - "50 98 2"
//	      - {dest: 52, source: 50, length: 48}
//
// # Answers
//
// Part 1 reads the seeds as single values and reports the lowest location
// they map to. Part 2 reads the seeds as (start, length) pairs and reports the
// lowest location any seed in those ranges maps to, without enumerating them.
//
// # Validation
//
// Parsing rejects malformed numbers, wrong field counts and zero lengths.
// Problems that still leave a usable almanac (overlapping rule domains,
// stage names that do not chain, empty stages) are reported by Validate as
// coded diagnostics:
//
//   - no_seeds, no_stages, zero_length_rule: errors
//   - overlapping_rules: warning, error in strict mode
//   - odd_seed_count, empty_seed_range, empty_stage, broken_chain: warnings
//   - unnamed_stage: info
package almanac
