package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc-2023/internal/diagnostic"
	"aoc-2023/internal/rangemap"
)

func TestValidateExample(t *testing.T) {
	res := Validate(mustParse(t, example), true)

	assert.True(t, res.IsValid())
	assert.Empty(t, res.All())
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil, false)

	require.True(t, res.HasErrors())
	assert.Equal(t, "almanac_is_nil", res.Errors[0].Code)
}

func TestValidateOverlap(t *testing.T) {
	a := &Almanac{
		Seeds: []uint64{1, 2},
		Pipeline: rangemap.Pipeline{Stages: []rangemap.Stage{
			{Name: "seed-to-soil", Rules: []rangemap.Rule{
				{Dest: 0, Source: 0, Len: 10},
				{Dest: 50, Source: 5, Len: 10},
			}},
		}},
	}

	lenient := Validate(a, false)
	assert.True(t, lenient.IsValid())
	require.Len(t, lenient.Warnings, 1)

	w := lenient.Warnings[0]
	assert.Equal(t, "overlapping_rules", w.Code)
	assert.Equal(t, "seed-to-soil", w.Stage)
	assert.Equal(t, 1, w.Rule)
	assert.Contains(t, w.Message, "[5, 10)")

	strict := Validate(a, true)
	assert.True(t, strict.HasErrors())
	assert.Equal(t, []string{"overlapping_rules"}, strict.Codes())
}

func TestValidateFindings(t *testing.T) {
	tests := []struct {
		name    string
		almanac *Almanac
		codes   []string
		valid   bool
	}{
		{
			name:    "no seeds and no stages",
			almanac: &Almanac{},
			codes:   []string{"no_seeds", "no_stages"},
		},
		{
			name: "odd seed count",
			almanac: &Almanac{
				Seeds:    []uint64{1, 2, 3},
				Pipeline: rangemap.Pipeline{Stages: []rangemap.Stage{{Name: "a-to-b", Rules: []rangemap.Rule{{Dest: 1, Source: 1, Len: 1}}}}},
			},
			codes: []string{"odd_seed_count"},
			valid: true,
		},
		{
			name: "empty seed range",
			almanac: &Almanac{
				Seeds:    []uint64{1, 0},
				Pipeline: rangemap.Pipeline{Stages: []rangemap.Stage{{Name: "a-to-b", Rules: []rangemap.Rule{{Dest: 1, Source: 1, Len: 1}}}}},
			},
			codes: []string{"empty_seed_range"},
			valid: true,
		},
		{
			name: "broken chain and empty stage",
			almanac: &Almanac{
				Seeds: []uint64{1, 2},
				Pipeline: rangemap.Pipeline{Stages: []rangemap.Stage{
					{Name: "seed-to-soil", Rules: []rangemap.Rule{{Dest: 1, Source: 1, Len: 1}}},
					{Name: "water-to-light"},
				}},
			},
			codes: []string{"empty_stage", "broken_chain"},
			valid: true,
		},
		{
			name: "unnamed stage and zero length rule",
			almanac: &Almanac{
				Seeds: []uint64{1, 2},
				Pipeline: rangemap.Pipeline{Stages: []rangemap.Stage{
					{Rules: []rangemap.Rule{{Dest: 1, Source: 1, Len: 0}}},
				}},
			},
			codes: []string{"zero_length_rule", "unnamed_stage"},
		},
		{
			name: "names outside the x-to-y form are not chained",
			almanac: &Almanac{
				Seeds: []uint64{1, 2},
				Pipeline: rangemap.Pipeline{Stages: []rangemap.Stage{
					{Name: "first", Rules: []rangemap.Rule{{Dest: 1, Source: 1, Len: 1}}},
					{Name: "second", Rules: []rangemap.Rule{{Dest: 1, Source: 1, Len: 1}}},
				}},
			},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.almanac, false)

			assert.Equal(t, tt.valid, res.IsValid())

			if len(tt.codes) == 0 {
				assert.Empty(t, res.Codes())
			} else {
				assert.Equal(t, tt.codes, res.Codes())
			}
		})
	}
}

func TestValidateUnnamedStageLabel(t *testing.T) {
	a := &Almanac{
		Seeds:    []uint64{1, 2},
		Pipeline: rangemap.Pipeline{Stages: []rangemap.Stage{{Rules: []rangemap.Rule{{Dest: 1, Source: 1, Len: 1}}}}},
	}

	res := Validate(a, false)
	require.Len(t, res.Infos, 1)
	assert.Equal(t, "stage 0", res.Infos[0].Stage)
	assert.Equal(t, diagnostic.NoRule, res.Infos[0].Rule)
}

func TestSplitStageName(t *testing.T) {
	from, to, ok := splitStageName("temperature-to-humidity")
	require.True(t, ok)
	assert.Equal(t, "temperature", from)
	assert.Equal(t, "humidity", to)

	_, _, ok = splitStageName("seed-soil")
	assert.False(t, ok)

	_, _, ok = splitStageName("-to-soil")
	assert.False(t, ok)
}

func TestValidateKeepsSeedFindingsFirst(t *testing.T) {
	a := &Almanac{
		Seeds:    []uint64{79, 14, 55},
		Pipeline: rangemap.Pipeline{Stages: []rangemap.Stage{{Name: "seed-to-soil"}}},
	}

	res := Validate(a, false)

	assert.True(t, res.IsValid())
	assert.Equal(t, []string{"odd_seed_count", "empty_stage"}, res.Codes())
}
