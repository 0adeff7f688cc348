package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsEmpty(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())
	assert.Empty(t, d.All())
}

func TestDiagnosticsAdd(t *testing.T) {
	var d Diagnostics

	d.AddInfo("unnamed_stage", "stage has no name", "", 2)
	d.AddWarning("empty_stage", "stage has no rules", "soil-to-fertilizer", NoRule)
	d.AddError("no_seeds", "no seeds", "", NoRule)
	d.Add(Diagnostic{Severity: SeverityWarning, Code: "broken_chain", Rule: NoRule})

	assert.True(t, d.HasErrors())
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []string{"no_seeds", "empty_stage", "broken_chain", "unnamed_stage"}, d.Codes())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[no_seeds] no seeds", err.Error())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddWarning("w", "first", "", NoRule)
	b.AddError("e", "second", "", NoRule)
	b.AddInfo("i", "third", "", NoRule)

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "stage and rule",
			diag: Diagnostic{Code: "overlapping_rules", Message: "domains intersect", Stage: "seed-to-soil", Rule: 1},
			want: "seed-to-soil rule 1: [overlapping_rules] domains intersect",
		},
		{
			name: "stage only",
			diag: Diagnostic{Code: "empty_stage", Message: "no rules", Stage: "light-to-temperature", Rule: NoRule},
			want: "light-to-temperature: [empty_stage] no rules",
		},
		{
			name: "no location",
			diag: Diagnostic{Message: "plain", Rule: NoRule},
			want: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
