package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// NoRule marks a diagnostic that is not tied to a single rule.
const NoRule = -1

// Diagnostics holds all diagnostics from one check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Stage names the stage this relates to (if any).
	Stage string
	// Rule is the rule index inside Stage, or NoRule.
	Rule int
}

// Severity of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func newDiagnostic(sev Severity, code, message, stage string, rule int) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Stage:    stage,
		Rule:     rule,
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, stage string, rule int) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, stage, rule))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, stage string, rule int) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, stage, rule))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, stage string, rule int) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, stage, rule))
}

// Add routes a diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Len returns the number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos, each in insertion order.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, d.Len())
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Codes returns the code of every diagnostic in All order.
func (d *Diagnostics) Codes() []string {
	all := d.All()

	codes := make([]string, 0, len(all))
	for _, diag := range all {
		codes = append(codes, diag.Code)
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string, e.g.
// "seed-to-soil rule 2: [overlapping_rules] ...".
func (d Diagnostic) String() string {
	var prefix []string
	if d.Stage != "" {
		prefix = append(prefix, d.Stage)
	}

	if d.Rule >= 0 {
		prefix = append(prefix, fmt.Sprintf("rule %d", d.Rule))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
