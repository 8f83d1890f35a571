package formula

import (
	"math"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// Diagnostics collects non-fatal pricing warnings: every scalar that degraded
// to a zero contribution, with where in the model and why. A nil *Diagnostics
// is valid and records nothing.
type Diagnostics struct {
	warnings []domain.Diagnostic
}

// Add records one warning.
func (d *Diagnostics) Add(location, reason string) {
	if d == nil {
		return
	}
	d.warnings = append(d.warnings, domain.Diagnostic{Location: location, Reason: reason})
}

// Warnings returns the recorded warnings in the order they occurred.
func (d *Diagnostics) Warnings() []domain.Diagnostic {
	if d == nil {
		return nil
	}
	return d.warnings
}

// Evaluate resolves a scalar against the variable table. Literal numbers are
// returned unchanged. Formula strings are parsed and evaluated; any failure
// (syntax error, undefined variable, non-finite result) degrades that scalar
// to 0 so one malformed formula never aborts a whole breakdown. location
// names the scalar's place in the model for the diagnostics channel.
func Evaluate(s domain.Scalar, vars Vars, location string, diags *Diagnostics) float64 {
	if s.Literal {
		if math.IsInf(s.Value, 0) || math.IsNaN(s.Value) {
			diags.Add(location, "literal value is not finite")
			return 0
		}
		return s.Value
	}

	expr, err := Parse(s.Formula)
	if err != nil {
		diags.Add(location, "parse error: "+err.Error())
		return 0
	}
	result, err := expr.Eval(vars)
	if err != nil {
		diags.Add(location, err.Error())
		return 0
	}
	return result
}
