// Package preflight models the launch gate sequence: an ordered list of
// named checks, executed one after another, where a fatal failure stops
// the run immediately and everything else is reported and skipped past.
package preflight

import "context"

// Severity controls what a failed check does to the run.
type Severity int

const (
	// Fatal stops the gate sequence immediately.
	Fatal Severity = iota
	// Advisory prints and moves on.
	Advisory
)

// Status is the outcome of a single gate.
type Status int

const (
	Passed Status = iota
	Warned
	Failed
	// Fixed means the probe failed but a corrective action was attempted.
	// The action is never re-verified before launch.
	Fixed
)

// Result carries the outcome of one gate.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Check is one named gate in the launch sequence.
type Check struct {
	Name     string
	Severity Severity
	Run      func(ctx context.Context) Result
}

// Report is the ordered record of a preflight run. When a fatal gate
// failed, its result is the last entry; later gates never ran.
type Report struct {
	Results []Result
}

// FirstFailure returns the result that stopped the run, if any.
func (r Report) FirstFailure() (Result, bool) {
	for _, res := range r.Results {
		if res.Status == Failed {
			return res, true
		}
	}
	return Result{}, false
}

// Warnings counts non-fatal findings.
func (r Report) Warnings() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == Warned {
			n++
		}
	}
	return n
}

// Runner executes checks in fixed order.
type Runner struct {
	Checks []Check
}

// Run walks the gates in order. The first failure of a Fatal gate
// short-circuits: no later gate runs, no install is attempted.
func (r *Runner) Run(ctx context.Context) Report {
	var report Report
	for _, c := range r.Checks {
		res := c.Run(ctx)
		res.Name = c.Name
		report.Results = append(report.Results, res)
		if res.Status == Failed && c.Severity == Fatal {
			break
		}
	}
	return report
}
