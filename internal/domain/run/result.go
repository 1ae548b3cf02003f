// Package run drives execution of a resolved request, one unit at a time.
package run

import (
	"time"

	"github.com/google/uuid"
	"github.com/rigup-sh/rigup/internal/domain/catalog"
)

// Outcome is the final state of one unit in a run.
type Outcome string

const (
	// OutcomeApplied means the unit's install action completed.
	OutcomeApplied Outcome = "applied"
	// OutcomeFailed means the install action reported an error.
	OutcomeFailed Outcome = "failed"
	// OutcomeSkipped means the unit never ran because an earlier unit failed.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeMissing means the name had no catalog entry; a no-op ran instead.
	OutcomeMissing Outcome = "missing"
)

// String returns the outcome label.
func (o Outcome) String() string {
	return string(o)
}

// UnitResult captures the outcome of executing a single unit.
type UnitResult struct {
	id       catalog.UnitID
	outcome  Outcome
	err      error
	duration time.Duration
}

// NewUnitResult creates a UnitResult.
func NewUnitResult(id catalog.UnitID, outcome Outcome, err error) UnitResult {
	return UnitResult{id: id, outcome: outcome, err: err}
}

// ID returns the unit's ID.
func (r UnitResult) ID() catalog.UnitID {
	return r.id
}

// Outcome returns the unit's final state.
func (r UnitResult) Outcome() Outcome {
	return r.outcome
}

// Err returns the install error, if any.
func (r UnitResult) Err() error {
	return r.err
}

// Duration returns how long the install took.
func (r UnitResult) Duration() time.Duration {
	return r.duration
}

// WithDuration returns a copy with the duration set.
func (r UnitResult) WithDuration(d time.Duration) UnitResult {
	r.duration = d
	return r
}

// Summary aggregates outcome counts for a run.
type Summary struct {
	Total   int
	Applied int
	Failed  int
	Skipped int
	Missing int
}

// Report collects the results of one run.
type Report struct {
	id      string
	results []UnitResult
}

// NewReport creates a Report with a fresh run ID.
func NewReport() *Report {
	return &Report{id: uuid.NewString()}
}

// ID returns the run's unique identifier.
func (p *Report) ID() string {
	return p.id
}

// Add appends a unit result.
func (p *Report) Add(result UnitResult) {
	p.results = append(p.results, result)
}

// Results returns all unit results in execution order.
func (p *Report) Results() []UnitResult {
	results := make([]UnitResult, len(p.results))
	copy(results, p.results)
	return results
}

// Failed reports whether any unit failed.
func (p *Report) Failed() bool {
	for _, r := range p.results {
		if r.outcome == OutcomeFailed {
			return true
		}
	}
	return false
}

// Summary returns aggregate outcome counts.
func (p *Report) Summary() Summary {
	s := Summary{Total: len(p.results)}
	for _, r := range p.results {
		switch r.outcome {
		case OutcomeApplied:
			s.Applied++
		case OutcomeFailed:
			s.Failed++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeMissing:
			s.Missing++
		}
	}
	return s
}
