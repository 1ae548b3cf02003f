package run

import (
	"context"
	"fmt"
	"time"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/rigup-sh/rigup/internal/domain/resolve"
	"github.com/rigup-sh/rigup/internal/ports"
)

// ApplyError reports which unit's install action failed.
type ApplyError struct {
	ID  catalog.UnitID
	Err error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("unit %s: install failed: %v", e.ID, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// Orchestrator executes the units of a resolved request sequentially, in
// the caller-supplied order. Installation actions mutate shared host state,
// so serial execution is a correctness requirement here, not a
// simplification.
type Orchestrator struct {
	cat *catalog.Catalog
	log ports.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(cat *catalog.Catalog, log ports.Logger) *Orchestrator {
	return &Orchestrator{cat: cat, log: log}
}

// Run installs every unit in the request exactly once. Unknown names
// degrade to a logged no-op. The first install failure halts the run;
// units after it are reported as skipped, and nothing is rolled back.
// The report is returned in both cases, alongside the fatal error if any.
func (o *Orchestrator) Run(ctx context.Context, req *resolve.Request) (*Report, error) {
	report := NewReport()
	log := o.log.With(ports.F("run", report.ID()))

	var fatal *ApplyError
	for _, id := range req.IDs() {
		if fatal != nil {
			report.Add(NewUnitResult(id, OutcomeSkipped, nil))
			continue
		}

		unit, ok := o.cat.Installable(id)
		if !ok {
			log.Warn("unknown unit, skipping", ports.F("unit", id.String()))
			unit = catalog.Nop(id)
			_ = unit.Apply(ctx)
			report.Add(NewUnitResult(id, OutcomeMissing, nil))
			continue
		}

		log.Info("installing", ports.F("unit", id.String()))
		start := time.Now()
		err := unit.Apply(ctx)
		duration := time.Since(start)

		if err != nil {
			fatal = &ApplyError{ID: id, Err: err}
			log.Error("install failed",
				ports.F("unit", id.String()), ports.F("error", err))
			report.Add(NewUnitResult(id, OutcomeFailed, err).WithDuration(duration))
			continue
		}

		report.Add(NewUnitResult(id, OutcomeApplied, nil).WithDuration(duration))
	}

	if fatal != nil {
		return report, fatal
	}
	return report, nil
}
