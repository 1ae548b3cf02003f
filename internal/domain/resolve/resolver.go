package resolve

import (
	"context"
	"fmt"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/rigup-sh/rigup/internal/ports"
)

// Resolver installs the dependency units a request implies before the
// request itself runs.
type Resolver struct {
	cat *catalog.Catalog
	log ports.Logger
}

// NewResolver creates a Resolver.
func NewResolver(cat *catalog.Catalog, log ports.Logger) *Resolver {
	return &Resolver{cat: cat, log: log}
}

// Resolve performs one resolution pass over the catalog's dependency units,
// in registration order. A dependency whose requires list intersects the
// request is probed and, when not already satisfied, installed; its own
// name is then removed from the request so it cannot run twice. The request
// is shrunk in place and is ready for the orchestrator afterwards.
//
// The pass is deliberately single-level: installing a dependency never
// triggers a rescan, so a dependency-of-a-dependency is not resolved. A
// failing dependency install aborts the entire run.
func (r *Resolver) Resolve(ctx context.Context, req *Request) error {
	for _, dep := range r.cat.Dependencies() {
		unit := dep.Unit()
		if !req.ContainsAny(dep.Requires()) {
			continue
		}

		status, err := catalog.Probe(ctx, unit)
		if err != nil {
			r.log.Warn("dependency check failed, assuming install needed",
				ports.F("unit", unit.ID().String()), ports.F("error", err))
			status = catalog.StatusNeedsApply
		}

		if status == catalog.StatusSatisfied {
			r.log.Debug("dependency already satisfied", ports.F("unit", unit.ID().String()))
		} else {
			r.log.Info("installing dependency", ports.F("unit", unit.ID().String()))
			if err := unit.Apply(ctx); err != nil {
				return fmt.Errorf("install dependency %s: %w", unit.ID(), err)
			}
		}

		// Drop the dependency from the request whether or not it was
		// requested directly; absent names are a no-op to remove.
		req.Remove(unit.ID())
	}
	return nil
}
