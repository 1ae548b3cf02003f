package resolve

import (
	"context"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/rigup-sh/rigup/internal/ports"
)

// PreviewEntry describes one unit a run would touch.
type PreviewEntry struct {
	ID         catalog.UnitID
	Status     catalog.Status
	Dependency bool
	Known      bool
}

// Preview reports what Resolve followed by an orchestrator run would do,
// without applying anything or mutating the caller's request. Dependency
// units appear first, in registration order, mirroring execution order.
// Checks are evaluated; check errors surface as StatusUnknown.
func (r *Resolver) Preview(ctx context.Context, req *Request) []PreviewEntry {
	working := req.clone()
	entries := make([]PreviewEntry, 0, working.Len())

	for _, dep := range r.cat.Dependencies() {
		unit := dep.Unit()
		if !working.ContainsAny(dep.Requires()) {
			continue
		}

		status, err := catalog.Probe(ctx, unit)
		if err != nil {
			r.log.Warn("dependency check failed",
				ports.F("unit", unit.ID().String()), ports.F("error", err))
			status = catalog.StatusUnknown
		}
		entries = append(entries, PreviewEntry{
			ID:         unit.ID(),
			Status:     status,
			Dependency: true,
			Known:      true,
		})
		working.Remove(unit.ID())
	}

	for _, id := range working.IDs() {
		unit, ok := r.cat.Installable(id)
		if !ok {
			entries = append(entries, PreviewEntry{ID: id, Status: catalog.StatusUnknown})
			continue
		}
		status, err := catalog.Probe(ctx, unit)
		if err != nil {
			status = catalog.StatusUnknown
		}
		entries = append(entries, PreviewEntry{ID: id, Status: status, Known: true})
	}

	return entries
}
