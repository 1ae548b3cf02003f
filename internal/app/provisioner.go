package app

import (
	"context"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/rigup-sh/rigup/internal/domain/resolve"
	"github.com/rigup-sh/rigup/internal/domain/run"
	"github.com/rigup-sh/rigup/internal/ports"
)

// Provisioner is the service facade behind the CLI: resolve dependencies,
// then drive the orchestrator.
type Provisioner struct {
	cat      *catalog.Catalog
	resolver *resolve.Resolver
	orch     *run.Orchestrator
	log      ports.Logger
}

// NewProvisioner creates a Provisioner over a catalog.
func NewProvisioner(cat *catalog.Catalog, log ports.Logger) *Provisioner {
	return &Provisioner{
		cat:      cat,
		resolver: resolve.NewResolver(cat, log),
		orch:     run.NewOrchestrator(cat, log),
		log:      log,
	}
}

// Catalog returns the provisioner's catalog.
func (p *Provisioner) Catalog() *catalog.Catalog {
	return p.cat
}

// Apply resolves and installs the named units. The report covers the
// directly requested units; dependency installs happen inside resolution
// and abort the run on failure.
func (p *Provisioner) Apply(ctx context.Context, names []string) (*run.Report, error) {
	req, err := resolve.NewRequest(names...)
	if err != nil {
		return nil, err
	}
	if err := p.resolver.Resolve(ctx, req); err != nil {
		return nil, err
	}
	return p.orch.Run(ctx, req)
}

// Plan previews what Apply would do, without installing anything.
func (p *Provisioner) Plan(ctx context.Context, names []string) ([]resolve.PreviewEntry, error) {
	req, err := resolve.NewRequest(names...)
	if err != nil {
		return nil, err
	}
	return p.resolver.Preview(ctx, req), nil
}
