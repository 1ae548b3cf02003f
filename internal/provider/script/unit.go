// Package script provides units that install a tool by running a command
// sequence, typically a vendor installer fetched with curl or wget.
package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/rigup-sh/rigup/internal/ports"
)

// CommandUnit runs an ordered command sequence. When a binary name is
// given, its presence on PATH serves as the idempotency check; without one
// the unit always reinstalls when selected.
type CommandUnit struct {
	id       catalog.UnitID
	binary   string
	commands [][]string
	runner   ports.CommandRunner
}

// NewCommandUnit creates a CommandUnit.
func NewCommandUnit(name, binary string, commands [][]string, runner ports.CommandRunner) *CommandUnit {
	return &CommandUnit{
		id:       catalog.MustUnitID(name),
		binary:   binary,
		commands: commands,
		runner:   runner,
	}
}

// ID returns the unit identifier.
func (u *CommandUnit) ID() catalog.UnitID {
	return u.id
}

// Check probes PATH for the unit's binary.
func (u *CommandUnit) Check(_ context.Context) (catalog.Status, error) {
	if u.binary == "" {
		return catalog.StatusNeedsApply, nil
	}
	if u.runner.LookPath(u.binary) {
		return catalog.StatusSatisfied, nil
	}
	return catalog.StatusNeedsApply, nil
}

// Apply runs the command sequence, stopping at the first failure.
func (u *CommandUnit) Apply(ctx context.Context) error {
	for _, argv := range u.commands {
		if len(argv) == 0 {
			continue
		}
		result, err := u.runner.Run(ctx, argv[0], argv[1:]...)
		if err != nil {
			return err
		}
		if !result.Success() {
			return fmt.Errorf("%s failed: %s", strings.Join(argv, " "), strings.TrimSpace(result.Stderr))
		}
	}
	return nil
}

var _ catalog.CheckableUnit = (*CommandUnit)(nil)
