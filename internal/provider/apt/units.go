// Package apt provides units backed by the apt package manager.
package apt

import (
	"context"
	"fmt"
	"strings"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/rigup-sh/rigup/internal/ports"
)

const dpkgQueryFormat = "-f=${Package}\t${Version}\t${db:Status-Status}\n"

// PackageUnit installs a single apt package. The unit name and the apt
// package name may differ (e.g. unit "fsl" installs "fsl-core").
type PackageUnit struct {
	id     catalog.UnitID
	pkg    string
	runner ports.CommandRunner
}

// NewPackageUnit creates a PackageUnit.
func NewPackageUnit(name, pkg string, runner ports.CommandRunner) *PackageUnit {
	return &PackageUnit{
		id:     catalog.MustUnitID(name),
		pkg:    pkg,
		runner: runner,
	}
}

// ID returns the unit identifier.
func (u *PackageUnit) ID() catalog.UnitID {
	return u.id
}

// Package returns the apt package this unit installs.
func (u *PackageUnit) Package() string {
	return u.pkg
}

// Check asks dpkg whether the package is already installed.
func (u *PackageUnit) Check(ctx context.Context) (catalog.Status, error) {
	result, err := u.runner.Run(ctx, "dpkg-query", "-W", dpkgQueryFormat, u.pkg)
	if err != nil {
		return catalog.StatusUnknown, err
	}

	// dpkg-query exits 1 when the package is unknown.
	if !result.Success() {
		return catalog.StatusNeedsApply, nil
	}
	if strings.Contains(result.Stdout, "installed") {
		return catalog.StatusSatisfied, nil
	}
	return catalog.StatusNeedsApply, nil
}

// Apply installs the package.
func (u *PackageUnit) Apply(ctx context.Context) error {
	result, err := u.runner.Run(ctx, "sudo", "apt-get", "install", "-y", u.pkg)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("apt-get install %s failed: %s", u.pkg, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// RepoUnit configures an extra apt repository: it drops a sources.list
// fragment, imports the signing key, and refreshes the package index.
// Used for the NeuroDebian repository.
type RepoUnit struct {
	id       catalog.UnitID
	listPath string
	commands [][]string
	fs       ports.FileSystem
	runner   ports.CommandRunner
}

// NewRepoUnit creates a RepoUnit. commands run in order on Apply; listPath
// existing on disk means the repository is already configured.
func NewRepoUnit(name, listPath string, commands [][]string, fs ports.FileSystem, runner ports.CommandRunner) *RepoUnit {
	return &RepoUnit{
		id:       catalog.MustUnitID(name),
		listPath: listPath,
		commands: commands,
		fs:       fs,
		runner:   runner,
	}
}

// ID returns the unit identifier.
func (u *RepoUnit) ID() catalog.UnitID {
	return u.id
}

// Check probes for the sources.list fragment.
func (u *RepoUnit) Check(_ context.Context) (catalog.Status, error) {
	if u.fs.Exists(u.listPath) {
		return catalog.StatusSatisfied, nil
	}
	return catalog.StatusNeedsApply, nil
}

// Apply runs the configured command sequence, stopping at the first
// failure.
func (u *RepoUnit) Apply(ctx context.Context) error {
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

var (
	_ catalog.CheckableUnit = (*PackageUnit)(nil)
	_ catalog.CheckableUnit = (*RepoUnit)(nil)
)
