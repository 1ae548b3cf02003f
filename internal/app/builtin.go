// Package app wires the catalog, resolver, and orchestrator into the
// services the CLI uses.
package app

import (
	"fmt"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/rigup-sh/rigup/internal/domain/config"
	"github.com/rigup-sh/rigup/internal/ports"
	"github.com/rigup-sh/rigup/internal/provider/apt"
	"github.com/rigup-sh/rigup/internal/provider/git"
	"github.com/rigup-sh/rigup/internal/provider/script"
	"github.com/rigup-sh/rigup/internal/provider/shell"
)

const neuroDebianList = "/etc/apt/sources.list.d/neurodebian.sources.list"

// MatlabOptions is the option bundle for the matlab unit.
type MatlabOptions struct {
	LicenseFile string `mapstructure:"licenseFile"`
}

// BuiltinCatalog builds the fixed workstation catalog: OS packages,
// science tooling, shell customizations, and the dependency units that
// glue them together. Per-unit options come from the config file.
func BuiltinCatalog(cfg config.Root, runner ports.CommandRunner, fs ports.FileSystem) (*catalog.Catalog, error) {
	cat := catalog.New()

	// Base OS tooling.
	for _, pkg := range []struct{ name, pkg string }{
		{"git", "git"},
		{"curl", "curl"},
		{"wget", "wget"},
		{"tmux", "tmux"},
		{"htop", "htop"},
		{"build-essential", "build-essential"},
	} {
		cat.MustRegister(apt.NewPackageUnit(pkg.name, pkg.pkg, runner))
	}

	// Science tooling from the NeuroDebian archive.
	cat.MustRegister(apt.NewPackageUnit("afni", "afni", runner))
	cat.MustRegister(apt.NewPackageUnit("fsl", "fsl-core", runner))
	cat.MustRegister(apt.NewPackageUnit("psychopy", "psychopy", runner))

	// Installer-driven tools.
	docker := script.NewCommandUnit("docker", "docker", [][]string{
		{"sh", "-c", "curl -fsSL https://get.docker.com | sudo sh"},
	}, runner)
	cat.MustRegister(docker)
	cat.MustRegister(apt.NewPackageUnit("docker-compose", "docker-compose-plugin", runner))

	cat.MustRegister(script.NewCommandUnit("miniconda", "conda", [][]string{
		{"wget", "-O", "/tmp/miniconda.sh", "https://repo.anaconda.com/miniconda/Miniconda3-latest-Linux-x86_64.sh"},
		{"bash", "/tmp/miniconda.sh", "-b"},
	}, runner))

	var matlabOpts MatlabOptions
	if err := cfg.UnitOptions("matlab", &matlabOpts); err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	cat.MustRegister(script.NewCommandUnit("matlab", "matlab", [][]string{
		{"sudo", "/opt/matlab-installer/install", "-mode", "silent", "-licensePath", matlabOpts.LicenseFile},
	}, runner))

	// Shell customizations.
	cat.MustRegister(shell.NewProfileLineUnit("afni-path", cfg.Shell.Profile,
		"export PATH=$PATH:/usr/lib/afni/bin", fs))
	cat.MustRegister(shell.NewProfileLineUnit("conda-path", cfg.Shell.Profile,
		`export PATH="$HOME/miniconda3/bin:$PATH"`, fs))

	var gitOpts git.Options
	if err := cfg.UnitOptions("git", &gitOpts); err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	cat.MustRegister(git.NewIdentityUnit("git-identity", "~/.gitconfig", gitOpts, fs))

	// Dependency units. The NeuroDebian archive must be configured before
	// any of its packages can install; the docker engine must exist before
	// the compose plugin does. Registration order is evaluation order.
	neuro := apt.NewRepoUnit("neurodebian", neuroDebianList, [][]string{
		{"sudo", "wget", "-O", neuroDebianList, "http://neuro.debian.net/lists/jammy.us-nh.full"},
		{"sudo", "apt-key", "adv", "--recv-keys", "--keyserver", "hkps://keyserver.ubuntu.com", "0xA5D32F012649A5A9"},
		{"sudo", "apt-get", "update"},
	}, fs, runner)
	cat.MustRegisterDependency(neuro,
		catalog.MustUnitID("afni"), catalog.MustUnitID("fsl"), catalog.MustUnitID("psychopy"))

	// Also directly requestable, mirroring the overlap the catalog allows.
	cat.MustRegister(neuro)

	cat.MustRegisterDependency(docker, catalog.MustUnitID("docker-compose"))

	return cat, nil
}
