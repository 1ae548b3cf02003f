package apt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/rigup-sh/rigup/internal/ports"
	"github.com/rigup-sh/rigup/internal/provider/apt"
	"github.com/rigup-sh/rigup/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dpkgFormat = "-f=${Package}\t${Version}\t${db:Status-Status}\n"

func TestPackageUnit_ID(t *testing.T) {
	t.Parallel()

	unit := apt.NewPackageUnit("fsl", "fsl-core", mocks.NewCommandRunner())
	assert.Equal(t, "fsl", unit.ID().String())
	assert.Equal(t, "fsl-core", unit.Package())
}

func TestPackageUnit_Check_Installed(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("dpkg-query", []string{"-W", dpkgFormat, "afni"}, ports.CommandResult{
		ExitCode: 0,
		Stdout:   "afni\t24.0.01\tinstalled",
	})

	unit := apt.NewPackageUnit("afni", "afni", runner)
	status, err := unit.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, catalog.StatusSatisfied, status)
}

func TestPackageUnit_Check_NotInstalled(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("dpkg-query", []string{"-W", dpkgFormat, "afni"}, ports.CommandResult{
		ExitCode: 1,
		Stderr:   "dpkg-query: no packages found matching afni",
	})

	unit := apt.NewPackageUnit("afni", "afni", runner)
	status, err := unit.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, catalog.StatusNeedsApply, status)
}

func TestPackageUnit_Check_RunnerError(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddError("dpkg-query", []string{"-W", dpkgFormat, "afni"}, errors.New("dpkg missing"))

	unit := apt.NewPackageUnit("afni", "afni", runner)
	status, err := unit.Check(context.Background())

	require.Error(t, err)
	assert.Equal(t, catalog.StatusUnknown, status)
}

func TestPackageUnit_Apply(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("sudo", []string{"apt-get", "install", "-y", "fsl-core"}, ports.CommandResult{ExitCode: 0})

	unit := apt.NewPackageUnit("fsl", "fsl-core", runner)
	require.NoError(t, unit.Apply(context.Background()))

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "sudo", calls[0].Command)
}

func TestPackageUnit_Apply_Failure(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("sudo", []string{"apt-get", "install", "-y", "fsl-core"}, ports.CommandResult{
		ExitCode: 100,
		Stderr:   "E: Unable to locate package fsl-core\n",
	})

	unit := apt.NewPackageUnit("fsl", "fsl-core", runner)
	err := unit.Apply(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unable to locate package")
}

func TestRepoUnit_Check(t *testing.T) {
	t.Parallel()

	fs := mocks.NewFileSystem()
	unit := apt.NewRepoUnit("neurodebian", "/etc/apt/sources.list.d/neurodebian.sources.list",
		nil, fs, mocks.NewCommandRunner())

	status, err := unit.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusNeedsApply, status)

	fs.Seed("/etc/apt/sources.list.d/neurodebian.sources.list", []byte("deb http://neuro.debian.net/debian jammy main\n"))

	status, err = unit.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusSatisfied, status)
}

func TestRepoUnit_Apply_RunsCommandsInOrder(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("sudo", []string{"wget", "-O", "/etc/apt/sources.list.d/neurodebian.sources.list",
		"http://neuro.debian.net/lists/jammy.us-nh.full"}, ports.CommandResult{ExitCode: 0})
	runner.AddResult("sudo", []string{"apt-get", "update"}, ports.CommandResult{ExitCode: 0})

	unit := apt.NewRepoUnit("neurodebian", "/etc/apt/sources.list.d/neurodebian.sources.list",
		[][]string{
			{"sudo", "wget", "-O", "/etc/apt/sources.list.d/neurodebian.sources.list", "http://neuro.debian.net/lists/jammy.us-nh.full"},
			{"sudo", "apt-get", "update"},
		}, mocks.NewFileSystem(), runner)

	require.NoError(t, unit.Apply(context.Background()))

	calls := runner.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "wget", calls[0].Args[0])
	assert.Equal(t, "apt-get", calls[1].Args[0])
}

func TestRepoUnit_Apply_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("sudo", []string{"apt-get", "update"}, ports.CommandResult{
		ExitCode: 100,
		Stderr:   "E: repository unreachable\n",
	})

	unit := apt.NewRepoUnit("neurodebian", "/etc/apt/sources.list.d/neurodebian.sources.list",
		[][]string{
			{"sudo", "apt-get", "update"},
			{"sudo", "apt-get", "install", "-y", "neurodebian-keyring"},
		}, mocks.NewFileSystem(), runner)

	err := unit.Apply(context.Background())
	require.Error(t, err)
	assert.Len(t, runner.Calls(), 1, "second command must not run after a failure")
}
