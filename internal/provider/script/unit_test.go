package script_test

import (
	"context"
	"testing"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/rigup-sh/rigup/internal/ports"
	"github.com/rigup-sh/rigup/internal/provider/script"
	"github.com/rigup-sh/rigup/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandUnit_Check_BinaryPresent(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddBinary("docker")

	unit := script.NewCommandUnit("docker", "docker", nil, runner)
	status, err := unit.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, catalog.StatusSatisfied, status)
}

func TestCommandUnit_Check_BinaryMissing(t *testing.T) {
	t.Parallel()

	unit := script.NewCommandUnit("docker", "docker", nil, mocks.NewCommandRunner())
	status, err := unit.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, catalog.StatusNeedsApply, status)
}

func TestCommandUnit_Check_NoBinaryAlwaysNeedsApply(t *testing.T) {
	t.Parallel()

	unit := script.NewCommandUnit("dotfiles", "", nil, mocks.NewCommandRunner())
	status, err := unit.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, catalog.StatusNeedsApply, status)
}

func TestCommandUnit_Apply_RunsSequence(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("wget", []string{"-O", "/tmp/miniconda.sh",
		"https://repo.anaconda.com/miniconda/Miniconda3-latest-Linux-x86_64.sh"}, ports.CommandResult{ExitCode: 0})
	runner.AddResult("bash", []string{"/tmp/miniconda.sh", "-b"}, ports.CommandResult{ExitCode: 0})

	unit := script.NewCommandUnit("miniconda", "conda", [][]string{
		{"wget", "-O", "/tmp/miniconda.sh", "https://repo.anaconda.com/miniconda/Miniconda3-latest-Linux-x86_64.sh"},
		{"bash", "/tmp/miniconda.sh", "-b"},
	}, runner)

	require.NoError(t, unit.Apply(context.Background()))
	assert.Len(t, runner.Calls(), 2)
}

func TestCommandUnit_Apply_FailureStopsSequence(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("wget", []string{"-O", "/tmp/installer.sh", "https://example.org/installer.sh"},
		ports.CommandResult{ExitCode: 4, Stderr: "wget: network unreachable\n"})

	unit := script.NewCommandUnit("sometool", "sometool", [][]string{
		{"wget", "-O", "/tmp/installer.sh", "https://example.org/installer.sh"},
		{"bash", "/tmp/installer.sh"},
	}, runner)

	err := unit.Apply(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network unreachable")
	assert.Len(t, runner.Calls(), 1)
}
