// Package command provides the os/exec-backed command runner.
package command

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/rigup-sh/rigup/internal/ports"
)

// ExecRunner runs real host commands.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes a command and captures its output. A non-zero exit code is
// returned in the result, not as an error.
func (r *ExecRunner) Run(ctx context.Context, command string, args ...string) (ports.CommandResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}

// LookPath reports whether a binary is on PATH.
func (r *ExecRunner) LookPath(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

var _ ports.CommandRunner = (*ExecRunner)(nil)
