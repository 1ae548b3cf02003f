// Package ports defines the interfaces rigup uses to talk to the host.
package ports

import (
	"context"
)

// CommandResult holds the outcome of a single host command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandCall records one command invocation, for inspection in tests.
type CommandCall struct {
	Command string
	Args    []string
}

// CommandRunner executes host commands. A non-zero exit code is reported
// through CommandResult, not as an error; errors are reserved for failures
// to run the command at all (missing binary, cancelled context).
type CommandRunner interface {
	Run(ctx context.Context, command string, args ...string) (CommandResult, error)

	// LookPath reports whether a binary is present on PATH.
	LookPath(binary string) bool
}
