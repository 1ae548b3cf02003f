// Package mocks provides test doubles for the ports interfaces.
package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rigup-sh/rigup/internal/ports"
)

// CommandRunner is a keyed test double for ports.CommandRunner.
type CommandRunner struct {
	mu       sync.RWMutex
	results  map[string]ports.CommandResult
	errors   map[string]error
	binaries map[string]bool
	calls    []ports.CommandCall
}

// NewCommandRunner creates a CommandRunner mock.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{
		results:  make(map[string]ports.CommandResult),
		errors:   make(map[string]error),
		binaries: make(map[string]bool),
	}
}

// AddResult registers the result for a command invocation.
func (m *CommandRunner) AddResult(command string, args []string, result ports.CommandResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[buildKey(command, args)] = result
}

// AddError registers an invocation that fails to run at all.
func (m *CommandRunner) AddError(command string, args []string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[buildKey(command, args)] = err
}

// AddBinary marks a binary as present on PATH.
func (m *CommandRunner) AddBinary(binary string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.binaries[binary] = true
}

// Run returns the registered result for the invocation.
func (m *CommandRunner) Run(_ context.Context, command string, args ...string) (ports.CommandResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ports.CommandCall{Command: command, Args: args})
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	key := buildKey(command, args)
	if err, ok := m.errors[key]; ok {
		return ports.CommandResult{}, err
	}
	if result, ok := m.results[key]; ok {
		return result, nil
	}
	return ports.CommandResult{}, fmt.Errorf("no mock result for command: %s %v", command, args)
}

// LookPath reports whether the binary was registered with AddBinary.
func (m *CommandRunner) LookPath(binary string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.binaries[binary]
}

// Calls returns a copy of all recorded invocations.
func (m *CommandRunner) Calls() []ports.CommandCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	calls := make([]ports.CommandCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

func buildKey(command string, args []string) string {
	return command + ":" + strings.Join(args, ":")
}

var _ ports.CommandRunner = (*CommandRunner)(nil)
