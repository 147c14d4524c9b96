// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"

	"github.com/pyframe/shipit/internal/domain"
)

// MockExecutor is a spy test double for domain.CommandExecutor.
// It records every invocation and replays scripted results keyed by the
// full command line. Commands without a scripted result succeed with
// empty output.
type MockExecutor struct {
	Invocations []domain.ExecCommand
	Results     map[string]domain.CommandResult
	RunErr      error
}

// NewMockExecutor creates a new MockExecutor with initialized maps.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Results: make(map[string]domain.CommandResult),
	}
}

// Run records the invocation and returns the scripted result, if any.
func (m *MockExecutor) Run(_ context.Context, cmd domain.ExecCommand) (domain.CommandResult, error) {
	m.Invocations = append(m.Invocations, cmd)
	if m.RunErr != nil {
		return domain.CommandResult{}, m.RunErr
	}
	if result, ok := m.Results[cmd.String()]; ok {
		return result, nil
	}
	return domain.CommandResult{}, nil
}

// FailOn scripts a failing result for the given command line.
func (m *MockExecutor) FailOn(commandLine, stderr string) {
	m.Results[commandLine] = domain.CommandResult{ExitCode: 1, Stderr: stderr}
}

// CommandLines returns the recorded invocations as command-line strings.
func (m *MockExecutor) CommandLines() []string {
	lines := make([]string, 0, len(m.Invocations))
	for _, cmd := range m.Invocations {
		lines = append(lines, cmd.String())
	}
	return lines
}

// MockCleaner is a test double for domain.ArtifactCleaner.
type MockCleaner struct {
	Dirs       []string // Directories Clean was called with
	RemovedVal []string // Returned from Clean
	CleanErr   error
}

// Clean records the call and returns the configured values.
func (m *MockCleaner) Clean(dir string) ([]string, error) {
	m.Dirs = append(m.Dirs, dir)
	if m.CleanErr != nil {
		return nil, m.CleanErr
	}
	return m.RemovedVal, nil
}

// MockRepoInspector is a test double for domain.RepoInspector.
type MockRepoInspector struct {
	State      domain.RepoState
	InspectErr error
}

// Inspect returns the configured state.
func (m *MockRepoInspector) Inspect(_ string) (domain.RepoState, error) {
	if m.InspectErr != nil {
		return domain.RepoState{}, m.InspectErr
	}
	return m.State, nil
}
