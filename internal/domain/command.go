package domain

import "strings"

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
	Env     []string // extra KEY=VALUE entries appended to the inherited environment
}

// NewCommand creates an ExecCommand for a program with arguments.
func NewCommand(program string, args []string, dir string) ExecCommand {
	return ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// NewPythonModuleCommand creates an ExecCommand that runs a Python module
// via the interpreter's -m flag, e.g. "python3 -m build".
func NewPythonModuleCommand(python, module string, args ...string) ExecCommand {
	return ExecCommand{
		Program: python,
		Args:    append([]string{"-m", module}, args...),
	}
}

// String returns the command line as it would appear in a shell,
// used for "Running: ..." status lines.
func (c ExecCommand) String() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// CommandResult holds the captured outcome of an executed command.
// A non-zero exit status is data, not an error: spawn failures are the
// only condition reported through an error return.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}
