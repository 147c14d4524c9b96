package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/pyframe/shipit/internal/domain"
)

// requiredTools are the Python modules the workflow depends on.
var requiredTools = []string{"build", "twine"}

// CheckToolsInput contains the parameters for the requirement check.
type CheckToolsInput struct {
	Tools []string // Tool list override; defaults to build and twine
}

// CheckToolsOutput contains the result of the requirement check.
type CheckToolsOutput struct {
	Missing []string // Tools that could not be resolved
}

// CheckTools is the use case for verifying that the build and upload tools
// are importable before any workflow step runs.
type CheckTools struct {
	executor domain.CommandExecutor
	out      io.Writer
	python   string
}

// NewCheckTools creates a new CheckTools use case.
func NewCheckTools(executor domain.CommandExecutor, python string, out io.Writer) *CheckTools {
	return &CheckTools{
		executor: executor,
		python:   python,
		out:      out,
	}
}

// Execute resolves every required tool, printing one status line per tool.
// All tools are checked before returning; if any is missing the returned
// error wraps ErrMissingTools.
func (uc *CheckTools) Execute(ctx context.Context, in CheckToolsInput) (*CheckToolsOutput, error) {
	tools := in.Tools
	if len(tools) == 0 {
		tools = requiredTools
	}

	fmt.Fprintln(uc.out, "Checking requirements...")

	var missing []string
	for _, tool := range tools {
		cmd := domain.NewCommand(uc.python, []string{"-c", "import " + tool}, "")
		result, err := uc.executor.Run(ctx, cmd)
		if err != nil || !result.Success() {
			fmt.Fprintf(uc.out, "  %s is not installed (install with: %s -m pip install %s)\n", tool, uc.python, tool)
			missing = append(missing, tool)
			continue
		}
		fmt.Fprintf(uc.out, "  %s is installed\n", tool)
	}

	out := &CheckToolsOutput{Missing: missing}
	if len(missing) > 0 {
		return out, fmt.Errorf("%w: %v", domain.ErrMissingTools, missing)
	}
	return out, nil
}
