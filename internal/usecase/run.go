// Package usecase implements the application workflows.
package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pyframe/shipit/internal/domain"
)

// runCommand executes cmd through the executor, echoing the invocation
// before it runs, captured stdout on success and captured stderr on
// failure. The boolean reports command success; the error return covers
// only spawn failures.
func runCommand(ctx context.Context, exe domain.CommandExecutor, out, errOut io.Writer, cmd domain.ExecCommand) (bool, error) {
	fmt.Fprintf(out, "Running: %s\n", cmd)

	result, err := exe.Run(ctx, cmd)
	if err != nil {
		return false, fmt.Errorf("run %s: %w", cmd.Program, err)
	}

	if !result.Success() {
		fmt.Fprintf(errOut, "Command failed: %s\n", cmd)
		writeOutput(errOut, result.Stderr)
		return false, nil
	}

	writeOutput(out, result.Stdout)
	return true, nil
}

// writeOutput writes captured subprocess output, ensuring a trailing newline.
func writeOutput(w io.Writer, text string) {
	if text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(w, text)
}
