// Package cli provides the command-line interface for shipit.
package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pyframe/shipit/internal/app"
	"github.com/pyframe/shipit/internal/domain"
	"github.com/pyframe/shipit/internal/tui/menu"
	"github.com/spf13/cobra"
)

// launchMenuFunc is a function variable for launching the TTY menu picker,
// allowing it to be mocked in tests. The boolean reports whether the user
// quit the menu without choosing.
var launchMenuFunc = launchMenu

// NewRootCommand creates the root command for shipit.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "shipit",
		Short: "Build and publish helper for Python packages",
		Long: `shipit automates the build-and-publish workflow for a Python package:
it cleans previous build artifacts, builds distribution archives with
"python -m build", validates them with "twine check", and uploads them
to TestPyPI or PyPI.

Run without arguments for the interactive menu, or use the subcommands
directly. shipit must run from the project root (the directory that
contains pyproject.toml).`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return domain.ErrNoManifest
			}
			return runInteractive(c, cmd)
		},
	}

	root.AddCommand(
		newBuildCommand(c),
		newPublishCommand(c),
		newCleanCommand(c),
		newDistCommand(c),
	)

	return root
}

// interactiveTerminal reports whether the command's input is a terminal,
// in which case the menu is shown as a full picker instead of a numbered
// prompt.
func interactiveTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// launchMenu shows the TTY menu picker and returns the selected choice.
func launchMenu(m *domain.Manifest) (domain.MenuChoice, bool, error) {
	return menu.Run(m)
}
