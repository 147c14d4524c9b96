// Package main is the entry point for the shipit CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pyframe/shipit/internal/app"
	"github.com/pyframe/shipit/internal/cli"
	"github.com/pyframe/shipit/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// The tool operates on the current working directory; there is no
	// search of parent directories for the project root.
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		// Allow help/version to work outside a project root
		if errors.Is(err, domain.ErrNoManifest) {
			return runWithoutContainer(err)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles cases where pyproject.toml is not found.
// Help and version output still work; everything else reports the
// missing manifest.
func runWithoutContainer(manifestErr error) error {
	if canRunWithoutManifest(os.Args[1:]) {
		rootCmd := cli.NewRootCommand(nil, version)
		return rootCmd.Execute()
	}
	return manifestErr
}

func canRunWithoutManifest(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "help", "completion":
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
