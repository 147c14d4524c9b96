package domain

import "context"

// CommandExecutor runs external commands and captures their output.
type CommandExecutor interface {
	// Run executes the command and blocks until it exits. A non-zero exit
	// status is reported through CommandResult.ExitCode; the error return
	// covers only failures to spawn the process.
	Run(ctx context.Context, cmd ExecCommand) (CommandResult, error)
}

// ArtifactCleaner removes build artifacts from a project directory.
type ArtifactCleaner interface {
	// Clean removes the build output directory, the distribution output
	// directory and any egg-info directories found directly under dir.
	// Missing paths are not an error. Returns the paths actually removed.
	Clean(dir string) ([]string, error)
}

// ManifestLoader reads the project manifest from a directory.
type ManifestLoader interface {
	// Load parses pyproject.toml in dir. Returns ErrNoManifest when the
	// file does not exist.
	Load(dir string) (*Manifest, error)
}

// RepoInspector reports the state of the git working tree, if any.
type RepoInspector interface {
	// Inspect examines the repository containing dir. Found is false when
	// dir is not inside a git repository; that is not an error.
	Inspect(dir string) (RepoState, error)
}

// RepoState describes the git working tree at publish time.
type RepoState struct {
	Branch string // current branch name, empty when detached
	Found  bool   // dir is inside a git repository
	Dirty  bool   // working tree has uncommitted changes
}
