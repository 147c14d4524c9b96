package domain

import "errors"

// Domain errors.
var (
	ErrNoManifest        = errors.New("pyproject.toml not found. Run shipit from the project root")
	ErrMissingTools      = errors.New("required tools are not installed")
	ErrInvalidChoice     = errors.New("invalid choice")
	ErrBuildFailed       = errors.New("build failed")
	ErrCheckFailed       = errors.New("package check failed")
	ErrUploadFailed      = errors.New("upload failed")
	ErrPublishCancelled  = errors.New("upload cancelled")
	ErrNoDistArchives    = errors.New("no distribution archives in dist (run a build first)")
	ErrUnknownTarget     = errors.New("unknown publish target")
	ErrManifestNoProject = errors.New("pyproject.toml has no [project] table")
	ErrManifestNoName    = errors.New("pyproject.toml [project] table has no name")
)
