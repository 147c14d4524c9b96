package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/pyframe/shipit/internal/domain"
)

// distGlob is passed through to twine, which expands it itself.
const distGlob = "dist/*"

// BuildPackageInput contains the parameters for the build pipeline.
type BuildPackageInput struct {
	Dir string // Project root directory (required)
}

// BuildPackageOutput contains the result of the build pipeline.
type BuildPackageOutput struct {
	Cleaned []string // Artifact paths removed before the build
}

// BuildPackage is the use case for the clean-build-validate pipeline.
// The pipeline is single-shot: the first failing step aborts it, and a
// failed run restarts from the clean step on the next invocation.
type BuildPackage struct {
	executor domain.CommandExecutor
	cleaner  domain.ArtifactCleaner
	manifest *domain.Manifest
	out      io.Writer
	errOut   io.Writer
}

// NewBuildPackage creates a new BuildPackage use case.
func NewBuildPackage(executor domain.CommandExecutor, cleaner domain.ArtifactCleaner, manifest *domain.Manifest, out, errOut io.Writer) *BuildPackage {
	return &BuildPackage{
		executor: executor,
		cleaner:  cleaner,
		manifest: manifest,
		out:      out,
		errOut:   errOut,
	}
}

// Execute runs clean, build and check in order. Cleaning cannot fail the
// pipeline; a failed build returns ErrBuildFailed without running the
// check, and a failed check returns ErrCheckFailed.
func (uc *BuildPackage) Execute(ctx context.Context, in BuildPackageInput) (*BuildPackageOutput, error) {
	clean := NewCleanArtifacts(uc.cleaner, uc.out)
	cleaned, err := clean.Execute(ctx, CleanArtifactsInput{Dir: in.Dir})
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(uc.out, "Building package...")
	buildCmd := domain.NewPythonModuleCommand(uc.manifest.Python, "build")
	buildCmd.Dir = in.Dir
	ok, err := runCommand(ctx, uc.executor, uc.out, uc.errOut, buildCmd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrBuildFailed
	}

	fmt.Fprintln(uc.out, "Checking package...")
	checkCmd := domain.NewPythonModuleCommand(uc.manifest.Python, "twine", "check", distGlob)
	checkCmd.Dir = in.Dir
	ok, err = runCommand(ctx, uc.executor, uc.out, uc.errOut, checkCmd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCheckFailed
	}

	fmt.Fprintln(uc.out, "Package built and checked successfully.")
	return &BuildPackageOutput{Cleaned: cleaned.Removed}, nil
}
