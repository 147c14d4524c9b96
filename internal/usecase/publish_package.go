package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/pyframe/shipit/internal/domain"
)

// PublishPackageInput contains the parameters for an upload.
type PublishPackageInput struct {
	Dir    string               // Project root directory (required)
	Target domain.PublishTarget // Index to upload to (required)
}

// PublishPackageOutput contains the result of an upload.
type PublishPackageOutput struct {
	ProjectURL  string // Index page for the published project
	InstallHint string // pip command for installing from the target index
}

// PublishPackage is the use case for uploading built archives to a package
// index. It assumes a successful build pipeline has already populated dist.
type PublishPackage struct {
	executor domain.CommandExecutor
	manifest *domain.Manifest
	env      []string
	out      io.Writer
	errOut   io.Writer
}

// NewPublishPackage creates a new PublishPackage use case.
// env holds extra KEY=VALUE entries, typically twine credentials from the
// project's .env file, passed to the upload subprocess.
func NewPublishPackage(executor domain.CommandExecutor, manifest *domain.Manifest, env []string, out, errOut io.Writer) *PublishPackage {
	return &PublishPackage{
		executor: executor,
		manifest: manifest,
		env:      env,
		out:      out,
		errOut:   errOut,
	}
}

// Execute uploads dist/* to the target index via twine. The staging target
// selects the configured repository with twine's --repository flag. A failed
// upload returns ErrUploadFailed; the URL lines are printed only on success.
func (uc *PublishPackage) Execute(ctx context.Context, in PublishPackageInput) (*PublishPackageOutput, error) {
	var cmd domain.ExecCommand
	switch in.Target {
	case domain.TargetStaging:
		cmd = domain.NewPythonModuleCommand(uc.manifest.Python, "twine",
			"upload", "--repository", uc.manifest.StagingRepository, distGlob)
	case domain.TargetProduction:
		cmd = domain.NewPythonModuleCommand(uc.manifest.Python, "twine", "upload", distGlob)
	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownTarget, in.Target)
	}
	cmd.Dir = in.Dir
	cmd.Env = uc.env

	fmt.Fprintf(uc.out, "Uploading to %s...\n", in.Target)
	ok, err := runCommand(ctx, uc.executor, uc.out, uc.errOut, cmd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: upload to %s", domain.ErrUploadFailed, in.Target)
	}

	result := &PublishPackageOutput{
		ProjectURL:  uc.manifest.ProjectURL(in.Target),
		InstallHint: uc.manifest.InstallHint(in.Target),
	}
	fmt.Fprintf(uc.out, "Successfully uploaded to %s.\n", in.Target)
	fmt.Fprintf(uc.out, "Check your package at: %s\n", result.ProjectURL)
	fmt.Fprintf(uc.out, "Install with: %s\n", result.InstallHint)
	return result, nil
}
