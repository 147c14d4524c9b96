package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/pyframe/shipit/internal/domain"
)

// CleanArtifactsInput contains the parameters for artifact cleanup.
type CleanArtifactsInput struct {
	Dir string // Project root directory (required)
}

// CleanArtifactsOutput contains the result of artifact cleanup.
type CleanArtifactsOutput struct {
	Removed []string // Paths that were removed, relative to the project root
}

// CleanArtifacts is the use case for removing previous build output.
type CleanArtifacts struct {
	cleaner domain.ArtifactCleaner
	out     io.Writer
}

// NewCleanArtifacts creates a new CleanArtifacts use case.
func NewCleanArtifacts(cleaner domain.ArtifactCleaner, out io.Writer) *CleanArtifacts {
	return &CleanArtifacts{
		cleaner: cleaner,
		out:     out,
	}
}

// Execute removes the build artifact locations. Cleaning is idempotent and
// cannot fail the workflow on missing paths.
func (uc *CleanArtifacts) Execute(_ context.Context, in CleanArtifactsInput) (*CleanArtifactsOutput, error) {
	fmt.Fprintln(uc.out, "Cleaning build artifacts...")

	removed, err := uc.cleaner.Clean(in.Dir)
	if err != nil {
		return nil, fmt.Errorf("clean artifacts: %w", err)
	}
	for _, path := range removed {
		fmt.Fprintf(uc.out, "  removed %s\n", path)
	}

	return &CleanArtifactsOutput{Removed: removed}, nil
}
