// Package cleaner removes build artifacts from a project directory.
package cleaner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pyframe/shipit/internal/domain"
)

// Artifact locations removed before each build.
const (
	buildDir = "build"
	distDir  = "dist"
)

// eggInfoGlob matches metadata cache directories directly under the
// project root. The scan is intentionally non-recursive.
const eggInfoGlob = "*.egg-info"

// Client implements domain.ArtifactCleaner.
type Client struct{}

// NewClient creates a new artifact cleaner client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.ArtifactCleaner interface.
var _ domain.ArtifactCleaner = (*Client)(nil)

// Clean removes build/, dist/ and any *.egg-info directories directly under
// dir. Removing a path that does not exist is a no-op, which makes the
// operation idempotent. Returns the paths actually removed.
func (c *Client) Clean(dir string) ([]string, error) {
	var removed []string

	for _, name := range []string{buildDir, distDir} {
		path := filepath.Join(dir, name)
		ok, err := removeIfExists(path)
		if err != nil {
			return removed, err
		}
		if ok {
			removed = append(removed, name)
		}
	}

	matches, err := filepath.Glob(filepath.Join(dir, eggInfoGlob))
	if err != nil {
		return removed, fmt.Errorf("scan egg-info directories: %w", err)
	}
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		if _, err := removeIfExists(path); err != nil {
			return removed, err
		}
		removed = append(removed, filepath.Base(path))
	}

	return removed, nil
}

// removeIfExists removes path recursively and reports whether it existed.
func removeIfExists(path string) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}
	if err := os.RemoveAll(path); err != nil {
		return false, fmt.Errorf("remove %s: %w", path, err)
	}
	return true, nil
}
