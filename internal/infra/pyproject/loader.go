// Package pyproject reads the project manifest (pyproject.toml).
package pyproject

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pyframe/shipit/internal/domain"
)

// Loader implements domain.ManifestLoader.
type Loader struct{}

// NewLoader creates a new manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Ensure Loader implements domain.ManifestLoader.
var _ domain.ManifestLoader = (*Loader)(nil)

// manifestFile mirrors the pyproject.toml tables shipit reads.
// Unknown keys are ignored by the TOML decoder.
type manifestFile struct {
	Project *struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"project"`
	Tool struct {
		Shipit struct {
			Python     string `toml:"python"`
			Repository string `toml:"repository"`
		} `toml:"shipit"`
	} `toml:"tool"`
}

// Exists reports whether the manifest marker file is present in dir.
func Exists(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.ManifestFileName))
	return err == nil && !info.IsDir()
}

// Load parses pyproject.toml in dir. The [project] name is required; the
// [tool.shipit] table is optional and falls back to defaults.
func (l *Loader) Load(dir string) (*domain.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNoManifest
		}
		return nil, fmt.Errorf("read %s: %w", domain.ManifestFileName, err)
	}

	var file manifestFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", domain.ManifestFileName, err)
	}

	if file.Project == nil {
		return nil, domain.ErrManifestNoProject
	}
	if file.Project.Name == "" {
		return nil, domain.ErrManifestNoName
	}

	m := &domain.Manifest{
		Name:              file.Project.Name,
		Version:           file.Project.Version,
		Python:            file.Tool.Shipit.Python,
		StagingRepository: file.Tool.Shipit.Repository,
	}
	if m.Python == "" {
		m.Python = domain.DefaultPython
	}
	if m.StagingRepository == "" {
		m.StagingRepository = domain.DefaultStagingRepository
	}
	return m, nil
}
