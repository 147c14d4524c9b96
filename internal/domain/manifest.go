package domain

import "fmt"

// ManifestFileName is the marker file identifying the project root.
const ManifestFileName = "pyproject.toml"

// Default tool settings applied when pyproject.toml has no [tool.shipit] table.
const (
	DefaultPython            = "python3"
	DefaultStagingRepository = "testpypi"
)

// Manifest holds the subset of pyproject.toml that shipit needs:
// project identity plus the optional [tool.shipit] table.
type Manifest struct {
	// Name is the distribution name from [project].
	Name string
	// Version is the declared version from [project]. May be empty when
	// the project uses dynamic versioning.
	Version string
	// Python is the interpreter used for build/twine subprocesses.
	Python string
	// StagingRepository is the twine repository name for staging uploads.
	StagingRepository string
}

// PublishTarget identifies the package index an upload goes to.
type PublishTarget int

// Publish targets.
const (
	TargetStaging PublishTarget = iota + 1
	TargetProduction
)

// String returns the target name used in CLI arguments and messages.
func (t PublishTarget) String() string {
	switch t {
	case TargetStaging:
		return "TestPyPI"
	case TargetProduction:
		return "PyPI"
	default:
		return "unknown"
	}
}

// ProjectURL returns the index page for the project on the target.
func (m *Manifest) ProjectURL(target PublishTarget) string {
	if target == TargetStaging {
		return fmt.Sprintf("https://test.pypi.org/project/%s/", m.Name)
	}
	return fmt.Sprintf("https://pypi.org/project/%s/", m.Name)
}

// InstallHint returns the pip command users run to install from the target.
func (m *Manifest) InstallHint(target PublishTarget) string {
	if target == TargetStaging {
		return fmt.Sprintf("pip install -i https://test.pypi.org/simple/ %s", m.Name)
	}
	return fmt.Sprintf("pip install %s", m.Name)
}
