package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManifest_ProjectURL(t *testing.T) {
	m := &Manifest{Name: "pyframe"}

	assert.Equal(t, "https://test.pypi.org/project/pyframe/", m.ProjectURL(TargetStaging))
	assert.Equal(t, "https://pypi.org/project/pyframe/", m.ProjectURL(TargetProduction))
}

func TestManifest_InstallHint(t *testing.T) {
	m := &Manifest{Name: "pyframe"}

	assert.Equal(t, "pip install -i https://test.pypi.org/simple/ pyframe", m.InstallHint(TargetStaging))
	assert.Equal(t, "pip install pyframe", m.InstallHint(TargetProduction))
}

func TestExecCommand_String(t *testing.T) {
	cmd := NewPythonModuleCommand("python3", "twine", "check", "dist/*")
	assert.Equal(t, "python3 -m twine check dist/*", cmd.String())
}

func TestCommandResult_Success(t *testing.T) {
	assert.True(t, CommandResult{}.Success())
	assert.False(t, CommandResult{ExitCode: 1}.Success())
}
