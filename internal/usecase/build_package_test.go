package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/pyframe/shipit/internal/domain"
	"github.com/pyframe/shipit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManifest() *domain.Manifest {
	return &domain.Manifest{
		Name:              "pyframe",
		Version:           "0.1.0",
		Python:            "python3",
		StagingRepository: "testpypi",
	}
}

func TestBuildPackage_Execute_Success(t *testing.T) {
	exe := testutil.NewMockExecutor()
	cleaner := &testutil.MockCleaner{RemovedVal: []string{"dist"}}
	var out, errOut bytes.Buffer
	uc := NewBuildPackage(exe, cleaner, testManifest(), &out, &errOut)

	result, err := uc.Execute(context.Background(), BuildPackageInput{Dir: "/proj"})

	require.NoError(t, err)
	assert.Equal(t, []string{"dist"}, result.Cleaned)
	assert.Equal(t, []string{"/proj"}, cleaner.Dirs, "clean runs before the build")
	assert.Equal(t, []string{
		"python3 -m build",
		"python3 -m twine check dist/*",
	}, exe.CommandLines())
	assert.Contains(t, out.String(), "Package built and checked successfully.")
	assert.Empty(t, errOut.String())
}

func TestBuildPackage_Execute_BuildFailure_SkipsCheck(t *testing.T) {
	exe := testutil.NewMockExecutor()
	exe.FailOn("python3 -m build", "error: invalid metadata")
	cleaner := &testutil.MockCleaner{}
	var out, errOut bytes.Buffer
	uc := NewBuildPackage(exe, cleaner, testManifest(), &out, &errOut)

	_, err := uc.Execute(context.Background(), BuildPackageInput{Dir: "/proj"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Equal(t, []string{"python3 -m build"}, exe.CommandLines(), "check must not run after a failed build")
	assert.Contains(t, errOut.String(), "error: invalid metadata")
}

func TestBuildPackage_Execute_CheckFailure(t *testing.T) {
	exe := testutil.NewMockExecutor()
	exe.FailOn("python3 -m twine check dist/*", "warning: long_description is invalid")
	cleaner := &testutil.MockCleaner{}
	var out, errOut bytes.Buffer
	uc := NewBuildPackage(exe, cleaner, testManifest(), &out, &errOut)

	_, err := uc.Execute(context.Background(), BuildPackageInput{Dir: "/proj"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCheckFailed)
	assert.Len(t, exe.Invocations, 2)
	assert.Contains(t, errOut.String(), "long_description is invalid")
	assert.NotContains(t, out.String(), "successfully")
}

func TestBuildPackage_Execute_UsesConfiguredPython(t *testing.T) {
	exe := testutil.NewMockExecutor()
	m := testManifest()
	m.Python = "python3.12"
	var out, errOut bytes.Buffer
	uc := NewBuildPackage(exe, &testutil.MockCleaner{}, m, &out, &errOut)

	_, err := uc.Execute(context.Background(), BuildPackageInput{Dir: "/proj"})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"python3.12 -m build",
		"python3.12 -m twine check dist/*",
	}, exe.CommandLines())
}
