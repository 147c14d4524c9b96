package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pyframe/shipit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir string) {
	t.Helper()
	content := "[project]\nname = \"pyframe\"\nversion = \"0.1.0\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(content), 0o644))
}

func TestNew(t *testing.T) {
	t.Run("wires ports and loads the manifest", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir)

		c, err := New(dir)

		require.NoError(t, err)
		assert.NotNil(t, c.Executor)
		assert.NotNil(t, c.Cleaner)
		assert.NotNil(t, c.Repo)
		assert.NotNil(t, c.Logger)
		assert.Equal(t, "pyframe", c.Manifest.Name)
		assert.Equal(t, dir, c.Config.ProjectDir)
	})

	t.Run("missing manifest fails before wiring", func(t *testing.T) {
		_, err := New(t.TempDir())
		assert.ErrorIs(t, err, domain.ErrNoManifest)
	})

	t.Run("reads .env for the upload environment", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
			[]byte("SHIPIT_TEST_CRED=token\nSHIPIT_TEST_USER=__token__\n"), 0o600))

		c, err := New(dir)

		require.NoError(t, err)
		assert.Equal(t, []string{"SHIPIT_TEST_CRED=token", "SHIPIT_TEST_USER=__token__"}, c.Env)
		_, set := os.LookupEnv("SHIPIT_TEST_CRED")
		assert.False(t, set, "the process environment is left alone")
	})

	t.Run("existing environment wins over .env", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SHIPIT_TEST_KEEP=file\n"), 0o600))
		t.Setenv("SHIPIT_TEST_KEEP", "process")

		c, err := New(dir)

		require.NoError(t, err)
		assert.NotContains(t, c.Env, "SHIPIT_TEST_KEEP=file")
	})

	t.Run("no .env file", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir)

		c, err := New(dir)

		require.NoError(t, err)
		assert.Empty(t, c.Env)
	})
}

func TestLogLevel(t *testing.T) {
	t.Setenv("SHIPIT_LOG_LEVEL", "debug")
	assert.Equal(t, "DEBUG", logLevel().String())

	t.Setenv("SHIPIT_LOG_LEVEL", "")
	assert.Equal(t, "INFO", logLevel().String())
}
