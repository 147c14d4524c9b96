package executor

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/pyframe/shipit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()
	ctx := context.Background()

	t.Run("captures stdout on success", func(t *testing.T) {
		cmd := domain.NewCommand("sh", []string{"-c", "echo hello"}, "")
		result, err := client.Run(ctx, cmd)
		require.NoError(t, err)
		assert.True(t, result.Success())
		assert.Equal(t, "hello\n", result.Stdout)
		assert.Empty(t, result.Stderr)
	})

	t.Run("captures stderr separately", func(t *testing.T) {
		cmd := domain.NewCommand("sh", []string{"-c", "echo out; echo err >&2"}, "")
		result, err := client.Run(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "out\n", result.Stdout)
		assert.Equal(t, "err\n", result.Stderr)
	})

	t.Run("non-zero exit is data, not an error", func(t *testing.T) {
		cmd := domain.NewCommand("sh", []string{"-c", "echo boom >&2; exit 3"}, "")
		result, err := client.Run(ctx, cmd)
		require.NoError(t, err)
		assert.False(t, result.Success())
		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "boom\n", result.Stderr)
	})

	t.Run("runs in the specified directory", func(t *testing.T) {
		dir := t.TempDir()
		cmd := domain.NewCommand("pwd", nil, dir)
		result, err := client.Run(ctx, cmd)
		require.NoError(t, err)
		assert.Contains(t, strings.TrimSpace(result.Stdout), dir)
	})

	t.Run("passes extra environment entries", func(t *testing.T) {
		cmd := domain.ExecCommand{
			Program: "sh",
			Args:    []string{"-c", "printf %s \"$SHIPIT_TEST_VAR\""},
			Env:     []string{"SHIPIT_TEST_VAR=42"},
		}
		result, err := client.Run(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "42", result.Stdout)
	})

	t.Run("spawn failure returns an error", func(t *testing.T) {
		cmd := domain.NewCommand("nonexistent-command-xyz", nil, "")
		_, err := client.Run(ctx, cmd)
		require.Error(t, err)
	})
}
