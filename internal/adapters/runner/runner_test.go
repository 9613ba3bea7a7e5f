//go:build unix

package runner_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/freighter/internal/adapters/runner"
	"go.trai.ch/freighter/internal/core/domain"
)

func TestRunner_CapturesOutput(t *testing.T) {
	r := runner.NewRunner()

	result, err := r.Run(context.Background(), domain.ProcessSpec{
		Command: "sh",
		Args:    []string{"-c", "echo out; echo err >&2"},
		Timeout: time.Minute,
		Stdio:   domain.StdioCapture,
	})

	require.NoError(t, err)
	assert.Equal(t, "out\n", string(result.Stdout))
	assert.Equal(t, "err\n", string(result.Stderr))
}

func TestRunner_SetsWorkingDirAndEnv(t *testing.T) {
	r := runner.NewRunner()
	dir := t.TempDir()

	result, err := r.Run(context.Background(), domain.ProcessSpec{
		Command: "sh",
		Args:    []string{"-c", "pwd; printf %s \"$EXTRA\""},
		Dir:     dir,
		Env:     []string{"EXTRA=value"},
		Timeout: time.Minute,
		Stdio:   domain.StdioCapture,
	})

	require.NoError(t, err)
	assert.Contains(t, string(result.Stdout), dir)
	assert.Contains(t, string(result.Stdout), "value")
}

func TestRunner_NonZeroExit(t *testing.T) {
	r := runner.NewRunner()

	result, err := r.Run(context.Background(), domain.ProcessSpec{
		Command: "sh",
		Args:    []string{"-c", "echo partial; exit 3"},
		Timeout: time.Minute,
		Stdio:   domain.StdioCapture,
	})

	assert.ErrorIs(t, err, domain.ErrNonZeroExit)
	// Output produced before the failure is still available.
	assert.Equal(t, "partial\n", string(result.Stdout))
}

func TestRunner_Timeout(t *testing.T) {
	r := runner.NewRunner()
	start := time.Now()

	_, err := r.Run(context.Background(), domain.ProcessSpec{
		Command: "sleep",
		Args:    []string{"10"},
		Timeout: 200 * time.Millisecond,
		Stdio:   domain.StdioCapture,
	})

	assert.ErrorIs(t, err, domain.ErrProcessTimeout)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunner_ContextCancellation(t *testing.T) {
	r := runner.NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	_, err := r.Run(ctx, domain.ProcessSpec{
		Command: "sleep",
		Args:    []string{"10"},
		Timeout: time.Minute,
		Stdio:   domain.StdioCapture,
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_SpawnFailure(t *testing.T) {
	r := runner.NewRunner()

	_, err := r.Run(context.Background(), domain.ProcessSpec{
		Command: "definitely-not-a-real-binary-xyz",
		Timeout: time.Minute,
		Stdio:   domain.StdioCapture,
	})

	assert.ErrorIs(t, err, domain.ErrProcessSpawn)
}

func TestRunner_RejectsNonPositiveTimeout(t *testing.T) {
	r := runner.NewRunner()
	marker := filepath.Join(t.TempDir(), "ran")

	for _, timeout := range []time.Duration{0, -time.Second} {
		_, err := r.Run(context.Background(), domain.ProcessSpec{
			Command: "touch",
			Args:    []string{marker},
			Timeout: timeout,
			Stdio:   domain.StdioCapture,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTimeout)
	}
	// Rejection happens before anything is spawned.
	assert.NoFileExists(t, marker)
}
