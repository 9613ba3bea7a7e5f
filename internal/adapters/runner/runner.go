// Package runner provides process execution on top of os/exec.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/zerr"
)

// killGracePeriod is how long a process gets between SIGKILL being sent on
// cancellation and its I/O pipes being forcibly closed.
const killGracePeriod = 5 * time.Second

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the command described by spec and blocks until it exits.
// The spec must carry a positive timeout; on timeout the process is killed
// and domain.ErrProcessTimeout is returned. On a non-zero exit
// domain.ErrNonZeroExit carries the exit code. Captured output is returned
// even when the command fails.
func (r *Runner) Run(ctx context.Context, spec domain.ProcessSpec) (*domain.ProcessResult, error) {
	if spec.Timeout <= 0 {
		return nil, domain.Detail(domain.ErrInvalidTimeout, "command", spec.Command)
	}

	ctx, cancel := context.WithTimeout(ctx, spec.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, spec.Command, spec.Args...) //nolint:gosec // user provided command
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)
	cmd.WaitDelay = killGracePeriod

	var stdout, stderr bytes.Buffer
	switch spec.Stdio {
	case domain.StdioCapture:
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	default:
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	result := &domain.ProcessResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			timeoutErr := domain.Detail(domain.ErrProcessTimeout, "command", spec.Command)
			return result, zerr.With(timeoutErr, "timeout", spec.Timeout.String())
		}
		return result, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitFailure := domain.Detail(domain.ErrNonZeroExit, "command", spec.Command)
		return result, zerr.With(exitFailure, "exit_code", exitErr.ExitCode())
	}

	// Start failures: executable missing, permission denied, bad dir.
	return result, errors.Join(
		domain.Detail(domain.ErrProcessSpawn, "command", spec.Command),
		err,
	)
}
