package ports

import (
	"context"

	"go.trai.ch/freighter/internal/core/domain"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

// ProcessRunner executes external commands.
//
// Run blocks until the process exits, the spec timeout elapses, or ctx is
// cancelled. On timeout or cancellation the process is killed and an error
// wrapping domain.ErrProcessTimeout (or ctx.Err()) is returned. A non-zero
// exit wraps domain.ErrNonZeroExit with the exit code attached.
type ProcessRunner interface {
	Run(ctx context.Context, spec domain.ProcessSpec) (*domain.ProcessResult, error)
}
