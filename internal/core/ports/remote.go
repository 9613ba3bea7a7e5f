package ports

import (
	"context"
	"io"

	"go.trai.ch/freighter/internal/core/domain"
)

//go:generate mockgen -source=remote.go -destination=mocks/mock_remote.go -package=mocks

// Registry is the client for the artifact registry service.
type Registry interface {
	// Push streams the artifact bytes from r to the registry in order and
	// returns the content digest the registry assigned. The stream is read
	// to EOF on success; on failure the error of the failed transfer is
	// returned and r is left unconsumed past the failure point.
	Push(ctx context.Context, r io.Reader) (string, error)

	// Close releases the underlying connection.
	Close() error
}

// ControlPlane is the client for the name binding service.
type ControlPlane interface {
	// BindName associates name with digest. A rejection by the control
	// plane wraps domain.ErrBindRejected; a transport failure wraps
	// domain.ErrBindUnreachable.
	BindName(ctx context.Context, name, digest string) error

	// Close releases the underlying connection.
	Close() error
}

// Worker is the client for the remote execution service.
type Worker interface {
	// Execute asks the worker to run the named action with the given body
	// and metadata. The returned outcome carries either the success body
	// or a structured problem; a transport failure is an error instead.
	Execute(ctx context.Context, action string, body []byte, metadata map[string]string) (*domain.ExecutionOutcome, error)

	// Close releases the underlying connection.
	Close() error
}
