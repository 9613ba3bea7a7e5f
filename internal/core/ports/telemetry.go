package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// SpanEnd finishes a span. Pass the operation's error, or nil on success.
type SpanEnd func(err error)

// Tracer starts trace spans around pipeline stages.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, SpanEnd)
}
