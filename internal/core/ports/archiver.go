package ports

import (
	"context"
	"io"

	"go.trai.ch/freighter/internal/core/domain"
)

//go:generate mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks

// Archiver converts a directory tree to and from a byte stream.
//
// Archive walks dir and writes its entire contents to w, applying the given
// compression. It streams incrementally and never buffers the whole archive.
// Extract is the inverse: it restores a stream produced by Archive into dir.
type Archiver interface {
	Archive(ctx context.Context, dir string, w io.Writer, compression domain.CompressionKind) error
	Extract(r io.Reader, dir string, compression domain.CompressionKind) error
}
