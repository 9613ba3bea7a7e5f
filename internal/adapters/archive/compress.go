package archive

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"go.trai.ch/freighter/internal/core/domain"
)

// wrapWriter layers the selected compression over w. The returned closer
// flushes the codec without closing w itself.
func wrapWriter(w io.Writer, compression domain.CompressionKind) (io.WriteCloser, error) {
	switch compression {
	case domain.CompressionZstd:
		return zstd.NewWriter(w)
	case domain.CompressionNone:
		return nopWriteCloser{w}, nil
	default:
		return nil, domain.Detail(domain.ErrUnknownCompression, "compression", string(compression))
	}
}

// wrapReader is the inverse of wrapWriter.
func wrapReader(r io.Reader, compression domain.CompressionKind) (io.ReadCloser, error) {
	switch compression {
	case domain.CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{zr}, nil
	case domain.CompressionNone:
		return io.NopCloser(r), nil
	default:
		return nil, domain.Detail(domain.ErrUnknownCompression, "compression", string(compression))
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}
