// Package registry implements the artifact registry client.
package registry

import (
	"context"
	"errors"
	"io"

	registryv1 "go.trai.ch/freighter/api/registry/v1"
	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client implements ports.Registry over gRPC.
type Client struct {
	conn   *grpc.ClientConn
	client registryv1.RegistryServiceClient
}

// Dial creates a registry client for the given endpoint URL.
// Note: grpc.NewClient returns immediately; the connection is established
// lazily on the first RPC.
func Dial(url string) (*Client, error) {
	conn, err := grpc.NewClient(domain.DialTarget(url),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "registry client creation failed")
	}

	return &Client{
		conn:   conn,
		client: registryv1.NewRegistryServiceClient(conn),
	}, nil
}

// Push streams r to the registry in fixed-size chunks and returns the
// digest the registry assigned. A failure of the reader itself is returned
// unwrapped so callers can recognize its cause; transfer failures wrap
// domain.ErrPushFailed.
func (c *Client) Push(ctx context.Context, r io.Reader) (string, error) {
	stream, err := c.client.Push(ctx)
	if err != nil {
		return "", errors.Join(domain.ErrPushFailed, err)
	}

	buf := make([]byte, domain.ChunkSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			if sendErr := stream.Send(&registryv1.PushRequest{Chunk: buf[:n]}); sendErr != nil {
				// Send returns io.EOF once the server closed the
				// stream; the real status comes from CloseAndRecv.
				if errors.Is(sendErr, io.EOF) {
					_, sendErr = stream.CloseAndRecv()
				}
				return "", errors.Join(domain.ErrPushFailed, sendErr)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return "", readErr
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return "", errors.Join(domain.ErrPushFailed, err)
	}
	return resp.GetDigest(), nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
