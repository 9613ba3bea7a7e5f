// Package controlplane implements the name binding client.
package controlplane

import (
	"context"
	"errors"

	controlplanev1 "go.trai.ch/freighter/api/controlplane/v1"
	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Client implements ports.ControlPlane over gRPC.
type Client struct {
	conn   *grpc.ClientConn
	client controlplanev1.ControlPlaneServiceClient
}

// Dial creates a control plane client for the given endpoint URL.
func Dial(url string) (*Client, error) {
	conn, err := grpc.NewClient(domain.DialTarget(url),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "control plane client creation failed")
	}

	return &Client{
		conn:   conn,
		client: controlplanev1.NewControlPlaneServiceClient(conn),
	}, nil
}

// BindName associates name with digest. An explicit refusal from the
// control plane, whether a status error or a success=false response, wraps
// domain.ErrBindRejected so callers can distinguish it from not reaching
// the service at all.
func (c *Client) BindName(ctx context.Context, name, digest string) error {
	resp, err := c.client.BindName(ctx, &controlplanev1.BindNameRequest{
		Name:   name,
		Digest: digest,
	})
	if err == nil {
		if !resp.GetSuccess() {
			return domain.Detail(domain.ErrBindRejected, "name", name)
		}
		return nil
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
			return errors.Join(domain.ErrBindUnreachable, err)
		}
	}
	return errors.Join(domain.ErrBindRejected, err)
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
