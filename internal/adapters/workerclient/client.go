// Package workerclient implements the remote execution client.
package workerclient

import (
	"context"
	"errors"

	workerv1 "go.trai.ch/freighter/api/worker/v1"
	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client implements ports.Worker over gRPC.
type Client struct {
	conn   *grpc.ClientConn
	client workerv1.WorkerServiceClient
}

// Dial creates a worker client for the given endpoint URL.
func Dial(url string) (*Client, error) {
	conn, err := grpc.NewClient(domain.DialTarget(url),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "worker client creation failed")
	}

	return &Client{
		conn:   conn,
		client: workerv1.NewWorkerServiceClient(conn),
	}, nil
}

// Execute runs the named action remotely. A transport failure is an error;
// a problem reported by the worker is part of the returned outcome.
func (c *Client) Execute(ctx context.Context, action string, body []byte, metadata map[string]string) (*domain.ExecutionOutcome, error) {
	resp, err := c.client.Execute(ctx, &workerv1.ExecuteRequest{
		Action:   action,
		Body:     body,
		Metadata: metadata,
	})
	if err != nil {
		return nil, errors.Join(domain.ErrWorkerUnreachable, err)
	}

	if problem := resp.GetProblem(); problem != nil {
		return &domain.ExecutionOutcome{
			Problem: &domain.ExecutionProblem{
				Type:       problem.GetType(),
				Detail:     problem.GetDetail(),
				Instance:   problem.GetInstance(),
				Extensions: problem.GetExtensions(),
			},
		}, nil
	}

	return &domain.ExecutionOutcome{
		Success: &domain.ExecutionSuccess{
			Body: resp.GetSuccess().GetBody(),
		},
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
