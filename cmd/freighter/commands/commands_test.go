package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/freighter/cmd/freighter/commands"
	"go.trai.ch/freighter/internal/app"
	"go.trai.ch/freighter/internal/build"
	"go.trai.ch/freighter/internal/core/domain"
)

type mockApp struct {
	pushFunc    func(ctx context.Context, projectPath string, opts app.PushOptions) (*domain.PipelineResult, error)
	triggerFunc func(ctx context.Context, action string, body []byte, opts app.TriggerOptions) (*domain.ExecutionOutcome, error)
	jsonOutput  bool
}

func (m *mockApp) Push(ctx context.Context, projectPath string, opts app.PushOptions) (*domain.PipelineResult, error) {
	if m.pushFunc != nil {
		return m.pushFunc(ctx, projectPath, opts)
	}
	return &domain.PipelineResult{}, nil
}

func (m *mockApp) Trigger(ctx context.Context, action string, body []byte, opts app.TriggerOptions) (*domain.ExecutionOutcome, error) {
	if m.triggerFunc != nil {
		return m.triggerFunc(ctx, action, body, opts)
	}
	return &domain.ExecutionOutcome{Success: &domain.ExecutionSuccess{}}, nil
}

func (m *mockApp) SetJSONOutput(enabled bool) {
	m.jsonOutput = enabled
}

func TestCommands_Push(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedPath string
		var capturedOpts app.PushOptions

		mock := &mockApp{
			pushFunc: func(_ context.Context, projectPath string, opts app.PushOptions) (*domain.PipelineResult, error) {
				capturedPath = projectPath
				capturedOpts = opts
				return &domain.PipelineResult{Digest: "sha256:abc", Name: "billing"}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"push", "services/billing", "--force"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "services/billing", capturedPath)
		assert.True(t, capturedOpts.Force)
		assert.Contains(t, buf.String(), "sha256:abc")
		assert.Contains(t, buf.String(), "billing")
	})

	t.Run("defaults to current directory", func(t *testing.T) {
		var capturedPath string

		mock := &mockApp{
			pushFunc: func(_ context.Context, projectPath string, _ app.PushOptions) (*domain.PipelineResult, error) {
				capturedPath = projectPath
				return &domain.PipelineResult{Digest: "sha256:abc", Name: "billing"}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"push"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ".", capturedPath)
	})

	t.Run("reports reuse", func(t *testing.T) {
		mock := &mockApp{
			pushFunc: func(_ context.Context, _ string, _ app.PushOptions) (*domain.PipelineResult, error) {
				return &domain.PipelineResult{Digest: "sha256:abc", Name: "billing", Reused: true}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"push"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "digest reused")
	})

	t.Run("returns error on push failure", func(t *testing.T) {
		mock := &mockApp{
			pushFunc: func(_ context.Context, _ string, _ app.PushOptions) (*domain.PipelineResult, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"push"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Trigger(t *testing.T) {
	t.Run("wires arguments and metadata", func(t *testing.T) {
		var capturedAction string
		var capturedBody []byte
		var capturedOpts app.TriggerOptions

		mock := &mockApp{
			triggerFunc: func(_ context.Context, action string, body []byte, opts app.TriggerOptions) (*domain.ExecutionOutcome, error) {
				capturedAction = action
				capturedBody = body
				capturedOpts = opts
				return &domain.ExecutionOutcome{
					Success: &domain.ExecutionSuccess{Body: []byte("done")},
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"trigger", "invoice.compute", `{"items":[1]}`, "-m", "tenant=acme", "-m", "region=eu"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "invoice.compute", capturedAction)
		assert.Equal(t, []byte(`{"items":[1]}`), capturedBody)
		assert.Equal(t, []string{"tenant=acme", "region=eu"}, capturedOpts.Metadata)
		assert.Contains(t, buf.String(), "done")
	})

	t.Run("problem outcome fails the command", func(t *testing.T) {
		mock := &mockApp{
			triggerFunc: func(_ context.Context, _ string, _ []byte, _ app.TriggerOptions) (*domain.ExecutionOutcome, error) {
				return &domain.ExecutionOutcome{
					Problem: &domain.ExecutionProblem{
						Type:   "urn:freighter:action-panic",
						Detail: "index out of range",
					},
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"trigger", "invoice.compute"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrActionFailed)
		assert.Contains(t, buf.String(), "urn:freighter:action-panic")
		assert.Contains(t, buf.String(), "index out of range")
	})

	t.Run("requires an action", func(t *testing.T) {
		mock := &mockApp{}
		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"trigger"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_JSONFlag(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"push", "--json"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, mock.jsonOutput)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
