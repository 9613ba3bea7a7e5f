// Package app implements the application layer for freighter.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/freighter/internal/adapters/backend"
	"go.trai.ch/freighter/internal/adapters/controlplane"
	"go.trai.ch/freighter/internal/adapters/pushstate"
	"go.trai.ch/freighter/internal/adapters/registry"
	"go.trai.ch/freighter/internal/adapters/telemetry"
	"go.trai.ch/freighter/internal/adapters/workerclient"
	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/freighter/internal/core/ports"
	"go.trai.ch/freighter/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       ports.ProcessRunner
	archiver     ports.Archiver
	hasher       ports.TreeHasher
	logger       ports.Logger

	// Connection factories, replaceable for testing.
	dialRegistry     func(url string) (ports.Registry, error)
	dialControlPlane func(url string) (ports.ControlPlane, error)
	dialWorker       func(url string) (ports.Worker, error)
	newStore         func(projectRoot string) ports.PushStore
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner ports.ProcessRunner,
	archiver ports.Archiver,
	hasher ports.TreeHasher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		archiver:     archiver,
		hasher:       hasher,
		logger:       log,
		dialRegistry: func(url string) (ports.Registry, error) {
			return registry.Dial(url)
		},
		dialControlPlane: func(url string) (ports.ControlPlane, error) {
			return controlplane.Dial(url)
		},
		dialWorker: func(url string) (ports.Worker, error) {
			return workerclient.Dial(url)
		},
		newStore: func(projectRoot string) ports.PushStore {
			return pushstate.NewStore(projectRoot)
		},
	}
}

// WithRegistryDialer replaces the registry connection factory.
// This is primarily used for testing.
func (a *App) WithRegistryDialer(dial func(url string) (ports.Registry, error)) *App {
	a.dialRegistry = dial
	return a
}

// WithControlPlaneDialer replaces the control plane connection factory.
// This is primarily used for testing.
func (a *App) WithControlPlaneDialer(dial func(url string) (ports.ControlPlane, error)) *App {
	a.dialControlPlane = dial
	return a
}

// WithWorkerDialer replaces the worker connection factory.
// This is primarily used for testing.
func (a *App) WithWorkerDialer(dial func(url string) (ports.Worker, error)) *App {
	a.dialWorker = dial
	return a
}

// WithStoreFactory replaces the push state store factory.
// This is primarily used for testing.
func (a *App) WithStoreFactory(newStore func(projectRoot string) ports.PushStore) *App {
	a.newStore = newStore
	return a
}

// SetJSONOutput switches the logger to JSON output when it supports it.
func (a *App) SetJSONOutput(enabled bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enabled)
	}
}

// PushOptions configuration for the Push method.
type PushOptions struct {
	// Force bypasses the push cache.
	Force bool
}

// Push builds the project at projectPath, publishes the artifacts to the
// registry and binds the returned digest to the project name.
func (a *App) Push(ctx context.Context, projectPath string, opts PushOptions) (*domain.PipelineResult, error) {
	cfg, err := a.configLoader.Load(projectPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	buildBackend, err := backend.New(cfg.Build, a.runner, a.logger)
	if err != nil {
		return nil, err
	}

	reg, err := a.dialRegistry(cfg.RegistryURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reg.Close() }()

	cp, err := a.dialControlPlane(cfg.ControlPlaneURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cp.Close() }()

	shutdown := telemetry.Setup(a.logger)
	defer func() { _ = shutdown(ctx) }()

	pipe := pipeline.New(a.archiver, a.hasher, telemetry.NewOTelTracer("freighter"), a.logger)

	return pipe.Run(ctx, pipeline.Request{
		ProjectPath:  projectPath,
		Config:       cfg,
		Backend:      buildBackend,
		Registry:     reg,
		ControlPlane: cp,
		Store:        a.newStore(projectPath),
		Force:        opts.Force,
	})
}

// TriggerOptions configuration for the Trigger method.
type TriggerOptions struct {
	// ProjectPath locates the freighter.yaml supplying the worker endpoint.
	ProjectPath string

	// Metadata holds raw key=value pairs from the command line.
	Metadata []string
}

// Trigger sends an Execute request to the remote worker. A missing project
// configuration is not fatal here: the worker endpoint then falls back to
// the environment or the default.
func (a *App) Trigger(ctx context.Context, action string, body []byte, opts TriggerOptions) (*domain.ExecutionOutcome, error) {
	workerURL, err := a.workerURL(opts.ProjectPath)
	if err != nil {
		return nil, err
	}

	metadata, err := domain.ParseMetadata(opts.Metadata)
	if err != nil {
		return nil, err
	}

	worker, err := a.dialWorker(workerURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = worker.Close() }()

	a.logger.Info(fmt.Sprintf("triggering %s", action))
	return worker.Execute(ctx, action, body, metadata)
}

func (a *App) workerURL(projectPath string) (string, error) {
	cfg, err := a.configLoader.Load(projectPath)
	if errors.Is(err, domain.ErrConfigNotFound) {
		return domain.WorkerURL(""), nil
	}
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}
	return cfg.WorkerURL, nil
}
