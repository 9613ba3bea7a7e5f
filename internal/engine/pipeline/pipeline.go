// Package pipeline orchestrates a full push run: build, archive, publish
// and bind, with a local cache that short-circuits redundant pushes.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/freighter/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Stage identifies where in the run the pipeline currently is.
type Stage string

const (
	// StageBuilding covers the build backend invocation.
	StageBuilding Stage = "building"
	// StagePublishing covers archiving and streaming to the registry.
	StagePublishing Stage = "publishing"
	// StageBinding covers the control plane name binding.
	StageBinding Stage = "binding"
)

// Request carries everything one pipeline run needs. The per-project
// collaborators (backend, remotes, store) are constructed by the caller
// because they depend on the loaded configuration.
type Request struct {
	ProjectPath  string
	Config       *domain.ProjectConfig
	Backend      ports.BuildBackend
	Registry     ports.Registry
	ControlPlane ports.ControlPlane
	Store        ports.PushStore

	// Force bypasses the push cache and always streams a fresh archive.
	Force bool
}

// Pipeline runs the build-and-publish sequence.
type Pipeline struct {
	archiver ports.Archiver
	hasher   ports.TreeHasher
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a Pipeline with the given collaborators.
func New(archiver ports.Archiver, hasher ports.TreeHasher, tracer ports.Tracer, logger ports.Logger) *Pipeline {
	return &Pipeline{
		archiver: archiver,
		hasher:   hasher,
		tracer:   tracer,
		logger:   logger,
	}
}

// Run executes the pipeline and returns the published result. The staging
// directory is removed on every exit path.
func (p *Pipeline) Run(ctx context.Context, req Request) (*domain.PipelineResult, error) {
	staging, err := os.MkdirTemp("", "freighter-build-")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStagingCreateFailed.Error())
	}
	defer os.RemoveAll(staging)

	if err := p.build(ctx, req, staging); err != nil {
		return nil, err
	}

	treeHash, err := p.hasher.HashTree(staging)
	if err != nil {
		return nil, err
	}

	digest, reused := p.cachedDigest(req, treeHash)
	if !reused {
		digest, err = p.publish(ctx, req, staging)
		if err != nil {
			return nil, err
		}
		p.record(req, treeHash, digest)
	}

	if err := p.bind(ctx, req, digest); err != nil {
		return nil, err
	}

	return &domain.PipelineResult{
		Digest: digest,
		Name:   req.Config.Name,
		Reused: reused,
	}, nil
}

func (p *Pipeline) build(ctx context.Context, req Request, staging string) error {
	ctx, end := p.tracer.StartSpan(ctx, string(StageBuilding))
	p.logger.Info(fmt.Sprintf("building %s", req.Config.Name))

	err := req.Backend.Build(ctx, req.ProjectPath, staging)
	end(err)
	return err
}

// cachedDigest returns the previously pushed digest for treeHash, if the
// cache holds one for this project and the run does not force a fresh push.
// Cache read failures degrade to a cache miss.
func (p *Pipeline) cachedDigest(req Request, treeHash string) (string, bool) {
	if req.Force {
		return "", false
	}

	record, err := req.Store.Get(treeHash)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("push cache read failed, pushing anyway: %s", err))
		return "", false
	}
	if record == nil || record.Project != req.Config.Name {
		return "", false
	}

	p.logger.Info(fmt.Sprintf("artifacts unchanged since last push, reusing digest %s", record.Digest))
	return record.Digest, true
}

// publish archives the staging directory into a pipe while the registry
// client drains it. Both sides are always awaited; when both fail the
// producer error wins because the consumer failure is usually derivative.
func (p *Pipeline) publish(ctx context.Context, req Request, staging string) (string, error) {
	ctx, end := p.tracer.StartSpan(ctx, string(StagePublishing))
	p.logger.Info("publishing artifacts")

	pr, pw := io.Pipe()

	var (
		archiveErr error
		publishErr error
		digest     string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		archiveErr = p.archiver.Archive(gctx, staging, pw, req.Config.Compression)
		// Close the write end unconditionally so the consumer never
		// blocks on a reader that will not be fed again.
		pw.CloseWithError(archiveErr)
		return nil
	})
	g.Go(func() error {
		var err error
		digest, err = req.Registry.Push(gctx, pr)
		if err != nil {
			publishErr = err
			// Unblock the producer if it is mid-write.
			pr.CloseWithError(err)
		}
		return nil
	})
	_ = g.Wait()

	err := archiveErr
	if err == nil {
		err = publishErr
	}
	end(err)
	if err != nil {
		return "", err
	}
	return digest, nil
}

// record persists the push witness. A write failure only costs the next
// run a redundant push, so it is logged and otherwise ignored.
func (p *Pipeline) record(req Request, treeHash, digest string) {
	err := req.Store.Put(&domain.PushRecord{
		Project:  req.Config.Name,
		TreeHash: treeHash,
		Digest:   digest,
		PushedAt: time.Now().UTC(),
	})
	if err != nil {
		p.logger.Warn(fmt.Sprintf("failed to record push: %s", err))
	}
}

func (p *Pipeline) bind(ctx context.Context, req Request, digest string) error {
	ctx, end := p.tracer.StartSpan(ctx, string(StageBinding))
	p.logger.Info(fmt.Sprintf("binding %s to %s", req.Config.Name, digest))

	err := req.ControlPlane.BindName(ctx, req.Config.Name, digest)
	end(err)
	return err
}
