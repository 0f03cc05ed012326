package backfill

import (
	"context"
	"fmt"

	"thumbnail-manager/core/storage"
	"thumbnail-manager/feature/thumbnail"

	"go.uber.org/zap"
)

// Rendering modes.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

// Strategy renders the derivatives of one original.
type Strategy interface {
	// Mode returns ModeLocal or ModeRemote.
	Mode() string
	// Process handles one key and always returns a result; errors are
	// reported as failed results.
	Process(ctx context.Context, bucket, key string) thumbnail.Result
}

// LocalRenderer renders in-process.
type LocalRenderer struct {
	processor *thumbnail.Processor
}

// NewLocalRenderer wraps an event processor.
func NewLocalRenderer(p *thumbnail.Processor) *LocalRenderer {
	return &LocalRenderer{processor: p}
}

func (l *LocalRenderer) Mode() string { return ModeLocal }

func (l *LocalRenderer) Process(ctx context.Context, bucket, key string) thumbnail.Result {
	res, _ := l.processor.ProcessKey(ctx, bucket, key)
	return res
}

// Capabilities describes what rendering paths are available to this process.
type Capabilities struct {
	// Probe checks for a local encoder. Nil means thumbnail.ProbeLocal.
	Probe func() (thumbnail.Encoder, error)
	// Delegate is the remote fallback. Nil means none is configured.
	Delegate Invoker
}

// SelectStrategy runs the capability probe once. It prefers local rendering,
// falls back to the delegate, and fails with ErrNoRenderer when neither is
// available.
func SelectStrategy(client storage.Client, cfg thumbnail.Config, caps Capabilities, logger *zap.Logger) (Strategy, error) {
	probe := caps.Probe
	if probe == nil {
		probe = thumbnail.ProbeLocal
	}

	enc, probeErr := probe()
	if probeErr == nil {
		renderer := thumbnail.NewRenderer(enc, cfg.Quality)
		gen := thumbnail.NewGenerator(client, renderer, cfg, logger)
		logger.Info("Using local renderer")
		return NewLocalRenderer(thumbnail.NewProcessor(client, gen, cfg, logger)), nil
	}

	if caps.Delegate != nil {
		logger.Warn("Local renderer unavailable, delegating", zap.Error(probeErr), zap.String("delegate", caps.Delegate.String()))
		return NewRemoteDelegate(caps.Delegate, logger), nil
	}

	return nil, fmt.Errorf("%w: %v", ErrNoRenderer, probeErr)
}
