package thumbnail

import (
	"context"
	"errors"
	"fmt"

	"thumbnail-manager/core/metrics"
	"thumbnail-manager/core/storage"

	"go.uber.org/zap"
)

// Processor applies the skip rules to one original and generates its
// derivatives.
type Processor struct {
	client    storage.Client
	generator *Generator
	cfg       Config
	logger    *zap.Logger
}

// NewProcessor creates a processor.
func NewProcessor(client storage.Client, generator *Generator, cfg Config, logger *zap.Logger) *Processor {
	return &Processor{
		client:    client,
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}
}

// ProcessKey handles one original. Rules are checked in order and the first
// match is terminal: derivative, unsupported format, invalid key, fetch,
// size, render. Fetch and decode failures are returned as errors together
// with a failed Result.
func (p *Processor) ProcessKey(ctx context.Context, bucket, key string) (Result, error) {
	l := p.logger.With(zap.String("bucket", bucket), zap.String("key", key))

	if IsDerivativeKey(key) {
		l.Info("Skipping derivative")
		return p.skip(bucket, key, ReasonDerivative), nil
	}

	if !IsSupportedExtension(key) {
		l.Warn("Unsupported format")
		return p.skip(bucket, key, ReasonUnsupported), nil
	}

	if _, err := parseOriginalKey(key, p.cfg.rootPrefix()); err != nil {
		l.Warn("Invalid key structure", zap.Error(err))
		if errors.Is(err, ErrUnsupportedFormat) {
			return p.skip(bucket, key, ReasonUnsupported), nil
		}
		return p.skip(bucket, key, ReasonInvalidKey), nil
	}

	content, _, err := storage.ReadObject(ctx, p.client, bucket, key, p.cfg.maxBytes())
	if errors.Is(err, storage.ErrTooLarge) {
		l.Warn("Original too large", zap.Int64("limit_bytes", p.cfg.maxBytes()), zap.Error(err))
		return p.skip(bucket, key, ReasonTooLarge), nil
	}
	if err != nil {
		l.Error("Failed to download original", zap.Error(err))
		return p.fail(bucket, key, err), err
	}

	keys, err := p.generator.GenerateAll(ctx, bucket, key, content)
	if err != nil {
		return p.fail(bucket, key, err), err
	}

	if len(keys) < len(p.generator.variants) {
		l.Warn("Some derivatives were not generated", zap.Int("generated", len(keys)), zap.Int("expected", len(p.generator.variants)))
	} else {
		l.Info("Generated derivatives", zap.Int("count", len(keys)))
	}

	metrics.RecordOriginal(string(OutcomeSucceeded))
	return Result{Bucket: bucket, Key: key, Outcome: OutcomeSucceeded, Derivatives: keys}, nil
}

// ProcessEvent handles every record of a notification independently; a
// failing or panicking record never stops the remaining ones.
func (p *Processor) ProcessEvent(ctx context.Context, n Notification) EventSummary {
	summary := EventSummary{Results: make([]Result, 0, len(n.Records))}

	for _, rec := range n.Records {
		summary.Add(p.processRecord(ctx, rec.S3.Bucket.Name, rec.S3.Object.Key))
	}

	p.logger.Info("Processed notification",
		zap.Int("records", summary.Total),
		zap.Int("successful", summary.Successful),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary
}

func (p *Processor) processRecord(ctx context.Context, bucket, encodedKey string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Panic while processing record", zap.String("key", encodedKey), zap.Any("panic", r))
			res = p.fail(bucket, encodedKey, fmt.Errorf("panic: %v", r))
		}
	}()

	key, err := DecodeKey(encodedKey)
	if err != nil {
		p.logger.Error("Failed to decode key", zap.String("key", encodedKey), zap.Error(err))
		return p.fail(bucket, encodedKey, err)
	}

	res, _ = p.ProcessKey(ctx, bucket, key)
	return res
}

func (p *Processor) skip(bucket, key, reason string) Result {
	metrics.RecordOriginal(string(OutcomeSkipped))
	return Skipped(bucket, key, reason)
}

func (p *Processor) fail(bucket, key string, err error) Result {
	metrics.RecordOriginal(string(OutcomeFailed))
	return Failed(bucket, key, err)
}
