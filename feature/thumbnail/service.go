package thumbnail

import (
	"context"

	"thumbnail-manager/core/storage"

	"go.uber.org/zap"
)

// Service exposes derivative generation to handlers and commands.
type Service struct {
	client    storage.Client
	bucket    string
	processor *Processor
	logger    *zap.Logger
}

// NewService wires a processor around renderer. A nil renderer leaves the
// service able to classify keys but not to render them.
func NewService(client storage.Client, bucket string, renderer *Renderer, cfg Config, logger *zap.Logger) *Service {
	gen := NewGenerator(client, renderer, cfg, logger)
	return &Service{
		client:    client,
		bucket:    bucket,
		processor: NewProcessor(client, gen, cfg, logger),
		logger:    logger,
	}
}

// Processor returns the underlying event processor.
func (s *Service) Processor() *Processor {
	return s.processor
}

// Bucket returns the default bucket.
func (s *Service) Bucket() string {
	return s.bucket
}

// HandleNotification processes every record of n.
func (s *Service) HandleNotification(ctx context.Context, n Notification) EventSummary {
	return s.processor.ProcessEvent(ctx, n)
}

// ProcessOriginal processes a single key in the default bucket.
func (s *Service) ProcessOriginal(ctx context.Context, key string) (Result, error) {
	return s.processor.ProcessKey(ctx, s.bucket, key)
}

// VariantReport lists the derivative keys an original maps to.
type VariantReport struct {
	Key      string    `json:"key,omitempty"`
	Variants []Variant `json:"variants"`
	Keys     []string  `json:"keys,omitempty"`
}

// Describe reports the variant table and, when key is set, its derivative keys.
func (s *Service) Describe(key string) VariantReport {
	report := VariantReport{Key: key, Variants: Variants}
	if key != "" {
		report.Keys = VariantKeys(key)
	}
	return report
}
