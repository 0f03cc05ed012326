package backfill

import (
	"context"
	"fmt"
	"time"

	"thumbnail-manager/core/metrics"
	"thumbnail-manager/feature/thumbnail"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Stats aggregates per-item outcomes. Total always equals the sum of the
// other three.
type Stats struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

func (s *Stats) add(r thumbnail.Result) {
	s.Total++
	switch r.Outcome {
	case thumbnail.OutcomeSucceeded:
		s.Successful++
	case thumbnail.OutcomeSkipped:
		s.Skipped++
	default:
		s.Failed++
	}
}

// Report is the outcome of a scheduler run.
type Report struct {
	DryRun       bool     `json:"dryRun"`
	Mode         string   `json:"mode,omitempty"`
	TotalImages  int      `json:"totalImages"`
	SampleImages []string `json:"sampleImages,omitempty"`
	Stats        Stats    `json:"stats"`
}

// Scheduler processes keys in sequential batches, each batch concurrently.
type Scheduler struct {
	strategy   Strategy
	delay      time.Duration
	sampleSize int
	logger     *zap.Logger

	// sleep waits between batches; replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewScheduler creates a scheduler. strategy may be nil for dry runs.
func NewScheduler(strategy Strategy, cfg Config, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		strategy:   strategy,
		delay:      cfg.delay(),
		sampleSize: cfg.sampleSize(),
		logger:     logger,
		sleep:      sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes items. A dry run renders nothing and returns the count and
// a bounded sample. Otherwise items are split into batches of batchSize;
// each batch runs on a pool of batchSize workers and is fully joined before
// the inter-batch delay. One item's failure or panic never affects its
// siblings. If ctx is cancelled between batches the remaining items are
// recorded as failed.
func (s *Scheduler) Run(ctx context.Context, bucket string, items []string, batchSize int, dryRun bool) Report {
	if dryRun {
		sample := items
		if len(sample) > s.sampleSize {
			sample = sample[:s.sampleSize]
		}
		return Report{
			DryRun:       true,
			TotalImages:  len(items),
			SampleImages: append([]string{}, sample...),
		}
	}

	if batchSize <= 0 {
		batchSize = 1
	}

	report := Report{Mode: s.strategy.Mode(), TotalImages: len(items)}
	totalBatches := (len(items) + batchSize - 1) / batchSize

	for start := 0; start < len(items); start += batchSize {
		end := min(start+batchSize, len(items))
		batch := items[start:end]

		s.logger.Info("Processing batch",
			zap.Int("batch", start/batchSize+1),
			zap.Int("batches", totalBatches),
			zap.Int("size", len(batch)),
		)

		for _, r := range s.runBatch(ctx, bucket, batch, batchSize) {
			report.Stats.add(r)
			metrics.RecordBackfillItem(string(r.Outcome))
			s.logResult(r)
		}

		if end == len(items) {
			break
		}

		if err := s.sleep(ctx, s.delay); err != nil {
			s.logger.Warn("Backfill cancelled", zap.Int("remaining", len(items)-end), zap.Error(err))
			for _, key := range items[end:] {
				r := thumbnail.Failed(bucket, key, err)
				report.Stats.add(r)
				metrics.RecordBackfillItem(string(r.Outcome))
			}
			break
		}

		s.logger.Info("Progress",
			zap.Int("successful", report.Stats.Successful),
			zap.Int("skipped", report.Stats.Skipped),
			zap.Int("failed", report.Stats.Failed),
			zap.Int("processed", end),
			zap.Int("total", len(items)),
		)
	}

	return report
}

// runBatch returns one result per key, in key order.
func (s *Scheduler) runBatch(ctx context.Context, bucket string, batch []string, workers int) []thumbnail.Result {
	results := make([]thumbnail.Result, len(batch))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, key := range batch {
		g.Go(func() error {
			results[i] = s.processOne(ctx, bucket, key)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *Scheduler) processOne(ctx context.Context, bucket, key string) (res thumbnail.Result) {
	metrics.BackfillInflight(1)
	defer metrics.BackfillInflight(-1)

	defer func() {
		if r := recover(); r != nil {
			res = thumbnail.Failed(bucket, key, fmt.Errorf("panic: %v", r))
		}
	}()

	s.logger.Debug("Processing", zap.String("key", key))
	return s.strategy.Process(ctx, bucket, key)
}

func (s *Scheduler) logResult(r thumbnail.Result) {
	switch r.Outcome {
	case thumbnail.OutcomeFailed:
		s.logger.Error("Failed", zap.String("key", r.Key), zap.String("error", r.Error))
	case thumbnail.OutcomeSkipped:
		s.logger.Info("Skipped", zap.String("key", r.Key), zap.String("reason", r.Reason))
	default:
		s.logger.Info("Generated", zap.String("key", r.Key), zap.Int("derivatives", len(r.Derivatives)))
	}
}
