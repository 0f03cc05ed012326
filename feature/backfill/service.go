package backfill

import (
	"context"
	"time"

	"thumbnail-manager/core/reconcile"
	"thumbnail-manager/core/storage"
	"thumbnail-manager/feature/thumbnail"

	"go.uber.org/zap"
)

// Options are the per-run parameters.
type Options struct {
	DryRun    bool `json:"dryRun"`
	BatchSize int  `json:"batchSize"`
	MaxImages int  `json:"maxImages"`
}

// Result is a finished run: the scheduler report plus scan counts.
type Result struct {
	Report
	Bucket string            `json:"bucket"`
	Scan   reconcile.Summary `json:"scan"`
	RunID  string            `json:"runId,omitempty"`
}

// Service scans for originals missing derivatives and backfills them.
type Service struct {
	client   storage.Client
	bucket   string
	cfg      Config
	adapter  *Adapter
	strategy Strategy
	journal  *Journal
	logger   *zap.Logger
}

// NewService creates a backfill service. strategy may be nil, in which
// case only dry runs are possible.
func NewService(client storage.Client, bucket string, cfg Config, thumbCfg thumbnail.Config, strategy Strategy, journal *Journal, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		cfg:      cfg,
		adapter:  NewAdapter(thumbCfg.RootPrefix),
		strategy: strategy,
		journal:  journal,
		logger:   logger,
	}
}

// Bucket returns the bucket runs operate on.
func (s *Service) Bucket() string {
	return s.bucket
}

// Journal returns the run journal.
func (s *Service) Journal() *Journal {
	return s.journal
}

// Run scans the bucket and processes every original missing derivatives.
// Setup problems are returned as errors; per-item failures are only counted.
func (s *Service) Run(ctx context.Context, opts Options) (*Result, error) {
	if s.bucket == "" {
		return nil, ErrNoBucket
	}
	if !opts.DryRun && s.strategy == nil {
		return nil, ErrNoRenderer
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = s.cfg.batchSize()
	}

	s.logger.Info("Scanning for originals missing derivatives",
		zap.String("bucket", s.bucket),
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("max_images", opts.MaxImages),
	)

	spec := s.adapter.Spec(opts.MaxImages)
	if opts.DryRun {
		spec.CacheTTL = time.Duration(s.cfg.CacheTTLSeconds) * time.Second
	}

	plan, err := reconcile.GetOrCollect(ctx, spec, s.client, s.bucket, s.logger)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Found originals needing derivatives", zap.Int("count", len(plan.Missing)))

	started := time.Now()
	report := NewScheduler(s.strategy, s.cfg, s.logger).Run(ctx, s.bucket, plan.Missing, batchSize, opts.DryRun)
	res := &Result{Report: report, Bucket: s.bucket, Scan: plan.Summary}

	if !opts.DryRun {
		if run := s.journal.Record(ctx, s.bucket, report.Mode, report.Stats, started, time.Now()); run != nil {
			res.RunID = run.ID
		}
		s.logger.Info("Backfill complete",
			zap.Int("total", report.Stats.Total),
			zap.Int("successful", report.Stats.Successful),
			zap.Int("skipped", report.Stats.Skipped),
			zap.Int("failed", report.Stats.Failed),
			zap.Duration("elapsed", time.Since(started)),
		)
	}

	return res, nil
}
