package reconcile

import (
	"context"
	"time"

	"thumbnail-manager/core/storage"

	"go.uber.org/zap"
)

// Collect runs a full scan and materializes the missing keys.
// The first listing error aborts the scan.
func Collect(ctx context.Context, spec *Spec, client storage.Client, bucket string, logger *zap.Logger) (*Plan, error) {
	plan := &Plan{Missing: []string{}}

	for key, err := range scan(ctx, spec, client, bucket, logger, &plan.Summary) {
		if err != nil {
			return nil, err
		}
		plan.Missing = append(plan.Missing, key)
	}

	plan.Built = time.Now()
	logger.Info("Scan complete",
		zap.String("adapter", spec.Adapter.Name()),
		zap.String("bucket", bucket),
		zap.Int("listed", plan.Summary.Listed),
		zap.Int("candidates", plan.Summary.Candidates),
		zap.Int("missing", plan.Summary.Missing),
		zap.Int("probe_errors", plan.Summary.ProbeErrors),
	)
	return plan, nil
}
