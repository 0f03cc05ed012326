package checks

import (
	"context"
	"errors"
	"fmt"

	"thumbnail-manager/core/storage"
	"thumbnail-manager/feature/thumbnail"

	"golang.org/x/sync/errgroup"
)

// ErrDerivativeKey is returned when a derivative key is checked as an original.
var ErrDerivativeKey = errors.New("derivative key")

// VariantStatus is the presence of one derivative.
type VariantStatus struct {
	Variant string `json:"variant"`
	Key     string `json:"key"`
	Present bool   `json:"present"`
	Error   string `json:"error,omitempty"`
}

// DerivativeReport lists the presence of every derivative of one original.
type DerivativeReport struct {
	Key             string          `json:"key"`
	OriginalPresent bool            `json:"originalPresent"`
	Complete        bool            `json:"complete"`
	Missing         []string        `json:"missing"`
	Variants        []VariantStatus `json:"variants"`
}

// CheckDerivatives verifies every variant of key, not only the probe variant
// the reconciliation scan relies on. key must be a valid original key.
func CheckDerivatives(ctx context.Context, client storage.Client, bucket string, cfg thumbnail.Config, key string) (*DerivativeReport, error) {
	if thumbnail.IsDerivativeKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrDerivativeKey, key)
	}
	if _, err := cfg.ParseKey(key); err != nil {
		return nil, err
	}

	original, err := storage.Exists(ctx, client, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("failed to stat original: %w", err)
	}

	statuses := make([]VariantStatus, len(thumbnail.Variants))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(thumbnail.Variants))
	for i, v := range thumbnail.Variants {
		g.Go(func() error {
			dk := thumbnail.DerivativeKey(key, v.Name)
			st := VariantStatus{Variant: v.Name, Key: dk}
			ok, err := storage.Exists(gctx, client, bucket, dk)
			if err != nil {
				st.Error = err.Error()
			}
			st.Present = ok
			statuses[i] = st
			return nil
		})
	}
	_ = g.Wait()

	report := &DerivativeReport{
		Key:             key,
		OriginalPresent: original,
		Missing:         []string{},
		Variants:        statuses,
	}
	for _, st := range statuses {
		if !st.Present {
			report.Missing = append(report.Missing, st.Variant)
		}
	}
	report.Complete = len(report.Missing) == 0
	return report, nil
}
