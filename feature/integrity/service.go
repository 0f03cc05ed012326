package integrity

import (
	"context"
	"errors"

	"thumbnail-manager/core/storage"
	"thumbnail-manager/feature/backfill"
	"thumbnail-manager/feature/integrity/checks"
	"thumbnail-manager/feature/thumbnail"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by checks that need the optional database.
var ErrNoDatabase = errors.New("database not configured")

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	cfg    thumbnail.Config
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(client storage.Client, bucket string, cfg thumbnail.Config, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

// CheckStructure returns the required prefixes missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, []string{s.cfg.Root()})
}

// FixStructure creates the missing prefixes.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckDerivatives reports the presence of every derivative of key.
func (s *Service) CheckDerivatives(ctx context.Context, key string) (*checks.DerivativeReport, error) {
	return checks.CheckDerivatives(ctx, s.client, s.bucket, s.cfg, key)
}

// CheckJournal compares the backfill journal table with the expected columns.
func (s *Service) CheckJournal() (*checks.JournalReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckJournal(s.db, backfill.BackfillRun{}.TableName(), backfill.JournalColumns)
}
