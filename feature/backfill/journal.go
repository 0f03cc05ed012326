package backfill

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BackfillRun is one recorded non-dry run.
type BackfillRun struct {
	ID         string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Bucket     string    `gorm:"column:bucket;size:255;index" json:"bucket"`
	Mode       string    `gorm:"column:mode;size:16" json:"mode"`
	Total      int       `gorm:"column:total" json:"total"`
	Successful int       `gorm:"column:successful" json:"successful"`
	Skipped    int       `gorm:"column:skipped" json:"skipped"`
	Failed     int       `gorm:"column:failed" json:"failed"`
	StartedAt  time.Time `gorm:"column:started_at" json:"startedAt"`
	FinishedAt time.Time `gorm:"column:finished_at" json:"finishedAt"`
}

// TableName overrides the table name used by BackfillRun.
func (BackfillRun) TableName() string {
	return "backfill_runs"
}

// JournalColumns are the columns the journal table must carry.
var JournalColumns = []string{"id", "bucket", "mode", "total", "successful", "skipped", "failed", "started_at", "finished_at"}

// Journal records runs in the optional database. A nil *Journal or one
// without a database accepts every call and does nothing.
type Journal struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewJournal creates a journal. db may be nil.
func NewJournal(db *gorm.DB, logger *zap.Logger) *Journal {
	return &Journal{db: db, logger: logger}
}

// Enabled reports whether runs are persisted.
func (j *Journal) Enabled() bool {
	return j != nil && j.db != nil
}

// Migrate creates or updates the journal table.
func (j *Journal) Migrate() error {
	if !j.Enabled() {
		return nil
	}
	return j.db.AutoMigrate(&BackfillRun{})
}

// Record stores a finished run. Failures are logged and otherwise ignored.
func (j *Journal) Record(ctx context.Context, bucket, mode string, stats Stats, started, finished time.Time) *BackfillRun {
	if !j.Enabled() {
		return nil
	}

	run := &BackfillRun{
		ID:         uuid.NewString(),
		Bucket:     bucket,
		Mode:       mode,
		Total:      stats.Total,
		Successful: stats.Successful,
		Skipped:    stats.Skipped,
		Failed:     stats.Failed,
		StartedAt:  started,
		FinishedAt: finished,
	}

	if err := j.db.WithContext(ctx).Create(run).Error; err != nil {
		j.logger.Warn("Failed to record backfill run", zap.String("run_id", run.ID), zap.Error(err))
		return nil
	}
	return run
}

// Recent returns the latest runs, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]BackfillRun, error) {
	if !j.Enabled() {
		return []BackfillRun{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	var runs []BackfillRun
	if err := j.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
