package backfill

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestJournal_Disabled(t *testing.T) {
	var nilJournal *Journal
	assert.False(t, nilJournal.Enabled())
	assert.NoError(t, nilJournal.Migrate())
	assert.Nil(t, nilJournal.Record(context.Background(), testBucket, ModeLocal, Stats{}, time.Now(), time.Now()))

	runs, err := NewJournal(nil, zap.NewNop()).Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestJournal_Record(t *testing.T) {
	db, mock := setupMockDB(t)
	j := NewJournal(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `backfill_runs`").
		WithArgs(sqlmock.AnyArg(), testBucket, ModeRemote, 25, 24, 0, 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	run := j.Record(context.Background(), testBucket, ModeRemote, Stats{Total: 25, Successful: 24, Failed: 1}, time.Now(), time.Now())
	require.NotNil(t, run)
	assert.Len(t, run.ID, 36)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_RecordFailureIsSwallowed(t *testing.T) {
	db, mock := setupMockDB(t)
	j := NewJournal(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `backfill_runs`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	assert.Nil(t, j.Record(context.Background(), testBucket, ModeLocal, Stats{}, time.Now(), time.Now()))
}

func TestJournal_Recent(t *testing.T) {
	db, mock := setupMockDB(t)
	j := NewJournal(db, zap.NewNop())

	rows := sqlmock.NewRows(JournalColumns).
		AddRow("id-1", testBucket, ModeLocal, 3, 2, 1, 0, time.Now(), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM `backfill_runs` ORDER BY started_at DESC LIMIT").WillReturnRows(rows)

	runs, err := j.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "id-1", runs[0].ID)
	assert.Equal(t, 2, runs[0].Successful)
}
