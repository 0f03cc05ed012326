package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Unreachable MySQL", func(t *testing.T) {
		db, err := Connect(Config{Host: "127.0.0.1", Port: 9999, User: "root", Password: "wrong", Name: "thumbnails", TimeoutSeconds: 1})
		assert.ErrorContains(t, err, "mysql database")
		assert.Nil(t, db)
	})

	t.Run("SQLite", func(t *testing.T) {
		db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", db.Dialector.Name())
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})
}

func TestMySQLDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 3306, User: "thumbs", Password: "p@ss/word", Name: "journal", TimeoutSeconds: 5}
	dsn := cfg.mysqlDSN()
	assert.Contains(t, dsn, "thumbs:p%40ss%2Fword@tcp(db:3306)/journal?")
	assert.Contains(t, dsn, "timeout=5s")
	assert.Contains(t, dsn, "parseTime=True")

	assert.Contains(t, Config{}.mysqlDSN(), "timeout=30s")
}
