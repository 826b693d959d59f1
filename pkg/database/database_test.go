package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestOpenSQLiteInMemory(t *testing.T) {
	db, err := Open(context.Background(), Options{Driver: DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestOpenRejectsBadOptions(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "oracle", DSN: "x"})
	assert.ErrorContains(t, err, "unsupported database driver")

	_, err = Open(context.Background(), Options{Driver: DriverPostgres})
	assert.ErrorContains(t, err, "dsn must not be empty")
}

func TestBackoffNextDelay(t *testing.T) {
	b := backoff{maxRetries: 5, delay: 500 * time.Millisecond, maxDelay: 5 * time.Second}

	assert.Equal(t, 500*time.Millisecond, b.nextDelay(0))
	assert.Equal(t, time.Second, b.nextDelay(1))
	assert.Equal(t, 4*time.Second, b.nextDelay(3))
	assert.Equal(t, 5*time.Second, b.nextDelay(4))
}

func TestZapGormLoggerTrace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := zapGormLogger{zap: zap.New(core), level: gormlogger.Warn}

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT x", 0 }, assert.AnError)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "gorm query", entries[0].Message)
	assert.Equal(t, "gorm query error", entries[1].Message)

	silent := l.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 2", 1 }, nil)
	assert.Len(t, logs.All(), 2)
}
