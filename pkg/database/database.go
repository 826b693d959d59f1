package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options describes how to reach the database.
type Options struct {
	Driver string
	DSN    string
	// LogQueries enables warn-level gorm logging routed through zap.
	LogQueries bool
	Logger     *zap.Logger
}

// Open opens a Gorm connection for the configured driver with retry and sane pooling defaults.
func Open(ctx context.Context, opts Options) (*gorm.DB, error) {
	dialector, err := dialectorFor(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Silent
	if opts.LogQueries {
		logLevel = gormlogger.Warn
	}
	zl := opts.Logger
	if zl == nil {
		zl = zap.NewNop()
	}

	b := backoff{
		maxRetries: 5,
		delay:      500 * time.Millisecond,
		maxDelay:   5 * time.Second,
	}

	var db *gorm.DB
	for attempt := 0; ; attempt++ {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: zapGormLogger{zap: zl, level: logLevel},
		})
		if err == nil {
			break
		}
		if attempt >= b.maxRetries {
			return nil, fmt.Errorf("open %s failed after retries: %w", opts.Driver, err)
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("open %s canceled: %w", opts.Driver, ctx.Err())
		case <-time.After(b.nextDelay(attempt)):
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db db() error: %w", err)
	}

	if opts.Driver == DriverSQLite {
		// an in-memory database lives only as long as its one connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctxPing); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	if dsn == "" {
		return nil, errors.New("database dsn must not be empty")
	}
	switch driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

type zapGormLogger struct {
	zap   *zap.Logger
	level gormlogger.LogLevel
}

func (l zapGormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	l.level = level
	return l
}

func (l zapGormLogger) Info(ctx context.Context, s string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.zap.Sugar().Infof(s, args...)
	}
}

func (l zapGormLogger) Warn(ctx context.Context, s string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.zap.Sugar().Warnf(s, args...)
	}
}

func (l zapGormLogger) Error(ctx context.Context, s string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.zap.Sugar().Errorf(s, args...)
	}
}

func (l zapGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}
	sql, rows := fc()
	dur := time.Since(begin)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		l.zap.Error("gorm query error", zap.Duration("duration", dur), zap.Int64("rows", rows), zap.String("sql", sql), zap.Error(err))
		return
	}
	l.zap.Debug("gorm query", zap.Duration("duration", dur), zap.Int64("rows", rows), zap.String("sql", sql))
}

type backoff struct {
	maxRetries int
	delay      time.Duration
	maxDelay   time.Duration
}

func (b backoff) nextDelay(attempt int) time.Duration {
	d := b.delay << attempt
	if d > b.maxDelay {
		return b.maxDelay
	}
	return d
}
