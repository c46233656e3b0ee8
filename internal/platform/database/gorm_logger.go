package database

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// GormLogger adapts slog to gorm's logger interface. The request-scoped logger
// from the context is preferred so SQL lines carry request_id and correlation_id.
//
// Statements log at debug, slow statements at warn, and failures at error.
// gorm.ErrRecordNotFound is not a failure: the repository maps it to a 404.
type GormLogger struct {
	logger        *slog.Logger
	slowThreshold time.Duration
}

var _ gormlogger.Interface = (*GormLogger)(nil)

// NewGormLogger returns a gorm logger writing through logger. A zero
// slowThreshold disables slow query warnings.
func NewGormLogger(logger *slog.Logger, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{logger: logger, slowThreshold: slowThreshold}
}

// LogMode is a no-op; the level is controlled by the slog handler.
func (l *GormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.from(ctx).InfoContext(ctx, msg, slog.Any("args", args))
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.from(ctx).WarnContext(ctx, msg, slog.Any("args", args))
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.from(ctx).ErrorContext(ctx, msg, slog.Any("args", args))
}

// Trace logs one executed SQL statement.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	logger := l.from(ctx)
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound):
		sql, rows := fc()
		logger.ErrorContext(ctx, "sql query failed",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		sql, rows := fc()
		logger.WarnContext(ctx, "slow sql query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", l.slowThreshold),
		)
	case logger.Enabled(ctx, slog.LevelDebug):
		sql, rows := fc()
		logger.DebugContext(ctx, "sql query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	}
}

func (l *GormLogger) from(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, l.logger)
}
