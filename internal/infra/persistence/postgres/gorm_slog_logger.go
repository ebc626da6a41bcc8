package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"arena/config"
	"arena/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slowQueryThreshold marks queries worth a warning even when they succeed.
const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM's internal logging onto the application slog
// handler. Record-not-found is an expected outcome for lookups and is never
// logged as an error.
type gormLogger struct {
	base  *slog.Logger
	level gormlogger.LogLevel
}

func newGormLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &gormLogger{base: base, level: level}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &gormLogger{base: l.base, level: level}
}

func (l *gormLogger) Info(ctx context.Context, format string, args ...any) {
	l.log(ctx, gormlogger.Info, slog.LevelInfo, format, args...)
}

func (l *gormLogger) Warn(ctx context.Context, format string, args ...any) {
	l.log(ctx, gormlogger.Warn, slog.LevelWarn, format, args...)
}

func (l *gormLogger) Error(ctx context.Context, format string, args ...any) {
	l.log(ctx, gormlogger.Error, slog.LevelError, format, args...)
}

func (l *gormLogger) log(ctx context.Context, min gormlogger.LogLevel, level slog.Level, format string, args ...any) {
	if l.base == nil || l.level < min {
		return
	}

	l.base.Log(ctx, level, fmt.Sprintf(format, args...))
}

// Trace reports each completed statement: failures at error level, slow
// statements at warn, everything else at info when debug logging is on.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		l.base.LogAttrs(ctx, slog.LevelError, "query failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.base.LogAttrs(ctx, slog.LevelWarn, "slow query",
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", slowQueryThreshold),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.base.LogAttrs(ctx, slog.LevelInfo, "query",
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	}
}
