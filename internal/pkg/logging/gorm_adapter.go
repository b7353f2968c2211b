package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm/logger"
)

type GormLoggerConfig struct {
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
}

func DefaultGormLoggerConfig() GormLoggerConfig {
	return GormLoggerConfig{
		SlowThreshold:             200 * time.Millisecond,
		IgnoreRecordNotFoundError: true,
	}
}

// GormLogger writes GORM statements and errors to slog.
type GormLogger struct {
	logLevel logger.LogLevel
	logger   *slog.Logger
	config   GormLoggerConfig
}

func NewGormLogger(l *slog.Logger, logLevel logger.LogLevel, config GormLoggerConfig) *GormLogger {
	return &GormLogger{logLevel: logLevel, logger: l.With("component", "gorm"), config: config}
}

// GormLevel picks the GORM level matching a slog level: SQL tracing only at
// debug.
func GormLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return logger.Info
	case level <= slog.LevelWarn:
		return logger.Warn
	default:
		return logger.Error
	}
}

func (l *GormLogger) LogMode(logLevel logger.LogLevel) logger.Interface {
	return &GormLogger{logLevel: logLevel, logger: l.logger, config: l.config}
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.logLevel >= logger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.logLevel >= logger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.logLevel >= logger.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	sql, rows := fc()
	elapsed := time.Since(begin)
	attrs := []any{
		slog.String("sql", sql),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
	}

	if err != nil && l.logLevel >= logger.Error {
		if errors.Is(err, logger.ErrRecordNotFound) && l.config.IgnoreRecordNotFoundError {
			return
		}
		l.logger.ErrorContext(ctx, "database operation failed", append(attrs, slog.Any("error", err))...)
		return
	}

	if l.config.SlowThreshold != 0 && elapsed > l.config.SlowThreshold && l.logLevel >= logger.Warn {
		l.logger.WarnContext(ctx, "slow sql query", attrs...)
		return
	}

	if l.logLevel >= logger.Info {
		l.logger.DebugContext(ctx, "sql query executed", attrs...)
	}
}
