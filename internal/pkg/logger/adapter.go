package logger

import (
	"context"
	"log/slog"

	"enterl2_explorer/internal/app/port"
)

// slogAdapter реализует port.Logger поверх *slog.Logger.
// Без явного логгера пишет в глобальный, инициализированный через InitFromZap или InitSlog.
type slogAdapter struct {
	logger *slog.Logger
	attrs  []any
}

// NewSlogAdapter returns a port.Logger over l. A nil l follows the package global,
// so InitFromZap still takes effect for adapters created before it.
func NewSlogAdapter(l *slog.Logger) port.Logger {
	return &slogAdapter{logger: l}
}

// NewComponentAdapter is NewSlogAdapter with a "component" attribute on every record.
func NewComponentAdapter(l *slog.Logger, component string) port.Logger {
	return &slogAdapter{logger: l, attrs: []any{"component", component}}
}

func (a *slogAdapter) target() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}
	ensureInitialized()
	return globalLogger
}

func (a *slogAdapter) log(level slog.Level, msg string, args []any) {
	if len(a.attrs) > 0 {
		args = append(append([]any{}, a.attrs...), args...)
	}
	ctx := context.Background()
	if l := a.target(); l.Enabled(ctx, level) {
		l.Log(ctx, level, msg, args...)
	}
}

func (a *slogAdapter) Info(msg string, args ...any)  { a.log(slog.LevelInfo, msg, args) }
func (a *slogAdapter) Debug(msg string, args ...any) { a.log(slog.LevelDebug, msg, args) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.log(slog.LevelWarn, msg, args) }
func (a *slogAdapter) Error(msg string, args ...any) { a.log(slog.LevelError, msg, args) }
