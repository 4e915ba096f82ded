package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

var globalLogger *slog.Logger // один глобальный логгер

// NewZap builds the process logger. An unknown level falls back to info.
func NewZap(levelStr string, development bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	z, buildErr := cfg.Build()
	if buildErr != nil {
		return nil, buildErr
	}
	if err != nil {
		z.Warn("Invalid log level string, defaulting to INFO", zap.String("input", levelStr))
	}
	return z, nil
}

// InitFromZap routes the global slog logger into z, so slog and zap share one sink.
func InitFromZap(z *zap.Logger) {
	globalLogger = slog.New(zapslog.NewHandler(z.Core()))
	slog.SetDefault(globalLogger)
}

// InitSlog initializes the global slog logger with a specified log level and JSON format.
// Used when no zap logger is available yet.
func InitSlog(levelStr string) {
	var parsedLevel slog.Level
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		parsedLevel = slog.LevelDebug
	case "INFO":
		parsedLevel = slog.LevelInfo
	case "WARN":
		parsedLevel = slog.LevelWarn
	case "ERROR":
		parsedLevel = slog.LevelError
	default:
		parsedLevel = slog.LevelInfo
		// globalLogger еще не инициализирован
		slog.Warn("Invalid log level string, defaulting to INFO", "input", levelStr)
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parsedLevel})
	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

func ensureInitialized() {
	if globalLogger == nil {
		InitSlog("INFO")
	}
}

func log(level slog.Level, msg string, args ...any) {
	ensureInitialized()
	ctx := context.Background()
	if globalLogger.Enabled(ctx, level) {
		globalLogger.Log(ctx, level, msg, args...)
	}
}

// Debug logs a message at DebugLevel.
func Debug(msg string, args ...any) { log(slog.LevelDebug, msg, args...) }

// Info logs a message at InfoLevel.
func Info(msg string, args ...any) { log(slog.LevelInfo, msg, args...) }

// Warn logs a message at WarnLevel.
func Warn(msg string, args ...any) { log(slog.LevelWarn, msg, args...) }

// Error logs a message at ErrorLevel.
func Error(msg string, args ...any) { log(slog.LevelError, msg, args...) }

// Fatal logs a message at ErrorLevel then exits.
func Fatal(msg string, args ...any) {
	ensureInitialized()
	// всегда, независимо от Enabled
	globalLogger.Error(msg, args...)
	os.Exit(1)
}
