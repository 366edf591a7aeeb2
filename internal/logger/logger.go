package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

// Init builds the process logger at the given level ("debug", "info", ...).
// Safe to call once at startup; before Init the package falls back to a
// no-op logger so library code can log unconditionally.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger: parse level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	sugar = l.Sugar()
	return nil
}

func log() *zap.SugaredLogger {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return sugar
}

// Sync flushes buffered log entries.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

func Debugf(format string, args ...any) { log().Debugf(format, args...) }
func Infof(format string, args ...any)  { log().Infof(format, args...) }
func Warnf(format string, args ...any)  { log().Warnf(format, args...) }
func Errorf(format string, args ...any) { log().Errorf(format, args...) }
func Fatalf(format string, args ...any) { log().Fatalf(format, args...) }

// Keyed variants, for structured fields.
func Debug(msg string, kv ...any) { log().Debugw(msg, kv...) }
func Info(msg string, kv ...any)  { log().Infow(msg, kv...) }
func Warn(msg string, kv ...any)  { log().Warnw(msg, kv...) }
func Error(msg string, kv ...any) { log().Errorw(msg, kv...) }
func Fatal(msg string, kv ...any) { log().Fatalw(msg, kv...) }
