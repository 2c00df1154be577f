package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envLocal = "local"

var (
	global atomic.Pointer[zap.Logger]
	// skipped reports the caller of the package-level helpers.
	skipped atomic.Pointer[zap.Logger]
)

func init() {
	SetLogger(nil)
}

// SetupLogger builds the process-wide logger. Local env gets a console
// encoder, every other env gets JSON.
func SetupLogger(env string, level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	var cfg zap.Config
	if env == envLocal {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewExample()
	}
	l = l.With(zap.String("env", env))

	SetLogger(l)
	return l
}

// SetLogger replaces the global logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
	skipped.Store(l.WithOptions(zap.AddCallerSkip(1)))
}

func Logger() *zap.Logger {
	return global.Load()
}

func Debug(msg string, fields ...zap.Field) {
	skipped.Load().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	skipped.Load().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	skipped.Load().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	skipped.Load().Error(msg, fields...)
}

func Sync() error {
	return global.Load().Sync()
}
