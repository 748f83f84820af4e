// Package log provides the substrate's structured logger, a thin wrapper
// over zap shared by the error handler, the registry's deprecation warnings,
// and the CLI.
package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is re-exported so callers do not import zap directly.
type Field = zap.Field

// Commonly used field constructors.
var (
	String = zap.String
	Int    = zap.Int
	Err    = zap.Error
	Any    = zap.Any
)

// Logger wraps a zap logger.
type Logger struct {
	z *zap.Logger
}

// New builds a console logger writing to stderr at the given level.
func New(level zapcore.Level) *Logger {
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	z, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return &Logger{z: z}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields ...Field) { l.z.Debug(msg, fields...) }

// Info logs at info level.
func (l *Logger) Info(msg string, fields ...Field) { l.z.Info(msg, fields...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields ...Field) { l.z.Warn(msg, fields...) }

// Error logs at error level.
func (l *Logger) Error(msg string, fields ...Field) { l.z.Error(msg, fields...) }

// With returns a logger with the fields attached to every entry.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{z: l.z.With(fields...)}
}

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// Default returns the process-wide logger, building a warn-level console
// logger on first use.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(zapcore.WarnLevel)
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger. Passing nil restores the
// built-in logger on next use.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}
