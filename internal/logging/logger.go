package logging

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a logr.Logger. Debug messages are written at V(1).
type Logger struct {
	sink logr.Logger
}

// New wraps base. A zero logr.Logger gets an info-level stderr logger instead.
func New(base logr.Logger) Logger {
	if base.GetSink() == nil {
		return FromLevel("info")
	}
	return Logger{sink: base}
}

// FromLevel builds a console logger on stderr. level is a zap level name
// ("debug", "info", "warn", "error"); anything else means info.
func FromLevel(level string) Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	z, err := cfg.Build()
	if err != nil {
		z = zap.NewNop()
	}
	return Logger{sink: zapr.NewLogger(z)}
}

func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func (l Logger) WithName(name string) Logger { return Logger{sink: l.sink.WithName(name)} }

func (l Logger) Info(msg string, kv ...any) { l.sink.Info(msg, kv...) }

func (l Logger) Debug(msg string, kv ...any) { l.sink.V(1).Info(msg, kv...) }

func (l Logger) Error(err error, msg string, kv ...any) { l.sink.Error(err, msg, kv...) }

// Logr returns the wrapped logr.Logger.
func (l Logger) Logr() logr.Logger { return l.sink }
