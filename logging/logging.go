// Package logging builds the zap loggers used for progress and diagnostics.
// The measurement report itself goes to stdout; logs go to stderr so the two
// never interleave on the same stream.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// NewWithSink returns a console logger named name that writes entries at or
// above level to w.
func NewWithSink(name string, level zapcore.Level, w zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		w,
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core, zap.AddCaller()).Named(name)
}

// New returns a stderr logger. Level is parsed from text ("debug", "info",
// ...); unknown text falls back to info.
func New(name, level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	return NewWithSink(name, lvl, zapcore.Lock(os.Stderr))
}
