package main

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// newLogger returns a console logger writing to w, or a no-op logger when
// level is empty or not one of the LogLevel constants.
func newLogger(level string, w io.Writer) *zap.Logger {
	var lvl zapcore.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LogLevelDebug:
		lvl = zapcore.DebugLevel
	case LogLevelInfo:
		lvl = zapcore.InfoLevel
	case LogLevelWarn:
		lvl = zapcore.WarnLevel
	case LogLevelError:
		lvl = zapcore.ErrorLevel
	default:
		return zap.NewNop()
	}

	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core).Named("stimeout")
}
