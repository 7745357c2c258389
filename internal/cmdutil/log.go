// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a console logger writing to dst at level and above.
// Timestamps are omitted so diagnostics stay diffable across runs.
func NewLogger(dst io.Writer, level zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(dst), level)
	return zap.New(core)
}

// Level applies --quiet (warnings and errors only) and --verbose (debug) on
// top of a configured base level. --verbose wins when both are set.
func Level(base zapcore.Level, quiet, verbose bool) zapcore.Level {
	switch {
	case verbose:
		return zapcore.DebugLevel
	case quiet && base < zapcore.WarnLevel:
		return zapcore.WarnLevel
	}
	return base
}
