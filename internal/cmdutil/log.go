// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the stderr console logger shared by all binaries.
// quiet raises the level to Error so per-exposure warnings are suppressed
// while hard failures still surface.
func NewLogger(w io.Writer, quiet bool) *zap.Logger {
	level := zapcore.WarnLevel
	if quiet {
		level = zapcore.ErrorLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // timestamps are noise on a terminal
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
