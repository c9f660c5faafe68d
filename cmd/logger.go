package cmd

import (
	"io"
	"log/slog"

	"github.com/mouse-blink/buildmatrix/internal/config"
	"github.com/mouse-blink/buildmatrix/internal/ctxlog"
)

// newLogger builds the process logger. It writes to stderr so log lines never
// mix with the report on stdout, and becomes the slog default.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, w)
	slog.SetDefault(logger)

	return logger
}
