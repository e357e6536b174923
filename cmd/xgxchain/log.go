package main

import (
	"io"
	"log/slog"

	slogctx "github.com/veqryn/slog-context"
)

// setupLogger installs the default logger. Attributes stored in the context
// with slogctx.With are added to every record.
func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slogctx.NewHandler(
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		}), nil,
	)
	slog.SetDefault(slog.New(handler))
}
