// Package logging builds the slog loggers shared by the todo server and the
// todo CLI. Both binaries read the log section of their config and pass it
// through Output and New:
//
//	w, closer := logging.Output(os.Stderr, logging.FileOptions{Path: cfg.Log.File.Path})
//	defer closer.Close()
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, w)
//
// The server middleware stores a request-scoped child logger (request_id,
// correlation_id) with WithLogger; handlers, the todo service and the gorm
// logger recover it with FromContext. Service errors are logged with the
// operation and the todo id:
//
//	logger.ErrorContext(ctx, "failed to update todo",
//	    slog.String("operation", "UpdateTodo"),
//	    slog.Int64("id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New returns a logger writing format ("text", otherwise JSON) to w at level.
// Level names are case-insensitive and anything unknown logs at info. Debug
// adds the source location. Every record passes through the masq redactor.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger attached by WithLogger, or slog.Default()
// outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func parseLevel(level string) slog.Level {
	if lvl, ok := levels[strings.ToLower(level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}
