package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options configures New.
type Options struct {
	Level slog.Level
	// JSON switches to one JSON object per record (for CI log collectors).
	JSON bool
	// Writer defaults to os.Stderr so argument output on stdout stays clean.
	Writer io.Writer
}

// New creates the application logger.
// It standardizes common keys ("error" -> "err").
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{
		Level: opts.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
