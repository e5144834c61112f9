package ascii

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so log calls return
// before any attributes are built.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

// silent is the logger in effect until SetLogger is called.
var silent = slog.New(discard{})

// current holds the logger installed by SetLogger. Nil means silent.
var current atomic.Pointer[slog.Logger]

// SetLogger installs the logger used by the pipeline. The package logs
// nothing until it is called.
//
// SetLogger is safe for concurrent use with running pipelines. A nil logger
// restores the silent default.
//
// Records emitted:
//   - [slog.LevelDebug]: one "ascii: stage done" record per stage, with the
//     stage name and elapsed time
//
// Example:
//
//	ascii.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger installed by SetLogger, or a logger that
// discards everything.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
