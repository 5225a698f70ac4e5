package ggterm

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called from any goroutine while a frame is rendering.
var loggerPtr atomic.Pointer[slog.Logger]

// loggerHooks are notified on every SetLogger call. Sub-packages that keep
// their own logger pointer register here.
var loggerHooks atomic.Pointer[[]func(*slog.Logger)]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggterm and all its sub-packages.
// By default, ggterm produces no log output. Call SetLogger to enable logging.
//
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by ggterm:
//   - [slog.LevelDebug]: per-frame diagnostics (vertex counts, buffer growth,
//     uniform slots the shader does not declare)
//   - [slog.LevelInfo]: lifecycle events (pipeline created, renderer released)
//   - [slog.LevelWarn]: per-frame GPU failures
//
// Example:
//
//	ggterm.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	if hooks := loggerHooks.Load(); hooks != nil {
		for _, h := range *hooks {
			h(l)
		}
	}
}

// Logger returns the current logger used by ggterm.
// Sub-packages call this to share the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// OnSetLogger registers fn to be called with the new logger whenever
// SetLogger runs. fn is also called immediately with the current logger.
// Registration normally happens from package init functions.
func OnSetLogger(fn func(*slog.Logger)) {
	for {
		old := loggerHooks.Load()
		var next []func(*slog.Logger)
		if old != nil {
			next = append(next, *old...)
		}
		next = append(next, fn)
		if loggerHooks.CompareAndSwap(old, &next) {
			break
		}
	}
	fn(Logger())
}
