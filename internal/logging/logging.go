// Package logging provides a shared, structured logger for cli-assistant.
//
// It wraps [log/slog] with a single initialization point so all components
// share the same handler and level. The level comes from the
// CLI_ASSISTANT_LOG_LEVEL environment variable (debug, info, warn, error) and
// defaults to INFO.
//
// Output goes to stderr unless CLI_ASSISTANT_LOG_FILE names a file, in which
// case entries are appended there. Pointing logs at a file keeps them from
// drawing over the terminal UI. Both variables are read by [Init], so values
// loaded from .env at startup take effect.
//
// Usage:
//
//	log := logging.New("config")
//	log.Info("loaded config", "path", p)
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	current slog.Handler
)

// New returns a structured logger scoped to the given component name.
//
// The component name is added as a "component" attribute to every entry. If
// component is empty the base logger is returned. Loggers may be created at
// package init; they write through whatever handler [Init] last installed.
func New(component string) *slog.Logger {
	logger := slog.New(baseHandler{})
	if component == "" {
		return logger
	}
	return logger.With("component", component)
}

// Init (re)builds the shared handler from CLI_ASSISTANT_LOG_FILE and
// CLI_ASSISTANT_LOG_LEVEL. Call it after the environment is final, e.g.
// after loading .env. Without a call the environment is read on first use.
func Init() {
	h := newHandler(os.Getenv("CLI_ASSISTANT_LOG_FILE"), os.Getenv("CLI_ASSISTANT_LOG_LEVEL"))
	mu.Lock()
	prev := current
	current = h
	mu.Unlock()
	if fh, ok := prev.(fileHandler); ok {
		_ = fh.f.Close()
	}
}

func handler() slog.Handler {
	mu.RLock()
	h := current
	mu.RUnlock()
	if h != nil {
		return h
	}
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = newHandler(os.Getenv("CLI_ASSISTANT_LOG_FILE"), os.Getenv("CLI_ASSISTANT_LOG_LEVEL"))
	}
	return current
}

// fileHandler remembers the log file so Init can close it on replacement.
type fileHandler struct {
	slog.Handler
	f *os.File
}

func newHandler(path, level string) slog.Handler {
	w := output(path)
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	if f, ok := w.(*os.File); ok && f != os.Stderr {
		return fileHandler{Handler: h, f: f}
	}
	return h
}

// baseHandler resolves the shared handler on every call and replays the
// attrs and groups bound through With and WithGroup.
type baseHandler struct {
	ops []func(slog.Handler) slog.Handler
}

func (b baseHandler) resolve() slog.Handler {
	h := handler()
	for _, op := range b.ops {
		h = op(h)
	}
	return h
}

func (b baseHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return handler().Enabled(ctx, level)
}

func (b baseHandler) Handle(ctx context.Context, r slog.Record) error {
	return b.resolve().Handle(ctx, r)
}

func (b baseHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return b.with(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (b baseHandler) WithGroup(name string) slog.Handler {
	return b.with(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (b baseHandler) with(op func(slog.Handler) slog.Handler) baseHandler {
	ops := make([]func(slog.Handler) slog.Handler, len(b.ops), len(b.ops)+1)
	copy(ops, b.ops)
	return baseHandler{ops: append(ops, op)}
}

// output opens path for appending, falling back to stderr.
func output(path string) io.Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return os.Stderr
	}
	return f
}

// parseLevel converts a level name to a [slog.Level]. Unknown values map to
// INFO.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
