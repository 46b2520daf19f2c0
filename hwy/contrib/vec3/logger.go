package vec3

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// defaultLogger is the diagnostic channel used by inserters that have no
// logger of their own.
var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(NewLogger(nil))
}

// NewLogger creates a diagnostic logger with the given handler.
// If handler is nil, uses a text handler writing to stderr.
func NewLogger(handler slog.Handler) *slog.Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})
	}
	return slog.New(handler)
}

// NoopLogger creates a logger that discards all output.
func NoopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetLogger replaces the package diagnostic logger. A nil logger discards
// diagnostics.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = NoopLogger()
	}
	defaultLogger.Store(l)
}

// Logger returns the package diagnostic logger.
func Logger() *slog.Logger {
	return defaultLogger.Load()
}
