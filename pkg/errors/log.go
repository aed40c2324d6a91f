package errors

import (
	"log/slog"
	"sync"

	"github.com/hardik-satasiya/makepad/internal/logging"
)

// LogHandler is an ErrorHandler that logs through slog.
type LogHandler struct {
	// Logger receives the records. Nil logs to stderr at warn level.
	Logger *slog.Logger
	// Verbose adds stack traces to the records.
	Verbose bool
}

var stderrLogger = sync.OnceValue(func() *slog.Logger {
	return logging.New(slog.LevelWarn)
})

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return stderrLogger()
}

// HandleError logs a LiveError.
func (h *LogHandler) HandleError(err *LiveError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "error", err.Err}
	if err.Origin != "" {
		attrs = append(attrs, "origin", err.Origin)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Warn("live error", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("live panic", attrs...)
}
