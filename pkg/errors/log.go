package errors

import (
	"github.com/go-reel/reel/pkg/log"
)

// LogHandler is an ErrorHandler that writes through the substrate logger.
type LogHandler struct {
	// Verbose enables stack traces on panics.
	Verbose bool
	// Logger overrides the destination; nil uses log.Default.
	Logger *log.Logger
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.Default()
}

// HandleError logs a structured error. Misuse and lookup errors are
// warnings; everything else is an error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	fields := []log.Field{
		log.String("op", err.Op),
		log.String("kind", err.Kind.String()),
		log.Err(err.Err),
	}
	if err.Component != "" {
		fields = append(fields, log.String("component", err.Component))
	}
	switch err.Kind {
	case KindMisuse, KindLookup, KindLifecycle:
		h.logger().Warn("reel error", fields...)
	default:
		h.logger().Error("reel error", fields...)
	}
}

// HandlePanic logs a recovered panic.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []log.Field{
		log.String("op", err.Op),
		log.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, log.String("stack", err.StackTrace))
	}
	h.logger().Error("reel panic", fields...)
}
