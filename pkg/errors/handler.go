package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	// handler receives everything passed to Report and ReportPanic.
	handler ErrorHandler = &LogHandler{}
)

// SetHandler installs the global error handler and returns the previous one.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	if h == nil {
		h = &LogHandler{}
	}
	handler = h
	return prev
}

// Handler returns the current global error handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *LiveError) {
	ReportTo(Handler(), err)
}

// ReportTo sends an error to h, falling back to the global handler when h is nil.
func ReportTo(h ErrorHandler, err *LiveError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h == nil {
		h = Handler()
	}
	h.HandleError(err)
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover is a helper for deferred panic recovery. The panic is reported and,
// when errp is not nil, stored in *errp as a *PanicError.
// Usage: defer errors.Recover("operation.name", &err)
func Recover(op string, errp *error) {
	if r := recover(); r != nil {
		perr := &PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
		}
		ReportPanic(perr)
		if errp != nil {
			*errp = perr
		}
	}
}

// CaptureStack returns the current call stack as a string, starting at the
// caller of CaptureStack.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteByte('\n')
		if !more {
			break
		}
	}
	return sb.String()
}
