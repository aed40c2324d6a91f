// Package errors provides structured error handling for the live layer.
//
// Nothing in the apply protocol is fatal: unknown fields, mismatched values
// and lookup misses are recovered locally. They are still reported here so an
// application can surface them while documents are being edited.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindApply indicates a field in a document the target type does not have.
	KindApply
	// KindValue indicates a value that could not be stored in its field.
	KindValue
	// KindLookup indicates a missing module, file or identifier.
	KindLookup
	// KindDocument indicates a malformed node stream.
	KindDocument
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindApply:
		return "apply"
	case KindValue:
		return "value"
	case KindLookup:
		return "lookup"
	case KindDocument:
		return "document"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by LiveError.
var (
	ErrNoMatchingField = errors.New("no matching field")
	ErrValueMismatch   = errors.New("value type mismatch")
	ErrUnknownModule   = errors.New("unknown module")
	ErrUnknownID       = errors.New("unknown identifier")
	ErrUnknownFile     = errors.New("unknown file")
	ErrUnbalanced      = errors.New("unbalanced node stream")
	ErrSyntax          = errors.New("malformed document")
)

// LiveError represents a structured error in the live layer.
type LiveError struct {
	// Op is the operation that failed (e.g., "live.ApplyStruct").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Origin names the code that reported the error, if known.
	Origin string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LiveError) Error() string {
	if e.Origin != "" {
		return fmt.Sprintf("%s [%s] origin=%s: %v", e.Op, e.Kind, e.Origin, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LiveError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "livectl.apply").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the live layer.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LiveError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
