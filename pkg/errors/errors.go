// Package errors provides structured error handling for the Reel substrate.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a structural configuration error, such as an
	// unknown component type name. These are programmer errors and fatal
	// at the point of use.
	KindConfig
	// KindMisuse indicates a deprecated or malformed calling convention
	// that was recovered with a safe default.
	KindMisuse
	// KindLookup indicates a miss on a by-id or by-name lookup.
	KindLookup
	// KindLifecycle indicates an operation against a disposed component.
	KindLifecycle
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindMisuse:
		return "misuse"
	case KindLookup:
		return "lookup"
	case KindLifecycle:
		return "lifecycle"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the substrate.
type Error struct {
	// Op is the operation that failed (e.g. "core.AddNamedChild").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Component is the id of the component involved, if any.
	Component string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// E constructs a structured error.
func E(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Errorf constructs a structured error from a format string.
func Errorf(op string, kind ErrorKind, format string, args ...any) *Error {
	return E(op, kind, fmt.Errorf(format, args...))
}

// WithComponent returns the error annotated with a component id.
func (e *Error) WithComponent(id string) *Error {
	e.Component = id
	return e
}

// PanicError captures a recovered panic.
type PanicError struct {
	// Op is the operation during which the panic occurred.
	Op string
	// Value is the recovered panic value.
	Value any
	// StackTrace contains the call stack at recovery time.
	StackTrace string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}
