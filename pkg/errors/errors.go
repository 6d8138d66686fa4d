// Package errors provides structured error reporting for the Slate framework.
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
	// KindInit indicates an initialization error.
	KindInit
	// KindBuild indicates a failure while building a widget subtree.
	KindBuild
	// KindLifecycle indicates a lifecycle violation, such as a state
	// mutation attempted after the owning element was unmounted.
	KindLifecycle
	// KindSelection indicates a non-exhaustive view variant selection.
	KindSelection
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindBuild:
		return "build"
	case KindLifecycle:
		return "lifecycle"
	case KindSelection:
		return "selection"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FrameworkError represents a structured error in the Slate framework.
type FrameworkError struct {
	// Op is the operation that failed (e.g., "core.SetState").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FrameworkError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FrameworkError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Frame").
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

// BoundaryError represents a failure during a widget build, captured at
// the element that was building when the failure occurred.
type BoundaryError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Element is the element type hosting the widget.
	Element string
	// Phase is the framework phase, currently always "build".
	Phase string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BoundaryError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s (%s phase): %v", e.Widget, e.Phase, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s (%s phase): %v", e.Widget, e.Phase, e.Err)
	}
	return fmt.Sprintf("unknown error in %s (%s phase)", e.Widget, e.Phase)
}

func (e *BoundaryError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Slate framework.
type ErrorHandler interface {
	// HandleError is called when a framework error occurs.
	HandleError(err *FrameworkError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBoundaryError is called when a widget build fails.
	HandleBoundaryError(err *BoundaryError)
}
