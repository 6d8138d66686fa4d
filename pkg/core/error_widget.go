package core

import (
	"sync"

	"github.com/go-slate/slate/pkg/errors"
)

// ErrorWidgetBuilder creates a fallback widget when a widget build
// fails. The builder receives the captured error and returns the widget
// to display in place of the failed subtree.
type ErrorWidgetBuilder func(err *errors.BoundaryError) Widget

var (
	errorWidgetBuilder ErrorWidgetBuilder = DefaultErrorWidgetBuilder
	errorBuilderMu     sync.RWMutex
)

// SetErrorWidgetBuilder configures the global error widget builder.
// Pass nil to restore the default builder.
func SetErrorWidgetBuilder(builder ErrorWidgetBuilder) {
	errorBuilderMu.Lock()
	defer errorBuilderMu.Unlock()
	if builder == nil {
		errorWidgetBuilder = DefaultErrorWidgetBuilder
	} else {
		errorWidgetBuilder = builder
	}
}

// GetErrorWidgetBuilder returns the current error widget builder.
func GetErrorWidgetBuilder() ErrorWidgetBuilder {
	errorBuilderMu.RLock()
	defer errorBuilderMu.RUnlock()
	return errorWidgetBuilder
}

// DefaultErrorWidgetBuilder returns nil, which signals the framework to
// fall back to a minimal placeholder for the failed subtree.
func DefaultErrorWidgetBuilder(err *errors.BoundaryError) Widget {
	return nil
}

// ErrorBoundaryCapture is implemented by elements that capture build
// errors from descendant widgets instead of letting the framework
// substitute a placeholder.
type ErrorBoundaryCapture interface {
	// CaptureError captures a build error from a descendant widget.
	// Returns true if the error was captured and handled.
	CaptureError(err *errors.BoundaryError) bool
}
