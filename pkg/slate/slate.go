// Package slate is the top-level entry point for Slate applications.
// It bundles an engine, an optional inspection server, and a root
// widget into a single App value so that main functions stay short.
package slate

import (
	"context"
	"fmt"

	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/engine"
	"github.com/go-slate/slate/pkg/inspect"
)

// App describes a Slate application.
type App struct {
	// Root is the widget mounted at the top of the tree.
	Root core.Widget

	// InspectPort, when non-zero, starts the inspection server on that
	// port before the frame loop runs. Use a negative value to request
	// an ephemeral port.
	InspectPort int
}

// NewApp creates an App with default settings for the given root.
func NewApp(root core.Widget) App {
	return App{Root: root}
}

// Run mounts the root widget and drives the frame loop until the
// context is cancelled. The calling goroutine becomes the UI thread.
func (a App) Run(ctx context.Context) error {
	if a.Root == nil {
		return fmt.Errorf("slate: App.Root is nil")
	}

	eng := engine.New()
	eng.Attach(a.Root)

	if a.InspectPort != 0 {
		port := a.InspectPort
		if port < 0 {
			port = 0
		}
		srv := inspect.Attach(eng)
		if _, err := srv.Start(port); err != nil {
			return err
		}
		defer srv.Stop()
	}

	return eng.Run(ctx)
}

// Dispatch schedules a callback on the UI thread. It is the safe way
// to touch controller state from a background goroutine.
func Dispatch(callback func()) bool {
	return engine.Dispatch(callback)
}
