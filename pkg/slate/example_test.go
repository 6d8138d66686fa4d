package slate_test

import (
	"github.com/go-slate/slate/pkg/slate"
	"github.com/go-slate/slate/pkg/view"
)

// This example shows how to create and configure a Slate application.
func ExampleNewApp() {
	// Create the root widget for the application
	root := view.Box{
		Child: view.Text{Content: "Hello, Slate!"},
	}

	// Create an app with default settings
	app := slate.NewApp(root)
	_ = app
}

// This example shows how to enable the inspection server for local
// development tooling.
func ExampleApp_withInspection() {
	root := view.Text{Content: "Inspected App"}

	app := slate.App{
		Root:        root,
		InspectPort: 7070,
	}
	_ = app
}

// This example shows how to dispatch work to the UI thread from a
// background goroutine. Use Dispatch when async work needs to invoke
// controller operations.
func ExampleDispatch() {
	// Simulating an async operation that needs to update UI
	go func() {
		// ... do some work in the background ...

		// Schedule the controller operation on the UI thread
		slate.Dispatch(func() {
			// This code runs on the UI thread and can safely invoke
			// controller operations
		})
	}()
}
