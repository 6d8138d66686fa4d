// Package core provides the widget and element framework interfaces and lifecycle.
//
// This package defines the foundational types for building reactive user
// interfaces: Widget, Element, State, and BuildContext. It follows a
// declarative model where widgets describe what the UI should look like
// and the framework keeps a retained element tree in sync with those
// descriptions.
//
// # Core Types
//
// Widget is an immutable description of part of the UI. Widgets are
// lightweight configuration objects that can be created on every render
// pass without performance concerns.
//
// Element is the instantiation of a Widget at a particular location in
// the tree. Elements manage lifecycle and identity across rebuilds.
//
// # Controllers and View Delegates
//
// For components with mutable state, embed StateBase in a controller
// struct and pair it with a view delegate that embeds WidgetView:
//
//	type counterController struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (c *counterController) Increment() {
//	    c.SetState(func() { c.count++ })
//	}
//
//	func (c *counterController) Build(ctx core.BuildContext) core.Widget {
//	    return counterView{core.NewWidgetView(c)}
//	}
//
//	type counterView struct {
//	    core.WidgetView[*counterController]
//	}
//
//	func (v counterView) Build(ctx core.BuildContext) core.Widget {
//	    return view.Text{Content: fmt.Sprintf("Count: %d", v.State.count)}
//	}
//
// The controller owns every mutation; the view delegate is constructed
// fresh each render pass, reads through its back-reference, and routes
// user interaction back into controller operations via callbacks. It
// must never write controller fields directly.
//
// # State Management
//
// SetState runs a mutation and schedules exactly one rebuild for the
// owning element; multiple field writes inside one SetState coalesce.
// After the element is unmounted, SetState becomes a no-op and the
// attempt is reported through the errors package, so late asynchronous
// completions cannot corrupt a detached component.
//
// # Hooks
//
// UseController and UseListenable manage resources and subscriptions
// with automatic cleanup on disposal. Managed wraps a value whose
// updates trigger rebuilds.
package core
