package core

// WidgetView is the base for render delegates bound to a controller.
// A view delegate is constructed fresh on every render pass, holds a
// non-owning back-reference to its controller, and translates current
// controller fields into a UI description. It must not outlive the
// render pass that created it and must not write controller fields;
// all mutation flows through operations the controller exposes,
// typically invoked from interaction callbacks the view attaches.
//
//	type counterView struct {
//	    core.WidgetView[*counterController]
//	}
//
//	func (v counterView) Build(ctx core.BuildContext) core.Widget {
//	    return view.Tappable{
//	        OnTap: v.State.Increment,
//	        Child: view.Text{Content: strconv.Itoa(v.State.count)},
//	    }
//	}
//
// The controller's Build selects and constructs exactly one view
// delegate per render pass:
//
//	func (c *counterController) Build(ctx core.BuildContext) core.Widget {
//	    return counterView{core.NewWidgetView(c)}
//	}
type WidgetView[S any] struct {
	StatelessBase

	// State is the controller this view renders from. Read-only.
	State S
}

// NewWidgetView constructs the delegate base for a controller.
func NewWidgetView[S any](state S) WidgetView[S] {
	return WidgetView[S]{State: state}
}

// StatelessView is the base for render delegates over an immutable
// property bag. The delegate renders deterministically from the bag's
// fields and the ambient context; it holds no mutable state of its own
// and is discarded after the render pass.
//
//	type badgeView struct {
//	    core.StatelessView[BadgeProps]
//	}
//
//	func (v badgeView) Build(ctx core.BuildContext) core.Widget {
//	    return view.Text{Content: v.Props.Label}
//	}
type StatelessView[P any] struct {
	StatelessBase

	// Props is the immutable input data for this render. Read-only.
	Props P
}

// NewStatelessView constructs the delegate base for a property bag.
func NewStatelessView[P any](props P) StatelessView[P] {
	return StatelessView[P]{Props: props}
}
