package core

// StatelessBase provides default CreateElement and Key implementations
// for stateless widgets. Embed it in your widget struct to satisfy the
// Widget interface without boilerplate:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return view.Text{Content: "Hello, " + g.Name}
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement() }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations
// for stateful widgets. Embed it in your widget struct to satisfy the
// Widget interface without boilerplate:
//
//	type Counter struct {
//	    core.StatefulBase
//	}
//
//	func (Counter) CreateState() core.State { return &counterController{} }
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement() }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// NodeBase provides default CreateElement and Key implementations for
// description-node widgets: widgets that map directly to a retained
// node instead of building further widgets. Expose ChildWidget() or
// ChildWidgets() to give the node a subtree.
type NodeBase struct{}

// CreateElement returns a new NodeElement.
func (NodeBase) CreateElement() Element { return NewNodeElement() }

// Key returns nil (no key).
func (NodeBase) Key() any { return nil }

// AmbientBase provides default CreateElement and Key implementations
// for ambient widgets. Embed it alongside a Child field and implement
// [AmbientWidget.ChildWidget] and [AmbientWidget.UpdateShouldNotify].
type AmbientBase struct{}

// CreateElement returns a new AmbientElement.
func (AmbientBase) CreateElement() Element { return NewAmbientElement() }

// Key returns nil (no key).
func (AmbientBase) Key() any { return nil }

// Stateful creates an inline stateful widget using closures. Use it for
// quick, self-contained fragments that don't need lifecycle hooks or a
// named controller.
//
//	widget := core.Stateful(
//	    func() int { return 0 },
//	    func(count int, ctx core.BuildContext, setState func(func(int) int)) core.Widget {
//	        return view.Tappable{
//	            OnTap: func() {
//	                setState(func(c int) int { return c + 1 })
//	            },
//	            Child: view.Text{Content: fmt.Sprintf("Count: %d", count)},
//	        }
//	    },
//	)
//
// The generic parameter is the state type. setState takes a function
// that transforms the current state to a new state.
func Stateful[S any](
	init func() S,
	build func(state S, ctx BuildContext, setState func(func(S) S)) Widget,
) Widget {
	return &inlineStatefulWidget[S]{
		initFn:  init,
		buildFn: build,
	}
}

type inlineStatefulWidget[S any] struct {
	initFn  func() S
	buildFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (w *inlineStatefulWidget[S]) CreateElement() Element {
	return NewStatefulElement()
}

func (w *inlineStatefulWidget[S]) Key() any { return nil }

func (w *inlineStatefulWidget[S]) CreateState() State {
	return &inlineStatefulState[S]{
		initFn:  w.initFn,
		buildFn: w.buildFn,
	}
}

type inlineStatefulState[S any] struct {
	StateBase
	value   S
	initFn  func() S
	buildFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (s *inlineStatefulState[S]) InitState() {
	s.value = s.initFn()
}

func (s *inlineStatefulState[S]) Build(ctx BuildContext) Widget {
	return s.buildFn(s.value, ctx, func(update func(S) S) {
		s.SetState(func() {
			s.value = update(s.value)
		})
	})
}
