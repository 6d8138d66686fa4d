package view

import "github.com/go-slate/slate/pkg/core"

// Text is a leaf node carrying a string.
type Text struct {
	core.NodeBase
	Content string
}

// Box wraps a single child, optionally giving it an identity for
// reconciliation.
type Box struct {
	core.NodeBase
	ID    any
	Child core.Widget
}

// Key returns the box identity used during reconciliation.
func (b Box) Key() any { return b.ID }

// ChildWidget returns the wrapped child.
func (b Box) ChildWidget() core.Widget { return b.Child }

// Group holds an ordered list of children. Children with non-nil keys
// keep their element (and state) across reorders.
type Group struct {
	core.NodeBase
	ID       any
	Children []core.Widget
}

// Key returns the group identity used during reconciliation.
func (g Group) Key() any { return g.ID }

// ChildWidgets returns the ordered children.
func (g Group) ChildWidgets() []core.Widget { return g.Children }

// Tappable invokes OnTap when the host delivers an activation event for
// its subtree. The callback runs outside the render pass and may invoke
// controller operations.
type Tappable struct {
	core.NodeBase
	OnTap func()
	Child core.Widget
}

// ChildWidget returns the interactive subtree.
func (t Tappable) ChildWidget() core.Widget { return t.Child }

// Builder defers to a closure at build time. Useful for inserting a
// computed subtree without declaring a widget type.
type Builder struct {
	core.StatelessBase
	BuildFn func(ctx core.BuildContext) core.Widget
}

// Build invokes the closure.
func (b Builder) Build(ctx core.BuildContext) core.Widget {
	if b.BuildFn == nil {
		return nil
	}
	return b.BuildFn(ctx)
}
