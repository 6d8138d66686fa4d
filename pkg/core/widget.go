package core

import (
	"reflect"

	"github.com/google/uuid"
)

// Widget is an immutable description of part of the UI.
type Widget interface {
	// CreateElement instantiates the element that will host this widget.
	// The framework assigns the widget and build owner during inflation.
	CreateElement() Element
	// Key distinguishes widgets of the same type during reconciliation.
	// A nil key matches positionally.
	Key() any
}

// StatelessWidget renders purely from its own immutable fields. The
// widget struct is the property bag: every input to the render lives in
// an exported field supplied at construction and never mutated after.
// Two values with equal fields are interchangeable for render purposes.
type StatelessWidget interface {
	Widget
	// Build returns the UI description for the current property values.
	// It must be free of side effects.
	Build(ctx BuildContext) Widget
}

// StatefulWidget is the immutable configuration for a component whose
// behavior depends on mutable state. The state lives in the State value
// the widget creates, not in the widget itself.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State owns the mutable fields of one live component instance and the
// operations that change them.
//
// Lifecycle: CreateState produces an uninitialized state; InitState runs
// once when the element mounts; mutations flow through SetState while
// attached; Dispose runs once when the element unmounts. No method is
// invoked after Dispose, and mutations attempted afterwards are
// suppressed.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	Dispose()
	DidUpdateWidget(oldWidget StatefulWidget)
	DidChangeDependencies()
}

// BuildContext gives build methods read access to the element tree.
type BuildContext interface {
	// Widget returns the widget hosted at this location.
	Widget() Widget
	// Depth returns the element's depth from the root.
	Depth() int
	// FindAncestor walks up the tree and returns the first ancestor
	// satisfying the predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
	// DependOnAmbient registers the calling element as a dependent of
	// the nearest ambient widget of the given type and returns that
	// widget, or nil if no such ancestor exists.
	DependOnAmbient(ambientType reflect.Type) AmbientWidget
}

// Element is the retained instantiation of a Widget at a particular
// location in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	VisitChildren(visitor func(Element) bool)
	// Slot identifies this element's position within its parent.
	Slot() any
	UpdateSlot(slot any)
	// ID is a stable identifier assigned at mount, used by inspection
	// tooling to track elements across tree snapshots.
	ID() uuid.UUID
}

// IndexedSlot records a child's position among its siblings.
type IndexedSlot struct {
	Index           int
	PreviousSibling Element
}
