package core

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/go-slate/slate/pkg/errors"
)

// buildDepth tracks nesting of widget builds on the UI thread. SetState
// consults it to reject mutations attempted from inside a render pass.
var buildDepth int

type elementBase struct {
	id         uuid.UUID
	widget     Widget
	parent     Element
	depth      int
	slot       any
	buildOwner *BuildOwner
	dirty      bool
	self       Element
	mounted    bool
}

func (e *elementBase) ID() uuid.UUID {
	return e.id
}

func (e *elementBase) Widget() Widget {
	return e.widget
}

func (e *elementBase) Depth() int {
	return e.depth
}

func (e *elementBase) Slot() any {
	return e.slot
}

func (e *elementBase) UpdateSlot(slot any) {
	e.slot = slot
}

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

// NeedsBuild reports whether the element is scheduled for rebuild.
func (e *elementBase) NeedsBuild() bool {
	return e.dirty
}

func (e *elementBase) parentElement() Element {
	return e.parent
}

func (e *elementBase) setSelf(self Element) {
	e.self = self
}

func (e *elementBase) setWidget(widget Widget) {
	e.widget = widget
}

func (e *elementBase) setBuildOwner(owner *BuildOwner) {
	e.buildOwner = owner
}

func (e *elementBase) isMounted() bool {
	return e.mounted
}

// mountBase runs the shared mount prologue: parent wiring, depth, slot,
// identity.
func (e *elementBase) mountBase(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.id = uuid.New()
	e.mounted = true
}

func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	current := e.parent
	for current != nil {
		if predicate(current) {
			return current
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

func (e *elementBase) DependOnAmbient(ambientType reflect.Type) AmbientWidget {
	current := e.parent
	for current != nil {
		if ambient, ok := current.(*AmbientElement); ok {
			widgetType := reflect.TypeOf(ambient.widget)
			if widgetType == ambientType || (widgetType.Kind() == reflect.Pointer && widgetType.Elem() == ambientType) {
				ambient.AddDependent(e.self)
				return ambient.widget.(AmbientWidget)
			}
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

// safeBuild executes a build function with panic recovery. A panicking
// build is reported, routed to the nearest error boundary if one exists,
// and replaced by the configured fallback widget.
func (e *elementBase) safeBuild(buildFn func() Widget) Widget {
	var built Widget
	var buildErr *errors.BoundaryError

	buildDepth++
	func() {
		defer func() {
			buildDepth--
			if r := recover(); r != nil {
				buildErr = &errors.BoundaryError{
					Widget:     typeName(e.widget),
					Element:    typeName(e.self),
					Phase:      "build",
					Recovered:  r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		built = buildFn()
	}()

	if buildErr != nil {
		errors.ReportBoundaryError(buildErr)

		if boundary := e.findErrorBoundary(); boundary != nil {
			if boundary.CaptureError(buildErr) {
				return nil
			}
		}

		if builder := GetErrorWidgetBuilder(); builder != nil {
			if errWidget := builder(buildErr); errWidget != nil {
				return errWidget
			}
		}

		return errorPlaceholder{err: buildErr}
	}
	return built
}

// findErrorBoundary searches ancestors for an error boundary.
func (e *elementBase) findErrorBoundary() ErrorBoundaryCapture {
	current := e.parent
	for current != nil {
		if capture, ok := current.(ErrorBoundaryCapture); ok {
			return capture
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

// errorPlaceholder is a minimal fallback widget shown when build fails
// and no error widget builder is configured.
type errorPlaceholder struct {
	err *errors.BoundaryError
}

func (p errorPlaceholder) CreateElement() Element {
	return NewStatelessElement()
}

func (p errorPlaceholder) Key() any {
	return nil
}

func (p errorPlaceholder) Build(ctx BuildContext) Widget {
	// The error has already been reported; render nothing.
	return nil
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	elementBase
	child Element
}

// NewStatelessElement creates an empty StatelessElement. The widget and
// build owner are assigned by the framework during inflation.
func NewStatelessElement() *StatelessElement {
	return &StatelessElement{}
}

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *StatelessElement) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *StatelessElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widget := e.widget.(StatelessWidget)
	built := e.safeBuild(func() Widget {
		return widget.Build(e.self)
	})
	e.child = updateChild(e.child, built, e.self, e.buildOwner, nil)
}

func (e *StatelessElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// StatefulElement hosts a StatefulWidget and its State.
type StatefulElement struct {
	elementBase
	child Element
	state State
}

// NewStatefulElement creates an empty StatefulElement. The widget and
// build owner are assigned by the framework during inflation.
func NewStatefulElement() *StatefulElement {
	return &StatefulElement{}
}

// State returns the state hosted by this element, or nil before mount.
func (e *StatefulElement) State() State {
	return e.state
}

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	widget := e.widget.(StatefulWidget)
	e.state = widget.CreateState()
	if setter, ok := e.state.(interface{ SetElement(*StatefulElement) }); ok {
		setter.SetElement(e)
	}
	e.state.InitState()
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Update(newWidget Widget) {
	oldWidget := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(oldWidget)
	e.MarkNeedsBuild()
}

func (e *StatefulElement) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	if e.state != nil {
		e.state.Dispose()
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	built := e.safeBuild(func() Widget {
		return e.state.Build(e.self)
	})
	e.child = updateChild(e.child, built, e.self, e.buildOwner, nil)
}

func (e *StatefulElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// NodeElement hosts a description node: a widget that maps directly to
// a retained node in the UI tree rather than building further widgets.
// Widgets exposing ChildWidget() or ChildWidgets() get their subtrees
// reconciled here.
type NodeElement struct {
	elementBase
	children []Element
}

// NewNodeElement creates an empty NodeElement. The widget and build
// owner are assigned by the framework during inflation.
func NewNodeElement() *NodeElement {
	return &NodeElement{}
}

func (e *NodeElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *NodeElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *NodeElement) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
}

func (e *NodeElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false

	switch typed := e.widget.(type) {
	case interface{ ChildWidget() Widget }:
		childWidget := typed.ChildWidget()
		var child Element
		if len(e.children) > 0 {
			child = e.children[0]
		}
		child = updateChild(child, childWidget, e.self, e.buildOwner, nil)
		if child != nil {
			e.children = []Element{child}
		} else {
			e.children = nil
		}

	case interface{ ChildWidgets() []Widget }:
		e.children = updateChildren(e.self, e.children, typed.ChildWidgets(), e.buildOwner)
	}
}

func (e *NodeElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

// MountRoot inflates a widget and mounts it as the root of an element
// tree owned by the given BuildOwner.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	if element == nil {
		return nil
	}
	element.Mount(nil, nil)
	return element
}

func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner, slot any) Element {
	if widget == nil {
		if existing != nil {
			existing.Unmount()
		}
		return nil
	}
	if existing != nil && canUpdateWidget(existing.Widget(), widget) {
		existing.UpdateSlot(slot)
		existing.Update(widget)
		return existing
	}
	if existing != nil {
		existing.Unmount()
	}
	element := inflateWidget(widget, owner)
	element.Mount(parent, slot)
	return element
}

// updateChildren reconciles an old child list against new widgets.
// Children sync from the top and bottom while types and keys line up;
// the middle region is matched by key where possible, positionally for
// non-keyed widgets, and anything unmatched is unmounted.
func updateChildren(parent Element, oldChildren []Element, newWidgets []Widget, owner *BuildOwner) []Element {
	newChildren := make([]Element, len(newWidgets))
	used := make(map[Element]bool)

	slotFor := func(index int) IndexedSlot {
		var previous Element
		if index > 0 {
			previous = newChildren[index-1]
		}
		return IndexedSlot{Index: index, PreviousSibling: previous}
	}

	oldTop, newTop := 0, 0
	oldBottom, newBottom := len(oldChildren)-1, len(newWidgets)-1

	// Sync from the top.
	for oldTop <= oldBottom && newTop <= newBottom {
		old := oldChildren[oldTop]
		if old == nil || !canUpdateWidget(old.Widget(), newWidgets[newTop]) {
			break
		}
		newChildren[newTop] = updateChild(old, newWidgets[newTop], parent, owner, slotFor(newTop))
		used[old] = true
		oldTop++
		newTop++
	}

	// Scan from the bottom; the matched tail is synced after the middle
	// so slots can thread through in order.
	for oldTop <= oldBottom && newTop <= newBottom {
		old := oldChildren[oldBottom]
		if old == nil || !canUpdateWidget(old.Widget(), newWidgets[newBottom]) {
			break
		}
		oldBottom--
		newBottom--
	}

	// Index the middle region: keyed children by key, the rest in order.
	var oldKeyed map[any]Element
	var oldUnkeyed []Element
	for i := oldTop; i <= oldBottom; i++ {
		old := oldChildren[i]
		if old == nil || old.Widget() == nil {
			continue
		}
		key := old.Widget().Key()
		if key != nil && isComparable(key) {
			if oldKeyed == nil {
				oldKeyed = make(map[any]Element)
			}
			oldKeyed[key] = old
		} else {
			oldUnkeyed = append(oldUnkeyed, old)
		}
	}

	unkeyedIndex := 0
	for ; newTop <= newBottom; newTop++ {
		widget := newWidgets[newTop]
		var existing Element

		key := widget.Key()
		if key != nil && isComparable(key) {
			if match, ok := oldKeyed[key]; ok && canUpdateWidget(match.Widget(), widget) {
				existing = match
				delete(oldKeyed, key)
			}
		} else if unkeyedIndex < len(oldUnkeyed) && canUpdateWidget(oldUnkeyed[unkeyedIndex].Widget(), widget) {
			existing = oldUnkeyed[unkeyedIndex]
			unkeyedIndex++
		}

		if existing != nil {
			used[existing] = true
		}
		newChildren[newTop] = updateChild(existing, widget, parent, owner, slotFor(newTop))
	}

	// Sync the bottom tail matched earlier.
	for i := newBottom + 1; i < len(newWidgets); i++ {
		oldIndex := oldBottom + 1 + (i - (newBottom + 1))
		old := oldChildren[oldIndex]
		used[old] = true
		newChildren[i] = updateChild(old, newWidgets[i], parent, owner, slotFor(i))
	}

	// Unmount whatever found no new position.
	for _, old := range oldChildren {
		if old != nil && !used[old] {
			old.Unmount()
		}
	}

	return newChildren
}

func canUpdateWidget(existing Widget, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	if reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	return reflect.DeepEqual(existing.Key(), next.Key())
}

// isComparable reports whether a value can be used as a map key.
// Non-comparable keys (slices, maps, funcs) fall back to positional
// matching instead of key lookup.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	element := widget.CreateElement()
	if setter, ok := element.(interface{ setWidget(Widget) }); ok {
		setter.setWidget(widget)
	}
	if setter, ok := element.(interface{ setBuildOwner(*BuildOwner) }); ok {
		setter.setBuildOwner(owner)
	}
	if setter, ok := element.(interface{ setSelf(Element) }); ok {
		setter.setSelf(element)
	}
	return element
}
