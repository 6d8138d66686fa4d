package core

import "reflect"

// AmbientWidget carries a scoped value (theme, locale, and similar
// render context) down the tree. Descendants that read the value
// through AmbientOf are registered as dependents and rebuilt when the
// value changes.
type AmbientWidget interface {
	Widget
	// ChildWidget returns the subtree the ambient value applies to.
	ChildWidget() Widget
	// UpdateShouldNotify reports whether dependents must be rebuilt
	// after the widget was replaced by a new configuration.
	UpdateShouldNotify(old AmbientWidget) bool
}

// AmbientOf returns the nearest ambient widget of type W above the
// calling element, registering the caller as a dependent. The second
// return is false when no such ancestor exists.
func AmbientOf[W AmbientWidget](ctx BuildContext) (W, bool) {
	var zero W
	found := ctx.DependOnAmbient(reflect.TypeFor[W]())
	if found == nil {
		return zero, false
	}
	w, ok := found.(W)
	if !ok {
		return zero, false
	}
	return w, true
}

// AmbientElement hosts an AmbientWidget and tracks the elements that
// depend on its value.
type AmbientElement struct {
	elementBase
	child      Element
	dependents map[Element]struct{}
}

// NewAmbientElement creates an empty AmbientElement. The widget and
// build owner are assigned by the framework during inflation.
func NewAmbientElement() *AmbientElement {
	return &AmbientElement{
		dependents: make(map[Element]struct{}),
	}
}

func (e *AmbientElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *AmbientElement) Update(newWidget Widget) {
	oldWidget := e.widget.(AmbientWidget)
	e.widget = newWidget
	newAmbient := newWidget.(AmbientWidget)

	if newAmbient.UpdateShouldNotify(oldWidget) {
		for dependent := range e.dependents {
			notifyDependent(dependent)
		}
	}
	e.MarkNeedsBuild()
}

func (e *AmbientElement) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	e.dependents = nil
}

func (e *AmbientElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	ambient := e.widget.(AmbientWidget)
	e.child = updateChild(e.child, ambient.ChildWidget(), e.self, e.buildOwner, nil)
}

func (e *AmbientElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// AddDependent registers an element as depending on this ambient value.
func (e *AmbientElement) AddDependent(dependent Element) {
	if dependent == nil {
		return
	}
	if e.dependents == nil {
		e.dependents = make(map[Element]struct{})
	}
	e.dependents[dependent] = struct{}{}
}

// RemoveDependent unregisters a dependent element.
func (e *AmbientElement) RemoveDependent(dependent Element) {
	delete(e.dependents, dependent)
}

// notifyDependent triggers DidChangeDependencies on stateful dependents
// and schedules a rebuild.
func notifyDependent(element Element) {
	if stateful, ok := element.(*StatefulElement); ok {
		if stateful.state != nil {
			stateful.state.DidChangeDependencies()
		}
		stateful.MarkNeedsBuild()
		return
	}
	element.MarkNeedsBuild()
}
