package core

import (
	goerrors "errors"
	"sync"

	"github.com/go-slate/slate/pkg/errors"
)

// errStaleMutation marks a mutation attempted after the owning element
// was unmounted.
var errStaleMutation = goerrors.New("state mutation after dispose suppressed")

// errMutationDuringBuild marks a mutation attempted from inside a
// render pass.
var errMutationDuringBuild = goerrors.New("state mutation during build")

// stateBase is satisfied by any struct that embeds StateBase.
// Hooks and NewManaged accept stateBase so callers can pass s directly.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase provides common controller functionality for stateful
// widgets. Embed it in a controller struct to get lifecycle guards,
// rebuild scheduling, and disposal bookkeeping without boilerplate.
//
// Example:
//
//	type myController struct {
//	    core.StateBase
//	    count int
//	}
type StateBase struct {
	element   *StatefulElement
	disposers []func()
	disposed  bool
	mu        sync.Mutex
}

// SetElement stores the element reference for triggering rebuilds.
// Called automatically by the framework during mount.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element associated with this state.
// Returns nil before mount.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// SetState executes the given mutation and schedules a rebuild of the
// owning element. However many fields the mutation touches, it produces
// at most one re-render request; requests from repeated operations
// coalesce until the next flush.
//
// After disposal the mutation is not executed at all: the attempt is
// reported as a lifecycle defect and suppressed, so asynchronous work
// completing after detachment cannot alter controller fields.
//
// Calling SetState from inside a build is a contract violation (render
// is read-only) and panics after reporting the defect.
//
// SetState is NOT thread-safe. It must only be called from the UI
// thread; use engine.Dispatch to get there from a goroutine.
func (s *StateBase) SetState(fn func()) {
	if s.disposed {
		errors.Report(&errors.FrameworkError{
			Op:         "core.SetState",
			Kind:       errors.KindLifecycle,
			Err:        errStaleMutation,
			StackTrace: errors.CaptureStack(),
		})
		return
	}
	if buildDepth > 0 {
		errors.Report(&errors.FrameworkError{
			Op:         "core.SetState",
			Kind:       errors.KindLifecycle,
			Err:        errMutationDuringBuild,
			StackTrace: errors.CaptureStack(),
		})
		panic("core: SetState called during build; render must stay read-only")
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers a cleanup function to be called when the state is
// disposed. Returns an unregister function. The cleanup runs at most
// once; if the state is already disposed it runs immediately.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		cleanup()
		return func() {}
	}

	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// RunDisposers executes all registered disposers in reverse order.
// Called automatically by Dispose.
func (s *StateBase) RunDisposers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.disposed = true

	for i := len(s.disposers) - 1; i >= 0; i-- {
		if s.disposers[i] != nil {
			s.disposers[i]()
		}
	}
	s.disposers = nil
}

// Dispose releases resources. Override for custom cleanup, but always
// call s.RunDisposers() or s.StateBase.Dispose() in the override.
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// InitState is a no-op default. Override to derive initial mutable
// fields from the widget configuration.
func (s *StateBase) InitState() {}

// Build is a no-op default that returns nil. Override to produce the
// component's view delegate.
func (s *StateBase) Build(ctx BuildContext) Widget {
	return nil
}

// DidChangeDependencies is a no-op default. Override to respond to
// ambient value changes.
func (s *StateBase) DidChangeDependencies() {}

// DidUpdateWidget is a no-op default. Override to respond to widget
// configuration changes.
func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}

// IsDisposed returns true once the state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
