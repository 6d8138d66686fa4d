package core

// Disposable is anything that releases resources on Dispose.
type Disposable interface {
	Dispose()
}

// Listenable notifies registered listeners when it changes. AddListener
// returns an unsubscribe function.
type Listenable interface {
	AddListener(listener func()) func()
}

// UseController creates a controller and registers it for automatic
// disposal when the state is disposed.
//
//	func (c *myController) InitState() {
//	    c.poller = core.UseController(c, func() *Poller {
//	        return NewPoller(time.Second)
//	    })
//	}
func UseController[C Disposable](s stateBase, create func() C) C {
	base := s.state()
	controller := create()
	base.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// UseListenable subscribes to a listenable and triggers rebuilds on
// change. The subscription is cleaned up when the state is disposed.
func UseListenable(s stateBase, listenable Listenable) {
	base := s.state()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// Managed holds a value and triggers rebuilds when it changes. It is
// tied to a specific StateBase.
//
// Managed is NOT thread-safe. It must only be accessed from the UI
// thread; use engine.Dispatch to update it from a goroutine:
//
//	go func() {
//	    result := doExpensiveWork()
//	    engine.Dispatch(func() {
//	        c.data.Set(result) // Safe - runs on UI thread
//	    })
//	}()
type Managed[T any] struct {
	base  *StateBase
	value T
}

// NewManaged creates a new managed state value. Changes to the value
// automatically trigger a rebuild.
func NewManaged[T any](s stateBase, initial T) *Managed[T] {
	return &Managed[T]{
		base:  s.state(),
		value: initial,
	}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value and triggers a rebuild.
func (m *Managed[T]) Set(value T) {
	m.base.SetState(func() {
		m.value = value
	})
}

// Update applies a transformation to the current value and triggers a
// rebuild.
func (m *Managed[T]) Update(transform func(T) T) {
	m.base.SetState(func() {
		m.value = transform(m.value)
	})
}
