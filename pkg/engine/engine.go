// Package engine drives the single-threaded frame loop: it owns the
// root element, drains dispatched callbacks, and flushes rebuilds when
// the framework signals that a render pass is needed.
//
// All controller operations and all builds run on the loop goroutine,
// which is the framework's one logical UI thread. Goroutines hand
// results back with Dispatch; nothing else may touch controller state.
package engine

import (
	"context"
	"sync"

	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/errors"
)

// Engine owns a widget tree and schedules its render passes.
type Engine struct {
	owner *core.BuildOwner
	root  core.Element

	mu         sync.Mutex
	dispatches []func()
	wake       chan struct{}
	frames     uint64

	// OnFrameEnd, when set, is invoked on the loop goroutine after each
	// completed frame. Inspection tooling hooks it to publish rebuild
	// events.
	OnFrameEnd func()
}

// New creates an engine with its own BuildOwner wired to request frames
// from the loop.
func New() *Engine {
	e := &Engine{
		owner: core.NewBuildOwner(),
		wake:  make(chan struct{}, 1),
	}
	e.owner.OnNeedsFrame = e.requestFrame
	return e
}

// Owner returns the engine's BuildOwner.
func (e *Engine) Owner() *core.BuildOwner {
	return e.owner
}

// Root returns the mounted root element, or nil before Attach.
func (e *Engine) Root() core.Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.root
}

// FrameCount returns the number of frames flushed so far.
func (e *Engine) FrameCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// Attach mounts the widget as the root of the engine's tree. Must be
// called before Run, or from the loop goroutine via Dispatch.
func (e *Engine) Attach(widget core.Widget) {
	if old := e.Root(); old != nil {
		old.Unmount()
	}
	root := core.MountRoot(widget, e.owner)
	e.mu.Lock()
	e.root = root
	e.mu.Unlock()
	RegisterDispatch(e.Dispatch)
}

// Detach unmounts the root tree.
func (e *Engine) Detach() {
	e.mu.Lock()
	root := e.root
	e.root = nil
	e.mu.Unlock()
	if root != nil {
		root.Unmount()
	}
}

// Dispatch queues a callback for the next frame on the UI thread.
// Safe to call from any goroutine.
func (e *Engine) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	e.dispatches = append(e.dispatches, fn)
	e.mu.Unlock()
	e.requestFrame()
}

// requestFrame wakes the loop. Coalesces: a pending wakeup absorbs
// further requests.
func (e *Engine) requestFrame() {
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// Run executes the frame loop until the context is cancelled. The
// calling goroutine becomes the UI thread.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			e.Detach()
			return ctx.Err()
		case <-e.wake:
			e.Frame()
		}
	}
}

// Frame runs one frame: drains the dispatch queue, then flushes all
// pending rebuilds. Exposed so tests and embedders can pump frames
// without a running loop.
func (e *Engine) Frame() {
	defer errors.Recover("engine.Frame")

	for {
		e.mu.Lock()
		dispatches := e.dispatches
		e.dispatches = nil
		e.mu.Unlock()
		if len(dispatches) == 0 {
			break
		}
		for _, fn := range dispatches {
			fn()
		}
	}

	e.owner.FlushBuild()

	e.mu.Lock()
	e.frames++
	hook := e.OnFrameEnd
	e.mu.Unlock()
	if hook != nil {
		hook()
	}
}
