package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/engine"
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester provides isolated widget testing without a running
// engine loop. It drives the same build phases as the engine but pumps
// frames on demand, and it counts the re-render requests the framework
// raises so tests can assert on coalescing behavior.
type WidgetTester struct {
	buildOwner    *core.BuildOwner
	root          core.Element
	clock         *FakeClock
	dispatches    []func()
	frameRequests int
}

// NewWidgetTester creates a tester with a fresh build owner. Call
// Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	t := &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		clock:      NewFakeClock(),
	}
	t.buildOwner.OnNeedsFrame = func() {
		t.frameRequests++
	}
	// Register this tester's dispatch function so engine.Dispatch works
	// during tests.
	engine.RegisterDispatch(t.Dispatch)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via
// t.Cleanup(). This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and unregisters the dispatch hook. Must be
// called if not using NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	engine.RegisterDispatch(nil)
}

// Clock returns the fake clock for advancing time in tests.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// FrameRequests returns the number of re-render requests raised since
// the last reset. Requests coalesce per pending element: repeated
// mutations of the same controller before a pump raise one request.
func (t *WidgetTester) FrameRequests() int {
	return t.frameRequests
}

// ResetFrameRequests zeroes the request counter.
func (t *WidgetTester) ResetFrameRequests() {
	t.frameRequests = 0
}

// PumpWidget mounts (or remounts) a widget and runs one frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	return t.Pump()
}

// Pump runs a single frame cycle: dispatches, then build flush.
func (t *WidgetTester) Pump() error {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}
	t.buildOwner.FlushBuild()
	return nil
}

// PumpAndSettle runs frames until the framework is idle or the timeout
// is reached. Each frame advances the fake clock by 16ms. Returns
// ErrSettleTimeout if the framework does not settle within timeout.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(frameDuration)
		elapsed += frameDuration
	}
	return ErrSettleTimeout
}

func (t *WidgetTester) needsWork() bool {
	return t.buildOwner.NeedsWork() || len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame, mirroring
// engine.Dispatch.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// StateOf returns the controller hosted by the first element matched by
// the finder. Panics if the match is not a stateful element.
func (t *WidgetTester) StateOf(finder Finder) core.State {
	element := t.Find(finder).First()
	stateful, ok := element.(*core.StatefulElement)
	if !ok {
		panic("StateOf: matched element is not stateful: " + finder.Description())
	}
	return stateful.State()
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}
