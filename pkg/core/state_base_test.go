package core

import (
	goerrors "errors"
	"testing"

	"github.com/go-slate/slate/pkg/errors"
)

type tickerWidget struct {
	StatefulBase
	initial int
}

func (w tickerWidget) CreateState() State { return &tickerState{} }

type tickerState struct {
	StateBase
	count  int
	label  string
	builds int
}

func (s *tickerState) InitState() {
	s.count = s.Element().Widget().(tickerWidget).initial
}

func (s *tickerState) Tick() {
	s.SetState(func() {
		s.count++
		s.label = "ticked"
	})
}

func (s *tickerState) Build(ctx BuildContext) Widget {
	s.builds++
	return nil
}

func mountTicker(t *testing.T, owner *BuildOwner, initial int) *tickerState {
	t.Helper()
	root := MountRoot(tickerWidget{initial: initial}, owner)
	return root.(*StatefulElement).State().(*tickerState)
}

func TestInitStateRunsOnceAtMount(t *testing.T) {
	owner := NewBuildOwner()
	state := mountTicker(t, owner, 41)

	if state.count != 41 {
		t.Errorf("count = %d, want 41 from InitState", state.count)
	}
	if state.builds != 1 {
		t.Errorf("builds = %d, want 1", state.builds)
	}
}

func TestSetStateMutatesAndSchedules(t *testing.T) {
	owner := NewBuildOwner()
	state := mountTicker(t, owner, 0)

	state.Tick()
	if state.count != 1 || state.label != "ticked" {
		t.Error("mutation should apply synchronously")
	}
	if !owner.NeedsWork() {
		t.Error("SetState should schedule a rebuild")
	}
	owner.FlushBuild()
	if state.builds != 2 {
		t.Errorf("builds = %d, want 2", state.builds)
	}
}

func TestSetStateCoalescesOneRequestPerOperation(t *testing.T) {
	owner := NewBuildOwner()
	requests := 0
	owner.OnNeedsFrame = func() { requests++ }
	state := mountTicker(t, owner, 0)

	// One operation touching several fields raises one request.
	state.Tick()
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}

	// Further operations before the flush coalesce into the same
	// pending request.
	state.Tick()
	state.Tick()
	if requests != 1 {
		t.Errorf("requests = %d, want 1 (coalesced)", requests)
	}
	owner.FlushBuild()

	// Each flushed frame makes room for the next request.
	state.Tick()
	owner.FlushBuild()
	state.Tick()
	owner.FlushBuild()
	if requests != 3 {
		t.Errorf("requests = %d, want 3 across three frames", requests)
	}
	if state.count != 5 {
		t.Errorf("count = %d, want 5", state.count)
	}
}

func TestStaleMutationSuppressed(t *testing.T) {
	h := installCaptureHandler(t)
	owner := NewBuildOwner()
	root := MountRoot(tickerWidget{}, owner)
	state := root.(*StatefulElement).State().(*tickerState)

	root.Unmount()
	if !state.IsDisposed() {
		t.Fatal("state should be disposed after unmount")
	}

	state.Tick()

	// The mutation must not run at all: no field changes, no rebuild.
	if state.count != 0 || state.label != "" {
		t.Error("stale mutation must not alter controller fields")
	}
	if owner.NeedsWork() {
		t.Error("stale mutation must not schedule a rebuild")
	}

	if len(h.frameworkErrs) != 1 {
		t.Fatalf("framework errors = %d, want 1", len(h.frameworkErrs))
	}
	fe := h.frameworkErrs[0]
	if fe.Kind != errors.KindLifecycle {
		t.Errorf("kind = %v, want KindLifecycle", fe.Kind)
	}
	if !goerrors.Is(fe, errStaleMutation) {
		t.Error("error should wrap the stale mutation sentinel")
	}
}

type mutatingBuildWidget struct {
	StatefulBase
}

func (w mutatingBuildWidget) CreateState() State { return &mutatingBuildState{} }

type mutatingBuildState struct {
	StateBase
	builds int
}

func (s *mutatingBuildState) Build(ctx BuildContext) Widget {
	s.builds++
	if s.builds == 1 {
		s.SetState(func() {})
	}
	return nil
}

func TestSetStateDuringBuildIsADefect(t *testing.T) {
	h := installCaptureHandler(t)
	owner := NewBuildOwner()

	// The panic raised by the in-build mutation is recovered like any
	// other build failure: reported, subtree replaced.
	MountRoot(mutatingBuildWidget{}, owner)

	if len(h.frameworkErrs) != 1 {
		t.Fatalf("framework errors = %d, want 1", len(h.frameworkErrs))
	}
	if !goerrors.Is(h.frameworkErrs[0], errMutationDuringBuild) {
		t.Error("error should wrap the mutation-during-build sentinel")
	}
	if len(h.boundaryErrs) != 1 {
		t.Fatalf("boundary errors = %d, want 1", len(h.boundaryErrs))
	}
}

func TestSetStateDuringBuildPanics(t *testing.T) {
	installCaptureHandler(t)
	state := &tickerState{}

	buildDepth++
	defer func() { buildDepth-- }()

	defer func() {
		if recover() == nil {
			t.Error("SetState inside a build must panic")
		}
	}()
	state.SetState(func() {})
}

func TestOnDisposeRunsInReverseOrder(t *testing.T) {
	owner := NewBuildOwner()
	root := MountRoot(tickerWidget{}, owner)
	state := root.(*StatefulElement).State().(*tickerState)

	var order []int
	state.OnDispose(func() { order = append(order, 1) })
	state.OnDispose(func() { order = append(order, 2) })
	state.OnDispose(func() { order = append(order, 3) })

	root.Unmount()

	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("dispose order = %v, want [3 2 1]", order)
	}
}

func TestOnDisposeUnregister(t *testing.T) {
	owner := NewBuildOwner()
	root := MountRoot(tickerWidget{}, owner)
	state := root.(*StatefulElement).State().(*tickerState)

	ran := false
	unregister := state.OnDispose(func() { ran = true })
	unregister()

	root.Unmount()
	if ran {
		t.Error("unregistered cleanup must not run")
	}
}

func TestOnDisposeAfterDisposeRunsImmediately(t *testing.T) {
	owner := NewBuildOwner()
	root := MountRoot(tickerWidget{}, owner)
	state := root.(*StatefulElement).State().(*tickerState)
	root.Unmount()

	ran := false
	state.OnDispose(func() { ran = true })
	if !ran {
		t.Error("cleanup registered after dispose should run immediately")
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	owner := NewBuildOwner()
	root := MountRoot(tickerWidget{}, owner)
	state := root.(*StatefulElement).State().(*tickerState)

	runs := 0
	state.OnDispose(func() { runs++ })

	root.Unmount()
	state.Dispose()
	if runs != 1 {
		t.Errorf("cleanup runs = %d, want 1", runs)
	}
}

func TestDidUpdateWidgetOnReconfigure(t *testing.T) {
	owner := NewBuildOwner()
	root := MountRoot(hostWidget{child: tickerWidget{initial: 1}}, owner)

	stateful := childElements(root)[0].(*StatefulElement)
	state := stateful.State().(*tickerState)

	root.Update(hostWidget{child: tickerWidget{initial: 9}})
	owner.FlushBuild()

	// InitState ran once; the new configuration arrives through
	// DidUpdateWidget, not a fresh state.
	if childElements(root)[0] != Element(stateful) {
		t.Fatal("stateful element should be reused")
	}
	if state.count != 1 {
		t.Errorf("count = %d; reconfiguration must not re-run InitState", state.count)
	}
	if stateful.Widget().(tickerWidget).initial != 9 {
		t.Error("element should carry the new widget")
	}
}
