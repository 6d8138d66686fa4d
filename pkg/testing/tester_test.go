package testing_test

import (
	"testing"
	"time"

	"github.com/go-slate/slate/pkg/core"
	slatetest "github.com/go-slate/slate/pkg/testing"
	"github.com/go-slate/slate/pkg/testing/internal/testbed"
	"github.com/go-slate/slate/pkg/view"
)

func TestPumpWidgetMountsTree(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	if err := tester.PumpWidget(testbed.Counter{Initial: 5}); err != nil {
		t.Fatal(err)
	}
	if !tester.Find(slatetest.ByText("5")).Exists() {
		t.Error("expected initial count to render")
	}
}

func TestTapInvokesOperation(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	var reported int
	tester.PumpWidget(testbed.Counter{OnTap: func(count int) { reported = count }})

	if err := tester.Tap(slatetest.ByType[testbed.Counter]()); err != nil {
		t.Fatal(err)
	}
	tester.Pump()

	if reported != 1 {
		t.Errorf("reported count = %d, want 1", reported)
	}
	if !tester.Find(slatetest.ByText("1")).Exists() {
		t.Error("expected updated count to render")
	}
}

func TestTapNoMatch(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(view.Text{Content: "static"})

	if err := tester.Tap(slatetest.ByText("missing")); err == nil {
		t.Error("expected error for unmatched finder")
	}
	if err := tester.Tap(slatetest.ByText("static")); err == nil {
		t.Error("expected error for non-tappable match")
	}
}

func TestFrameRequestsCountMutations(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{})

	controller := tester.StateOf(slatetest.ByType[testbed.Counter]()).(interface{ Increment() })

	// Each operation between pumps raises its own request.
	tester.ResetFrameRequests()
	controller.Increment()
	tester.Pump()
	controller.Increment()
	tester.Pump()
	controller.Increment()
	tester.Pump()
	if got := tester.FrameRequests(); got != 3 {
		t.Errorf("frame requests = %d, want 3", got)
	}

	// Without a pump in between, requests for the same element coalesce.
	tester.ResetFrameRequests()
	controller.Increment()
	controller.Increment()
	if got := tester.FrameRequests(); got != 1 {
		t.Errorf("coalesced frame requests = %d, want 1", got)
	}
	tester.Pump()

	if !tester.Find(slatetest.ByText("5")).Exists() {
		t.Error("expected count 5 after five increments")
	}
}

func TestPumpAndSettle(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{})

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
}

func TestDispatchRunsOnPump(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(view.Text{Content: "x"})

	ran := false
	tester.Dispatch(func() { ran = true })
	if ran {
		t.Fatal("dispatch ran before pump")
	}
	tester.Pump()
	if !ran {
		t.Fatal("dispatch did not run on pump")
	}
}

func TestPumpWidgetReplacesTree(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(view.Text{Content: "first"})
	tester.PumpWidget(view.Text{Content: "second"})

	if tester.Find(slatetest.ByText("first")).Exists() {
		t.Error("old tree still present")
	}
	if !tester.Find(slatetest.ByText("second")).Exists() {
		t.Error("new tree not mounted")
	}
}

func TestStateOfPanicsForStateless(t *testing.T) {
	tester := slatetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(view.Text{Content: "x"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for stateless match")
		}
	}()
	tester.StateOf(slatetest.ByType[view.Text]())
}

func TestClockAdvance(t *testing.T) {
	tester := slatetest.NewWidgetTester()
	defer tester.Cleanup()

	start := tester.Clock().Now()
	tester.Clock().Advance(250 * time.Millisecond)
	if got := tester.Clock().Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("clock advanced %v, want 250ms", got)
	}
}

var _ core.Widget = testbed.Counter{}
