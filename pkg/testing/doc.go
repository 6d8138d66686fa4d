// Package testing provides a widget testing framework for Slate.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := slatetest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(MyWidget{})
//
//	    // Find elements
//	    label := tester.Find(slatetest.ByText("Submit")).First()
//
//	    // Simulate interaction
//	    tester.Tap(slatetest.ByText("Submit"))
//	    tester.Pump()
//
//	    // Assert state
//	    if !tester.Find(slatetest.ByText("Submitted")).Exists() {
//	        t.Error("expected 'Submitted' text")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare widget tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_widget.snapshot.json")
//
// Update snapshots with:
//
//	SLATE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Re-render Accounting
//
// The tester counts frame requests raised by controller mutations, so
// tests can assert that operations coalesce the way they should:
//
//	tester.ResetFrameRequests()
//	controller.Increment()
//	if got := tester.FrameRequests(); got != 1 {
//	    t.Errorf("frame requests = %d, want 1", got)
//	}
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import slatetest "github.com/go-slate/slate/pkg/testing"
package testing
