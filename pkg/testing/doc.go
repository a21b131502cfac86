// Package testing provides a widget testing framework for Flick.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := flicktest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(MyWidget{})
//
//	    // Simulate a press
//	    tester.Tap(flicktest.ByText("Submit"))
//	    tester.Pump()
//
//	    // Assert state
//	    if !tester.Find(flicktest.ByText("Submitted")).Exists() {
//	        t.Error("expected 'Submitted' text")
//	    }
//	}
//
// Each Pump runs one full frame: dispatches, state-update commit, build,
// paint, and update completion callbacks. State mutations requested through
// SetState are not visible until the pump that commits them.
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
//	FLICK_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import flicktest "github.com/go-flick/flick/pkg/testing"
package testing
