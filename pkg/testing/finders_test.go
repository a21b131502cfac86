package testing

import (
	"testing"

	"github.com/go-flick/flick/pkg/core"
	"github.com/go-flick/flick/pkg/widgets"
)

// toggleStateOf extracts the toggle state from the mounted tree.
func toggleStateOf(t *testing.T, tester *WidgetTester) *widgets.ToggleState {
	t.Helper()
	element := tester.Find(ByType(widgets.Toggle{})).First()
	stateful, ok := element.(*core.StatefulElement)
	if !ok {
		t.Fatalf("expected *core.StatefulElement, got %T", element)
	}
	state, ok := stateful.State().(*widgets.ToggleState)
	if !ok {
		t.Fatalf("expected *widgets.ToggleState, got %T", stateful.State())
	}
	return state
}

func TestByType(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	if got := tester.Find(ByType(widgets.Toggle{})).Count(); got != 1 {
		t.Errorf("expected 1 Toggle, got %d", got)
	}
	if got := tester.Find(ByType(widgets.Button{})).Count(); got != 1 {
		t.Errorf("expected 1 Button, got %d", got)
	}
	if tester.Find(ByType(widgets.Text{})).Exists() {
		t.Error("expected no Text widgets")
	}
}

func TestByText(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	result := tester.Find(ByText(widgets.UnclickedText))
	if !result.Exists() {
		t.Fatal("expected a match for the unclicked text")
	}
	if _, ok := result.Widget().(widgets.Button); !ok {
		t.Errorf("expected the match to be a Button, got %T", result.Widget())
	}
}

func TestByPredicate(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	result := tester.Find(ByPredicate("pressables", func(e core.Element) bool {
		_, ok := e.Widget().(widgets.Pressable)
		return ok
	}))
	if got := result.Count(); got != 1 {
		t.Errorf("expected 1 pressable, got %d", got)
	}
}

func TestFinderResult_Accessors(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	empty := tester.Find(ByText("nope"))
	if empty.Exists() {
		t.Error("expected no matches")
	}
	if empty.FirstOrNil() != nil {
		t.Error("expected FirstOrNil to return nil")
	}
	if empty.Count() != 0 || len(empty.All()) != 0 {
		t.Error("expected empty result accessors to agree")
	}

	found := tester.Find(ByType(widgets.Button{}))
	if found.At(0) != found.First() {
		t.Error("expected At(0) to equal First()")
	}
}
