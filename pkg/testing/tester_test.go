package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-flick/flick/pkg/widgets"
)

func TestPumpWidget_RendersInitialFrame(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	if err := tester.PumpWidget(widgets.Text{Content: "hello"}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	lines := tester.Rendered()
	if len(lines) != 1 || lines[0] != "hello" {
		t.Fatalf("expected rendered [hello], got %v", lines)
	}
}

func TestPumpWidget_RemountsPreviousTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Text{Content: "first"})
	first := tester.RootElement()

	tester.PumpWidget(widgets.Text{Content: "second"})
	if tester.RootElement() == first {
		t.Error("expected a fresh root element after remount")
	}
	if got := tester.Rendered()[0]; got != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}
}

func TestPump_RunsDispatchesBeforeCommit(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	var order []string
	tester.Dispatch(func() { order = append(order, "dispatch") })
	state := toggleStateOf(t, tester)
	state.Trigger(func() { order = append(order, "committed") })

	tester.Pump()

	if len(order) != 2 || order[0] != "dispatch" || order[1] != "committed" {
		t.Errorf("expected [dispatch committed], got %v", order)
	}
}

func TestPumpAndSettle_SettlesAfterTrigger(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	tester.Tap(ByText(widgets.UnclickedText))
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}

	if got := tester.Rendered()[0]; got != widgets.ClickedText {
		t.Errorf("expected %q, got %q", widgets.ClickedText, got)
	}
}

func TestPumpAndSettle_TimesOutOnEndlessWork(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	// A dispatch that re-queues itself never settles.
	var requeue func()
	requeue = func() { tester.Dispatch(requeue) }
	tester.Dispatch(requeue)

	err := tester.PumpAndSettle(160 * time.Millisecond)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Errorf("expected ErrSettleTimeout, got %v", err)
	}
}

func TestTap_FailsWithoutMatch(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Text{Content: "static"})

	if err := tester.Tap(ByText("missing")); err == nil {
		t.Error("expected an error tapping a missing widget")
	}
	if err := tester.Tap(ByText("static")); err == nil {
		t.Error("expected an error tapping a non-pressable widget")
	}
}
