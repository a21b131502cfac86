package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-flick/flick/pkg/widgets"
)

// stubT records failures instead of failing the real test.
type stubT struct {
	fatals []string
	errs   []string
}

func (s *stubT) Helper() {}
func (s *stubT) Fatalf(format string, args ...any) {
	s.fatals = append(s.fatals, fmt.Sprintf(format, args...))
}
func (s *stubT) Errorf(format string, args ...any) {
	s.errs = append(s.errs, fmt.Sprintf(format, args...))
}
func (s *stubT) Name() string { return "stubT" }

func TestCaptureSnapshot_ToggleTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	snap := tester.CaptureSnapshot()
	if snap.WidgetTree == nil {
		t.Fatal("expected a widget tree")
	}
	if snap.WidgetTree.Type != "widgets.Toggle" {
		t.Errorf("unexpected root type %q", snap.WidgetTree.Type)
	}
	if len(snap.WidgetTree.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(snap.WidgetTree.Children))
	}
	child := snap.WidgetTree.Children[0]
	if child.Type != "widgets.Button" || child.Text != widgets.UnclickedText {
		t.Errorf("unexpected child node %+v", child)
	}
	if len(snap.Lines) != 1 || snap.Lines[0] != widgets.UnclickedText {
		t.Errorf("unexpected lines %v", snap.Lines)
	}
}

func TestSnapshot_MatchesGoldenFile(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	snap := tester.CaptureSnapshot()
	snap.MatchesFile(t, filepath.Join("testdata", "toggle.snapshot.json"))
}

func TestSnapshot_DiffDetectsChanges(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	snap := tester.CaptureSnapshot()
	if diff := snap.Diff(snap); diff != "" {
		t.Errorf("expected empty diff for identical snapshots, got:\n%s", diff)
	}

	tester.Tap(ByType(widgets.Button{}))
	tester.Pump()
	after := tester.CaptureSnapshot()

	diff := after.Diff(snap)
	if diff == "" {
		t.Fatal("expected a diff after the toggle was pressed")
	}
	if !strings.Contains(diff, "clicked") {
		t.Errorf("expected the diff to mention the changed text, got:\n%s", diff)
	}
}

func TestSnapshot_UpdateFileRoundTrips(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	snap := tester.CaptureSnapshot()
	path := filepath.Join(t.TempDir(), "nested", "toggle.snapshot.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	loaded, err := loadSnapshot(path)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}
	if diff := snap.Diff(loaded); diff != "" {
		t.Errorf("expected round-tripped snapshot to be equal, got:\n%s", diff)
	}
}

func TestSnapshot_MatchesFileMissingGolden(t *testing.T) {
	if os.Getenv("FLICK_UPDATE_SNAPSHOTS") == "1" {
		t.Skip("snapshot update mode writes the file instead of failing")
	}

	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Toggle{})

	stub := &stubT{}
	tester.CaptureSnapshot().MatchesFile(stub, filepath.Join(t.TempDir(), "missing.snapshot.json"))

	if len(stub.fatals) != 1 || !strings.Contains(stub.fatals[0], "snapshot file missing") {
		t.Errorf("expected a missing-file failure, got %v", stub.fatals)
	}
}
