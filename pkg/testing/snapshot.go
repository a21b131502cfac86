package testing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/go-flick/flick/pkg/core"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree structure and the rendered lines.
type Snapshot struct {
	WidgetTree *WidgetNode `json:"widgetTree"`
	Lines      []string    `json:"lines,omitempty"`
}

// WidgetNode represents a node in the serialized widget tree.
type WidgetNode struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	Children []*WidgetNode `json:"children,omitempty"`
}

// CaptureSnapshot captures the current widget tree and rendered lines.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{Lines: t.Rendered()}
	if t.root != nil {
		snap.WidgetTree = captureWidgetNode(t.root)
	}
	return snap
}

func captureWidgetNode(e core.Element) *WidgetNode {
	node := &WidgetNode{Type: reflect.TypeOf(e.Widget()).String()}
	if w, ok := e.Widget().(core.ContentWidget); ok {
		node.Text = w.DisplayText()
	}
	e.VisitChildren(func(child core.Element) bool {
		node.Children = append(node.Children, captureWidgetNode(child))
		return true
	})
	return node
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When FLICK_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("FLICK_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: FLICK_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: FLICK_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a description of the differences between this snapshot and
// other. Returns an empty string if they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(other, s)
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &snap, nil
}
