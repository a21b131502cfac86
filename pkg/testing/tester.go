package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-flick/flick/pkg/core"
	"github.com/go-flick/flick/pkg/graphics"
	"github.com/go-flick/flick/pkg/host"
)

const (
	// DefaultTestWidth is the default surface width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default surface height for the test surface.
	DefaultTestHeight = 600
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester provides isolated widget testing without a real host loop.
// It drives the same commit, build, and paint phases as the host but paints
// into a line-recording surface and advances frames only when pumped.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	surface    *host.LineSurface
	size       graphics.Size
	dispatches []func()
}

// NewWidgetTester creates a tester with the default test surface.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		surface:    &host.LineSurface{},
		size:       graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// NewWidgetTesterWithT creates a tester that unmounts via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree. Must be called if not using NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// SetSize sets the surface size. Must be called before PumpWidget.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
}

// PumpWidget mounts (or remounts) a widget and runs one full frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	return t.Pump()
}

// Pump runs a single frame: dispatches, state-update commit, build, paint,
// and update completion callbacks.
func (t *WidgetTester) Pump() error {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	done := t.buildOwner.FlushUpdates()
	t.buildOwner.FlushBuild()

	var err error
	if t.root != nil {
		err = host.Paint(t.root, t.surface, t.size)
	}

	for _, cb := range done {
		cb()
	}
	return err
}

// PumpAndSettle runs frames until the framework is idle or the timeout is
// reached, counting a nominal 16ms per frame. Returns ErrSettleTimeout if
// the framework does not settle within timeout.
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
		elapsed += frameDuration
	}
	return ErrSettleTimeout
}

// needsWork returns true if the framework has pending work.
func (t *WidgetTester) needsWork() bool {
	return t.buildOwner.NeedsWork() || len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame, mirroring host.App.Dispatch.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// Rendered returns the lines painted by the most recent frame.
func (t *WidgetTester) Rendered() []string {
	return t.surface.Lines()
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
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
