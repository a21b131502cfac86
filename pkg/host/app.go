// Package host runs a widget tree against a display surface.
//
// The host is the environment side of the framework's contract: it mounts a
// widget, owns the frame loop, commits queued state updates, repaints the
// surface after every commit, and notifies its embedder through a change
// Notifier so the surface can be re-read.
package host

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-flick/flick/pkg/core"
	"github.com/go-flick/flick/pkg/errors"
	"github.com/go-flick/flick/pkg/graphics"
)

// App drives a mounted widget tree. Create one with Mount.
//
// Frames are processed by StepFrame (or continuously by Run). A frame runs
// the pipeline in a fixed order: dispatch callbacks, commit state updates,
// rebuild dirty elements, paint, present, then fire update completion
// callbacks. State mutations requested through SetState are therefore never
// visible before the frame that commits them, and always visible inside
// their completion callbacks.
type App struct {
	buildOwner *core.BuildOwner
	root       core.Element
	surface    Surface
	size       graphics.Size
	changed    *core.Notifier

	dispatchMu     sync.Mutex
	dispatchQueue  []func()
	frameRequested atomic.Bool

	// frameMu serializes StepFrame against Unmount.
	frameMu sync.Mutex
}

// Mount inflates the widget as the root of a new tree bound to the surface
// and schedules the first frame. This is the host side of the mount
// capability: the surface will render the tree's display text and the
// widget's own handlers wire user interaction back into state updates.
func Mount(root core.Widget, surface Surface, size graphics.Size) *App {
	a := &App{
		buildOwner: core.NewBuildOwner(),
		surface:    surface,
		size:       size,
		changed:    core.NewNotifier(),
	}
	a.buildOwner.OnNeedsFrame = a.RequestFrame
	a.root = core.MountRoot(root, a.buildOwner)
	a.RequestFrame()
	return a
}

// Root returns the root element of the mounted tree.
func (a *App) Root() core.Element {
	return a.root
}

// Changed returns the notifier fired after every presented frame. Embedders
// subscribe to it to learn that the surface content may have changed.
func (a *App) Changed() *core.Notifier {
	return a.changed
}

// Dispatch queues a callback to run at the start of the next frame, before
// state updates are committed. Safe to call from any goroutine; this is the
// way background work hands results back to the UI thread.
func (a *App) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	a.dispatchMu.Lock()
	a.dispatchQueue = append(a.dispatchQueue, fn)
	a.dispatchMu.Unlock()
	a.RequestFrame()
}

// RequestFrame marks the app as needing a frame.
func (a *App) RequestFrame() {
	a.frameRequested.Store(true)
}

// NeedsFrame returns true if a new frame should be rendered.
func (a *App) NeedsFrame() bool {
	if a.frameRequested.Load() || a.buildOwner.NeedsWork() {
		return true
	}
	a.dispatchMu.Lock()
	pending := len(a.dispatchQueue) > 0
	a.dispatchMu.Unlock()
	return pending
}

// StepFrame runs a single frame: dispatches, commit, build, paint, present,
// completion callbacks. A surface present failure is reported to the error
// handler and returned; completion callbacks still run, since the state
// commit itself cannot fail.
func (a *App) StepFrame() error {
	a.frameMu.Lock()
	defer a.frameMu.Unlock()

	if a.root == nil {
		return nil
	}

	a.dispatchMu.Lock()
	dispatches := a.dispatchQueue
	a.dispatchQueue = nil
	a.dispatchMu.Unlock()
	for _, fn := range dispatches {
		fn()
	}

	done := a.buildOwner.FlushUpdates()
	a.buildOwner.FlushBuild()

	err := Paint(a.root, a.surface, a.size)
	if err != nil {
		errors.Report(&errors.FrameworkError{
			Op:   "host.StepFrame",
			Kind: errors.KindRender,
			Err:  err,
		})
	} else {
		a.changed.Notify()
	}

	for _, cb := range done {
		cb()
	}

	// Clear the frame request only once the frame left no work behind.
	// Rebuilds scheduled and flushed within this frame re-set the flag through
	// OnNeedsFrame; clearing at the start would leave a spurious frame pending
	// after every commit. Checked under dispatchMu so a concurrent Dispatch is
	// either seen in the queue or sets the flag after this store.
	a.dispatchMu.Lock()
	if len(a.dispatchQueue) == 0 && !a.buildOwner.NeedsWork() {
		a.frameRequested.Store(false)
	}
	a.dispatchMu.Unlock()
	return err
}

// Run processes frames on the given interval until ctx is done. Frames are
// only rendered when work is pending. Returns the context's error.
func (a *App) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !a.NeedsFrame() {
				continue
			}
			if err := a.StepFrame(); err != nil {
				return err
			}
		}
	}
}

// Unmount tears down the tree. The app renders no further frames.
func (a *App) Unmount() {
	a.frameMu.Lock()
	defer a.frameMu.Unlock()
	if a.root != nil {
		a.root.Unmount()
		a.root = nil
	}
}

// Paint walks the element tree depth-first, draws every content widget's
// display text as one line on the surface, and presents the frame.
func Paint(root core.Element, surface Surface, size graphics.Size) error {
	surface.Begin(size)
	row := 0
	paintElement(root, surface, &row)
	return surface.Present()
}

func paintElement(e core.Element, surface Surface, row *int) {
	if e == nil {
		return
	}
	if w, ok := e.Widget().(core.ContentWidget); ok {
		*row++
		surface.DrawText(graphics.Point{X: 4, Y: *row * graphics.LineHeight}, w.DisplayText())
	}
	e.VisitChildren(func(child core.Element) bool {
		paintElement(child, surface, row)
		return true
	})
}
