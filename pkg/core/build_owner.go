package core

import (
	"slices"
	"sync"
)

// stateUpdate is a queued state mutation awaiting commit.
type stateUpdate struct {
	element Element
	apply   func()
	done    []func()
}

// BuildOwner tracks pending state updates and dirty elements.
//
// State updates scheduled through ScheduleUpdate are not applied until
// FlushUpdates runs (the commit). Updates are committed in the order they
// were scheduled, so per-element ordering is preserved, and updates scheduled
// in the same turn coalesce into a single rebuild of the owning element.
type BuildOwner struct {
	dirty    []Element
	dirtySet map[Element]bool
	updates  []stateUpdate
	mu       sync.Mutex

	// OnNeedsFrame is called when new work is scheduled, signalling the host
	// that a frame should be rendered. This enables on-demand frame
	// scheduling instead of continuous polling.
	OnNeedsFrame func()
}

// NewBuildOwner creates a new BuildOwner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{}
}

// ScheduleUpdate queues a state mutation for commit on the next flush.
// The done callbacks are returned by FlushUpdates after the mutation has
// been applied and the owning element marked dirty.
func (b *BuildOwner) ScheduleUpdate(element Element, apply func(), done ...func()) {
	b.mu.Lock()
	b.updates = append(b.updates, stateUpdate{element: element, apply: apply, done: done})
	b.mu.Unlock()

	if b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// FlushUpdates applies all pending state mutations in FIFO order and marks
// the owning elements dirty. It returns the completion callbacks of the
// committed updates; the caller fires them after the frame has been flushed,
// at which point the committed values are observable.
//
// Updates whose element has been unmounted are dropped, callbacks included.
func (b *BuildOwner) FlushUpdates() []func() {
	b.mu.Lock()
	updates := b.updates
	b.updates = nil
	b.mu.Unlock()

	var done []func()
	for _, update := range updates {
		if update.element != nil {
			if mountable, ok := update.element.(interface{ isMounted() bool }); ok && !mountable.isMounted() {
				continue
			}
		}
		if update.apply != nil {
			update.apply()
		}
		if update.element != nil {
			update.element.MarkNeedsBuild()
		}
		for _, cb := range update.done {
			if cb != nil {
				done = append(done, cb)
			}
		}
	}
	return done
}

// ScheduleBuild marks an element as needing rebuild.
func (b *BuildOwner) ScheduleBuild(element Element) {
	added := func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.dirtySet[element] {
			return false
		}
		if b.dirtySet == nil {
			b.dirtySet = make(map[Element]bool)
		}
		b.dirtySet[element] = true
		b.dirty = append(b.dirty, element)
		return true
	}()

	if added && b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// NeedsWork returns true if there are pending updates or dirty elements.
func (b *BuildOwner) NeedsWork() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.updates) > 0 || len(b.dirty) > 0
}

// FlushBuild rebuilds all dirty elements in depth order.
func (b *BuildOwner) FlushBuild() {
	for {
		b.mu.Lock()
		if len(b.dirty) == 0 {
			b.mu.Unlock()
			return
		}

		slices.SortFunc(b.dirty, func(a, b Element) int {
			return a.Depth() - b.Depth()
		})

		dirty := b.dirty
		b.dirty = nil
		clear(b.dirtySet)
		b.mu.Unlock()

		for _, element := range dirty {
			if mountable, ok := element.(interface{ isMounted() bool }); ok && !mountable.isMounted() {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
}
