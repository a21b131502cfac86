package core

import "sync"

// stateBase is satisfied by any struct that embeds StateBase.
// Hooks accept stateBase so callers can pass s directly.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase provides common functionality for stateful widget states.
// Embed this struct in your state to eliminate boilerplate.
//
// Example:
//
//	type toggleState struct {
//	    core.StateBase
//	    clicked bool
//	}
type StateBase struct {
	element   *StatefulElement
	disposers []func()
	disposed  bool
	mu        sync.Mutex
}

// setElement stores the element reference for scheduling updates.
// This method is called automatically by the framework.
func (s *StateBase) setElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element associated with this state.
// Returns nil if the state has not yet been mounted.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// SetState requests a state mutation. The mutation is NOT applied
// synchronously: it is queued on the element's BuildOwner and committed when
// the host flushes the next frame, so code running immediately after SetState
// returns may still observe the old value. Each onApplied callback is invoked
// exactly once after the commit, at which point the new value is observable.
//
// Mutations requested in the same turn commit in order and coalesce into a
// single rebuild. Calling SetState after disposal is a no-op; the callbacks
// are not invoked because no update was scheduled.
//
// If the state is not mounted (no element or build owner), there is no host
// to defer through: the mutation applies immediately and the callbacks run
// inline.
//
// SetState is NOT thread-safe. It must only be called from the UI thread.
// To update state from a background goroutine, use the host's Dispatch.
func (s *StateBase) SetState(fn func(), onApplied ...func()) {
	if s.disposed {
		return
	}
	if s.element == nil || s.element.buildOwner == nil {
		if fn != nil {
			fn()
		}
		for _, cb := range onApplied {
			if cb != nil {
				cb()
			}
		}
		return
	}
	s.element.buildOwner.ScheduleUpdate(s.element, fn, onApplied...)
}

// OnDispose registers a cleanup function to be called when the state is disposed.
// Returns an unregister function that can be called to remove the disposer.
// The cleanup function will only be called once.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		// Already disposed, run cleanup immediately
		cleanup()
		return func() {}
	}

	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// RunDisposers executes all registered disposers in reverse order.
// This is called automatically by Dispose().
func (s *StateBase) RunDisposers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.disposed = true

	// Run disposers in reverse order (LIFO)
	for i := len(s.disposers) - 1; i >= 0; i-- {
		if s.disposers[i] != nil {
			s.disposers[i]()
		}
	}
	s.disposers = nil
}

// Dispose cleans up resources. Override this method if you need custom cleanup,
// but always call s.RunDisposers() or s.StateBase.Dispose() in your override.
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// InitState is a no-op default implementation.
// Override this method to initialize your state.
func (s *StateBase) InitState() {}

// Build is a no-op default implementation that returns nil.
// Override this method to build your widget tree.
func (s *StateBase) Build(ctx BuildContext) Widget {
	return nil
}

// DidUpdateWidget is a no-op default implementation.
// Override this method to respond to widget configuration changes.
func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
