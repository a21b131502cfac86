// Package core provides the widget and element framework interfaces and lifecycle.
//
// This package defines the foundational types for building reactive user
// interfaces: Widget, Element, State, and BuildContext. It follows a
// declarative UI model where widgets describe what the UI should look like,
// and the framework updates the mounted element tree to match.
//
// # Core Types
//
// Widget is an immutable description of part of the UI. Widgets are lightweight
// configuration objects that can be created frequently without performance concerns.
//
// Element is the instantiation of a Widget at a particular location in the tree.
// Elements manage the lifecycle and identity of widgets.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type toggleState struct {
//	    core.StateBase
//	    clicked bool
//	}
//
//	func (s *toggleState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: s.label()}
//	}
//
// # State Updates
//
// SetState does not apply the mutation synchronously. The mutation is queued
// on the element's BuildOwner and committed when the host flushes the next
// frame. Code running immediately after SetState returns may still observe
// the old value; optional completion callbacks run after the commit, once the
// new value is observable:
//
//	s.SetState(func() { s.clicked = true }, func() {
//	    // the committed value is visible here
//	})
//
// Updates queued in the same turn are committed in order and coalesce into a
// single rebuild of the owning element.
//
// # Change Notification
//
// Notifier and Observable provide subscription primitives. The host uses a
// Notifier to tell its embedder that a frame was committed and the surface
// should be re-read.
package core
