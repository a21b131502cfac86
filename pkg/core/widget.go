package core

// Widget is an immutable description of part of the UI.
type Widget interface {
	// CreateElement instantiates the element that will host this widget.
	CreateElement() Element

	// Key identifies the widget for reconciliation. Widgets of the same type
	// with equal keys update in place; otherwise the old element is unmounted.
	Key() any
}

// StatelessWidget describes UI purely as a function of its configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state across rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds the mutable state for a StatefulWidget.
type State interface {
	// InitState is called once after the state is attached to its element.
	InitState()

	// Build returns the widget subtree for the current state.
	Build(ctx BuildContext) Widget

	// DidUpdateWidget is called when the element's widget configuration is
	// replaced by a newer one of the same type.
	DidUpdateWidget(oldWidget StatefulWidget)

	// Dispose releases resources when the element is unmounted.
	Dispose()
}

// ContentWidget is a leaf widget that contributes a line of user-visible
// text. The host re-reads DisplayText after every committed state change.
type ContentWidget interface {
	Widget
	DisplayText() string
}

// BuildContext carries the element position during build.
type BuildContext interface {
	// Widget returns the widget hosted at this position.
	Widget() Widget

	// FindAncestor walks up the tree and returns the first ancestor element
	// matching the predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// Element instantiates a Widget at a location in the tree.
type Element interface {
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	VisitChildren(visitor func(Element) bool)
	Widget() Widget
	Depth() int
	FindAncestor(predicate func(Element) bool) Element
}

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: "Hello, " + g.Name}
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement() }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Toggle struct {
//	    core.StatefulBase
//	}
//
//	func (Toggle) CreateState() core.State { return &toggleState{} }
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement() }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// LeafBase provides default CreateElement and Key implementations for leaf
// content widgets (widgets with no children, such as Text).
type LeafBase struct{}

// CreateElement returns a new LeafElement.
func (LeafBase) CreateElement() Element { return NewLeafElement() }

// Key returns nil (no key).
func (LeafBase) Key() any { return nil }
