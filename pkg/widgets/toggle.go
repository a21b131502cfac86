package widgets

import "github.com/go-flick/flick/pkg/core"

// UnclickedText is displayed before the toggle has been clicked.
const UnclickedText = "I have not been clicked!"

// ClickedText is displayed once the toggle has been clicked.
const ClickedText = "I have been clicked!"

// Toggle is a button that flips to its clicked message on the first press.
//
// The transition is one-way: once clicked, the flag stays set and further
// presses leave the state unchanged (their completion callbacks still fire).
// There is deliberately no operation that resets the flag.
type Toggle struct {
	core.StatefulBase

	// OnApplied, if set, runs after each press has been committed.
	OnApplied func()
}

// CreateState returns the toggle's state, with the flag initially unset.
func (Toggle) CreateState() core.State { return &ToggleState{} }

// ToggleState holds the toggle's single boolean flag.
type ToggleState struct {
	core.StateBase
	clicked bool
}

// Trigger requests that the toggle enter the clicked state. The mutation is
// committed on the next frame, not synchronously: reading state right after
// Trigger returns may still observe the old value. Each onApplied callback
// runs exactly once after the commit, at which point the committed value is
// observable. Trigger cannot fail.
func (s *ToggleState) Trigger(onApplied ...func()) {
	s.SetState(func() { s.clicked = true }, onApplied...)
}

// Clicked reports whether the toggle has been clicked.
func (s *ToggleState) Clicked() bool {
	return s.clicked
}

// DisplayText derives the user-visible text from the current state. It is
// pure and idempotent: without an intervening committed Trigger it always
// returns the same value.
func (s *ToggleState) DisplayText() string {
	if s.clicked {
		return ClickedText
	}
	return UnclickedText
}

// Build renders the toggle as a button labelled with the current display
// text; pressing it triggers the one-way transition.
func (s *ToggleState) Build(ctx core.BuildContext) core.Widget {
	widget, _ := ctx.Widget().(Toggle)
	return Button{
		Label: s.DisplayText(),
		OnPressed: func() {
			if widget.OnApplied != nil {
				s.Trigger(widget.OnApplied)
				return
			}
			s.Trigger()
		},
	}
}
