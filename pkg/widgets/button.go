package widgets

import "github.com/go-flick/flick/pkg/core"

// Pressable is implemented by widgets that respond to a press from the host
// or the test harness.
type Pressable interface {
	Press()
}

// Button displays a label and invokes a handler when pressed.
//
// Button is a controlled component: it displays the Label you provide and
// calls OnPressed when activated. To change the label, update your state in
// response to OnPressed and rebuild.
type Button struct {
	core.LeafBase

	// Label is the text shown on the button.
	Label string

	// OnPressed is called when the button is activated.
	OnPressed func()
}

// DisplayText returns the button's label.
func (b Button) DisplayText() string {
	return b.Label
}

// Press activates the button.
func (b Button) Press() {
	if b.OnPressed != nil {
		b.OnPressed()
	}
}
