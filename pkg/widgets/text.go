// Package widgets provides the built-in widget library.
package widgets

import "github.com/go-flick/flick/pkg/core"

// Text displays a single line of static text.
type Text struct {
	core.LeafBase

	// Content is the text to display.
	Content string
}

// DisplayText returns the text drawn for this widget.
func (t Text) DisplayText() string {
	return t.Content
}
