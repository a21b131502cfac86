package testing

import (
	"fmt"

	"github.com/go-flick/flick/pkg/widgets"
)

// Tap presses the first pressable widget matched by finder. The press only
// requests state updates; call Pump to commit them.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}

	pressable, ok := result.Widget().(widgets.Pressable)
	if !ok {
		return fmt.Errorf("Tap: widget is not pressable: %s", finder.Description())
	}
	pressable.Press()
	return nil
}
