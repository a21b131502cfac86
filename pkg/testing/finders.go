package testing

import (
	"fmt"
	"reflect"

	"github.com/go-flick/flick/pkg/core"
)

// Finder locates elements in the widget tree.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root core.Element) []core.Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []core.Element
	finder   Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Element {
	if len(r.elements) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no elements: %s", desc))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Element {
	if index < 0 || index >= len(r.elements) {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), desc))
	}
	return r.elements[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Widget returns the widget of the first matched element. Panics if no matches.
func (r FinderResult) Widget() core.Widget {
	return r.First().Widget()
}

// --- Concrete finders ---

// typeFinder matches elements whose widget is of the specified type.
type typeFinder struct {
	widgetType reflect.Type
	typeName   string
}

func (f *typeFinder) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, func(e core.Element) bool {
		return reflect.TypeOf(e.Widget()) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder matching widgets with the same type as sample.
func ByType(sample core.Widget) Finder {
	typ := reflect.TypeOf(sample)
	return &typeFinder{widgetType: typ, typeName: typ.String()}
}

// textFinder matches content widgets displaying the exact text.
type textFinder struct {
	text string
}

func (f *textFinder) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, func(e core.Element) bool {
		if w, ok := e.Widget().(core.ContentWidget); ok {
			return w.DisplayText() == f.text
		}
		return false
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder matching content widgets whose display text equals text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// predicateFinder matches elements using a caller-provided predicate.
type predicateFinder struct {
	predicate   func(core.Element) bool
	description string
}

func (f *predicateFinder) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, f.predicate)
}

func (f *predicateFinder) Description() string {
	return f.description
}

// ByPredicate returns a finder matching elements for which predicate is true.
func ByPredicate(description string, predicate func(core.Element) bool) Finder {
	return &predicateFinder{predicate: predicate, description: description}
}

// collectMatches walks the tree depth-first pre-order, collecting elements
// matching the predicate.
func collectMatches(root core.Element, match func(core.Element) bool) []core.Element {
	var matches []core.Element
	var walk func(e core.Element)
	walk = func(e core.Element) {
		if e == nil {
			return
		}
		if match(e) {
			matches = append(matches, e)
		}
		e.VisitChildren(func(child core.Element) bool {
			walk(child)
			return true
		})
	}
	walk(root)
	return matches
}
