// Package graphics provides the pixel-level primitives used by surfaces:
// sizes, points, and text rasterization.
package graphics

// Size is a surface extent in pixels.
type Size struct {
	Width  int
	Height int
}

// Point is a pixel position on a surface. Text is drawn with its baseline
// anchored at the point.
type Point struct {
	X int
	Y int
}

// IsEmpty returns true if the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}
