package graphics

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LineHeight is the vertical advance between drawn text lines, in pixels.
// basicfont.Face7x13 is 13 pixels tall; the extra 3 pixels are leading.
const LineHeight = 16

// face is the fixed bitmap face used for all surface text.
var face font.Face = basicfont.Face7x13

// NewCanvas allocates a white canvas of the given size.
func NewCanvas(size Size) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

// DrawString draws s in black onto dst with the baseline at the given point.
func DrawString(dst *image.RGBA, at Point, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(s)
}

// MeasureString returns the advance width of s in pixels, rounded up.
func MeasureString(s string) int {
	return font.MeasureString(face, s).Ceil()
}
