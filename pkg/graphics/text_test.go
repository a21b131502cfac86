package graphics

import (
	"image/color"
	"testing"
)

func TestNewCanvas_IsWhite(t *testing.T) {
	img := NewCanvas(Size{Width: 20, Height: 20})

	if got := img.Bounds().Dx(); got != 20 {
		t.Fatalf("expected width 20, got %d", got)
	}
	r, g, b, a := img.At(10, 10).RGBA()
	white := color.RGBA{255, 255, 255, 255}
	wr, wg, wb, wa := white.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("expected white canvas, got pixel %v", img.At(10, 10))
	}
}

func TestDrawString_MarksPixels(t *testing.T) {
	img := NewCanvas(Size{Width: 120, Height: 2 * LineHeight})
	DrawString(img, Point{X: 4, Y: LineHeight}, "hi")

	marked := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r == 0 && g == 0 && b == 0 {
				marked++
			}
		}
	}
	if marked == 0 {
		t.Error("expected DrawString to mark pixels on the canvas")
	}
}

func TestMeasureString(t *testing.T) {
	if got := MeasureString(""); got != 0 {
		t.Errorf("expected empty string to measure 0, got %d", got)
	}

	short := MeasureString("hi")
	long := MeasureString("hi there")
	if short <= 0 {
		t.Errorf("expected positive width, got %d", short)
	}
	if long <= short {
		t.Errorf("expected longer string to measure wider: %d vs %d", long, short)
	}

	// Face7x13 is a fixed-width face, 7 pixels per glyph.
	if got := MeasureString("abcd"); got != 28 {
		t.Errorf("expected 4 glyphs to measure 28px, got %d", got)
	}
}
