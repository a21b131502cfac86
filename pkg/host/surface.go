package host

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/go-flick/flick/pkg/graphics"
)

// Surface is the drawing target the host paints each frame into.
//
// The host calls Begin once per frame, DrawText for every content line, and
// Present to make the frame visible. Present is the only call that can fail.
type Surface interface {
	Begin(size graphics.Size)
	DrawText(at graphics.Point, text string)
	Present() error
}

// ImageSurface rasterizes frames into an in-memory RGBA image using the
// graphics package's bitmap face.
type ImageSurface struct {
	mu     sync.Mutex
	canvas *image.RGBA
	image  *image.RGBA
}

// Begin starts a new frame with a blank canvas.
func (s *ImageSurface) Begin(size graphics.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canvas = graphics.NewCanvas(size)
}

// DrawText draws a line of text with its baseline at the given point.
func (s *ImageSurface) DrawText(at graphics.Point, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.canvas != nil {
		graphics.DrawString(s.canvas, at, text)
	}
}

// Present publishes the frame. The published image is readable via Image
// until the next Present.
func (s *ImageSurface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.canvas == nil {
		return fmt.Errorf("present called before begin")
	}
	s.image = s.canvas
	s.canvas = nil
	return nil
}

// Image returns the most recently presented frame, or nil.
func (s *ImageSurface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.image
}

// LineSurface records frames as plain text lines. If Out is set, each
// presented frame is also written to it, one line per row. Useful for
// terminal demos and tests.
type LineSurface struct {
	// Out optionally receives each presented frame.
	Out io.Writer

	mu      sync.Mutex
	pending []string
	lines   []string
}

// Begin starts a new frame.
func (s *LineSurface) Begin(size graphics.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = s.pending[:0]
}

// DrawText records a line of text. Positions are ignored; lines keep the
// order they were drawn in.
func (s *LineSurface) DrawText(at graphics.Point, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, text)
}

// Present publishes the recorded lines, writing them to Out if set.
func (s *LineSurface) Present() error {
	s.mu.Lock()
	lines := append([]string(nil), s.pending...)
	s.lines = lines
	out := s.Out
	s.mu.Unlock()

	if out == nil {
		return nil
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the most recently presented frame.
func (s *LineSurface) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}
