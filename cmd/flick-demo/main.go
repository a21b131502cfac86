// Command flick-demo mounts the toggle widget on a line surface, presses it,
// and prints the frame before and after the press commits.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-flick/flick/cmd/flick-demo/internal/config"
	"github.com/go-flick/flick/pkg/core"
	"github.com/go-flick/flick/pkg/graphics"
	"github.com/go-flick/flick/pkg/host"
	"github.com/go-flick/flick/pkg/widgets"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flick-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", cfg.AppName, cfg.AppID)

	surface := &host.LineSurface{Out: os.Stdout}
	size := graphics.Size{Width: cfg.Width, Height: cfg.Height}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	app := host.Mount(widgets.Toggle{
		OnApplied: func() {
			fmt.Println("press committed")
			cancel()
		},
	}, surface, size)
	defer app.Unmount()

	// The first presented frame shows the unclicked text. Press after it so
	// the transition lands on a later frame.
	var once sync.Once
	unsub := app.Changed().AddListener(func() {
		once.Do(func() {
			app.Dispatch(func() {
				press(app.Root())
			})
		})
	})
	defer unsub()

	err = app.Run(ctx, cfg.FrameInterval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("press was never committed")
	}
	return err
}

// press activates the first pressable widget in the tree.
func press(root core.Element) {
	var walk func(e core.Element) bool
	walk = func(e core.Element) bool {
		if e == nil {
			return false
		}
		if p, ok := e.Widget().(widgets.Pressable); ok {
			p.Press()
			return true
		}
		pressed := false
		e.VisitChildren(func(child core.Element) bool {
			pressed = walk(child)
			return !pressed
		})
		return pressed
	}
	walk(root)
}
