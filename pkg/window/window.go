// Package window shows rendered plots in an interactive desktop window.
//
// [Run] blocks until the user closes the window (or presses Esc or Q). The
// plot is re-rendered whenever the window is resized, so the layout always
// matches the visible area. Builds without cgo, and Unix sessions without
// an X11 or Wayland display, report errors.ErrCodeDisplayUnavailable.
package window

import (
	"image"
	"os"
	"runtime"

	"github.com/matzehuels/plotlib/pkg/errors"
)

// DrawFunc renders the plot for a w×h window.
type DrawFunc func(w, h int) image.Image

// Run opens a window titled title with an initial size of width×height
// and displays the images produced by draw.
func Run(title string, width, height int, draw DrawFunc) error {
	if width <= 0 || height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "window size must be positive, got %dx%d", width, height)
	}
	if err := CheckDisplay(); err != nil {
		return err
	}
	return run(title, width, height, draw)
}

// CheckDisplay reports whether a graphical session is reachable.
func CheckDisplay() error {
	switch runtime.GOOS {
	case "darwin", "windows", "ios", "android", "js":
		return nil
	}
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return errors.New(errors.ErrCodeDisplayUnavailable, "no display available (DISPLAY and WAYLAND_DISPLAY are unset)")
	}
	return nil
}
