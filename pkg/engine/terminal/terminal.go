// Package terminal probes the controlling terminal's geometry.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the current terminal width and height, falling back to
// DefaultWidth x DefaultHeight when stdout is not a terminal.
func Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Width returns the current terminal width with the same fallback as Size.
func Width() int {
	width, _ := Size()
	return width
}
