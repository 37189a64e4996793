// Package terminal reports properties of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the width and height of the terminal attached to f.
// Falls back to defaults if the size cannot be determined.
func Size(f *os.File) (width, height int) {
	if f == nil {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetSize returns the size of the terminal on stdout.
func GetSize() (width, height int) {
	return Size(os.Stdout)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Fits reports whether a map of cols x rows cells, each drawn cellWidth
// characters wide, fits on the terminal attached to f. reserve lines are kept
// free below the map for status text.
func Fits(f *os.File, cols, rows, cellWidth, reserve int) bool {
	width, height := Size(f)
	return cols*cellWidth <= width && rows+reserve <= height
}
