// Package term provides the few terminal controls the drawing and
// animation layers need: size discovery and cursor/screen escapes.
// Everything else about the terminal belongs to the caller.
package term

import (
	"os"

	"github.com/muesli/termenv"
	xterm "golang.org/x/term"
)

// Fallback size when the terminal cannot be queried (pipes, tests, CI).
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

var output = termenv.NewOutput(os.Stdout)

// Size returns the terminal size in character cells, falling back to
// 80x24 when stdout is not a terminal.
func Size() (width, height int) {
	w, h, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return w, h
}

// Clear clears the screen and homes the cursor.
func Clear() {
	output.ClearScreen()
}

// HideCursor hides the cursor.
func HideCursor() {
	output.HideCursor()
}

// ShowCursor shows the cursor.
func ShowCursor() {
	output.ShowCursor()
}

// MoveTo moves the cursor to the 1-based row and column.
func MoveTo(row, col int) {
	output.MoveCursor(row, col)
}
