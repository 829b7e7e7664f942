package tui

import (
	"os"

	"golang.org/x/term"
)

// GetTerminalSize returns the current terminal width and height, with
// sane fallbacks when stdout is not a terminal. Bubble Tea delivers
// resize messages while running; this covers sizing before the program
// starts.
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return MinTerminalWidth, 24
	}
	return width, height
}
