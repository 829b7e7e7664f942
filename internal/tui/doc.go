// Package tui renders the PIN pad in a terminal with Bubble Tea.
//
// The model translates keyboard input into the three-button vocabulary
// of the engine: arrow keys are the left/right buttons, enter is a tap
// on the middle button (press then release), and space is a hold (press,
// long-press, release) for gestures like hold-DELETE-to-clear. A repaint
// tick runs on an interval and is fed to the engine as a timer event, so
// reveal state behaves exactly as it does on the device: it survives
// ticks and collapses on the next key press.
//
// The view draws the header line, the PIN line, a five-item carousel
// strip centered on the current selection, and an armed CONFIRM badge
// when an action item is selected. Styling lives in styles.go.
package tui
