// Package event defines the input event model shared by the carousel
// selector, the PIN-entry engine, and the front ends that drive them.
//
// Events come in two categories: ButtonEvent for the three-button input
// surface (left, middle, right; pressed, released, long-pressed) and
// TickEvent for internally scheduled timer ticks. The distinction matters
// to the PIN-entry engine, which clears its transient reveal state on any
// event except a tick.
//
// Front ends (the terminal UI and the simulator server) are responsible
// for long-press detection: the engine never measures time itself, it only
// reacts to the LongPressed kind.
package event
