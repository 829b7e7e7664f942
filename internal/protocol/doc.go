// Package protocol defines the JSON wire protocol between the pinpad
// simulator server and the harnesses that drive it.
//
// Inbound, a harness sends one message per input event:
//
//	{"type": "button", "button": "right", "kind": "pressed"}
//	{"type": "tick"}
//	{"type": "cancel"}
//
// Outbound, the server answers every applied event with the resulting
// screen content, and closes the session with an outcome:
//
//	{"type": "display", "header": "Enter PIN", "pin_line": "*", ...}
//	{"type": "outcome", "outcome": "confirmed", "pin": "1234"}
//
// The display message carries rendered line text only, never layout or
// pixels, matching what the engine itself computes.
package protocol
