// Package pinentry implements the state machine behind a secure numeric
// PIN entry screen for a three-button device with a carousel selector.
//
// The user assembles a PIN one digit at a time by cycling through a fixed
// 13-entry carousel (DELETE, SHOW, ENTER, then the digits 0-9) and
// committing entries with the middle button. The engine minimizes what an
// observer can learn: entered digits render as masks, the carousel
// re-seeds to a random digit slot after every append so positions never
// correlate with digit values, and the two reveal mechanisms (SHOW for
// the whole PIN, the automatic last-digit echo) are one-shot flags that
// collapse on the very next user event.
//
// A non-empty subprompt at construction marks a retry after a failed
// attempt: the header starts with a WRONG PIN warning that the first
// button press permanently replaces with the real prompt.
//
// The engine is single-threaded and event-driven. Front ends feed it
// event.Event values and read back the two display lines plus the
// carousel position; ENTER on a non-empty PIN is the only path to a
// confirmed outcome, and cancellation is the front end's concern.
package pinentry
