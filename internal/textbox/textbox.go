package textbox

import "errors"

// MaxCapacity is the largest buffer any TextBox can hold. The backing
// array is this size regardless of the configured capacity, so a TextBox
// never allocates after construction.
const MaxCapacity = 50

// ErrFull is returned by Append when the buffer is at capacity.
var ErrFull = errors.New("textbox: buffer full")

// TextBox is a bounded, order-preserving character buffer with append,
// delete-last and clear operations. It is the storage primitive behind
// the PIN line: a fixed array plus an explicit length counter, suitable
// for a constrained device where unbounded growth is unacceptable.
type TextBox struct {
	buf      [MaxCapacity]rune
	length   int
	capacity int
}

// New creates an empty TextBox holding at most capacity runes.
// Capacities outside [1, MaxCapacity] are clamped.
func New(capacity int) *TextBox {
	if capacity < 1 {
		capacity = 1
	}
	if capacity > MaxCapacity {
		capacity = MaxCapacity
	}
	return &TextBox{capacity: capacity}
}

// Append adds one rune at the end. It fails with ErrFull at capacity;
// callers are expected to check IsFull first and treat the error as a
// logic violation.
func (t *TextBox) Append(r rune) error {
	if t.length >= t.capacity {
		return ErrFull
	}
	t.buf[t.length] = r
	t.length++
	return nil
}

// DeleteLast removes the last rune. No-op on an empty buffer.
func (t *TextBox) DeleteLast() {
	if t.length > 0 {
		t.length--
	}
}

// Clear removes all content.
func (t *TextBox) Clear() {
	t.length = 0
}

// Len returns the current number of runes.
func (t *TextBox) Len() int {
	return t.length
}

// Cap returns the configured capacity.
func (t *TextBox) Cap() int {
	return t.capacity
}

// IsEmpty reports whether the buffer holds no runes.
func (t *TextBox) IsEmpty() bool {
	return t.length == 0
}

// IsFull reports whether the buffer is at capacity.
func (t *TextBox) IsFull() bool {
	return t.length >= t.capacity
}

// Content returns the buffer as a string.
func (t *TextBox) Content() string {
	return string(t.buf[:t.length])
}

// Last returns the most recently appended rune. The second return is
// false on an empty buffer.
func (t *TextBox) Last() (rune, bool) {
	if t.length == 0 {
		return 0, false
	}
	return t.buf[t.length-1], true
}
