package event

// Button identifies one of the three physical (or emulated) buttons.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// String returns a human-readable button name for logging.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// Kind is the phase of a button interaction.
type Kind int

const (
	Pressed Kind = iota
	Released
	// LongPressed is emitted when a button has been held past the
	// long-press threshold, before it is released.
	LongPressed
)

// String returns a human-readable kind name for logging.
func (k Kind) String() string {
	switch k {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	case LongPressed:
		return "long_pressed"
	default:
		return "unknown"
	}
}

// Event is a framework input event delivered to interactive components.
// The two concrete types are ButtonEvent and TickEvent.
type Event interface {
	isEvent()
}

// ButtonEvent reports a button state change.
type ButtonEvent struct {
	Button Button
	Kind   Kind
}

func (ButtonEvent) isEvent() {}

// TickEvent is an internally scheduled timer tick (repaint, animation).
// Ticks are not user actions and components treat them differently from
// button events; in particular they do not collapse transient reveal state.
type TickEvent struct{}

func (TickEvent) isEvent() {}
