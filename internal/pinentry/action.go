package pinentry

// ActionKind discriminates the closed set of things a committed choice
// can do to the PIN session.
type ActionKind int

const (
	ActionDelete ActionKind = iota
	ActionShow
	ActionEnter
	ActionDigit
)

// Action is the value associated with a carousel choice. Digit carries
// the digit rune; the other kinds carry nothing.
type Action struct {
	Kind  ActionKind
	Digit rune
}

// String returns a loggable name. Digit actions deliberately do not
// reveal which digit they carry.
func (a Action) String() string {
	switch a.Kind {
	case ActionDelete:
		return "delete"
	case ActionShow:
		return "show"
	case ActionEnter:
		return "enter"
	case ActionDigit:
		return "digit"
	default:
		return "unknown"
	}
}

// Outcome is the terminal signal of a PIN-entry session.
type Outcome int

const (
	// OutcomeNone means the session continues.
	OutcomeNone Outcome = iota
	// OutcomeConfirmed means the user committed a non-empty PIN.
	OutcomeConfirmed
	// OutcomeCancelled is driven by the owning front end (escape key,
	// connection teardown); the engine itself only ever confirms.
	OutcomeCancelled
)

// String returns the wire/debug name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "none"
	}
}
