package pinentry

import (
	"strings"

	"github.com/muurk/pinpad/internal/choice"
	"github.com/muurk/pinpad/internal/display"
	"github.com/muurk/pinpad/internal/event"
	"github.com/muurk/pinpad/internal/random"
	"github.com/muurk/pinpad/internal/textbox"
)

const (
	// MaxPINLength is the hard cap on PIN length.
	MaxPINLength = 50

	emptyPINText = "_"
	maskRune     = '*'
	wrongPINText = "WRONG PIN"
)

// Option configures a PinEntry at construction.
type Option func(*PinEntry)

// WithRandomSource overrides the selector position source. Tests use this
// to make re-seeding deterministic.
func WithRandomSource(src random.Source) Option {
	return func(e *PinEntry) {
		e.rng = src
	}
}

// PinEntry is the PIN-entry state machine. It owns the PIN buffer, the
// two display lines, the carousel selector and the transient reveal
// flags, and turns framework events into buffer mutations, display
// updates and a terminal outcome.
//
// One PinEntry serves one entry session; create a fresh one per attempt.
type PinEntry struct {
	page       *choice.Page[Action]
	headerLine *display.Line
	pinLine    *display.Line

	prompt    string
	subprompt string

	// Whether the header already shows the real prompt instead of the
	// WRONG PIN warning. One-way: never reverts within a session.
	showingRealPrompt bool
	showRealPin       bool
	showLastDigit     bool

	pin *textbox.TextBox
	rng random.Source
}

// New creates a PIN-entry session. A non-empty subprompt signals that the
// previous attempt failed: the header then starts with a warning and the
// PIN line shows the subprompt until the first digit, and the warning is
// replaced by the real prompt on the first button event.
func New(prompt, subprompt string, opts ...Option) *PinEntry {
	e := &PinEntry{
		prompt:    prompt,
		subprompt: subprompt,
		pin:       textbox.New(MaxPINLength),
		rng:       random.CryptoSource{},
	}
	for _, opt := range opts {
		opt(e)
	}

	showSubprompt := subprompt != ""
	var headerText, pinText string
	var pinFont display.Font
	if showSubprompt {
		e.showingRealPrompt = false
		headerText = wrongPINText
		pinText = subprompt
		pinFont = display.FontNormal
	} else {
		e.showingRealPrompt = true
		headerText = prompt
		pinText = emptyPINText
		pinFont = display.FontBold
	}

	e.headerLine = display.NewLine(headerText, display.FontBold)
	e.pinLine = display.NewLine(pinText, pinFont)

	// Start on a random digit, never predictably on DELETE or '0'.
	e.page = choice.NewPage[Action](ChoiceFactory{},
		choice.WithInitialPosition[Action](e.pickDigitSlot()),
		choice.WithCarousel[Action](true),
	)

	return e
}

// pickDigitSlot draws a uniformly random digit index. Re-seeding after
// every append keeps the carousel position uncorrelated with the digits
// being entered.
func (e *PinEntry) pickDigitSlot() int {
	return e.rng.UniformBetween(digitStartIndex, choiceCount-1)
}

// Event processes one framework event and returns the session outcome:
// OutcomeConfirmed when a non-empty PIN was committed via ENTER,
// OutcomeNone otherwise.
func (e *PinEntry) Event(ev event.Event) Outcome {
	// Any non-tick event collapses an active reveal, before the event's
	// own action is applied. A reveal therefore survives repaint ticks
	// but never a real user action.
	if _, isTick := ev.(event.TickEvent); !isTick {
		if e.showRealPin {
			e.showRealPin = false
			e.update()
		}
		if e.showLastDigit {
			e.showLastDigit = false
			e.update()
		}
	}

	// The first button event of any kind swaps the warning header for
	// the real prompt.
	if !e.showingRealPrompt {
		if _, isButton := ev.(event.ButtonEvent); isButton {
			e.showPrompt()
			e.showingRealPrompt = true
		}
	}

	if commit := e.page.Event(ev); commit != nil {
		return e.apply(commit)
	}
	return OutcomeNone
}

func (e *PinEntry) apply(commit *choice.Commit[Action]) Outcome {
	switch commit.Action.Kind {
	case ActionDelete:
		if commit.LongPress {
			e.pin.Clear()
		} else {
			e.pin.DeleteLast()
		}
		e.update()

	case ActionShow:
		e.showRealPin = true
		e.update()

	case ActionEnter:
		// ENTER is not valid on an empty PIN.
		if !e.pin.IsEmpty() {
			return OutcomeConfirmed
		}

	case ActionDigit:
		if !e.pin.IsFull() {
			if err := e.pin.Append(commit.Action.Digit); err != nil {
				// Unreachable: the append is guarded by IsFull.
				panic("pinentry: guarded append failed: " + err.Error())
			}
			e.page.SetPosition(e.pickDigitSlot(), true)
			e.showLastDigit = true
			e.update()
		}
	}
	return OutcomeNone
}

// update recomputes the PIN line from the current state and requests a
// repaint.
func (e *PinEntry) update() {
	e.updatePinLine()
	e.pinLine.RequestRepaint()
}

func (e *PinEntry) updatePinLine() {
	font := display.FontBold
	var text string

	switch {
	case e.pin.IsEmpty() && e.subprompt != "":
		font = display.FontNormal
		text = e.subprompt
	case e.pin.IsEmpty():
		text = emptyPINText
	case e.showRealPin:
		text = e.pin.Content()
	default:
		// Masks, with the real last digit while its reveal is active.
		var b strings.Builder
		for i := 0; i < e.pin.Len()-1; i++ {
			b.WriteRune(maskRune)
		}
		last := maskRune
		if e.showLastDigit {
			r, ok := e.pin.Last()
			if !ok {
				panic("pinentry: reveal-last on empty buffer")
			}
			last = r
		}
		b.WriteRune(last)
		text = b.String()
	}

	e.pinLine.SetFont(font)
	e.pinLine.SetText(text)
}

// showPrompt replaces the warning header with the real prompt.
func (e *PinEntry) showPrompt() {
	e.headerLine.SetText(e.prompt)
	e.headerLine.RequestRepaint()
}

// PIN returns the current buffer content. Callers read it only after a
// confirmed outcome.
func (e *PinEntry) PIN() string {
	return e.pin.Content()
}

// HeaderLine returns the header display line.
func (e *PinEntry) HeaderLine() *display.Line {
	return e.headerLine
}

// PINLine returns the PIN display line.
func (e *PinEntry) PINLine() *display.Line {
	return e.pinLine
}

// ShowingRealPrompt reports whether the header shows the real prompt
// rather than the failed-attempt warning.
func (e *PinEntry) ShowingRealPrompt() bool {
	return e.showingRealPrompt
}

// Position returns the current selector index.
func (e *PinEntry) Position() int {
	return e.page.Position()
}

// Count returns the number of carousel choices.
func (e *PinEntry) Count() int {
	return e.page.Count()
}

// ItemAt returns the carousel item at index, for rendering the strip.
func (e *PinEntry) ItemAt(index int) choice.Item {
	item, _ := e.page.At(index)
	return item
}

// CurrentItem returns the item under the selector.
func (e *PinEntry) CurrentItem() choice.Item {
	item, _ := e.page.Current()
	return item
}
