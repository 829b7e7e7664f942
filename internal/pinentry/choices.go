package pinentry

import "github.com/muurk/pinpad/internal/choice"

const (
	choiceCount     = 13
	digitStartIndex = 3

	confirmLabel = "CONFIRM"

	iconDelete = "⌫"
	iconEye    = "👁"
	iconTick   = "✓"
)

// choiceEntry is one row of the fixed selector table: label, action,
// optional icon, and whether the middle button fires without release.
type choiceEntry struct {
	label          string
	action         Action
	icon           string
	withoutRelease bool
}

// choices is the full carousel content in fixed order. Digits occupy the
// contiguous range [digitStartIndex, choiceCount-1].
var choices = [choiceCount]choiceEntry{
	// DELETE commits on long-press without release so holding it clears
	// the whole PIN while a tap deletes one digit.
	{"DELETE", Action{Kind: ActionDelete}, iconDelete, true},
	{"SHOW", Action{Kind: ActionShow}, iconEye, false},
	{"ENTER", Action{Kind: ActionEnter}, iconTick, false},
	{"0", Action{Kind: ActionDigit, Digit: '0'}, "", false},
	{"1", Action{Kind: ActionDigit, Digit: '1'}, "", false},
	{"2", Action{Kind: ActionDigit, Digit: '2'}, "", false},
	{"3", Action{Kind: ActionDigit, Digit: '3'}, "", false},
	{"4", Action{Kind: ActionDigit, Digit: '4'}, "", false},
	{"5", Action{Kind: ActionDigit, Digit: '5'}, "", false},
	{"6", Action{Kind: ActionDigit, Digit: '6'}, "", false},
	{"7", Action{Kind: ActionDigit, Digit: '7'}, "", false},
	{"8", Action{Kind: ActionDigit, Digit: '8'}, "", false},
	{"9", Action{Kind: ActionDigit, Digit: '9'}, "", false},
}

// ChoiceFactory maps selector indices onto display items and actions for
// the PIN carousel. It is stateless; Get is a pure function of index.
type ChoiceFactory struct{}

// Get returns the item and action at index. Non-digit actions get an
// armed CONFIRM middle-button caption.
func (ChoiceFactory) Get(index int) (choice.Item, Action) {
	entry := choices[index]

	item := choice.Item{
		Label: entry.label,
		Icon:  entry.icon,
	}
	if entry.action.Kind != ActionDigit {
		item.MiddleLabel = confirmLabel
	}
	if entry.withoutRelease {
		item.WithoutRelease = true
	}

	return item, entry.action
}

// Count returns the number of carousel entries.
func (ChoiceFactory) Count() int {
	return choiceCount
}
