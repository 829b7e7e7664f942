//go:build pindebug

package pinentry

// DebugState is a diagnostic snapshot of a session. Compiled in only
// under the pindebug build tag; production builds have no way to read
// the buffer back out besides PIN().
type DebugState struct {
	Subprompt         string
	PIN               string
	SelectorPosition  int
	ShowingRealPrompt bool
	ShowRealPin       bool
	ShowLastDigit     bool
}

// DebugDump returns the current session internals for test harnesses.
func (e *PinEntry) DebugDump() DebugState {
	return DebugState{
		Subprompt:         e.subprompt,
		PIN:               e.pin.Content(),
		SelectorPosition:  e.page.Position(),
		ShowingRealPrompt: e.showingRealPrompt,
		ShowRealPin:       e.showRealPin,
		ShowLastDigit:     e.showLastDigit,
	}
}
