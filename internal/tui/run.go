package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/pinpad/internal/logging"
	"github.com/muurk/pinpad/internal/pinentry"
)

// Run drives one PIN-entry session in the terminal and returns the
// outcome together with the entered PIN (empty unless confirmed).
func Run(prompt, subprompt string) (pinentry.Outcome, string, error) {
	entry := pinentry.New(prompt, subprompt)
	model := NewModel(entry)

	logging.LogSessionEvent("tui", "started", 0)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return pinentry.OutcomeCancelled, "", fmt.Errorf("failed to run PIN pad: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return pinentry.OutcomeCancelled, "", fmt.Errorf("unexpected final model %T", final)
	}

	outcome := m.Outcome()
	logging.LogSessionEvent("tui", outcome.String(), len(m.PIN()))

	if outcome == pinentry.OutcomeConfirmed {
		return outcome, m.PIN(), nil
	}
	return outcome, "", nil
}
