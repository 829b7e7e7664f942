package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/pinpad/internal/pinentry"
	"github.com/muurk/pinpad/internal/random"
)

// fixedSource pins every draw to one value so carousel positions are
// deterministic in tests.
type fixedSource struct{ value int }

func (s fixedSource) UniformBetween(low, high int) int {
	if s.value < low || s.value > high {
		return low
	}
	return s.value
}

func newTestModel(t *testing.T, prompt, subprompt string, slot int) Model {
	t.Helper()
	entry := pinentry.New(prompt, subprompt,
		pinentry.WithRandomSource(random.Source(fixedSource{value: slot})))
	m := NewModel(entry)
	m.width = 100
	m.height = 30
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func update(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

func TestRightKeyAdvancesCarousel(t *testing.T) {
	m := newTestModel(t, "Enter PIN", "", 5)

	m = update(t, m, "right")
	if got := m.entry.Position(); got != 6 {
		t.Errorf("position = %d, want 6", got)
	}

	m = update(t, m, "left", "left")
	if got := m.entry.Position(); got != 4 {
		t.Errorf("position = %d, want 4", got)
	}
}

func TestEnterCommitsDigit(t *testing.T) {
	// Slot 8 is digit '5'.
	m := newTestModel(t, "Enter PIN", "", 8)

	m = update(t, m, "enter")
	if got := m.PIN(); got != "5" {
		t.Errorf("PIN = %q, want %q", got, "5")
	}
	// The reseed draw is fixed at 8 as well.
	if got := m.entry.Position(); got != 8 {
		t.Errorf("position = %d, want reseeded 8", got)
	}
}

func TestEscapeCancels(t *testing.T) {
	m := newTestModel(t, "Enter PIN", "", 5)

	updated, cmd := m.Update(keyMsg("esc"))
	m = updated.(Model)

	if m.Outcome() != pinentry.OutcomeCancelled {
		t.Errorf("outcome = %v, want cancelled", m.Outcome())
	}
	if cmd == nil {
		t.Error("cancel should quit the program")
	}
}

func TestConfirmFlowQuits(t *testing.T) {
	m := newTestModel(t, "Enter PIN", "", 3)

	// Commit digit '0', then navigate 3 -> 2 (ENTER) and commit.
	m = update(t, m, "enter", "left")
	if got := m.entry.Position(); got != 2 {
		t.Fatalf("position = %d, want ENTER slot 2", got)
	}

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Model)

	if m.Outcome() != pinentry.OutcomeConfirmed {
		t.Errorf("outcome = %v, want confirmed", m.Outcome())
	}
	if got := m.PIN(); got != "0" {
		t.Errorf("PIN = %q, want %q", got, "0")
	}
	if cmd == nil {
		t.Error("confirm should quit the program")
	}
}

func TestSpaceHoldClearsPin(t *testing.T) {
	m := newTestModel(t, "Enter PIN", "", 7)

	// Enter two digits, navigate to DELETE (index 0), hold.
	m = update(t, m, "enter", "enter")
	if got := len(m.PIN()); got != 2 {
		t.Fatalf("PIN length = %d, want 2", got)
	}

	m = update(t, m, "left", "left", "left", "left", "left", "left", "left")
	if got := m.entry.Position(); got != 0 {
		t.Fatalf("position = %d, want DELETE slot 0", got)
	}

	m = update(t, m, "space")
	if got := m.PIN(); got != "" {
		t.Errorf("PIN = %q, want empty after hold-delete", got)
	}
}

func TestTickKeepsReveal(t *testing.T) {
	m := newTestModel(t, "Enter PIN", "", 9)

	m = update(t, m, "enter")
	if got := m.entry.PINLine().Text(); got != "6" {
		t.Fatalf("pin line = %q, want revealed digit", got)
	}

	// Ticks must not collapse the reveal.
	updated, _ := m.Update(tickMsg{})
	m = updated.(Model)
	if got := m.entry.PINLine().Text(); got != "6" {
		t.Errorf("pin line after tick = %q, want %q", got, "6")
	}

	// A key press must.
	m = update(t, m, "right")
	if got := m.entry.PINLine().Text(); got != "*" {
		t.Errorf("pin line after key = %q, want mask", got)
	}
}

func TestViewShowsWarningThenPrompt(t *testing.T) {
	m := newTestModel(t, "Enter PIN", "2 tries left", 5)

	view := m.View()
	if !strings.Contains(view, "WRONG PIN") {
		t.Error("view should show the warning header before any input")
	}
	if !strings.Contains(view, "2 tries left") {
		t.Error("view should show the subprompt on the PIN line")
	}

	m = update(t, m, "right")
	view = m.View()
	if !strings.Contains(view, "Enter PIN") {
		t.Error("view should show the real prompt after a button event")
	}
}

func TestViewShowsConfirmBadgeOnActionItems(t *testing.T) {
	m := newTestModel(t, "Enter PIN", "", 3)

	// Digit slot: no CONFIRM badge.
	if strings.Contains(m.View(), "CONFIRM") {
		t.Error("digit selection should not arm CONFIRM")
	}

	// Navigate 3 -> 2 (ENTER).
	m = update(t, m, "left")
	if !strings.Contains(m.View(), "CONFIRM") {
		t.Error("action selection should arm CONFIRM")
	}
}
