package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pinpad/internal/display"
	"github.com/muurk/pinpad/internal/event"
	"github.com/muurk/pinpad/internal/pinentry"
)

// tickInterval paces the repaint ticks fed to the engine. Reveal state
// deliberately survives these; only real key presses collapse it.
const tickInterval = 500 * time.Millisecond

// visibleItems is how many carousel entries the strip renders. Odd so
// the selection sits in the middle.
const visibleItems = 5

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model wrapping one PIN-entry session. Keyboard
// input is translated into the three-button event vocabulary the engine
// understands.
type Model struct {
	entry *pinentry.PinEntry
	keys  keyMap
	help  help.Model

	width  int
	height int

	outcome pinentry.Outcome
	done    bool
}

// NewModel wraps an existing engine session. Tests use this with a
// deterministic random source.
func NewModel(entry *pinentry.PinEntry) Model {
	width, height := GetTerminalSize()
	return Model{
		entry:  entry,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Outcome returns the terminal outcome once the program has quit.
func (m Model) Outcome() pinentry.Outcome {
	return m.outcome
}

// PIN returns the entered PIN; meaningful only after a confirmed outcome.
func (m Model) PIN() string {
	return m.entry.PIN()
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.entry.Event(event.TickEvent{})
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.outcome = pinentry.OutcomeCancelled
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Left):
		m.feed(event.ButtonEvent{Button: event.ButtonLeft, Kind: event.Pressed})
		m.feed(event.ButtonEvent{Button: event.ButtonLeft, Kind: event.Released})

	case key.Matches(msg, m.keys.Right):
		m.feed(event.ButtonEvent{Button: event.ButtonRight, Kind: event.Pressed})
		m.feed(event.ButtonEvent{Button: event.ButtonRight, Kind: event.Released})

	case key.Matches(msg, m.keys.Commit):
		// A tap: press then release.
		m.feed(event.ButtonEvent{Button: event.ButtonMiddle, Kind: event.Pressed})
		m.feed(event.ButtonEvent{Button: event.ButtonMiddle, Kind: event.Released})

	case key.Matches(msg, m.keys.Hold):
		// A hold: the long-press fires before the release.
		m.feed(event.ButtonEvent{Button: event.ButtonMiddle, Kind: event.Pressed})
		m.feed(event.ButtonEvent{Button: event.ButtonMiddle, Kind: event.LongPressed})
		m.feed(event.ButtonEvent{Button: event.ButtonMiddle, Kind: event.Released})
	}

	if m.done {
		return m, tea.Quit
	}
	return m, nil
}

// feed forwards one event to the engine unless the session already ended.
func (m *Model) feed(ev event.Event) {
	if m.done {
		return
	}
	if outcome := m.entry.Event(ev); outcome != pinentry.OutcomeNone {
		m.outcome = outcome
		m.done = true
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.done {
		return ""
	}

	width := m.contentWidth()

	headerStyle := HeaderStyle
	if !m.entry.ShowingRealPrompt() {
		headerStyle = WarningHeaderStyle
	}
	header := headerStyle.Width(width).Render(m.entry.HeaderLine().Text())

	pinStyle := PinNormalStyle
	if m.entry.PINLine().Font() == display.FontBold {
		pinStyle = PinBoldStyle
	}
	pinLine := pinStyle.Width(width).Render(m.entry.PINLine().Text())

	strip := m.renderCarousel()
	confirm := m.renderConfirmBadge(width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		pinLine,
		"",
		strip,
		confirm,
	)

	pad := PadBorderStyle.Render(content)
	helpBar := HelpStyle.Render(m.help.View(m.keys))

	out := lipgloss.JoinVertical(lipgloss.Center, pad, helpBar)
	if m.width > 0 {
		out = lipgloss.Place(m.width, lipgloss.Height(out), lipgloss.Center, lipgloss.Top, out)
	}
	return out
}

// renderCarousel draws the strip of choices around the selector.
func (m Model) renderCarousel() string {
	count := m.entry.Count()
	pos := m.entry.Position()
	half := visibleItems / 2

	parts := make([]string, 0, visibleItems)
	for offset := -half; offset <= half; offset++ {
		index := ((pos+offset)%count + count) % count
		item := m.entry.ItemAt(index)

		label := item.Label
		if item.Icon != "" {
			label = item.Icon + " " + label
		}

		if offset == 0 {
			parts = append(parts, SelectedItemStyle.Render(label))
		} else {
			parts = append(parts, CarouselItemStyle.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// renderConfirmBadge shows the armed middle-button caption for action
// items, or a blank line to keep the layout stable.
func (m Model) renderConfirmBadge(width int) string {
	item := m.entry.CurrentItem()
	if item.MiddleLabel == "" {
		return lipgloss.NewStyle().Width(width).Render("")
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(ConfirmBadgeStyle.Render(item.MiddleLabel))
}

func (m Model) contentWidth() int {
	width := m.width - 8
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width
}
