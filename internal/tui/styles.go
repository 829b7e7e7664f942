package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 40 // Minimum supported terminal width
	MaxContentWidth  = 80 // Maximum content width before capping
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	HighlightColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

// Common styles
var (
	// HeaderStyle renders the prompt/warning line at the top of the pad
	HeaderStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			Align(lipgloss.Center)

	// WarningHeaderStyle is used while the WRONG PIN warning is shown
	WarningHeaderStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true).
				Align(lipgloss.Center)

	// PinBoldStyle renders masked/revealed PIN content
	PinBoldStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			Align(lipgloss.Center)

	// PinNormalStyle renders the subprompt hint on an empty buffer
	PinNormalStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Align(lipgloss.Center)

	// CarouselItemStyle renders unselected carousel entries
	CarouselItemStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 1)

	// SelectedItemStyle renders the entry under the selector
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(HighlightColor)

	// ConfirmBadgeStyle renders the armed CONFIRM caption for action items
	ConfirmBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(HighlightColor).
				Bold(true).
				Padding(0, 1)

	// PadBorderStyle frames the whole PIN pad
	PadBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// HelpStyle wraps the bubbles help bar
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginTop(1)
)
