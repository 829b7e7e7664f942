package display

// Font selects the weight a Line is rendered with. The renderer maps
// these onto whatever the output medium supports (lipgloss bold style in
// the terminal UI, a flag on the simulator wire).
type Font int

const (
	FontNormal Font = iota
	FontBold
)

// String returns the wire/debug name of the font.
func (f Font) String() string {
	if f == FontBold {
		return "bold"
	}
	return "normal"
}

// Line is a single changing text line owned by a component. Mutation and
// painting are decoupled: setters update content and accumulate a dirty
// flag, and the renderer consumes the flag via TakeDirty when it decides
// to repaint.
type Line struct {
	text  string
	font  Font
	dirty bool
}

// NewLine creates a line with initial content. New lines start dirty so
// the first paint always happens.
func NewLine(text string, font Font) *Line {
	return &Line{text: text, font: font, dirty: true}
}

// SetText replaces the line content. Returns true if the content changed.
func (l *Line) SetText(text string) bool {
	if l.text == text {
		return false
	}
	l.text = text
	l.dirty = true
	return true
}

// SetFont replaces the font. Returns true if the font changed.
func (l *Line) SetFont(font Font) bool {
	if l.font == font {
		return false
	}
	l.font = font
	l.dirty = true
	return true
}

// RequestRepaint marks the line dirty without changing content.
func (l *Line) RequestRepaint() {
	l.dirty = true
}

// Text returns the current content.
func (l *Line) Text() string {
	return l.text
}

// Font returns the current font.
func (l *Line) Font() Font {
	return l.font
}

// Dirty reports whether the line needs repainting.
func (l *Line) Dirty() bool {
	return l.dirty
}

// TakeDirty returns the dirty flag and clears it. The renderer calls this
// once per paint cycle.
func (l *Line) TakeDirty() bool {
	d := l.dirty
	l.dirty = false
	return d
}
