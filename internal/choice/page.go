package choice

import "github.com/muurk/pinpad/internal/event"

// Item is one selectable entry as presented by the carousel: a label for
// the strip, an optional icon glyph, and middle-button behavior.
type Item struct {
	Label string
	// Icon is an optional glyph shown next to the label.
	Icon string
	// MiddleLabel overrides the middle-button caption when non-empty
	// (e.g. an armed "CONFIRM" for action items). Empty means the button
	// just commits the item without a special caption.
	MiddleLabel string
	// WithoutRelease makes the item commit on a middle long-press before
	// the button is released. Used for hold-gestures like hold-to-clear.
	WithoutRelease bool
}

// Factory supplies the page content: a pure, total mapping from index to
// an item and its associated action value.
type Factory[A any] interface {
	Get(index int) (Item, A)
	Count() int
}

// Commit is a fully resolved selection reported by the page.
type Commit[A any] struct {
	Action    A
	LongPress bool
}

// Option configures a Page at construction.
type Option[A any] func(*Page[A])

// WithInitialPosition sets the starting selector index.
func WithInitialPosition[A any](index int) Option[A] {
	return func(p *Page[A]) {
		p.position = p.normalize(index)
	}
}

// WithCarousel enables wrap-around navigation past either end.
func WithCarousel[A any](on bool) Option[A] {
	return func(p *Page[A]) {
		p.carousel = on
	}
}

// Page is a carousel selector over a fixed ordered set of choices. The
// left and right buttons navigate; the middle button commits the current
// item on release, or on long-press without release for items configured
// that way. Events the page reacts to are consumed internally and a
// Commit is reported only when a selection resolves.
type Page[A any] struct {
	factory  Factory[A]
	position int
	carousel bool

	// Set after a without-release long-press commit so the trailing
	// release of the same physical press does not commit again.
	suppressRelease bool
}

// NewPage creates a page over the factory's choices, starting at index 0
// unless WithInitialPosition is given.
func NewPage[A any](factory Factory[A], opts ...Option[A]) *Page[A] {
	p := &Page[A]{factory: factory}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Event feeds one framework event to the page. It returns a non-nil
// Commit when the event resolved a selection, nil when the event was
// consumed as navigation or ignored.
func (p *Page[A]) Event(ev event.Event) *Commit[A] {
	be, ok := ev.(event.ButtonEvent)
	if !ok {
		return nil
	}

	switch be.Button {
	case event.ButtonLeft:
		if be.Kind == event.Pressed {
			p.move(-1)
		}
	case event.ButtonRight:
		if be.Kind == event.Pressed {
			p.move(1)
		}
	case event.ButtonMiddle:
		return p.middleEvent(be.Kind)
	}
	return nil
}

func (p *Page[A]) middleEvent(kind event.Kind) *Commit[A] {
	switch kind {
	case event.Pressed:
		p.suppressRelease = false
	case event.LongPressed:
		item, action := p.factory.Get(p.position)
		if item.WithoutRelease {
			p.suppressRelease = true
			return &Commit[A]{Action: action, LongPress: true}
		}
	case event.Released:
		if p.suppressRelease {
			p.suppressRelease = false
			return nil
		}
		_, action := p.factory.Get(p.position)
		return &Commit[A]{Action: action}
	}
	return nil
}

// Position returns the current selector index.
func (p *Page[A]) Position() int {
	return p.position
}

// SetPosition moves the selector to index. The animate flag is a hint
// for the renderer; the page itself moves immediately either way.
func (p *Page[A]) SetPosition(index int, animate bool) {
	_ = animate
	p.position = p.normalize(index)
}

// Current returns the item and action under the selector.
func (p *Page[A]) Current() (Item, A) {
	return p.factory.Get(p.position)
}

// Count returns the number of choices.
func (p *Page[A]) Count() int {
	return p.factory.Count()
}

// At returns the item and action at index without moving the selector.
func (p *Page[A]) At(index int) (Item, A) {
	return p.factory.Get(p.normalize(index))
}

func (p *Page[A]) move(delta int) {
	next := p.position + delta
	count := p.factory.Count()
	if p.carousel {
		next = ((next % count) + count) % count
	} else {
		if next < 0 {
			next = 0
		}
		if next >= count {
			next = count - 1
		}
	}
	p.position = next
}

func (p *Page[A]) normalize(index int) int {
	count := p.factory.Count()
	if count == 0 {
		return 0
	}
	return ((index % count) + count) % count
}
