package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/muurk/pinpad/internal/event"
)

// Client message types.
const (
	TypeButton = "button"
	TypeTick   = "tick"
	TypeCancel = "cancel"
)

// Server message types.
const (
	TypeDisplay = "display"
	TypeOutcome = "outcome"
)

// ClientMessage is one inbound frame from a harness driving a session.
type ClientMessage struct {
	Type string `json:"type"`
	// Button and Kind are set for type "button".
	Button string `json:"button,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// DisplayMessage mirrors the device screen after an event: the two text
// lines and the carousel selection. No pixels, just content.
type DisplayMessage struct {
	Type     string `json:"type"`
	Header   string `json:"header"`
	PinLine  string `json:"pin_line"`
	PinBold  bool   `json:"pin_bold"`
	Selected string `json:"selected"`
	Position int    `json:"position"`
}

// OutcomeMessage terminates a session. PIN is present only on a
// confirmed outcome; the simulator exists to test harnesses, so unlike
// the device it does hand the entered PIN back.
type OutcomeMessage struct {
	Type    string `json:"type"`
	Outcome string `json:"outcome"`
	PIN     string `json:"pin,omitempty"`
}

// DecodeClientMessage parses one inbound frame.
func DecodeClientMessage(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("malformed client message: %w", err)
	}
	switch msg.Type {
	case TypeButton, TypeTick, TypeCancel:
		return &msg, nil
	default:
		return nil, fmt.Errorf("unknown client message type %q", msg.Type)
	}
}

// Event translates a button or tick message into an engine event.
// Cancel messages have no event; callers handle them before this.
func (m *ClientMessage) Event() (event.Event, error) {
	switch m.Type {
	case TypeTick:
		return event.TickEvent{}, nil
	case TypeButton:
		b, err := parseButton(m.Button)
		if err != nil {
			return nil, err
		}
		k, err := parseKind(m.Kind)
		if err != nil {
			return nil, err
		}
		return event.ButtonEvent{Button: b, Kind: k}, nil
	default:
		return nil, fmt.Errorf("message type %q carries no event", m.Type)
	}
}

func parseButton(s string) (event.Button, error) {
	switch s {
	case "left":
		return event.ButtonLeft, nil
	case "middle":
		return event.ButtonMiddle, nil
	case "right":
		return event.ButtonRight, nil
	default:
		return 0, fmt.Errorf("unknown button %q", s)
	}
}

func parseKind(s string) (event.Kind, error) {
	switch s {
	case "pressed":
		return event.Pressed, nil
	case "released":
		return event.Released, nil
	case "long_pressed":
		return event.LongPressed, nil
	default:
		return 0, fmt.Errorf("unknown button kind %q", s)
	}
}

// EncodeDisplay builds an outbound display frame.
func EncodeDisplay(header, pinLine string, pinBold bool, selected string, position int) ([]byte, error) {
	return json.Marshal(DisplayMessage{
		Type:     TypeDisplay,
		Header:   header,
		PinLine:  pinLine,
		PinBold:  pinBold,
		Selected: selected,
		Position: position,
	})
}

// EncodeOutcome builds an outbound outcome frame.
func EncodeOutcome(outcome string, pin string) ([]byte, error) {
	return json.Marshal(OutcomeMessage{
		Type:    TypeOutcome,
		Outcome: outcome,
		PIN:     pin,
	})
}
