package simserver

import (
	"encoding/json"
	"testing"

	"github.com/muurk/pinpad/internal/protocol"
)

func buttonMsg(button, kind string) *protocol.ClientMessage {
	return &protocol.ClientMessage{Type: protocol.TypeButton, Button: button, Kind: kind}
}

// sendButton applies one button message and returns the display frame.
func sendButton(t *testing.T, s *session, button, kind string) protocol.DisplayMessage {
	t.Helper()
	replies, done, err := s.Handle(buttonMsg(button, kind))
	if err != nil {
		t.Fatalf("Handle(%s/%s) error = %v", button, kind, err)
	}
	if done {
		t.Fatalf("Handle(%s/%s) unexpectedly terminal", button, kind)
	}
	if len(replies) != 1 {
		t.Fatalf("Handle(%s/%s) replies = %d, want 1", button, kind, len(replies))
	}
	var frame protocol.DisplayMessage
	if err := json.Unmarshal(replies[0], &frame); err != nil {
		t.Fatalf("bad display frame: %v", err)
	}
	return frame
}

// moveTo navigates the session's carousel to the target index.
func moveTo(t *testing.T, s *session, index int) {
	t.Helper()
	for i := 0; i < 14; i++ {
		if s.entry.Position() == index {
			return
		}
		sendButton(t, s, "right", "pressed")
	}
	t.Fatalf("could not reach index %d", index)
}

func TestInitialFrame(t *testing.T) {
	s := newSession("t1", "Enter PIN", "")

	data, err := s.InitialFrame()
	if err != nil {
		t.Fatalf("InitialFrame() error = %v", err)
	}

	var frame protocol.DisplayMessage
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatal(err)
	}
	if frame.Header != "Enter PIN" {
		t.Errorf("header = %q, want prompt", frame.Header)
	}
	if frame.PinLine != "_" {
		t.Errorf("pin line = %q, want placeholder", frame.PinLine)
	}
	if frame.Position < 3 || frame.Position > 12 {
		t.Errorf("position = %d, want a digit slot", frame.Position)
	}
}

func TestSubpromptSessionStartsWithWarning(t *testing.T) {
	s := newSession("t2", "Enter PIN", "3 attempts left")

	data, _ := s.InitialFrame()
	var frame protocol.DisplayMessage
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatal(err)
	}
	if frame.Header != "WRONG PIN" {
		t.Errorf("header = %q, want warning", frame.Header)
	}
	if frame.PinLine != "3 attempts left" {
		t.Errorf("pin line = %q, want subprompt", frame.PinLine)
	}
	if frame.PinBold {
		t.Error("subprompt should render in normal weight")
	}

	// First button event swaps in the real prompt.
	after := sendButton(t, s, "left", "pressed")
	if after.Header != "Enter PIN" {
		t.Errorf("header after button = %q, want prompt", after.Header)
	}
}

func TestNavigationUpdatesFrame(t *testing.T) {
	s := newSession("t3", "Enter PIN", "")

	before := s.entry.Position()
	frame := sendButton(t, s, "right", "pressed")
	want := (before + 1) % 13
	if frame.Position != want {
		t.Errorf("position = %d, want %d", frame.Position, want)
	}
	if frame.Selected == "" {
		t.Error("frame should carry the selected item label")
	}
}

func TestConfirmFlow(t *testing.T) {
	s := newSession("t4", "Enter PIN", "")

	// Commit the digit under the selector, then ENTER.
	sendButton(t, s, "middle", "pressed")
	frame := sendButton(t, s, "middle", "released")
	if len(frame.PinLine) != 1 {
		t.Fatalf("pin line = %q, want single revealed digit", frame.PinLine)
	}

	moveTo(t, s, 2)
	replies, done, err := s.Handle(buttonMsg("middle", "pressed"))
	if err != nil || done {
		t.Fatalf("middle press: done=%v err=%v", done, err)
	}
	_ = replies

	replies, done, err = s.Handle(buttonMsg("middle", "released"))
	if err != nil {
		t.Fatalf("enter release error = %v", err)
	}
	if !done {
		t.Fatal("ENTER on non-empty PIN should end the session")
	}
	if len(replies) != 2 {
		t.Fatalf("replies = %d, want display + outcome", len(replies))
	}

	var outcome protocol.OutcomeMessage
	if err := json.Unmarshal(replies[1], &outcome); err != nil {
		t.Fatal(err)
	}
	if outcome.Outcome != "confirmed" {
		t.Errorf("outcome = %q, want confirmed", outcome.Outcome)
	}
	if len(outcome.PIN) != 1 {
		t.Errorf("pin = %q, want the single entered digit", outcome.PIN)
	}
}

func TestCancelEndsSession(t *testing.T) {
	s := newSession("t5", "Enter PIN", "")

	replies, done, err := s.Handle(&protocol.ClientMessage{Type: protocol.TypeCancel})
	if err != nil {
		t.Fatalf("Handle(cancel) error = %v", err)
	}
	if !done {
		t.Error("cancel should be terminal")
	}
	if len(replies) != 1 {
		t.Fatalf("replies = %d, want 1", len(replies))
	}

	var outcome protocol.OutcomeMessage
	if err := json.Unmarshal(replies[0], &outcome); err != nil {
		t.Fatal(err)
	}
	if outcome.Outcome != "cancelled" {
		t.Errorf("outcome = %q, want cancelled", outcome.Outcome)
	}
	if outcome.PIN != "" {
		t.Error("cancelled outcome must not carry a PIN")
	}
}

func TestEnterOnEmptyKeepsSessionAlive(t *testing.T) {
	s := newSession("t6", "Enter PIN", "")

	moveTo(t, s, 2)
	sendButton(t, s, "middle", "pressed")
	replies, done, err := s.Handle(buttonMsg("middle", "released"))
	if err != nil {
		t.Fatalf("Handle error = %v", err)
	}
	if done {
		t.Error("ENTER on empty PIN must not end the session")
	}
	if len(replies) != 1 {
		t.Errorf("replies = %d, want display only", len(replies))
	}
}
