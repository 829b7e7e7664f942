package simserver

import (
	"fmt"

	"github.com/muurk/pinpad/internal/display"
	"github.com/muurk/pinpad/internal/logging"
	"github.com/muurk/pinpad/internal/pinentry"
	"github.com/muurk/pinpad/internal/protocol"
)

// session couples one PIN-entry engine with the wire protocol. It is
// transport-agnostic so tests can drive it without a socket.
type session struct {
	id    string
	entry *pinentry.PinEntry
}

func newSession(id, prompt, subprompt string) *session {
	logging.LogSessionEvent(id, "started", 0)
	return &session{
		id:    id,
		entry: pinentry.New(prompt, subprompt),
	}
}

// Handle applies one decoded client message and returns the frames to
// send back. done reports that the session reached a terminal outcome.
func (s *session) Handle(msg *protocol.ClientMessage) (replies [][]byte, done bool, err error) {
	if msg.Type == protocol.TypeCancel {
		logging.LogSessionEvent(s.id, "cancelled", len(s.entry.PIN()))
		frame, err := protocol.EncodeOutcome(pinentry.OutcomeCancelled.String(), "")
		if err != nil {
			return nil, false, err
		}
		return [][]byte{frame}, true, nil
	}

	ev, err := msg.Event()
	if err != nil {
		return nil, false, err
	}
	if msg.Type == protocol.TypeButton {
		logging.LogButtonEvent(s.id, msg.Button, msg.Kind)
	}

	outcome := s.entry.Event(ev)

	displayFrame, err := s.displayFrame()
	if err != nil {
		return nil, false, err
	}
	replies = [][]byte{displayFrame}

	if outcome == pinentry.OutcomeConfirmed {
		logging.LogSessionEvent(s.id, "confirmed", len(s.entry.PIN()))
		frame, err := protocol.EncodeOutcome(outcome.String(), s.entry.PIN())
		if err != nil {
			return nil, false, err
		}
		replies = append(replies, frame)
		return replies, true, nil
	}

	return replies, false, nil
}

// InitialFrame returns the screen content as it stands before any event.
func (s *session) InitialFrame() ([]byte, error) {
	return s.displayFrame()
}

func (s *session) displayFrame() ([]byte, error) {
	frame, err := protocol.EncodeDisplay(
		s.entry.HeaderLine().Text(),
		s.entry.PINLine().Text(),
		s.entry.PINLine().Font() == display.FontBold,
		s.entry.CurrentItem().Label,
		s.entry.Position(),
	)
	if err != nil {
		return nil, fmt.Errorf("encode display frame: %w", err)
	}
	// The lines were just serialized; consume their dirty flags.
	s.entry.HeaderLine().TakeDirty()
	s.entry.PINLine().TakeDirty()
	return frame, nil
}
