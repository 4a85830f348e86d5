// Package chat implements the conversational classification orchestrator:
// transcript routing, task-table augmentation, external inference invocation,
// reply sanitization, structured payload extraction, and persistence of
// recovered classification records.
package chat

import "time"

// Sender identifies who produced a transcript turn.
type Sender string

// Senders recognized on the wire. Assistant turns arrive as "ai".
const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "ai"
	SenderSystem    Sender = "system"
)

// Turn is one message in a transcript. Turns are immutable once appended.
type Turn struct {
	From        Sender   `json:"from"`
	Message     string   `json:"message"`
	Time        string   `json:"time"`
	Attachments []string `json:"attachments,omitempty"`
}

// Transcript is the ordered conversation supplied by the caller, oldest
// turn first. A valid transcript holds at least one turn; the last turn
// determines routing.
type Transcript []Turn

// Validate reports ErrEmptyTranscript for a transcript with no turns.
func (t Transcript) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTranscript
	}
	return nil
}

// Last returns the most recent turn. Callers must Validate first.
func (t Transcript) Last() Turn {
	return t[len(t)-1]
}

// Append returns a new transcript with the given turn added. The receiver
// is never modified in place.
func (t Transcript) Append(turn Turn) Transcript {
	extended := make(Transcript, len(t), len(t)+1)
	copy(extended, t)
	return append(extended, turn)
}

// SystemTurn builds a system-attributed turn stamped with the current time.
func SystemTurn(message string) Turn {
	return Turn{
		From:    SenderSystem,
		Message: message,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}
}
