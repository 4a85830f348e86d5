package chat

import "strings"

// Mode selects the orchestration path for a request.
type Mode string

// Orchestration modes.
const (
	ModeChat     Mode = "chat"
	ModeClassify Mode = "classify"
)

const classifyToken = "classify"

// DetectMode routes a transcript: classify mode triggers iff the last turn
// was sent by the user and its text, trimmed and case-folded, begins with
// the literal token "classify". Everything else is chat mode. No fuzzy
// matching; ambiguous phrasing deliberately defaults to chat.
func DetectMode(t Transcript) Mode {
	if len(t) == 0 {
		return ModeChat
	}

	last := t.Last()
	if last.From != SenderUser {
		return ModeChat
	}

	message := strings.ToLower(strings.TrimSpace(last.Message))
	if strings.HasPrefix(message, classifyToken) {
		return ModeClassify
	}

	return ModeChat
}
