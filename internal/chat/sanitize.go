package chat

import (
	"regexp"
	"strings"
)

// Sanitization regexes, applied in a fixed order. Each step is idempotent,
// so sanitizing already-clean text is a no-op.
var (
	replyLabelRegex   = regexp.MustCompile(`^AI reply:\s*`)
	openFenceRegex    = regexp.MustCompile("(?i)^\\s*```(?:json)?\\s*")
	closeFenceRegex   = regexp.MustCompile("\\s*```\\s*$")
	openWrapperRegex  = regexp.MustCompile(`^\{\s*'`)
	closeWrapperRegex = regexp.MustCompile(`'\s*\}$`)
	newlineRegex      = regexp.MustCompile(`(?:[\r\n]+|\\n)\s*`)
	escapedQuoteRegex = regexp.MustCompile(`\\'`)
)

// Sanitize normalizes raw inference output into clean reply text. The label
// prefix is stripped and surrounding whitespace trimmed in every mode; code
// fences and the model's quote-and-brace wrapper artifact are stripped only
// on the classify path, before newline collapsing, so the embedded object
// survives extraction. Literal newlines and escaped newline sequences
// collapse to single spaces, and escaped single quotes are unescaped.
func Sanitize(raw string, mode Mode) string {
	text := replyLabelRegex.ReplaceAllString(raw, "")
	text = strings.TrimSpace(text)

	if mode == ModeClassify {
		text = openFenceRegex.ReplaceAllString(text, "")
		text = closeFenceRegex.ReplaceAllString(text, "")
		text = openWrapperRegex.ReplaceAllString(text, "")
		text = closeWrapperRegex.ReplaceAllString(text, "")
	}

	text = newlineRegex.ReplaceAllString(text, " ")
	text = escapedQuoteRegex.ReplaceAllString(text, "'")

	return strings.TrimSpace(text)
}
