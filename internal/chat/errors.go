package chat

import (
	"errors"
	"net/http"

	"github.com/freightops/manifest/internal/inference"
)

// Domain errors for orchestration.
//
// ErrEmptyTranscript aborts the request before inference. The extraction
// errors never abort a request: they degrade the classify path to a
// reply-only response and are surfaced to the operator log.
var (
	ErrEmptyTranscript = errors.New("transcript must contain at least one turn")
	ErrNoPayload       = errors.New("no classification payload found in reply")
	ErrPayloadParse    = errors.New("classification payload is not valid JSON")
	ErrPayloadInvalid  = errors.New("classification payload failed validation")
)

// MapHTTPStatus maps orchestration errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrEmptyTranscript) {
		return http.StatusBadRequest
	}
	if errors.Is(err, inference.ErrBusy) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
