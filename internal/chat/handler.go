package chat

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/freightops/manifest/pkg/handlers"
	"github.com/freightops/manifest/pkg/routes"
)

// Handler provides the HTTP endpoint for conversational orchestration.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// ConverseRequest is the inbound body: the running conversation history.
type ConverseRequest struct {
	History Transcript `json:"history"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "chat"),
	}
}

// Routes returns the route group definition for the chat endpoint.
// Non-POST methods receive 405 from the method-qualified mux pattern.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/chat",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Converse},
		},
	}
}

// Converse decodes the transcript, runs the orchestration pipeline, and
// writes the assembled result. Failure responses carry the Result shape
// with success=false and the diagnostic text.
func (h *Handler) Converse(w http.ResponseWriter, r *http.Request) {
	var req ConverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Run(r.Context(), req.History)
	if err != nil {
		h.fail(w, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) fail(w http.ResponseWriter, status int, err error) {
	h.logger.Error("conversation failed", "status", status, "error", err)
	handlers.RespondJSON(w, status, &Result{Success: false, Error: err.Error()})
}
