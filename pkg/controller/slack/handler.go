package slack

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tuser/pkg/usecase"
	"github.com/slack-go/slack"
)

// Handler handles the Slack slash command webhook
type Handler struct {
	lookupUC usecase.UserLookupUseCase
}

// NewHandler creates a new Slack handler
func NewHandler(lookupUC usecase.UserLookupUseCase) *Handler {
	return &Handler{
		lookupUC: lookupUC,
	}
}

// HandleCommand handles one slash command request. Slack sends the command
// form-encoded; a JSON body with the same field names is accepted as well.
// Lookup failures still answer 200 with the generic failure message, only a
// secrets failure surfaces as 500 without a chat message.
func (h *Handler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	cmd, err := parseCommand(r)
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to parse slash command", "error", err)
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}

	msg, err := h.lookupUC.HandleCommand(r.Context(), cmd)
	if err != nil {
		ctxlog.From(r.Context()).Error("Slash command aborted", "error", err)
		// Full detail stays in the log; the caller only learns that the
		// service is misconfigured.
		h.writeError(w, r, goerr.New("lookup unavailable"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode command response", "error", err)
	}
}

// parseCommand decodes the inbound request by content type. A JSON body is
// decoded into the fields the pipeline uses; slack.SlashCommand's own
// UnmarshalJSON demands Slack's full field set and would reject a minimal
// body.
func parseCommand(r *http.Request) (slack.SlashCommand, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var body struct {
			Token string `json:"token"`
			Text  string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return slack.SlashCommand{}, goerr.Wrap(err, "failed to decode JSON command body")
		}
		return slack.SlashCommand{
			Token: body.Token,
			Text:  body.Text,
		}, nil
	}

	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		return slack.SlashCommand{}, goerr.Wrap(err, "failed to parse slash command form")
	}
	return cmd, nil
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode error response", "error", err)
	}
}
