package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/orderbot/pkg/domain"
)

// Event types emitted by JSONHandler.
const (
	EventPrompt = "prompt"
	EventLog    = "log"
	EventFinal  = "final"
	EventError  = "error"
)

// Event is one NDJSON line written by JSONHandler.
type Event struct {
	Type  string        `json:"type"`
	Text  string        `json:"text,omitempty"`
	State *domain.State `json:"state,omitempty"`
	Error string        `json:"error,omitempty"`
}

// JSONHandler implements ports.IOHandler for structured JSON-Lines communication.
type JSONHandler struct {
	mu      sync.Mutex
	Encoder *json.Encoder
	source  *lineSource
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Encoder: json.NewEncoder(w),
		source:  newLineSource(r),
	}
}

// Prompt emits a prompt event and reads the answer. The answer line may be a
// JSON string ("Alice") or plain text (Alice). Lines the sanitizer rejects
// are reported as error events and the next line is read.
func (h *JSONHandler) Prompt(ctx context.Context, text string) (string, error) {
	if err := h.emit(Event{Type: EventPrompt, Text: text}); err != nil {
		return "", err
	}

	for {
		line, err := h.source.next(ctx)
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)

		var val string
		if err := json.Unmarshal([]byte(line), &val); err == nil {
			line = val
		}

		clean, err := SanitizeInput(line)
		if err != nil {
			if err := h.emit(Event{Type: EventError, Error: err.Error() + ". Please try again."}); err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

// Log emits a log event.
func (h *JSONHandler) Log(ctx context.Context, text string) error {
	return h.emit(Event{Type: EventLog, Text: text})
}

// Final emits the state a run ended with.
func (h *JSONHandler) Final(state *domain.State) error {
	return h.emit(Event{Type: EventFinal, State: state})
}

// Fail emits a fatal error.
func (h *JSONHandler) Fail(err error) error {
	return h.emit(Event{Type: EventError, Error: err.Error()})
}

func (h *JSONHandler) emit(e Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Encoder.Encode(e)
}
