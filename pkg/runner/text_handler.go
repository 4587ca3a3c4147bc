package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// TextHandler implements ports.IOHandler for an interactive console.
type TextHandler struct {
	Writer    io.Writer
	LogWriter io.Writer
	Renderer  ContentRenderer
	Style     func(string) string

	source *lineSource
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:    w,
		LogWriter: w,
		source:    newLineSource(r),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Prompt prints text, then reads one sanitized line. Lines the sanitizer
// rejects are reported and asked for again.
func (h *TextHandler) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	output := text
	if h.Renderer != nil {
		if rendered, err := h.Renderer(text); err == nil {
			output = rendered
		}
	}
	fmt.Fprintln(h.Writer, strings.TrimSpace(output))

	for {
		// Only show prompt if context is not yet done
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		line, err := h.source.next(ctx)
		if err != nil {
			return "", err
		}

		clean, err := SanitizeInput(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
			continue
		}
		return clean, nil
	}
}

// Log prints one line to the log writer.
func (h *TextHandler) Log(ctx context.Context, text string) error {
	if h.Style != nil {
		text = h.Style(text)
	}
	_, err := fmt.Fprintln(h.LogWriter, text)
	return err
}
