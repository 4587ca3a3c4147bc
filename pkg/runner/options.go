package runner

import "io"

// ContentRenderer is a function that transforms text before it is printed.
// This allows for TUI rendering (markdown to ANSI) without coupling the handlers to it.
type ContentRenderer func(string) (string, error)

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the renderer applied to prompts.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithLogWriter sends log lines to w instead of the prompt writer.
func WithLogWriter(w io.Writer) TextHandlerOption {
	return func(h *TextHandler) {
		if w != nil {
			h.LogWriter = w
		}
	}
}

// WithLogStyle decorates log lines, e.g. with terminal colours.
func WithLogStyle(style func(string) string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Style = style
	}
}
