package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// SummaryMarkdown describes a finished run as markdown.
func SummaryMarkdown(s *domain.State) string {
	var b strings.Builder
	b.WriteString("# Final\n\n")
	if name, ok := s.Get(domain.FieldUserName); ok {
		fmt.Fprintf(&b, "**Customer:** %s\n\n", name)
	}

	switch {
	case s.Items.Len() > 0:
		b.WriteString("| Item | Quantity |\n|---|---|\n")
		for name, q := range s.Items.All() {
			fmt.Fprintf(&b, "| %s | %d |\n", name, q)
		}
		b.WriteString("\n")
	default:
		if item, ok := s.Get(domain.FieldItemName); ok {
			fmt.Fprintf(&b, "**Pizza:** %s\n\n", item)
		}
	}

	for _, line := range s.Output {
		fmt.Fprintf(&b, "> %s\n", line)
	}
	return b.String()
}

// LogStyle colours diagnostics red and input echoes faint.
// On a terminal without colour support the text is returned unchanged.
func LogStyle() func(string) string {
	p := termenv.ColorProfile()
	return func(text string) string {
		switch {
		case strings.HasPrefix(text, "Received:"):
			return termenv.String(text).Faint().String()
		case strings.Contains(text, "is invalid") || strings.Contains(text, "is not a positive"):
			return termenv.String(text).Foreground(p.Color("#ef4444")).String()
		}
		return text
	}
}
