package testutils

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aretw0/orderbot/pkg/domain"
)

// ScriptedIO is an in-memory ports.IOHandler. Prompt answers come from a fixed
// script; once the script is exhausted Prompt fails with io.EOF, like a closed stdin.
type ScriptedIO struct {
	mu      sync.Mutex
	answers []string
	Prompts []string
	Logs    []string
}

// NewScriptedIO creates a handler that answers prompts with the given lines in order.
func NewScriptedIO(answers ...string) *ScriptedIO {
	return &ScriptedIO{answers: answers}
}

func (s *ScriptedIO) Prompt(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Prompts = append(s.Prompts, text)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	next := s.answers[0]
	s.answers = s.answers[1:]
	return next, nil
}

func (s *ScriptedIO) Log(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Logs = append(s.Logs, text)
	return nil
}

// LogsContaining returns the log lines that contain substr.
func (s *ScriptedIO) LogsContaining(substr string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, l := range s.Logs {
		if strings.Contains(l, substr) {
			out = append(out, l)
		}
	}
	return out
}

// StaticMenu is a ports.MenuService that serves a fixed menu, or a fixed error.
// Calls counts ListItems invocations.
type StaticMenu struct {
	Items []domain.MenuItem
	Err   error
	Calls int
}

// NewStaticMenu builds a menu from names, numbering ids from 1.
func NewStaticMenu(names ...string) *StaticMenu {
	items := make([]domain.MenuItem, 0, len(names))
	for i, n := range names {
		items = append(items, domain.MenuItem{ID: i + 1, Name: n})
	}
	return &StaticMenu{Items: items}
}

func (m *StaticMenu) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return append([]domain.MenuItem(nil), m.Items...), nil
}
