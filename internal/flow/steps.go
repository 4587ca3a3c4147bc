package flow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/orderbot/internal/runtime"
	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/ports"
)

// AskText prompts for one line and stores the trimmed answer into field.
// An empty line is a valid answer; checking it is left to the outgoing selector.
func AskText(field domain.Field, question string) runtime.Action {
	return func(ctx context.Context, io ports.IOHandler, s *domain.State) error {
		answer, err := ask(ctx, io, question)
		if err != nil {
			return err
		}
		return s.Set(field, answer)
	}
}

// AskQuantity prompts for a quantity and stores both the raw answer and,
// when it parses as a positive base-10 integer, the parsed value.
func AskQuantity(question string) runtime.Action {
	return func(ctx context.Context, io ports.IOHandler, s *domain.State) error {
		answer, err := ask(ctx, io, question)
		if err != nil {
			return err
		}
		if err := s.Set(domain.FieldQuantity, answer); err != nil {
			return err
		}
		s.CurrentQuantity = nil
		if n, err := strconv.Atoi(answer); err == nil && n > 0 {
			s.CurrentQuantity = &n
		}
		return nil
	}
}

// Greeting appends "Hello, <name>!" to the transcript.
func Greeting() runtime.Action {
	return func(ctx context.Context, io ports.IOHandler, s *domain.State) error {
		name, ok := s.Get(domain.FieldUserName)
		if !ok {
			return fmt.Errorf("greeting: %s is not set", domain.FieldUserName)
		}
		s.Append(fmt.Sprintf("Hello, %s!", name))
		return nil
	}
}

// AddItem moves the validated item and quantity into the order,
// then clears them so the next cycle starts blank.
func AddItem() runtime.Action {
	return func(ctx context.Context, io ports.IOHandler, s *domain.State) error {
		name, ok := s.Get(domain.FieldItemName)
		if !ok || s.CurrentQuantity == nil {
			return fmt.Errorf("add item: item or quantity missing in %s", s)
		}
		if err := s.Items.Add(name, *s.CurrentQuantity); err != nil {
			return fmt.Errorf("add item: %w", err)
		}
		s.Clear(domain.FieldItemName)
		s.Clear(domain.FieldQuantity)
		s.Clear(domain.FieldAnother)
		return nil
	}
}

// Summary appends "Order for <name>: 2x Salami, 1x Margherita".
func Summary() runtime.Action {
	return func(ctx context.Context, io ports.IOHandler, s *domain.State) error {
		name, _ := s.Get(domain.FieldUserName)
		parts := make([]string, 0, s.Items.Len())
		for item, q := range s.Items.All() {
			parts = append(parts, fmt.Sprintf("%dx %s", q, item))
		}
		if len(parts) == 0 {
			s.Append(fmt.Sprintf("Order for %s: nothing", name))
			return nil
		}
		s.Append(fmt.Sprintf("Order for %s: %s", name, strings.Join(parts, ", ")))
		return nil
	}
}

func ask(ctx context.Context, io ports.IOHandler, question string) (string, error) {
	line, err := io.Prompt(ctx, question)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInputUnavailable, err)
	}
	answer := strings.TrimSpace(line)
	if err := io.Log(ctx, "Received: "+answer); err != nil {
		return "", fmt.Errorf("log: %w", err)
	}
	return answer, nil
}
