package flow

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/orderbot/internal/runtime"
	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/ports"
)

// RequireUserName routes to collect while the user name is missing or empty,
// otherwise to next.
func RequireUserName(collect, next domain.StepID) runtime.Selector {
	return func(ctx context.Context, io ports.IOHandler, s *domain.State) (domain.Target, error) {
		if name, ok := s.Get(domain.FieldUserName); ok && name != "" {
			return domain.Goto(next), nil
		}
		return domain.Goto(collect), nil
	}
}

// Policy is the retry policy shared by the validating selectors.
type Policy struct {
	// MaxAttempts bounds rejected answers per field. Zero means unbounded.
	MaxAttempts int
	Hooks       domain.LifecycleHooks
}

// reject records a rejected answer and enforces the attempt bound.
func (p Policy) reject(ctx context.Context, io ports.IOHandler, s *domain.State, f domain.Field, value, diagnostic string) error {
	attempt := s.Reject(f)
	p.notify(ctx, s, f, value, false, attempt)
	if err := io.Log(ctx, diagnostic); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
		return fmt.Errorf("%w: %s rejected %d times in a row", domain.ErrTooManyAttempts, f, attempt)
	}
	return nil
}

func (p Policy) accept(ctx context.Context, s *domain.State, f domain.Field, value string) {
	p.notify(ctx, s, f, value, true, s.Accept(f))
}

func (p Policy) notify(ctx context.Context, s *domain.State, f domain.Field, value string, accepted bool, attempt int) {
	if p.Hooks.OnValidation == nil {
		return
	}
	p.Hooks.OnValidation(ctx, &domain.ValidationEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventValidation,
			RunID:     s.RunID,
		},
		Field:    f,
		Value:    value,
		Accepted: accepted,
		Attempt:  attempt,
	})
}

// ItemCheck configures ValidateItem.
type ItemCheck struct {
	Menu     ports.MenuService
	Collect  domain.StepID
	Accepted domain.Target
	// Label names the item kind in diagnostics, e.g. "Pizza".
	Label  string
	Policy Policy
}

// ValidateItem checks the current item name against the menu service.
// An unset or empty name routes to Collect without calling the service.
// A known name (exact, case-sensitive) routes to Accepted; anything else logs
// a diagnostic listing the valid names and routes back to Collect.
// Service failures are fatal.
func ValidateItem(c ItemCheck) runtime.Selector {
	return func(ctx context.Context, io ports.IOHandler, s *domain.State) (domain.Target, error) {
		name, ok := s.Get(domain.FieldItemName)
		if !ok || name == "" {
			return domain.Goto(c.Collect), nil
		}

		items, err := c.Menu.ListItems(ctx)
		if err != nil {
			return domain.Target{}, serviceError(err)
		}
		valid := domain.MenuNames(items)

		if slices.Contains(valid, name) {
			c.Policy.accept(ctx, s, domain.FieldItemName, name)
			return c.Accepted, nil
		}

		diagnostic := fmt.Sprintf("%s '%s' is invalid. Try any of: '%s'", c.Label, name, strings.Join(valid, ","))
		if err := c.Policy.reject(ctx, io, s, domain.FieldItemName, name, diagnostic); err != nil {
			return domain.Target{}, err
		}
		s.Clear(domain.FieldItemName)
		return domain.Goto(c.Collect), nil
	}
}

// ValidateQuantity accepts a positive whole number and loops back otherwise.
func ValidateQuantity(collect, accepted domain.StepID, p Policy) runtime.Selector {
	return func(ctx context.Context, io ports.IOHandler, s *domain.State) (domain.Target, error) {
		raw, ok := s.Get(domain.FieldQuantity)
		if !ok {
			return domain.Goto(collect), nil
		}
		if s.CurrentQuantity != nil && *s.CurrentQuantity > 0 {
			p.accept(ctx, s, domain.FieldQuantity, raw)
			return domain.Goto(accepted), nil
		}

		diagnostic := fmt.Sprintf("Quantity '%s' is not a positive whole number.", raw)
		if err := p.reject(ctx, io, s, domain.FieldQuantity, raw, diagnostic); err != nil {
			return domain.Target{}, err
		}
		s.Clear(domain.FieldQuantity)
		return domain.Goto(collect), nil
	}
}

// AnotherSelector routes a yes/no answer. Unrecognized answers re-ask.
func AnotherSelector(yes, no, again domain.StepID) runtime.Selector {
	return func(ctx context.Context, io ports.IOHandler, s *domain.State) (domain.Target, error) {
		answer, _ := s.Get(domain.FieldAnother)
		s.Clear(domain.FieldAnother)

		switch strings.ToLower(answer) {
		case "y", "yes", "true", "1":
			return domain.Goto(yes), nil
		case "n", "no", "false", "0":
			return domain.Goto(no), nil
		}
		if err := io.Log(ctx, fmt.Sprintf("Please answer yes or no, not '%s'.", answer)); err != nil {
			return domain.Target{}, fmt.Errorf("log: %w", err)
		}
		return domain.Goto(again), nil
	}
}

// serviceError normalizes menu failures into a ValidationServiceError.
func serviceError(err error) error {
	if errors.Is(err, domain.ErrValidationServiceUnavailable) {
		return err
	}
	return &domain.ValidationServiceError{Err: err}
}
