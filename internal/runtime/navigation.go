package runtime

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/aretw0/orderbot/pkg/domain"
)

// RoutingError reports a transition to a node the graph does not allow.
type RoutingError struct {
	From   domain.StepID
	Target domain.Target
	Reason string
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("routing from %s to %s: %s", e.From, e.Target, e.Reason)
}

// selectEntry evaluates START's conditional edge.
func (e *Engine) selectEntry(ctx context.Context, state *domain.State) (domain.Target, error) {
	target, err := e.graph.entry.Selector(ctx, e.io, state)
	if err != nil {
		return domain.Target{}, fmt.Errorf("entry: %w", err)
	}
	if err := checkDeclared(domain.Start, target, e.graph.entry.Branches); err != nil {
		return domain.Target{}, err
	}
	return target, nil
}

// follow resolves the outgoing edge of a step that just ran.
func (e *Engine) follow(ctx context.Context, step *StepSpec, state *domain.State) (domain.Target, error) {
	switch step.Edge {
	case domain.EdgeFixed:
		if step.Target == domain.End {
			return domain.Terminate(), nil
		}
		return domain.Goto(step.Target), nil
	case domain.EdgeConditional:
		target, err := step.Selector(ctx, e.io, state)
		if err != nil {
			return domain.Target{}, err
		}
		if err := checkDeclared(step.ID, target, step.Branches); err != nil {
			return domain.Target{}, err
		}
		return target, nil
	default:
		// Compile rejects this; kept for graphs built by hand.
		return domain.Target{}, &RoutingError{From: step.ID, Reason: "no outgoing edge"}
	}
}

// resolve maps a target onto a step, reporting done for END.
func (e *Engine) resolve(from domain.StepID, target domain.Target) (*StepSpec, bool, error) {
	switch target.Kind() {
	case domain.TargetEnd:
		return nil, true, nil
	case domain.TargetGoto:
		step, ok := e.graph.steps[target.Step()]
		if !ok {
			return nil, false, &RoutingError{From: from, Target: target, Reason: "unknown step"}
		}
		return step, false, nil
	default:
		return nil, false, &RoutingError{From: from, Target: target, Reason: "selector returned no target"}
	}
}

func checkDeclared(from domain.StepID, target domain.Target, branches []domain.StepID) error {
	if target.Kind() == domain.TargetInvalid {
		return &RoutingError{From: from, Target: target, Reason: "selector returned no target"}
	}
	if len(branches) == 0 {
		return nil
	}
	if !slices.Contains(branches, target.Node()) {
		return &RoutingError{From: from, Target: target, Reason: "target is not a declared branch"}
	}
	return nil
}

func (e *Engine) emitStepEnter(ctx context.Context, state *domain.State, step *StepSpec) {
	if e.hooks.OnStepEnter == nil {
		return
	}
	e.hooks.OnStepEnter(ctx, &domain.StepEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventStepEnter,
			RunID:     state.RunID,
		},
		StepID: step.ID,
		Kind:   step.Kind,
	})
}

func (e *Engine) emitStepLeave(ctx context.Context, state *domain.State, step *StepSpec, diff *domain.StateDiff, next domain.StepID) {
	if e.hooks.OnStepLeave == nil {
		return
	}
	e.hooks.OnStepLeave(ctx, &domain.StepEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventStepLeave,
			RunID:     state.RunID,
		},
		StepID: step.ID,
		Kind:   step.Kind,
		Diff:   diff,
		Next:   next,
	})
}
