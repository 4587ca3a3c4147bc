package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStepEnter  EventType = "step_enter"
	EventStepLeave  EventType = "step_leave"
	EventValidation EventType = "validation"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// StepEvent represents entry or exit from a step.
type StepEvent struct {
	EventBase
	StepID StepID   `json:"step_id"`
	Kind   StepKind `json:"kind"`
	// Diff is only populated on leave.
	Diff *StateDiff `json:"diff,omitempty"`
	// Next is only populated on leave.
	Next StepID `json:"next,omitempty"`
}

// ValidationEvent reports the outcome of checking a collected value.
type ValidationEvent struct {
	EventBase
	Field    Field  `json:"field"`
	Value    string `json:"value"`
	Accepted bool   `json:"accepted"`
	Attempt  int    `json:"attempt"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnStepEnter  func(context.Context, *StepEvent)
	OnStepLeave  func(context.Context, *StepEvent)
	OnValidation func(context.Context, *ValidationEvent)
}

// Merge combines hooks so that both h and other are called, h first.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStepEnter:  chain(h.OnStepEnter, other.OnStepEnter),
		OnStepLeave:  chain(h.OnStepLeave, other.OnStepLeave),
		OnValidation: chain(h.OnValidation, other.OnValidation),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
