package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/ports"
	"github.com/google/uuid"
)

// Engine is the graph executor. It drives one run at a time from START to END.
type Engine struct {
	graph  *Graph
	io     ports.IOHandler
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine binds a compiled graph to the I/O handler used by its steps.
func NewEngine(graph *Graph, handler ports.IOHandler, opts ...EngineOption) (*Engine, error) {
	if graph == nil {
		return nil, &domain.GraphConfigError{Problems: []string{"no graph provided"}}
	}
	if handler == nil {
		return nil, errors.New("runtime: an IOHandler is required")
	}

	e := &Engine{
		graph:  graph,
		io:     handler,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, w := range graph.Warnings() {
		e.logger.Warn("graph warning", "graph", graph.Name(), "detail", w)
	}
	return e, nil
}

// Graph returns the graph the engine executes.
func (e *Engine) Graph() *Graph { return e.graph }

// Run walks the graph from START until END is produced.
// The returned state is the accumulated state, also on error (partial, for diagnostics).
func (e *Engine) Run(ctx context.Context, initial *domain.State) (*domain.State, error) {
	state := initial
	if state == nil {
		state = domain.NewState("")
	}
	if state.RunID == "" {
		state.RunID = uuid.NewString()
	}
	if state.Output == nil {
		state.Output = []string{}
	}

	logger := e.logger.With("run_id", state.RunID)
	logger.Debug("run started", "graph", e.graph.Name())

	target, err := e.selectEntry(ctx, state)
	if err != nil {
		return state, e.abort(ctx, logger, domain.Start, err)
	}

	from := domain.Start
	for {
		step, done, err := e.resolve(from, target)
		if err != nil {
			return state, e.abort(ctx, logger, from, err)
		}
		if done {
			logger.Debug("run reached end", "steps", len(state.History))
			return state, nil
		}

		if err := ctx.Err(); err != nil {
			return state, e.abort(ctx, logger, step.ID, err)
		}

		target, err = e.execute(ctx, step, state)
		if err != nil {
			return state, e.abort(ctx, logger, step.ID, err)
		}
		from = step.ID
	}
}

// Inspect returns the full graph definition for visualization or introspection tools.
func (e *Engine) Inspect() []domain.Node {
	return e.graph.Nodes()
}

// execute runs one step and follows its outgoing edge.
func (e *Engine) execute(ctx context.Context, step *StepSpec, state *domain.State) (domain.Target, error) {
	before := state.Clone()
	state.History = append(state.History, string(step.ID))
	e.emitStepEnter(ctx, state, step)

	if err := step.Action(ctx, e.io, state); err != nil {
		return domain.Target{}, fmt.Errorf("step %s: %w", step.ID, err)
	}

	target, err := e.follow(ctx, step, state)
	if err != nil {
		return domain.Target{}, fmt.Errorf("step %s: %w", step.ID, err)
	}

	e.emitStepLeave(ctx, state, step, domain.Diff(before, state), target.Node())
	return target, nil
}

// abort normalizes a fatal error. A cancelled run context always surfaces as
// input unavailability, whatever the step was blocked on.
func (e *Engine) abort(ctx context.Context, logger *slog.Logger, at domain.StepID, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, domain.ErrInputUnavailable) {
		err = fmt.Errorf("%w: interrupted at %s: %w", domain.ErrInputUnavailable, at, ctxErr)
	}
	logger.Debug("run aborted", "step", at, "err", err)
	return err
}
